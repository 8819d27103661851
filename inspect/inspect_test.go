package inspect

import (
	"strings"
	"testing"

	"github.com/gowire/pbwire/wire"
)

func buildSample() []byte {
	var buf []byte
	buf = wire.AppendVarint(buf, uint64(wire.MakeTag(1, wire.Varint)))
	buf = wire.AppendVarint(buf, 42)
	buf = wire.AppendVarint(buf, uint64(wire.MakeTag(2, wire.Bytes)))
	buf = wire.AppendBytes(buf, []byte("hello"))
	return buf
}

func TestScanFindsTopLevelSpans(t *testing.T) {
	data := buildSample()
	spans := Scan(data, false)
	if len(spans) != 2 {
		t.Fatalf("Scan found %d spans, want 2", len(spans))
	}
	if spans[0].Kind != SpanVarint || spans[0].Varint != 42 {
		t.Errorf("first span = %+v", spans[0])
	}
	if spans[1].FieldNumber != 2 {
		t.Errorf("second span field number = %d, want 2", spans[1].FieldNumber)
	}
}

func TestScanDetectsNestedMessage(t *testing.T) {
	inner := buildSample()
	var outer []byte
	outer = wire.AppendVarint(outer, uint64(wire.MakeTag(9, wire.Bytes)))
	outer = wire.AppendBytes(outer, inner)

	spans := Scan(outer, false)
	if len(spans) != 1 || spans[0].Kind != SpanMessage {
		t.Fatalf("expected a single probable-message span, got %+v", spans)
	}
	if len(spans[0].Children) != 2 {
		t.Errorf("nested message should have 2 child spans, got %d", len(spans[0].Children))
	}
}

func TestScanStrictFailsOnGarbage(t *testing.T) {
	garbage := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	if spans := Scan(garbage, false); spans != nil {
		t.Errorf("strict scan of garbage should return nil, got %+v", spans)
	}
}

func TestScanRejectsOverlongTagEncoding(t *testing.T) {
	// The tag for field 1 (varint wire type) is the single byte 0x08, but
	// padding it with redundant zero-value continuation bytes still
	// decodes to the same value under wire.ConsumeVarint. A tag varint
	// may be at most 5 bytes (ceil(32 bits / 7) groups); this one is 6,
	// so it must be rejected as a tag even though ConsumeVarint alone
	// would happily read it.
	overlongTag := []byte{0x88, 0x80, 0x80, 0x80, 0x80, 0x00}
	if spans := Scan(overlongTag, false); spans != nil {
		t.Errorf("strict scan should reject an overlong tag encoding, got %+v", spans)
	}

	data := append(append([]byte{}, overlongTag...), buildSample()...)
	spans := Scan(data, true)
	if spans == nil {
		t.Fatal("permissive scan should never return nil")
	}
	if spans[0].Kind != SpanRaw || spans[0].End-spans[0].Start != len(overlongTag) {
		t.Errorf("overlong tag bytes should surface as a raw span of length %d, got %+v", len(overlongTag), spans[0])
	}
}

func TestScanPermissiveRecoversFromGarbage(t *testing.T) {
	data := append([]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, buildSample()...)
	spans := Scan(data, true)
	if spans == nil {
		t.Fatal("permissive scan should never return nil")
	}
	if spans[0].Kind != SpanRaw {
		t.Errorf("leading garbage should surface as a raw span, got %+v", spans[0])
	}
}

func TestValidUTF8RejectsOverlong(t *testing.T) {
	// 0xC0 0x80 is an overlong encoding of NUL.
	if ok, _ := ValidUTF8([]byte{0xC0, 0x80}); ok {
		t.Error("overlong encoding should be rejected")
	}
}

func TestValidUTF8RejectsSurrogateHalf(t *testing.T) {
	// 0xED 0xA0 0x80 encodes U+D800, a lone high surrogate.
	if ok, _ := ValidUTF8([]byte{0xED, 0xA0, 0x80}); ok {
		t.Error("encoded surrogate half should be rejected")
	}
}

func TestValidUTF8AcceptsPlainASCII(t *testing.T) {
	ok, count := ValidUTF8([]byte("hello"))
	if !ok || count != 5 {
		t.Errorf("ValidUTF8(hello) = (%v, %d), want (true, 5)", ok, count)
	}
}

func TestRenderProducesReadableOutput(t *testing.T) {
	data := buildSample()
	spans := Scan(data, false)
	out := Render(data, spans, 16)
	if !strings.Contains(out, "field 1") || !strings.Contains(out, "field 2") {
		t.Errorf("render output missing field annotations:\n%s", out)
	}
	if !strings.Contains(out, "00000000") {
		t.Errorf("render output missing a hex-offset column:\n%s", out)
	}
}

func TestRenderVarintShowsAllInterpretationForms(t *testing.T) {
	var data []byte
	data = wire.AppendVarint(data, uint64(wire.MakeTag(1, wire.Varint)))
	data = wire.AppendVarint(data, wire.EncodeZigZag64(-5))
	out := Render(data, Scan(data, false), 16)
	for _, want := range []string{"(u)intXX{9}", "sintXX{-5}"} {
		if !strings.Contains(out, want) {
			t.Errorf("varint render missing %q:\n%s", want, out)
		}
	}
}

func TestRenderBoolLooksLikeVarintZeroOrOne(t *testing.T) {
	var data []byte
	data = wire.AppendVarint(data, uint64(wire.MakeTag(1, wire.Varint)))
	data = wire.AppendVarint(data, 1)
	out := Render(data, Scan(data, false), 16)
	if !strings.Contains(out, "bool{true}") {
		t.Errorf("varint render of 1 missing bool form:\n%s", out)
	}
}

func TestRenderFixed32ShowsFloatAndIntForms(t *testing.T) {
	var data []byte
	data = wire.AppendVarint(data, uint64(wire.MakeTag(4, wire.Fixed32)))
	data = wire.AppendFixed32(data, wire.EncodeFloat32(2.5))
	out := Render(data, Scan(data, false), 16)
	for _, want := range []string{"float{2.5}", "(s)fixed32{"} {
		if !strings.Contains(out, want) {
			t.Errorf("fixed32 render missing %q:\n%s", want, out)
		}
	}
}

func TestRenderWindowElidesBytesPastLimit(t *testing.T) {
	data := buildSample()
	out := RenderWindow(data, Scan(data, false), 16, 0, len(data)-1)
	if !strings.Contains(out, "…") {
		t.Errorf("render of a span truncated by the window should show an ellipsis:\n%s", out)
	}
}

func TestRenderNestedMessageUsesFence(t *testing.T) {
	inner := buildSample()
	var outer []byte
	outer = wire.AppendVarint(outer, uint64(wire.MakeTag(9, wire.Bytes)))
	outer = wire.AppendBytes(outer, inner)
	out := Render(outer, Scan(outer, false), 16)
	if !strings.Contains(out, "⦙") {
		t.Errorf("nested message render should use the fence indentation:\n%s", out)
	}
	if !strings.Contains(out, "<message>") {
		t.Errorf("nested message render should label itself:\n%s", out)
	}
}
