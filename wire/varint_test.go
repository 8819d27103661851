package wire

import "testing"

func TestVarintRoundTrip(t *testing.T) {
	cases := []uint64{0, 1, 127, 128, 300, 1 << 20, 1<<63 - 1, 1 << 63, ^uint64(0)}
	for _, v := range cases {
		buf := AppendVarint(nil, v)
		if len(buf) != SizeVarint(v) {
			t.Errorf("SizeVarint(%d) = %d, AppendVarint produced %d bytes", v, SizeVarint(v), len(buf))
		}
		got, n := ConsumeVarint(buf)
		if n != len(buf) {
			t.Errorf("ConsumeVarint(%d) consumed %d bytes, want %d", v, n, len(buf))
		}
		if got != v {
			t.Errorf("ConsumeVarint round-trip: got %d, want %d", got, v)
		}
	}
}

func TestConsumeVarintTruncated(t *testing.T) {
	_, n := ConsumeVarint([]byte{0x80, 0x80})
	if n != 0 {
		t.Errorf("ConsumeVarint on truncated input: n = %d, want 0", n)
	}
}

func TestConsumeVarintOverflow(t *testing.T) {
	overlong := []byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x02}
	_, n := ConsumeVarint(overlong)
	if n >= 0 {
		t.Errorf("ConsumeVarint on overflowing input: n = %d, want negative", n)
	}
}

func TestTruncationOnNarrowing(t *testing.T) {
	// A varint wider than 32 bits decodes fully, then narrows by ordinary
	// Go integer conversion rather than erroring, matching historical
	// wire-compatible truncation behavior.
	wide := uint64(1) << 40
	buf := AppendVarint(nil, wide)
	got, n := ConsumeVarint(buf)
	if n != len(buf) {
		t.Fatalf("ConsumeVarint consumed %d, want %d", n, len(buf))
	}
	if int32(got) != int32(wide) {
		t.Errorf("narrowing mismatch: int32(%d) should just be the Go conversion", got)
	}
}

func TestZigZag32RoundTrip(t *testing.T) {
	for _, v := range []int32{0, 1, -1, 2, -2, 1 << 20, -(1 << 20)} {
		got := DecodeZigZag32(EncodeZigZag32(v))
		if got != v {
			t.Errorf("zigzag32 round trip: got %d, want %d", got, v)
		}
	}
}

func TestZigZag64RoundTrip(t *testing.T) {
	for _, v := range []int64{0, 1, -1, 1 << 40, -(1 << 40)} {
		got := DecodeZigZag64(EncodeZigZag64(v))
		if got != v {
			t.Errorf("zigzag64 round trip: got %d, want %d", got, v)
		}
	}
}

func TestZigZagSmallMagnitudeIsCompact(t *testing.T) {
	// The whole point of zigzag: small negative numbers should not cost
	// 10 bytes the way a naive two's-complement varint would.
	if SizeVarint(EncodeZigZag32(-1)) != 1 {
		t.Errorf("zigzag(-1) should varint-encode in 1 byte")
	}
}
