package wire

import "testing"

func TestFixed32RoundTrip(t *testing.T) {
	buf := AppendFixed32(nil, 0xdeadbeef)
	if len(buf) != 4 {
		t.Fatalf("AppendFixed32 produced %d bytes, want 4", len(buf))
	}
	v, n := ConsumeFixed32(buf)
	if n != 4 || v != 0xdeadbeef {
		t.Errorf("ConsumeFixed32 = (%x, %d), want (deadbeef, 4)", v, n)
	}
}

func TestFixed32LittleEndianOnWire(t *testing.T) {
	buf := AppendFixed32(nil, 1)
	want := []byte{1, 0, 0, 0}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("AppendFixed32(1) = %v, want %v (little-endian)", buf, want)
		}
	}
}

func TestFixed64RoundTrip(t *testing.T) {
	buf := AppendFixed64(nil, 0x0102030405060708)
	v, n := ConsumeFixed64(buf)
	if n != 8 || v != 0x0102030405060708 {
		t.Errorf("ConsumeFixed64 = (%x, %d)", v, n)
	}
}

func TestFixedTruncated(t *testing.T) {
	if _, n := ConsumeFixed32([]byte{1, 2}); n != 0 {
		t.Errorf("ConsumeFixed32 on short input: n = %d, want 0", n)
	}
	if _, n := ConsumeFixed64([]byte{1, 2, 3}); n != 0 {
		t.Errorf("ConsumeFixed64 on short input: n = %d, want 0", n)
	}
}

func TestFloatBitsRoundTrip(t *testing.T) {
	for _, v := range []float32{0, 1.5, -1.5, 3.14159} {
		if got := DecodeFloat32(EncodeFloat32(v)); got != v {
			t.Errorf("float32 round trip: got %v, want %v", got, v)
		}
	}
	for _, v := range []float64{0, 1.5, -1.5, 2.718281828} {
		if got := DecodeFloat64(EncodeFloat64(v)); got != v {
			t.Errorf("float64 round trip: got %v, want %v", got, v)
		}
	}
}
