package wire

import (
	"encoding/binary"
	"math"
)

// AppendFixed32 appends v as four little-endian bytes.
//
// protobuf's wire format is always little-endian regardless of host
// byte order. Using encoding/binary.LittleEndian here, rather than a
// native-order memcpy guarded by a runtime endianness check, means a
// big-endian GOARCH still produces correct wire bytes with no special
// casing; the explicit codec makes host endianness a non-issue instead
// of something to detect and branch on.
func AppendFixed32(buf []byte, v uint32) []byte {
	var tmp [4]byte
	binary.LittleEndian.PutUint32(tmp[:], v)
	return append(buf, tmp[:]...)
}

// AppendFixed64 appends v as eight little-endian bytes.
func AppendFixed64(buf []byte, v uint64) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], v)
	return append(buf, tmp[:]...)
}

// ConsumeFixed32 reads four little-endian bytes from the front of b. n is 4
// on success, 0 if b is too short.
func ConsumeFixed32(b []byte) (v uint32, n int) {
	if len(b) < 4 {
		return 0, 0
	}
	return binary.LittleEndian.Uint32(b), 4
}

// ConsumeFixed64 reads eight little-endian bytes from the front of b. n is
// 8 on success, 0 if b is too short.
func ConsumeFixed64(b []byte) (v uint64, n int) {
	if len(b) < 8 {
		return 0, 0
	}
	return binary.LittleEndian.Uint64(b), 8
}

// EncodeFloat32 and DecodeFloat32 move between float32 and its fixed32 bit
// pattern. Go's float32/float64 are always IEEE-754, so this is a pure bit
// reinterpretation with no platform-dependent rounding to worry about.
func EncodeFloat32(v float32) uint32 { return math.Float32bits(v) }
func DecodeFloat32(bits uint32) float32 { return math.Float32frombits(bits) }

// EncodeFloat64 and DecodeFloat64 are the 64-bit counterparts.
func EncodeFloat64(v float64) uint64 { return math.Float64bits(v) }
func DecodeFloat64(bits uint64) float64 { return math.Float64frombits(bits) }
