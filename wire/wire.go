// Package wire implements the protobuf wire format primitives: varint and
// zigzag encoding, fixed-width little-endian integers, length-delimited
// byte runs, and tag packing/unpacking. Nothing in this package knows about
// records or field lists; it operates purely on []byte.
package wire

import "errors"

// Sentinel errors returned by the primitive codec. codec wraps these with
// field-path context further up the stack.
var (
	ErrTruncated      = errors.New("pbwire: truncated input")
	ErrVarintOverflow = errors.New("pbwire: varint overflow (more than 10 bytes)")
	ErrFieldNumber    = errors.New("pbwire: invalid field number")
	ErrWireType       = errors.New("pbwire: unrecognized or deprecated wire type")
	ErrNegativeLength = errors.New("pbwire: negative length-delimited field")
)

// Type is one of the four wire types a tag can carry. 3 (StartGroup) and
// 4 (EndGroup) are deliberately not declared as constants here: they are
// deprecated group markers and every call site that sees one must fail.
type Type uint8

const (
	Varint  Type = 0
	Fixed64 Type = 1
	Bytes   Type = 2
	Fixed32 Type = 5
)

func (t Type) String() string {
	switch t {
	case Varint:
		return "varint"
	case Fixed64:
		return "fixed64"
	case Bytes:
		return "bytes"
	case Fixed32:
		return "fixed32"
	default:
		return "unrecognized"
	}
}

// Valid reports whether t is one of the four wire types pbwire speaks.
// Group markers (3, 4) and anything else report false.
func (t Type) Valid() bool {
	switch t {
	case Varint, Fixed64, Bytes, Fixed32:
		return true
	default:
		return false
	}
}

// Tag is a field number and wire type packed into a single varint, exactly
// as it appears on the wire.
type Tag uint64

const (
	// MinFieldNumber and MaxFieldNumber bound valid field numbers.
	MinFieldNumber = 1
	MaxFieldNumber = 1<<29 - 1

	reservedRangeLo = 19000
	reservedRangeHi = 19999
)

// ValidFieldNumber reports whether n is usable as a field number: within
// [1, 2^29-1] and outside the reserved range [19000, 19999].
func ValidFieldNumber(n int32) bool {
	if n < MinFieldNumber || n > MaxFieldNumber {
		return false
	}
	if n >= reservedRangeLo && n <= reservedRangeHi {
		return false
	}
	return true
}

// MakeTag packs a field number and wire type into a Tag.
func MakeTag(fieldNumber int32, wireType Type) Tag {
	return Tag(uint64(fieldNumber)<<3 | uint64(wireType))
}

// ParseTag unpacks a Tag into its field number and wire type.
func ParseTag(t Tag) (fieldNumber int32, wireType Type) {
	return int32(t >> 3), Type(t & 0x7)
}

// SizeTag returns the number of bytes MakeTag(fieldNumber, wireType) would
// occupy once varint-encoded.
func SizeTag(fieldNumber int32, wireType Type) int {
	return SizeVarint(uint64(MakeTag(fieldNumber, wireType)))
}
