package field

import "github.com/gowire/pbwire/wire"

// Kind names how a field's Go value maps onto the wire. Go has no distinct
// numeric types for, say, a zigzag int32 versus a plain int32 (both are
// Go int32), so Kind is what a field descriptor uses to pick the right
// wire encoding at construction time, standing in for the C++ original's
// distinct integer_wrapper types.
type Kind uint8

const (
	KindInt32 Kind = iota
	KindInt64
	KindUint32
	KindUint64
	KindSint32
	KindSint64
	KindBool
	KindEnum32
	KindFixed32
	KindFixed64
	KindSfixed32
	KindSfixed64
	KindFloat
	KindDouble
	KindString
	KindBytes
	KindMessage
)

// WireType returns the wire type a value of this kind is carried as.
func (k Kind) WireType() wire.Type {
	switch k {
	case KindInt32, KindInt64, KindUint32, KindUint64, KindSint32, KindSint64, KindBool, KindEnum32:
		return wire.Varint
	case KindFixed32, KindSfixed32, KindFloat:
		return wire.Fixed32
	case KindFixed64, KindSfixed64, KindDouble:
		return wire.Fixed64
	case KindString, KindBytes, KindMessage:
		return wire.Bytes
	default:
		return wire.Bytes
	}
}

// Packable reports whether a repeated field of this kind is eligible for
// the packed encoding (a single length-delimited run of concatenated
// values under one tag). Strings, byte runs, and nested messages are
// never packable; only fields whose wire type is varint, fixed32, or
// fixed64 are.
func (k Kind) Packable() bool {
	switch k.WireType() {
	case wire.Varint, wire.Fixed32, wire.Fixed64:
		return true
	default:
		return false
	}
}
