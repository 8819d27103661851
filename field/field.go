package field

import "github.com/gowire/pbwire/wire"

// Field is the type-erased operations every field descriptor exposes to
// the codec, regardless of which concrete kind (scalar, repeated,
// optional, map, ...) backs it. A List[R] holds a []Field[R] of
// heterogeneous concrete field types behind this one interface; the
// runtime counterpart of the original's compile-time FieldList template,
// traded for one level of indirection per the "runtime method table"
// design option.
type Field[R any] interface {
	// Number returns the field's wire field number.
	Number() int32

	// HoldsValue reports whether rec's value for this field is to be
	// encoded: a non-zero scalar, a non-nil optional/pointer, or a
	// non-empty repeated/map container; a plain nested message always
	// holds a value. A field that does not hold a value emits nothing
	// during encoding.
	HoldsValue(rec *R) bool

	// Size returns the number of bytes Encode would append for this field
	// on rec, including tag(s). Zero if !HoldsValue(rec).
	Size(rec *R) int

	// Encode appends this field's complete wire encoding (tag(s) and
	// value(s)) for rec onto buf and returns the extended slice. It is a
	// no-op if !HoldsValue(rec).
	Encode(rec *R, buf []byte) []byte

	// Decode is invoked once the decoder has already consumed a tag whose
	// field number matches Number(), leaving data positioned at the
	// value. wireType is the wire type carried by that tag. Decode merges
	// the parsed value into rec (scalars overwrite, nested records merge
	// recursively, repeated fields append) and returns the number of
	// bytes of data it consumed. Failure is reported through a non-nil
	// err; n is then zero or negative and carries no further meaning.
	// depth is the nesting depth of the message currently being parsed,
	// as tracked by the codec package; only the nested-message fields
	// (MessageField, PointerField, RepeatedMessageField) use it, to
	// enforce the maximum nesting ceiling before recursing further.
	Decode(rec *R, wireType wire.Type, data []byte, depth int) (n int, err error)
}
