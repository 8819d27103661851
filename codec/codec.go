// Package codec implements the public encode/decode/size entry points
// (C4 Encoder, C5 Decoder, C6 Public API) on top of the field package's
// compile-time field descriptors.
package codec

import (
	"fmt"

	"github.com/gowire/pbwire/field"
	"github.com/gowire/pbwire/wire"
)

// MaxSerializedSize bounds the outermost serialized size a single
// Size/Serialize/MergeInto/ParseNew call will produce or accept.
const MaxSerializedSize = 64 << 20

// MaxDepth re-exports field.MaxDepth for callers that want to reference
// the nesting ceiling without importing the field package directly.
const MaxDepth = field.MaxDepth

// Record is satisfied by *R for any generated record type R: a record
// exposes its compile-time field list through Fields. Callers never
// implement this directly; a generated record type gets it for free by
// declaring a package-level *field.List[R] and a Fields method that
// returns it.
type Record[R any] interface {
	Fields() *field.List[R]
}

// FieldError reports a decode or merge failure together with the number
// of the top-level field whose value failed to decode. Path holds that
// one number; a failure inside a nested message is reported under the
// outermost field number only, without the nested field numbers.
type FieldError struct {
	Path []int32
	Err  error
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("pbwire: field %v: %v", e.Path, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }

func wrapField(number int32, err error) error {
	if err == nil {
		return nil
	}
	if fe, ok := err.(*FieldError); ok {
		return &FieldError{Path: append([]int32{number}, fe.Path...), Err: fe.Err}
	}
	return &FieldError{Path: []int32{number}, Err: err}
}

func fieldsOf[R any](r *R) *field.List[R] {
	rec, ok := any(r).(Record[R])
	if !ok {
		panic(fmt.Sprintf("pbwire: %T does not implement Fields() *field.List", r))
	}
	return rec.Fields()
}

// Size computes the number of bytes Serialize would emit for r, or -1 if
// that would exceed MaxSerializedSize. -1 is the only failure value;
// Size does not check nesting depth.
func Size[R any](r *R) int {
	n := sizeOf(fieldsOf(r), r)
	if n > MaxSerializedSize {
		return -1
	}
	return n
}

func sizeOf[R any](fields *field.List[R], r *R) int {
	total := 0
	for i := 0; i < fields.Len(); i++ {
		total += fields.At(i).Size(r)
	}
	return total
}

// Serialize writes r's wire encoding into buf and returns the extended
// slice. Callers typically size buf first with Size (or slices.Grow); a
// buf too small to hold the encoding grows the same way any append does.
func Serialize[R any](r *R, buf []byte) []byte {
	fields := fieldsOf(r)
	for i := 0; i < fields.Len(); i++ {
		buf = fields.At(i).Encode(r, buf)
	}
	return buf
}

// MergeInto parses data as r's wire encoding and merges it into r:
// scalar fields overwrite, nested message/optional/pointer fields merge
// recursively, and repeated fields always append. Unknown field numbers
// are skipped. A data span over MaxSerializedSize, a nesting depth over
// MaxDepth, or a deprecated group wire type (3 or 4) anywhere in the
// span fails the whole parse.
func MergeInto[R any](r *R, data []byte) error {
	if len(data) > MaxSerializedSize {
		return fmt.Errorf("pbwire: serialized size %d exceeds maximum of %d", len(data), MaxSerializedSize)
	}
	return mergeAt(fieldsOf(r), r, data, 0)
}

func mergeAt[R any](fields *field.List[R], r *R, data []byte, depth int) error {
	for len(data) > 0 {
		tagVal, n := wire.ConsumeVarint(data)
		if n <= 0 {
			return wire.ErrTruncated
		}
		data = data[n:]
		number, wireType := wire.ParseTag(wire.Tag(tagVal))
		if !wireType.Valid() {
			return wire.ErrWireType
		}

		fld, ok := fields.ByNumber(number)
		var consumed int
		var err error
		if ok {
			consumed, err = fld.Decode(r, wireType, data, depth)
		} else {
			consumed, err = wire.SkipValue(wireType, data)
		}
		if err != nil {
			return wrapField(number, err)
		}
		if consumed <= 0 {
			return wrapField(number, wire.ErrTruncated)
		}
		data = data[consumed:]
	}
	return nil
}

// ParseNew allocates a new *R and merges data into it, the generic
// equivalent of a templated ParseNew<R>(data) entry point.
func ParseNew[R any](data []byte) (*R, error) {
	r := new(R)
	if err := MergeInto(r, data); err != nil {
		return nil, err
	}
	return r, nil
}
