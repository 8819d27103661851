package field

import (
	"fmt"

	"github.com/gowire/pbwire/wire"
)

// MaxDepth bounds how many nested messages MessageField.Decode will
// recurse through before failing. It exists purely to bound
// adversarial input; legitimate schemas never nest anywhere near this
// deep.
const MaxDepth = 100

// ErrMaxDepthExceeded is returned once nested-message recursion would
// exceed MaxDepth.
var ErrMaxDepthExceeded = fmt.Errorf("pbwire: message nesting exceeds maximum depth of %d", MaxDepth)

// MessageOps carries the field list of a nested record type M. Field
// package code never imports codec (which would be a cycle); instead
// sizeMessage, encodeMessage and decodeMessage below walk Fields the
// same way codec's own top-level functions walk a record's list. Each
// MessageField/PointerField/RepeatedMessageField constructor builds one.
type MessageOps[M any] struct {
	Fields *List[M]
}

func sizeMessage[M any](ops MessageOps[M], m *M) int {
	total := 0
	for i := 0; i < ops.Fields.Len(); i++ {
		total += ops.Fields.At(i).Size(m)
	}
	return total
}

func encodeMessage[M any](ops MessageOps[M], m *M, buf []byte) []byte {
	for i := 0; i < ops.Fields.Len(); i++ {
		buf = ops.Fields.At(i).Encode(m, buf)
	}
	return buf
}

func decodeMessage[M any](ops MessageOps[M], m *M, data []byte, depth int) error {
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
		fld, ok := ops.Fields.ByNumber(number)
		var consumed int
		var err error
		if ok {
			consumed, err = fld.Decode(m, wireType, data, depth)
		} else {
			consumed, err = wire.SkipValue(wireType, data)
		}
		if err != nil {
			return err
		}
		if consumed <= 0 {
			return wire.ErrTruncated
		}
		data = data[consumed:]
	}
	return nil
}

// MessageField describes a plain (always-present) nested record value.
// Every nested message field is treated as present once its owning
// record is, so a zero-valued nested struct still "holds a value" in
// the sense that it always round-trips through the wire as an empty
// length-delimited span, matching the original's treatment of a plain
// (non-optional, non-pointer) nested message member.
type MessageField[R, M any] struct {
	number int32
	get    func(*R) *M
	ops    MessageOps[M]
}

func MessageFieldOf[R, M any](number int32, get func(*R) *M, fields *List[M]) *MessageField[R, M] {
	return &MessageField[R, M]{number: number, get: get, ops: MessageOps[M]{Fields: fields}}
}

func (f *MessageField[R, M]) Number() int32 { return f.number }

func (f *MessageField[R, M]) HoldsValue(rec *R) bool { return true }

func (f *MessageField[R, M]) Size(rec *R) int {
	inner := sizeMessage(f.ops, f.get(rec))
	return wire.SizeTag(f.number, wire.Bytes) + wire.SizeVarint(uint64(inner)) + inner
}

func (f *MessageField[R, M]) Encode(rec *R, buf []byte) []byte {
	m := f.get(rec)
	inner := sizeMessage(f.ops, m)
	buf = wire.AppendVarint(buf, uint64(wire.MakeTag(f.number, wire.Bytes)))
	buf = wire.AppendVarint(buf, uint64(inner))
	return encodeMessage(f.ops, m, buf)
}

func (f *MessageField[R, M]) Decode(rec *R, wireType wire.Type, data []byte, depth int) (int, error) {
	if wireType != wire.Bytes {
		return SkipMismatchedValue(wireType, data)
	}
	if depth+1 > MaxDepth {
		return 0, ErrMaxDepthExceeded
	}
	span, n := wire.ConsumeBytes(data)
	if n <= 0 {
		return n, consumeBytesErr(n)
	}
	if err := decodeMessage(f.ops, f.get(rec), span, depth+1); err != nil {
		return 0, err
	}
	return n, nil
}

// PointerField is the nested-record counterpart of WrapperField:
// *M, materialized on first merge, nil when absent.
type PointerField[R, M any] struct {
	number int32
	get    func(*R) **M
	ops    MessageOps[M]
}

func PointerFieldOf[R, M any](number int32, get func(*R) **M, fields *List[M]) *PointerField[R, M] {
	return &PointerField[R, M]{number: number, get: get, ops: MessageOps[M]{Fields: fields}}
}

func (f *PointerField[R, M]) Number() int32 { return f.number }

func (f *PointerField[R, M]) HoldsValue(rec *R) bool { return *f.get(rec) != nil }

func (f *PointerField[R, M]) Size(rec *R) int {
	p := *f.get(rec)
	if p == nil {
		return 0
	}
	inner := sizeMessage(f.ops, p)
	return wire.SizeTag(f.number, wire.Bytes) + wire.SizeVarint(uint64(inner)) + inner
}

func (f *PointerField[R, M]) Encode(rec *R, buf []byte) []byte {
	p := *f.get(rec)
	if p == nil {
		return buf
	}
	inner := sizeMessage(f.ops, p)
	buf = wire.AppendVarint(buf, uint64(wire.MakeTag(f.number, wire.Bytes)))
	buf = wire.AppendVarint(buf, uint64(inner))
	return encodeMessage(f.ops, p, buf)
}

func (f *PointerField[R, M]) Decode(rec *R, wireType wire.Type, data []byte, depth int) (int, error) {
	if wireType != wire.Bytes {
		return SkipMismatchedValue(wireType, data)
	}
	if depth+1 > MaxDepth {
		return 0, ErrMaxDepthExceeded
	}
	span, n := wire.ConsumeBytes(data)
	if n <= 0 {
		return n, consumeBytesErr(n)
	}
	dst := f.get(rec)
	if *dst == nil {
		*dst = new(M)
	}
	if err := decodeMessage(f.ops, *dst, span, depth+1); err != nil {
		return 0, err
	}
	return n, nil
}

// RepeatedMessageField describes a repeated nested record. Each element
// gets its own tag; nested messages are never packable.
type RepeatedMessageField[R, M any] struct {
	number int32
	get    func(*R) *[]M
	ops    MessageOps[M]
}

func RepeatedMessageFieldOf[R, M any](number int32, get func(*R) *[]M, fields *List[M]) *RepeatedMessageField[R, M] {
	return &RepeatedMessageField[R, M]{number: number, get: get, ops: MessageOps[M]{Fields: fields}}
}

func (f *RepeatedMessageField[R, M]) Number() int32 { return f.number }

func (f *RepeatedMessageField[R, M]) HoldsValue(rec *R) bool { return len(*f.get(rec)) > 0 }

func (f *RepeatedMessageField[R, M]) Size(rec *R) int {
	total := 0
	for i := range *f.get(rec) {
		inner := sizeMessage(f.ops, &(*f.get(rec))[i])
		total += wire.SizeTag(f.number, wire.Bytes) + wire.SizeVarint(uint64(inner)) + inner
	}
	return total
}

func (f *RepeatedMessageField[R, M]) Encode(rec *R, buf []byte) []byte {
	vs := *f.get(rec)
	for i := range vs {
		inner := sizeMessage(f.ops, &vs[i])
		buf = wire.AppendVarint(buf, uint64(wire.MakeTag(f.number, wire.Bytes)))
		buf = wire.AppendVarint(buf, uint64(inner))
		buf = encodeMessage(f.ops, &vs[i], buf)
	}
	return buf
}

func (f *RepeatedMessageField[R, M]) Decode(rec *R, wireType wire.Type, data []byte, depth int) (int, error) {
	if wireType != wire.Bytes {
		return SkipMismatchedValue(wireType, data)
	}
	if depth+1 > MaxDepth {
		return 0, ErrMaxDepthExceeded
	}
	span, n := wire.ConsumeBytes(data)
	if n <= 0 {
		return n, consumeBytesErr(n)
	}
	dst := f.get(rec)
	var elem M
	if err := decodeMessage(f.ops, &elem, span, depth+1); err != nil {
		return 0, err
	}
	*dst = append(*dst, elem)
	return n, nil
}
