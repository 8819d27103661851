package field

import "github.com/gowire/pbwire/wire"

// WrapperField describes a field whose record member is a Go pointer to a
// scalar. It backs both "optional" fields (explicit presence) and "owned
// pointer" fields from the schema's point of view; the two constructor
// families below, OptionalXxxField and PointerXxxField, produce identical
// runtime behavior. Go's pointer already carries nil-vs-present the way C++'s
// optional<T> and unique_ptr<T> each do separately; pbwire keeps the two
// constructor names distinct purely so the schema declaration documents
// the author's original intent, even though there's only one underlying
// wire and Go representation for it.
type WrapperField[R any, T comparable] struct {
	number int32
	get    func(*R) **T
	ops    scalarOps[T]
}

func (f *WrapperField[R, T]) Number() int32 { return f.number }

func (f *WrapperField[R, T]) HoldsValue(rec *R) bool { return *f.get(rec) != nil }

func (f *WrapperField[R, T]) Size(rec *R) int {
	p := *f.get(rec)
	if p == nil {
		return 0
	}
	return wire.SizeTag(f.number, f.ops.kind.WireType()) + f.ops.size(*p)
}

func (f *WrapperField[R, T]) Encode(rec *R, buf []byte) []byte {
	p := *f.get(rec)
	if p == nil {
		return buf
	}
	buf = wire.AppendVarint(buf, uint64(wire.MakeTag(f.number, f.ops.kind.WireType())))
	return f.ops.encode(buf, *p)
}

func (f *WrapperField[R, T]) Decode(rec *R, wireType wire.Type, data []byte, _ int) (int, error) {
	if wireType != f.ops.kind.WireType() {
		return SkipMismatchedValue(wireType, data)
	}
	v, n, err := f.ops.decode(wireType, data)
	if err != nil {
		return n, err
	}
	*f.get(rec) = &v
	return n, nil
}

func OptionalInt32Field[R any](number int32, get func(*R) **int32) *WrapperField[R, int32] {
	return &WrapperField[R, int32]{number: number, get: get, ops: int32Ops(KindInt32)}
}

func PointerInt32Field[R any](number int32, get func(*R) **int32) *WrapperField[R, int32] {
	return &WrapperField[R, int32]{number: number, get: get, ops: int32Ops(KindInt32)}
}

func OptionalInt64Field[R any](number int32, get func(*R) **int64) *WrapperField[R, int64] {
	return &WrapperField[R, int64]{number: number, get: get, ops: int64Ops(KindInt64)}
}

func PointerInt64Field[R any](number int32, get func(*R) **int64) *WrapperField[R, int64] {
	return &WrapperField[R, int64]{number: number, get: get, ops: int64Ops(KindInt64)}
}

func OptionalBoolField[R any](number int32, get func(*R) **bool) *WrapperField[R, bool] {
	return &WrapperField[R, bool]{number: number, get: get, ops: scalarOps[bool]{kind: KindBool,
		size: func(bool) int { return 1 },
		encode: func(buf []byte, v bool) []byte {
			if v {
				return append(buf, 1)
			}
			return append(buf, 0)
		},
		decode: func(_ wire.Type, data []byte) (bool, int, error) {
			u, n, err := consumeVarintChecked(data)
			return u != 0, n, err
		},
	}}
}

func OptionalUint64Field[R any](number int32, get func(*R) **uint64) *WrapperField[R, uint64] {
	return &WrapperField[R, uint64]{number: number, get: get, ops: scalarOps[uint64]{kind: KindUint64,
		size:   func(v uint64) int { return wire.SizeVarint(v) },
		encode: func(buf []byte, v uint64) []byte { return wire.AppendVarint(buf, v) },
		decode: func(_ wire.Type, data []byte) (uint64, int, error) { return consumeVarintChecked(data) },
	}}
}

func OptionalDoubleField[R any](number int32, get func(*R) **float64) *WrapperField[R, float64] {
	return &WrapperField[R, float64]{number: number, get: get, ops: scalarOps[float64]{kind: KindDouble,
		size:   func(float64) int { return 8 },
		encode: func(buf []byte, v float64) []byte { return wire.AppendFixed64(buf, wire.EncodeFloat64(v)) },
		decode: func(_ wire.Type, data []byte) (float64, int, error) {
			bits, n := wire.ConsumeFixed64(data)
			return wire.DecodeFloat64(bits), n, fixed64Err(n)
		},
	}}
}
