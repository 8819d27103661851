package field

import "github.com/gowire/pbwire/wire"

// scalarOps is the per-kind strategy a ScalarField delegates wire
// operations to. Each concrete Kind gets exactly one ops value, built by
// the matching constructor below.
type scalarOps[T comparable] struct {
	kind   Kind
	size   func(T) int
	encode func([]byte, T) []byte
	decode func(wire.Type, []byte) (T, int, error)
}

// ScalarField describes a plain (non-optional, non-repeated) field whose
// Go value is directly embedded in the record struct. It holds a value
// whenever that value is non-zero, per the "holds a value" predicate.
type ScalarField[R any, T comparable] struct {
	number int32
	get    func(*R) *T
	ops    scalarOps[T]
}

func (f *ScalarField[R, T]) Number() int32 { return f.number }

func (f *ScalarField[R, T]) HoldsValue(rec *R) bool {
	var zero T
	return *f.get(rec) != zero
}

func (f *ScalarField[R, T]) Size(rec *R) int {
	if !f.HoldsValue(rec) {
		return 0
	}
	v := *f.get(rec)
	return wire.SizeTag(f.number, f.ops.kind.WireType()) + f.ops.size(v)
}

func (f *ScalarField[R, T]) Encode(rec *R, buf []byte) []byte {
	if !f.HoldsValue(rec) {
		return buf
	}
	buf = wire.AppendVarint(buf, uint64(wire.MakeTag(f.number, f.ops.kind.WireType())))
	return f.ops.encode(buf, *f.get(rec))
}

func (f *ScalarField[R, T]) Decode(rec *R, wireType wire.Type, data []byte, _ int) (int, error) {
	if wireType != f.ops.kind.WireType() {
		return SkipMismatchedValue(wireType, data)
	}
	v, n, err := f.ops.decode(wireType, data)
	if err != nil {
		return n, err
	}
	*f.get(rec) = v
	return n, nil
}

func int32Ops(kind Kind) scalarOps[int32] {
	switch kind {
	case KindSint32:
		return scalarOps[int32]{kind: kind,
			size:   func(v int32) int { return wire.SizeVarint(wire.EncodeZigZag32(v)) },
			encode: func(buf []byte, v int32) []byte { return wire.AppendVarint(buf, wire.EncodeZigZag32(v)) },
			decode: func(_ wire.Type, data []byte) (int32, int, error) {
				u, n, err := consumeVarintChecked(data)
				return wire.DecodeZigZag32(u), n, err
			},
		}
	case KindSfixed32:
		return scalarOps[int32]{kind: kind,
			size:   func(int32) int { return 4 },
			encode: func(buf []byte, v int32) []byte { return wire.AppendFixed32(buf, uint32(v)) },
			decode: func(_ wire.Type, data []byte) (int32, int, error) {
				u, n := wire.ConsumeFixed32(data)
				return int32(u), n, fixed32Err(n)
			},
		}
	case KindEnum32:
		return scalarOps[int32]{kind: kind,
			size:   func(v int32) int { return wire.SizeVarint(uint64(uint32(v))) },
			encode: func(buf []byte, v int32) []byte { return wire.AppendVarint(buf, uint64(uint32(v))) },
			decode: func(_ wire.Type, data []byte) (int32, int, error) {
				u, n, err := consumeVarintChecked(data)
				return int32(u), n, err
			},
		}
	default: // KindInt32
		return scalarOps[int32]{kind: KindInt32,
			size:   func(v int32) int { return wire.SizeVarint(uint64(uint32(v))) },
			encode: func(buf []byte, v int32) []byte { return wire.AppendVarint(buf, uint64(uint32(v))) },
			decode: func(_ wire.Type, data []byte) (int32, int, error) {
				u, n, err := consumeVarintChecked(data)
				return int32(uint32(u)), n, err
			},
		}
	}
}

// Int32Field, Sint32Field, Sfixed32Field, and Enum32Field are distinct
// constructors, rather than one constructor plus a Kind parameter,
// because the schema author should never be able to pass the wrong Kind
// for the Go type they wrote down; the constructor name is the contract.

func Int32Field[R any](number int32, get func(*R) *int32) *ScalarField[R, int32] {
	return &ScalarField[R, int32]{number: number, get: get, ops: int32Ops(KindInt32)}
}

func Sint32Field[R any](number int32, get func(*R) *int32) *ScalarField[R, int32] {
	return &ScalarField[R, int32]{number: number, get: get, ops: int32Ops(KindSint32)}
}

func Sfixed32Field[R any](number int32, get func(*R) *int32) *ScalarField[R, int32] {
	return &ScalarField[R, int32]{number: number, get: get, ops: int32Ops(KindSfixed32)}
}

func Enum32Field[R any](number int32, get func(*R) *int32) *ScalarField[R, int32] {
	return &ScalarField[R, int32]{number: number, get: get, ops: int32Ops(KindEnum32)}
}

func int64Ops(kind Kind) scalarOps[int64] {
	switch kind {
	case KindSint64:
		return scalarOps[int64]{kind: kind,
			size:   func(v int64) int { return wire.SizeVarint(wire.EncodeZigZag64(v)) },
			encode: func(buf []byte, v int64) []byte { return wire.AppendVarint(buf, wire.EncodeZigZag64(v)) },
			decode: func(_ wire.Type, data []byte) (int64, int, error) {
				u, n, err := consumeVarintChecked(data)
				return wire.DecodeZigZag64(u), n, err
			},
		}
	case KindSfixed64:
		return scalarOps[int64]{kind: kind,
			size:   func(int64) int { return 8 },
			encode: func(buf []byte, v int64) []byte { return wire.AppendFixed64(buf, uint64(v)) },
			decode: func(_ wire.Type, data []byte) (int64, int, error) {
				u, n := wire.ConsumeFixed64(data)
				return int64(u), n, fixed64Err(n)
			},
		}
	default: // KindInt64
		return scalarOps[int64]{kind: KindInt64,
			size:   func(v int64) int { return wire.SizeVarint(uint64(v)) },
			encode: func(buf []byte, v int64) []byte { return wire.AppendVarint(buf, uint64(v)) },
			decode: func(_ wire.Type, data []byte) (int64, int, error) {
				u, n, err := consumeVarintChecked(data)
				return int64(u), n, err
			},
		}
	}
}

func Int64Field[R any](number int32, get func(*R) *int64) *ScalarField[R, int64] {
	return &ScalarField[R, int64]{number: number, get: get, ops: int64Ops(KindInt64)}
}

func Sint64Field[R any](number int32, get func(*R) *int64) *ScalarField[R, int64] {
	return &ScalarField[R, int64]{number: number, get: get, ops: int64Ops(KindSint64)}
}

func Sfixed64Field[R any](number int32, get func(*R) *int64) *ScalarField[R, int64] {
	return &ScalarField[R, int64]{number: number, get: get, ops: int64Ops(KindSfixed64)}
}

func Uint32Field[R any](number int32, get func(*R) *uint32) *ScalarField[R, uint32] {
	return &ScalarField[R, uint32]{number: number, get: get, ops: scalarOps[uint32]{kind: KindUint32,
		size:   func(v uint32) int { return wire.SizeVarint(uint64(v)) },
		encode: func(buf []byte, v uint32) []byte { return wire.AppendVarint(buf, uint64(v)) },
		decode: func(_ wire.Type, data []byte) (uint32, int, error) {
			u, n, err := consumeVarintChecked(data)
			return uint32(u), n, err
		},
	}}
}

func Uint64Field[R any](number int32, get func(*R) *uint64) *ScalarField[R, uint64] {
	return &ScalarField[R, uint64]{number: number, get: get, ops: scalarOps[uint64]{kind: KindUint64,
		size:   func(v uint64) int { return wire.SizeVarint(v) },
		encode: func(buf []byte, v uint64) []byte { return wire.AppendVarint(buf, v) },
		decode: func(_ wire.Type, data []byte) (uint64, int, error) {
			return consumeVarintChecked(data)
		},
	}}
}

func Fixed32Field[R any](number int32, get func(*R) *uint32) *ScalarField[R, uint32] {
	return &ScalarField[R, uint32]{number: number, get: get, ops: scalarOps[uint32]{kind: KindFixed32,
		size:   func(uint32) int { return 4 },
		encode: func(buf []byte, v uint32) []byte { return wire.AppendFixed32(buf, v) },
		decode: func(_ wire.Type, data []byte) (uint32, int, error) {
			v, n := wire.ConsumeFixed32(data)
			return v, n, fixed32Err(n)
		},
	}}
}

func Fixed64Field[R any](number int32, get func(*R) *uint64) *ScalarField[R, uint64] {
	return &ScalarField[R, uint64]{number: number, get: get, ops: scalarOps[uint64]{kind: KindFixed64,
		size:   func(uint64) int { return 8 },
		encode: func(buf []byte, v uint64) []byte { return wire.AppendFixed64(buf, v) },
		decode: func(_ wire.Type, data []byte) (uint64, int, error) {
			v, n := wire.ConsumeFixed64(data)
			return v, n, fixed64Err(n)
		},
	}}
}

func BoolField[R any](number int32, get func(*R) *bool) *ScalarField[R, bool] {
	return &ScalarField[R, bool]{number: number, get: get, ops: scalarOps[bool]{kind: KindBool,
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

func FloatField[R any](number int32, get func(*R) *float32) *ScalarField[R, float32] {
	return &ScalarField[R, float32]{number: number, get: get, ops: scalarOps[float32]{kind: KindFloat,
		size:   func(float32) int { return 4 },
		encode: func(buf []byte, v float32) []byte { return wire.AppendFixed32(buf, wire.EncodeFloat32(v)) },
		decode: func(_ wire.Type, data []byte) (float32, int, error) {
			bits, n := wire.ConsumeFixed32(data)
			return wire.DecodeFloat32(bits), n, fixed32Err(n)
		},
	}}
}

func DoubleField[R any](number int32, get func(*R) *float64) *ScalarField[R, float64] {
	return &ScalarField[R, float64]{number: number, get: get, ops: scalarOps[float64]{kind: KindDouble,
		size:   func(float64) int { return 8 },
		encode: func(buf []byte, v float64) []byte { return wire.AppendFixed64(buf, wire.EncodeFloat64(v)) },
		decode: func(_ wire.Type, data []byte) (float64, int, error) {
			bits, n := wire.ConsumeFixed64(data)
			return wire.DecodeFloat64(bits), n, fixed64Err(n)
		},
	}}
}
