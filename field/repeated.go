package field

import "github.com/gowire/pbwire/wire"

// RepeatedField describes a repeated scalar field backed by a Go slice.
// It always encodes packed (a single tag carrying a length-delimited run
// of concatenated values) when the element kind is packable, matching
// protobuf's proto3 default. Decoding accepts either packed or unpacked
// wire bytes for the same field number and always appends, regardless of
// which form, or an interleaving of both across repeated occurrences of
// the tag, produced the bytes.
type RepeatedField[R any, T comparable] struct {
	number int32
	get    func(*R) *[]T
	ops    scalarOps[T]
}

func (f *RepeatedField[R, T]) Number() int32 { return f.number }

func (f *RepeatedField[R, T]) HoldsValue(rec *R) bool { return len(*f.get(rec)) > 0 }

func (f *RepeatedField[R, T]) Size(rec *R) int {
	vs := *f.get(rec)
	if len(vs) == 0 {
		return 0
	}
	if !f.ops.kind.Packable() {
		total := 0
		for _, v := range vs {
			total += wire.SizeTag(f.number, f.ops.kind.WireType()) + f.ops.size(v)
		}
		return total
	}
	inner := 0
	for _, v := range vs {
		inner += f.ops.size(v)
	}
	return wire.SizeTag(f.number, wire.Bytes) + wire.SizeVarint(uint64(inner)) + inner
}

func (f *RepeatedField[R, T]) Encode(rec *R, buf []byte) []byte {
	vs := *f.get(rec)
	if len(vs) == 0 {
		return buf
	}
	if !f.ops.kind.Packable() {
		for _, v := range vs {
			buf = wire.AppendVarint(buf, uint64(wire.MakeTag(f.number, f.ops.kind.WireType())))
			buf = f.ops.encode(buf, v)
		}
		return buf
	}
	inner := 0
	for _, v := range vs {
		inner += f.ops.size(v)
	}
	buf = wire.AppendVarint(buf, uint64(wire.MakeTag(f.number, wire.Bytes)))
	buf = wire.AppendVarint(buf, uint64(inner))
	for _, v := range vs {
		buf = f.ops.encode(buf, v)
	}
	return buf
}

func (f *RepeatedField[R, T]) Decode(rec *R, wireType wire.Type, data []byte, _ int) (int, error) {
	switch wireType {
	case wire.Bytes:
		// Packed run: a length-delimited span of back-to-back values.
		span, n := wire.ConsumeBytes(data)
		if n <= 0 {
			return n, consumeBytesErr(n)
		}
		dst := f.get(rec)
		for len(span) > 0 {
			v, consumed, err := f.ops.decode(f.ops.kind.WireType(), span)
			if err != nil {
				return 0, err
			}
			*dst = append(*dst, v)
			span = span[consumed:]
		}
		return n, nil
	case f.ops.kind.WireType():
		v, n, err := f.ops.decode(wireType, data)
		if err != nil {
			return n, err
		}
		dst := f.get(rec)
		*dst = append(*dst, v)
		return n, nil
	default:
		return SkipMismatchedValue(wireType, data)
	}
}

func RepeatedInt32Field[R any](number int32, get func(*R) *[]int32) *RepeatedField[R, int32] {
	return &RepeatedField[R, int32]{number: number, get: get, ops: int32Ops(KindInt32)}
}

func RepeatedSint32Field[R any](number int32, get func(*R) *[]int32) *RepeatedField[R, int32] {
	return &RepeatedField[R, int32]{number: number, get: get, ops: int32Ops(KindSint32)}
}

func RepeatedInt64Field[R any](number int32, get func(*R) *[]int64) *RepeatedField[R, int64] {
	return &RepeatedField[R, int64]{number: number, get: get, ops: int64Ops(KindInt64)}
}

func RepeatedUint32Field[R any](number int32, get func(*R) *[]uint32) *RepeatedField[R, uint32] {
	return &RepeatedField[R, uint32]{number: number, get: get, ops: scalarOps[uint32]{kind: KindUint32,
		size:   func(v uint32) int { return wire.SizeVarint(uint64(v)) },
		encode: func(buf []byte, v uint32) []byte { return wire.AppendVarint(buf, uint64(v)) },
		decode: func(_ wire.Type, data []byte) (uint32, int, error) {
			u, n, err := consumeVarintChecked(data)
			return uint32(u), n, err
		},
	}}
}

func RepeatedUint64Field[R any](number int32, get func(*R) *[]uint64) *RepeatedField[R, uint64] {
	return &RepeatedField[R, uint64]{number: number, get: get, ops: scalarOps[uint64]{kind: KindUint64,
		size:   func(v uint64) int { return wire.SizeVarint(v) },
		encode: func(buf []byte, v uint64) []byte { return wire.AppendVarint(buf, v) },
		decode: func(_ wire.Type, data []byte) (uint64, int, error) { return consumeVarintChecked(data) },
	}}
}

func RepeatedBoolField[R any](number int32, get func(*R) *[]bool) *RepeatedField[R, bool] {
	return &RepeatedField[R, bool]{number: number, get: get, ops: scalarOps[bool]{kind: KindBool,
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

func RepeatedFixed32Field[R any](number int32, get func(*R) *[]uint32) *RepeatedField[R, uint32] {
	return &RepeatedField[R, uint32]{number: number, get: get, ops: scalarOps[uint32]{kind: KindFixed32,
		size:   func(uint32) int { return 4 },
		encode: func(buf []byte, v uint32) []byte { return wire.AppendFixed32(buf, v) },
		decode: func(_ wire.Type, data []byte) (uint32, int, error) {
			v, n := wire.ConsumeFixed32(data)
			return v, n, fixed32Err(n)
		},
	}}
}

func RepeatedFloatField[R any](number int32, get func(*R) *[]float32) *RepeatedField[R, float32] {
	return &RepeatedField[R, float32]{number: number, get: get, ops: scalarOps[float32]{kind: KindFloat,
		size:   func(float32) int { return 4 },
		encode: func(buf []byte, v float32) []byte { return wire.AppendFixed32(buf, wire.EncodeFloat32(v)) },
		decode: func(_ wire.Type, data []byte) (float32, int, error) {
			bits, n := wire.ConsumeFixed32(data)
			return wire.DecodeFloat32(bits), n, fixed32Err(n)
		},
	}}
}

func RepeatedDoubleField[R any](number int32, get func(*R) *[]float64) *RepeatedField[R, float64] {
	return &RepeatedField[R, float64]{number: number, get: get, ops: scalarOps[float64]{kind: KindDouble,
		size:   func(float64) int { return 8 },
		encode: func(buf []byte, v float64) []byte { return wire.AppendFixed64(buf, wire.EncodeFloat64(v)) },
		decode: func(_ wire.Type, data []byte) (float64, int, error) {
			bits, n := wire.ConsumeFixed64(data)
			return wire.DecodeFloat64(bits), n, fixed64Err(n)
		},
	}}
}
