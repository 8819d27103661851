package field

import "github.com/gowire/pbwire/wire"

// entryOps describes how to read/write one side (key or value) of a
// synthetic map-entry record. Map fields are encoded exactly as
// protobuf itself encodes them: each entry is a length-delimited
// nested message with the key at field 1 and the value at field 2.
type entryOps[T any] struct {
	wireType Type
	size     func(T) int
	encode   func([]byte, T) []byte
	decode   func([]byte) (T, int, error)
}

type Type = wire.Type

func stringEntryOps() entryOps[string] {
	return entryOps[string]{wireType: wire.Bytes,
		size:   func(s string) int { return wire.SizeBytes([]byte(s)) },
		encode: func(buf []byte, s string) []byte { return wire.AppendBytes(buf, []byte(s)) },
		decode: func(data []byte) (string, int, error) {
			b, n := wire.ConsumeBytes(data)
			if n <= 0 {
				return "", n, consumeBytesErr(n)
			}
			return string(b), n, nil
		},
	}
}

func int32EntryOps() entryOps[int32] {
	return entryOps[int32]{wireType: wire.Varint,
		size:   func(v int32) int { return wire.SizeVarint(uint64(uint32(v))) },
		encode: func(buf []byte, v int32) []byte { return wire.AppendVarint(buf, uint64(uint32(v))) },
		decode: func(data []byte) (int32, int, error) {
			u, n, err := consumeVarintChecked(data)
			return int32(uint32(u)), n, err
		},
	}
}

func int64EntryOps() entryOps[int64] {
	return entryOps[int64]{wireType: wire.Varint,
		size:   func(v int64) int { return wire.SizeVarint(uint64(v)) },
		encode: func(buf []byte, v int64) []byte { return wire.AppendVarint(buf, uint64(v)) },
		decode: func(data []byte) (int64, int, error) {
			u, n, err := consumeVarintChecked(data)
			return int64(u), n, err
		},
	}
}

func uint32EntryOps() entryOps[uint32] {
	return entryOps[uint32]{wireType: wire.Varint,
		size:   func(v uint32) int { return wire.SizeVarint(uint64(v)) },
		encode: func(buf []byte, v uint32) []byte { return wire.AppendVarint(buf, uint64(v)) },
		decode: func(data []byte) (uint32, int, error) {
			u, n, err := consumeVarintChecked(data)
			return uint32(u), n, err
		},
	}
}

func uint64EntryOps() entryOps[uint64] {
	return entryOps[uint64]{wireType: wire.Varint,
		size:   func(v uint64) int { return wire.SizeVarint(v) },
		encode: func(buf []byte, v uint64) []byte { return wire.AppendVarint(buf, v) },
		decode: func(data []byte) (uint64, int, error) { return consumeVarintChecked(data) },
	}
}

func boolEntryOps() entryOps[bool] {
	return entryOps[bool]{wireType: wire.Varint,
		size: func(bool) int { return 1 },
		encode: func(buf []byte, v bool) []byte {
			if v {
				return append(buf, 1)
			}
			return append(buf, 0)
		},
		decode: func(data []byte) (bool, int, error) {
			u, n, err := consumeVarintChecked(data)
			return u != 0, n, err
		},
	}
}

// MapField describes a map[K]V field where both K and V are scalar
// (never nested messages). Map entries always append-or-overwrite by
// key on decode: the last occurrence of a given key in the wire bytes
// wins, matching protobuf's map merge semantics.
type MapField[R any, K comparable, V comparable] struct {
	number int32
	get    func(*R) *map[K]V
	key    entryOps[K]
	val    entryOps[V]
}

func (f *MapField[R, K, V]) Number() int32 { return f.number }

func (f *MapField[R, K, V]) HoldsValue(rec *R) bool { return len(*f.get(rec)) > 0 }

func (f *MapField[R, K, V]) entrySize(k K, v V) int {
	ks := wire.SizeTag(1, f.key.wireType) + f.key.size(k)
	vs := wire.SizeTag(2, f.val.wireType) + f.val.size(v)
	return ks + vs
}

func (f *MapField[R, K, V]) Size(rec *R) int {
	total := 0
	for k, v := range *f.get(rec) {
		inner := f.entrySize(k, v)
		total += wire.SizeTag(f.number, wire.Bytes) + wire.SizeVarint(uint64(inner)) + inner
	}
	return total
}

func (f *MapField[R, K, V]) Encode(rec *R, buf []byte) []byte {
	for k, v := range *f.get(rec) {
		inner := f.entrySize(k, v)
		buf = wire.AppendVarint(buf, uint64(wire.MakeTag(f.number, wire.Bytes)))
		buf = wire.AppendVarint(buf, uint64(inner))
		buf = wire.AppendVarint(buf, uint64(wire.MakeTag(1, f.key.wireType)))
		buf = f.key.encode(buf, k)
		buf = wire.AppendVarint(buf, uint64(wire.MakeTag(2, f.val.wireType)))
		buf = f.val.encode(buf, v)
	}
	return buf
}

func (f *MapField[R, K, V]) Decode(rec *R, wireType wire.Type, data []byte, _ int) (int, error) {
	if wireType != wire.Bytes {
		return SkipMismatchedValue(wireType, data)
	}
	span, n := wire.ConsumeBytes(data)
	if n <= 0 {
		return n, consumeBytesErr(n)
	}
	var k K
	var v V
	for len(span) > 0 {
		tagVal, tn := wire.ConsumeVarint(span)
		if tn <= 0 {
			return 0, wire.ErrTruncated
		}
		span = span[tn:]
		number, wt := wire.ParseTag(wire.Tag(tagVal))
		switch number {
		case 1:
			if wt != f.key.wireType {
				c, err := wire.SkipValue(wt, span)
				if err != nil {
					return 0, err
				}
				span = span[c:]
				continue
			}
			var consumed int
			var err error
			k, consumed, err = f.key.decode(span)
			if err != nil {
				return 0, err
			}
			span = span[consumed:]
		case 2:
			if wt != f.val.wireType {
				c, err := wire.SkipValue(wt, span)
				if err != nil {
					return 0, err
				}
				span = span[c:]
				continue
			}
			var consumed int
			var err error
			v, consumed, err = f.val.decode(span)
			if err != nil {
				return 0, err
			}
			span = span[consumed:]
		default:
			c, err := wire.SkipValue(wt, span)
			if err != nil {
				return 0, err
			}
			span = span[c:]
		}
	}
	dst := f.get(rec)
	if *dst == nil {
		*dst = make(map[K]V)
	}
	(*dst)[k] = v
	return n, nil
}

func StringInt32MapField[R any](number int32, get func(*R) *map[string]int32) *MapField[R, string, int32] {
	return &MapField[R, string, int32]{number: number, get: get, key: stringEntryOps(), val: int32EntryOps()}
}

func StringStringMapField[R any](number int32, get func(*R) *map[string]string) *MapField[R, string, string] {
	return &MapField[R, string, string]{number: number, get: get, key: stringEntryOps(), val: stringEntryOps()}
}

func StringInt64MapField[R any](number int32, get func(*R) *map[string]int64) *MapField[R, string, int64] {
	return &MapField[R, string, int64]{number: number, get: get, key: stringEntryOps(), val: int64EntryOps()}
}

func Int32StringMapField[R any](number int32, get func(*R) *map[int32]string) *MapField[R, int32, string] {
	return &MapField[R, int32, string]{number: number, get: get, key: int32EntryOps(), val: stringEntryOps()}
}

func Uint64StringMapField[R any](number int32, get func(*R) *map[uint64]string) *MapField[R, uint64, string] {
	return &MapField[R, uint64, string]{number: number, get: get, key: uint64EntryOps(), val: stringEntryOps()}
}

func StringBoolMapField[R any](number int32, get func(*R) *map[string]bool) *MapField[R, string, bool] {
	return &MapField[R, string, bool]{number: number, get: get, key: stringEntryOps(), val: boolEntryOps()}
}
