package field

import "github.com/gowire/pbwire/wire"

// StringField describes a plain (non-repeated, non-optional) UTF-8 string
// field. Decoded strings are copied out of the input buffer; pbwire never
// aliases caller-owned decode buffers into long-lived record fields.
type StringField[R any] struct {
	number int32
	get    func(*R) *string
}

func StringFieldOf[R any](number int32, get func(*R) *string) *StringField[R] {
	return &StringField[R]{number: number, get: get}
}

func (f *StringField[R]) Number() int32 { return f.number }

func (f *StringField[R]) HoldsValue(rec *R) bool { return *f.get(rec) != "" }

func (f *StringField[R]) Size(rec *R) int {
	if !f.HoldsValue(rec) {
		return 0
	}
	s := *f.get(rec)
	return wire.SizeTag(f.number, wire.Bytes) + wire.SizeBytes([]byte(s))
}

func (f *StringField[R]) Encode(rec *R, buf []byte) []byte {
	if !f.HoldsValue(rec) {
		return buf
	}
	buf = wire.AppendVarint(buf, uint64(wire.MakeTag(f.number, wire.Bytes)))
	return wire.AppendBytes(buf, []byte(*f.get(rec)))
}

func (f *StringField[R]) Decode(rec *R, wireType wire.Type, data []byte, _ int) (int, error) {
	if wireType != wire.Bytes {
		return SkipMismatchedValue(wireType, data)
	}
	b, n := wire.ConsumeBytes(data)
	if n <= 0 {
		return n, consumeBytesErr(n)
	}
	*f.get(rec) = string(b)
	return n, nil
}

// BytesField is the []byte counterpart of StringField. No UTF-8
// validation is performed on encode or decode; that belongs to the
// inspector, not the schema-driven codec.
type BytesField[R any] struct {
	number int32
	get    func(*R) *[]byte
}

func BytesFieldOf[R any](number int32, get func(*R) *[]byte) *BytesField[R] {
	return &BytesField[R]{number: number, get: get}
}

func (f *BytesField[R]) Number() int32 { return f.number }

func (f *BytesField[R]) HoldsValue(rec *R) bool { return len(*f.get(rec)) > 0 }

func (f *BytesField[R]) Size(rec *R) int {
	if !f.HoldsValue(rec) {
		return 0
	}
	return wire.SizeTag(f.number, wire.Bytes) + wire.SizeBytes(*f.get(rec))
}

func (f *BytesField[R]) Encode(rec *R, buf []byte) []byte {
	if !f.HoldsValue(rec) {
		return buf
	}
	buf = wire.AppendVarint(buf, uint64(wire.MakeTag(f.number, wire.Bytes)))
	return wire.AppendBytes(buf, *f.get(rec))
}

func (f *BytesField[R]) Decode(rec *R, wireType wire.Type, data []byte, _ int) (int, error) {
	if wireType != wire.Bytes {
		return SkipMismatchedValue(wireType, data)
	}
	b, n := wire.ConsumeBytes(data)
	if n <= 0 {
		return n, consumeBytesErr(n)
	}
	out := make([]byte, len(b))
	copy(out, b)
	*f.get(rec) = out
	return n, nil
}

func consumeBytesErr(n int) error {
	switch n {
	case 0:
		return wire.ErrTruncated
	case -1:
		return wire.ErrVarintOverflow
	default:
		return wire.ErrTruncated
	}
}
