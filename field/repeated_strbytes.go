package field

import "github.com/gowire/pbwire/wire"

// RepeatedStringField and RepeatedBytesField are never packed; strings
// and byte runs are never packable per Kind.Packable, so each element
// gets its own tag, same as an unpacked scalar repeat.

type RepeatedStringField[R any] struct {
	number int32
	get    func(*R) *[]string
}

func RepeatedStringFieldOf[R any](number int32, get func(*R) *[]string) *RepeatedStringField[R] {
	return &RepeatedStringField[R]{number: number, get: get}
}

func (f *RepeatedStringField[R]) Number() int32 { return f.number }

func (f *RepeatedStringField[R]) HoldsValue(rec *R) bool { return len(*f.get(rec)) > 0 }

func (f *RepeatedStringField[R]) Size(rec *R) int {
	total := 0
	for _, s := range *f.get(rec) {
		total += wire.SizeTag(f.number, wire.Bytes) + wire.SizeBytes([]byte(s))
	}
	return total
}

func (f *RepeatedStringField[R]) Encode(rec *R, buf []byte) []byte {
	for _, s := range *f.get(rec) {
		buf = wire.AppendVarint(buf, uint64(wire.MakeTag(f.number, wire.Bytes)))
		buf = wire.AppendBytes(buf, []byte(s))
	}
	return buf
}

func (f *RepeatedStringField[R]) Decode(rec *R, wireType wire.Type, data []byte, _ int) (int, error) {
	if wireType != wire.Bytes {
		return SkipMismatchedValue(wireType, data)
	}
	b, n := wire.ConsumeBytes(data)
	if n <= 0 {
		return n, consumeBytesErr(n)
	}
	dst := f.get(rec)
	*dst = append(*dst, string(b))
	return n, nil
}

type RepeatedBytesField[R any] struct {
	number int32
	get    func(*R) *[][]byte
}

func RepeatedBytesFieldOf[R any](number int32, get func(*R) *[][]byte) *RepeatedBytesField[R] {
	return &RepeatedBytesField[R]{number: number, get: get}
}

func (f *RepeatedBytesField[R]) Number() int32 { return f.number }

func (f *RepeatedBytesField[R]) HoldsValue(rec *R) bool { return len(*f.get(rec)) > 0 }

func (f *RepeatedBytesField[R]) Size(rec *R) int {
	total := 0
	for _, b := range *f.get(rec) {
		total += wire.SizeTag(f.number, wire.Bytes) + wire.SizeBytes(b)
	}
	return total
}

func (f *RepeatedBytesField[R]) Encode(rec *R, buf []byte) []byte {
	for _, b := range *f.get(rec) {
		buf = wire.AppendVarint(buf, uint64(wire.MakeTag(f.number, wire.Bytes)))
		buf = wire.AppendBytes(buf, b)
	}
	return buf
}

func (f *RepeatedBytesField[R]) Decode(rec *R, wireType wire.Type, data []byte, _ int) (int, error) {
	if wireType != wire.Bytes {
		return SkipMismatchedValue(wireType, data)
	}
	b, n := wire.ConsumeBytes(data)
	if n <= 0 {
		return n, consumeBytesErr(n)
	}
	out := make([]byte, len(b))
	copy(out, b)
	dst := f.get(rec)
	*dst = append(*dst, out)
	return n, nil
}
