package inspect

import "github.com/gowire/pbwire/wire"

// MaxNestingDepth bounds how deep Scan will recurse into
// probable-nested-message bytes spans before giving up and treating the
// remainder as opaque bytes. Schema-less inspection has no schema to
// bound recursion with, so it reuses the same ceiling the schema-driven
// codec enforces.
const MaxNestingDepth = 100

// maxTagSize is the longest a tag varint can legitimately be: a tag
// packs a 3-bit wire type and a field number up to 2^29-1 into 32 bits,
// and ceil(32/7) = 5 groups of 7 bits cover that. A candidate tag
// spanning more bytes than this is rejected outright rather than
// accepted as a heavily-padded encoding of a small value, matching the
// original inspector's kMaxPossibleTagSize check.
const maxTagSize = 5

// Scan walks data and returns its span tree. In strict mode, any byte
// that cannot be parsed as a valid tag+value aborts the whole scan and
// Scan returns nil. In permissive mode, unparseable bytes are collected
// into SpanRaw runs (merging adjacent raw runs into one) and scanning
// continues from the next byte.
func Scan(data []byte, permissive bool) []Span {
	spans, ok := scanAt(data, 0, permissive, 0)
	if !ok {
		return nil
	}
	return spans
}

func scanAt(data []byte, base int, permissive bool, depth int) ([]Span, bool) {
	var spans []Span
	pos := 0
	for pos < len(data) {
		span, n, ok := parseOneSpan(data[pos:], base+pos, permissive, depth)
		if !ok {
			if !permissive {
				return nil, false
			}
			spans = appendRawByte(spans, base+pos, data[pos])
			pos++
			continue
		}
		spans = append(spans, span)
		pos += n
	}
	return spans, true
}

func appendRawByte(spans []Span, offset int, b byte) []Span {
	if len(spans) > 0 {
		last := &spans[len(spans)-1]
		if last.Kind == SpanRaw && last.End == offset {
			last.Bytes = append(last.Bytes, b)
			last.End++
			return spans
		}
	}
	return append(spans, Span{Kind: SpanRaw, Start: offset, TagEnd: offset, End: offset + 1, Bytes: []byte{b}})
}

// parseOneSpan attempts to parse a single tag+value starting at the
// front of b (whose absolute offset in the original buffer is base). It
// reports ok=false if the bytes don't form a valid tag+value at all.
func parseOneSpan(b []byte, base int, permissive bool, depth int) (Span, int, bool) {
	tagVal, tn := wire.ConsumeVarint(b)
	if tn <= 0 || tn > maxTagSize {
		return Span{}, 0, false
	}
	number, wireType := wire.ParseTag(wire.Tag(tagVal))
	if !wireType.Valid() || !wire.ValidFieldNumber(number) {
		return Span{}, 0, false
	}
	rest := b[tn:]

	switch wireType {
	case wire.Varint:
		v, n := wire.ConsumeVarint(rest)
		if n <= 0 {
			return Span{}, 0, false
		}
		return Span{Kind: SpanVarint, Start: base, TagEnd: base + tn, End: base + tn + n,
			FieldNumber: number, WireType: wireType, Varint: v}, tn + n, true

	case wire.Fixed32:
		v, n := wire.ConsumeFixed32(rest)
		if n == 0 {
			return Span{}, 0, false
		}
		return Span{Kind: SpanFixed32, Start: base, TagEnd: base + tn, End: base + tn + n,
			FieldNumber: number, WireType: wireType, Fixed: uint64(v)}, tn + n, true

	case wire.Fixed64:
		v, n := wire.ConsumeFixed64(rest)
		if n == 0 {
			return Span{}, 0, false
		}
		return Span{Kind: SpanFixed64, Start: base, TagEnd: base + tn, End: base + tn + n,
			FieldNumber: number, WireType: wireType, Fixed: v}, tn + n, true

	case wire.Bytes:
		payload, n := wire.ConsumeBytes(rest)
		if n <= 0 {
			return Span{}, 0, false
		}
		sp := Span{Kind: SpanBytes, Start: base, TagEnd: base + tn, End: base + tn + n,
			FieldNumber: number, WireType: wireType, Bytes: payload}
		if depth < MaxNestingDepth {
			if children, ok := scanAt(payload, 0, false, depth+1); ok && len(children) > 0 {
				sp.Kind = SpanMessage
				sp.Children = children
			}
		}
		return sp, tn + n, true

	default:
		return Span{}, 0, false
	}
}
