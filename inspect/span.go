// Package inspect implements a schema-less inspector: given arbitrary
// wire bytes and no compiled field list, it heuristically reconstructs
// a span tree (tags, values, probable nested messages) and renders it
// as an annotated hex dump. Unlike codec, nothing here trusts a schema
// every decision is made by looking at the bytes themselves.
package inspect

import "github.com/gowire/pbwire/wire"

// SpanKind names what kind of wire value a Span represents.
type SpanKind uint8

const (
	SpanVarint SpanKind = iota
	SpanFixed32
	SpanFixed64
	SpanBytes
	SpanMessage
	SpanRaw
)

// Span is one heuristically-identified region of the inspected buffer.
// Every Span except SpanRaw was preceded by a successfully parsed tag;
// Start marks the first byte of that tag, TagEnd the first byte after
// it, and End the first byte past the value.
type Span struct {
	Kind SpanKind

	Start  int
	TagEnd int
	End    int

	FieldNumber int32
	WireType    wire.Type

	// Varint carries the decoded value when Kind == SpanVarint.
	Varint uint64
	// Fixed carries the decoded bits when Kind is SpanFixed32/SpanFixed64.
	Fixed uint64
	// Bytes carries the raw payload (post-length-prefix) when Kind is
	// SpanBytes or SpanRaw. For SpanMessage it also holds the payload,
	// so a caller can re-render it without re-slicing the parent buffer.
	Bytes []byte
	// Children holds the nested span tree when Kind == SpanMessage.
	Children []Span
}

// ValueLen returns End-TagEnd, the number of bytes occupied by the value
// itself (excluding the tag).
func (s Span) ValueLen() int { return s.End - s.TagEnd }
