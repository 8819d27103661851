package inspect

import (
	"fmt"
	"strings"

	"github.com/gowire/pbwire/wire"
)

// RenderingContext accumulates the text of a span-tree render.
// OffsetZero and Limit bound the window of the buffer to actually
// render: bytes before OffsetZero or at/after Limit are left out of the
// dump, and a bytes or message span cut off by Limit ends with an
// ellipsis. BytesPerLine controls the hex-dump row
// width; it defaults to 16 when zero.
type RenderingContext struct {
	OffsetZero   int
	Limit        int
	BytesPerLine int
	Color        bool
	indent       string
	out          strings.Builder
}

const nestedFence = "  ⦙ "

// ANSI SGR codes used when a RenderingContext has Color set: the offset
// column in cyan, field labels and interpretations in yellow, matching
// the dim/accent split zerolog's ConsoleWriter uses for its own
// timestamp-vs-message coloring.
const (
	ansiOffset = "\x1b[36m"
	ansiField  = "\x1b[33m"
	ansiReset  = "\x1b[0m"
)

func (ctx *RenderingContext) colorize(code, s string) string {
	if !ctx.Color {
		return s
	}
	return code + s + ansiReset
}

// Render produces the full annotated dump of data given its already-
// scanned span tree, matching what Scan(data, permissive) returned for
// data. The window is the whole of data.
func Render(data []byte, spans []Span, bytesPerLine int) string {
	return RenderWindow(data, spans, bytesPerLine, 0, len(data))
}

// RenderWindow is Render with an explicit [offsetZero, limit) window:
// bytes outside it are left out of the dump (see RenderingContext),
// matching spec's windowed-rendering requirement for large buffers.
func RenderWindow(data []byte, spans []Span, bytesPerLine, offsetZero, limit int) string {
	return RenderWindowColor(data, spans, bytesPerLine, offsetZero, limit, false)
}

// RenderColor is Render with ANSI coloring of the offset column and
// field interpretations, for terminals that want it (pbdump's -color
// flag / dumpconfig's color key).
func RenderColor(data []byte, spans []Span, bytesPerLine int, color bool) string {
	return RenderWindowColor(data, spans, bytesPerLine, 0, len(data), color)
}

// RenderWindowColor is RenderWindow with the color switch exposed.
func RenderWindowColor(data []byte, spans []Span, bytesPerLine, offsetZero, limit int, color bool) string {
	ctx := &RenderingContext{OffsetZero: offsetZero, Limit: limit, BytesPerLine: bytesPerLine, Color: color}
	if ctx.BytesPerLine <= 0 {
		ctx.BytesPerLine = 16
	}
	ctx.renderSpans(data, spans, 0)
	return ctx.out.String()
}

func (ctx *RenderingContext) renderSpans(data []byte, spans []Span, indent int) {
	prefix := strings.Repeat(nestedFence, indent)
	for _, sp := range spans {
		switch sp.Kind {
		case SpanRaw:
			ctx.renderPlainRows(data, prefix, sp.Start, sp.End, true)
		case SpanVarint:
			rows := ctx.hexDumpRows(data, sp.Start, sp.End)
			if len(rows) == 0 {
				continue
			}
			rows[0] += ctx.colorize(ansiField, "  field "+fmtField(sp.FieldNumber)+" <varint> "+varintInterpretation(sp.Varint))
			ctx.writeRows(prefix, rows)
		case SpanFixed32:
			rows := ctx.hexDumpRows(data, sp.Start, sp.End)
			if len(rows) == 0 {
				continue
			}
			rows[0] += ctx.colorize(ansiField, "  field "+fmtField(sp.FieldNumber)+" <fixed32> "+fixed32Interpretation(uint32(sp.Fixed)))
			ctx.writeRows(prefix, rows)
		case SpanFixed64:
			rows := ctx.hexDumpRows(data, sp.Start, sp.End)
			if len(rows) == 0 {
				continue
			}
			rows[0] += ctx.colorize(ansiField, "  field "+fmtField(sp.FieldNumber)+" <fixed64> "+fixed64Interpretation(sp.Fixed))
			ctx.writeRows(prefix, rows)
		case SpanBytes:
			ctx.renderBytesSpan(data, sp, prefix)
		case SpanMessage:
			ctx.renderMessageSpan(data, sp, prefix, indent)
		}
	}
}

func fmtField(n int32) string { return fmt.Sprintf("%d", n) }

func varintInterpretation(v uint64) string {
	signed := int64(v)
	var sb strings.Builder
	if signed >= 0 {
		fmt.Fprintf(&sb, "(u)intXX{%d}", v)
	} else {
		fmt.Fprintf(&sb, "uintXX{%d} | intXX{%d}", v, signed)
	}
	fmt.Fprintf(&sb, " | sintXX{%d}", wire.DecodeZigZag64(v))
	if v == 0 || v == 1 {
		fmt.Fprintf(&sb, " | bool{%t}", v != 0)
	}
	return sb.String()
}

func fixed32Interpretation(bits uint32) string {
	signed := int32(bits)
	var sb strings.Builder
	fmt.Fprintf(&sb, "float{%v}", wire.DecodeFloat32(bits))
	if signed >= 0 {
		fmt.Fprintf(&sb, " | (s)fixed32{%d}", bits)
	} else {
		fmt.Fprintf(&sb, " | fixed32{%d} | sfixed32{%d}", bits, signed)
	}
	return sb.String()
}

func fixed64Interpretation(bits uint64) string {
	signed := int64(bits)
	var sb strings.Builder
	fmt.Fprintf(&sb, "double{%v}", wire.DecodeFloat64(bits))
	if signed >= 0 {
		fmt.Fprintf(&sb, " | (s)fixed64{%d}", bits)
	} else {
		fmt.Fprintf(&sb, " | fixed64{%d} | sfixed64{%d}", bits, signed)
	}
	return sb.String()
}

func (ctx *RenderingContext) renderBytesSpan(data []byte, sp Span, prefix string) {
	rows := ctx.hexDumpRows(data, sp.Start, sp.End)
	if len(rows) == 0 {
		return
	}
	if ok, count := ValidUTF8(sp.Bytes); ok {
		rows[0] += ctx.colorize(ansiField, fmt.Sprintf("  field %d <string> (%d chars) = %q", sp.FieldNumber, count, truncateForDisplay(string(sp.Bytes))))
	} else {
		rows[0] += ctx.colorize(ansiField, fmt.Sprintf("  field %d <bytes> (%d byte(s))", sp.FieldNumber, len(sp.Bytes)))
	}
	if sp.End > ctx.Limit {
		rows[len(rows)-1] += "…"
	}
	ctx.writeRows(prefix, rows)
}

func (ctx *RenderingContext) renderMessageSpan(data []byte, sp Span, prefix string, indent int) {
	valueStart := sp.End - len(sp.Bytes)
	headerRows := ctx.hexDumpRows(data, sp.Start, valueStart)
	if len(headerRows) == 0 {
		return
	}
	headerRows[len(headerRows)-1] += ctx.colorize(ansiField, fmt.Sprintf("  field %d <message> (%d bytes) {", sp.FieldNumber, len(sp.Bytes)))
	ctx.writeRows(prefix, headerRows)

	ctx.renderSpans(sp.Bytes, sp.Children, indent+1)

	closing := "}"
	if sp.End > ctx.Limit {
		closing = "…" + closing
	}
	fmt.Fprintf(&ctx.out, "%s%s\n", prefix, closing)
}

func (ctx *RenderingContext) renderPlainRows(data []byte, prefix string, begin, end int, withGlyphs bool) {
	rows := ctx.hexDumpRowsWithGlyphs(data, begin, end, withGlyphs)
	ctx.writeRows(prefix, rows)
}

func (ctx *RenderingContext) writeRows(prefix string, rows []string) {
	for _, row := range rows {
		fmt.Fprintf(&ctx.out, "%s%s\n", prefix, row)
	}
}

const maxDisplayLen = 200

func truncateForDisplay(s string) string {
	if len(s) <= maxDisplayLen {
		return s
	}
	return s[:maxDisplayLen] + "…"
}

// hexDumpRows renders the byte range [begin, end) of data as one row per
// BytesPerLine-sized block, clipped to [OffsetZero, Limit). It returns no
// rows at all if the range has no overlap with the window, matching the
// original inspector's MakeHexDumpRows.
func (ctx *RenderingContext) hexDumpRows(data []byte, begin, end int) []string {
	return ctx.hexDumpRowsWithGlyphs(data, begin, end, false)
}

func (ctx *RenderingContext) hexDumpRowsWithGlyphs(data []byte, begin, end int, withGlyphs bool) []string {
	clippedBegin := begin
	if clippedBegin < ctx.OffsetZero {
		clippedBegin = ctx.OffsetZero
	}
	clippedEnd := end
	if clippedEnd > ctx.Limit {
		clippedEnd = ctx.Limit
	}
	if clippedEnd <= clippedBegin {
		return nil
	}
	rowOffset := (clippedBegin / ctx.BytesPerLine) * ctx.BytesPerLine
	endRowOffset := ((clippedEnd-1)/ctx.BytesPerLine)*ctx.BytesPerLine + ctx.BytesPerLine

	var rows []string
	for ro := rowOffset; ro < endRowOffset; ro += ctx.BytesPerLine {
		rows = append(rows, ctx.hexDumpRow(data, ro, clippedBegin, clippedEnd, withGlyphs))
	}
	return rows
}

// hexDumpRow renders one row at absolute offset rowOffset: an 8-digit hex
// offset column, then one hex byte (or two blank spaces) per column for
// bytes in [begin, end) that fall in this row, optionally followed by a
// glyph gutter for the same bytes.
func (ctx *RenderingContext) hexDumpRow(data []byte, rowOffset, begin, end int, withGlyphs bool) string {
	var sb strings.Builder
	sb.WriteString(ctx.colorize(ansiOffset, fmt.Sprintf("%08x", rowOffset)))
	sb.WriteByte(' ')
	for i := 0; i < ctx.BytesPerLine; i++ {
		pos := rowOffset + i
		sb.WriteByte(' ')
		if pos >= begin && pos < end && pos < len(data) {
			fmt.Fprintf(&sb, "%02x", data[pos])
		} else {
			sb.WriteString("  ")
		}
	}
	if withGlyphs {
		sb.WriteString("  ")
		for i := 0; i < ctx.BytesPerLine; i++ {
			pos := rowOffset + i
			if pos >= begin && pos < end && pos < len(data) {
				sb.WriteRune(glyphFor(data[pos]))
			} else {
				sb.WriteByte(' ')
			}
		}
	}
	return sb.String()
}
