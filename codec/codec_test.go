package codec

import (
	"errors"
	"testing"

	"github.com/gowire/pbwire/field"
	"github.com/gowire/pbwire/wire"
)

type point struct {
	X int32
	Y int32
}

var pointFields = field.NewList(
	field.Int32Field(1, func(p *point) *int32 { return &p.X }),
	field.Int32Field(2, func(p *point) *int32 { return &p.Y }),
)

func (p *point) Fields() *field.List[point] { return pointFields }

type line struct {
	Start point
	End   point
	Label string
}

var lineFields = field.NewList(
	field.MessageFieldOf(1, func(l *line) *point { return &l.Start }, pointFields),
	field.MessageFieldOf(2, func(l *line) *point { return &l.End }, pointFields),
	field.StringFieldOf(3, func(l *line) *string { return &l.Label }),
)

func (l *line) Fields() *field.List[line] { return lineFields }

func TestSizeSerializeRoundTrip(t *testing.T) {
	l := &line{Start: point{1, 2}, End: point{3, 4}, Label: "diag"}
	size := Size(l)
	buf := Serialize(l, make([]byte, 0, size))
	if len(buf) != size {
		t.Fatalf("Size()=%d, Serialize produced %d", size, len(buf))
	}

	got, err := ParseNew[line](buf)
	if err != nil {
		t.Fatalf("ParseNew failed: %v", err)
	}
	if *got != *l {
		t.Errorf("round trip mismatch: got %+v, want %+v", got, l)
	}
}

func TestMergeIntoOverwritesScalars(t *testing.T) {
	l := &line{Label: "first"}
	buf1 := Serialize(l, nil)
	l.Label = "second"
	buf2 := Serialize(l, nil)

	merged := &line{}
	if err := MergeInto(merged, buf1); err != nil {
		t.Fatal(err)
	}
	if err := MergeInto(merged, buf2); err != nil {
		t.Fatal(err)
	}
	if merged.Label != "second" {
		t.Errorf("scalar fields should overwrite on merge, got %q", merged.Label)
	}
}

func TestMergeIntoRecursesIntoNestedMessages(t *testing.T) {
	a := &line{Start: point{X: 1}}
	b := &line{Start: point{Y: 2}}
	buf := append(Serialize(a, nil), Serialize(b, nil)...)

	merged := &line{}
	if err := MergeInto(merged, buf); err != nil {
		t.Fatal(err)
	}
	if merged.Start.X != 1 || merged.Start.Y != 2 {
		t.Errorf("nested message fields should merge field-by-field, got %+v", merged.Start)
	}
}

func TestMergeIntoRejectsGroupWireType(t *testing.T) {
	// Tag for field 1 with wire type 3 (StartGroup).
	buf := wire.AppendVarint(nil, uint64(wire.MakeTag(1, 3)))
	merged := &line{}
	if err := MergeInto(merged, buf); err == nil {
		t.Fatal("MergeInto should reject a deprecated group wire type")
	}
}

func TestMergeIntoReportsFieldPath(t *testing.T) {
	// Field 3 (Label, a string) with a length prefix claiming more bytes
	// than actually follow.
	buf := wire.AppendVarint(nil, uint64(wire.MakeTag(3, wire.Bytes)))
	buf = wire.AppendVarint(buf, 50)
	merged := &line{}
	err := MergeInto(merged, buf)
	if err == nil {
		t.Fatal("expected a truncation error")
	}
	var fe *FieldError
	if !errors.As(err, &fe) {
		t.Fatalf("expected a *FieldError, got %T: %v", err, err)
	}
	if len(fe.Path) != 1 || fe.Path[0] != 3 {
		t.Errorf("FieldError.Path = %v, want [3]", fe.Path)
	}
}

func TestMergeIntoSkipsUnknownFieldInReservedBand(t *testing.T) {
	// Field number 19500 falls in the reserved [19000,19999] band, which
	// a schema may never declare (field.NewList would reject it), but a
	// conformant encoder on the wire isn't a schema: an unrecognized
	// field number there must still be skipped like any other unknown
	// field, not treated as a parse error.
	buf := wire.AppendVarint(nil, uint64(wire.MakeTag(19500, wire.Varint)))
	buf = wire.AppendVarint(buf, 7)
	buf = Serialize(&line{Label: "after"}, buf)

	merged := &line{}
	if err := MergeInto(merged, buf); err != nil {
		t.Fatalf("unknown field in the reserved band should be skipped, not fail the parse: %v", err)
	}
	if merged.Label != "after" {
		t.Errorf("fields following the skipped unknown field should still decode, got %+v", merged)
	}
}

func TestSizeReturnsNegativeOneOnOversize(t *testing.T) {
	l := &line{Label: string(make([]byte, MaxSerializedSize+1))}
	if Size(l) != -1 {
		t.Errorf("Size() of an oversized record should be -1")
	}
}
