package codec

import (
	"math"
	"testing"

	"github.com/gowire/pbwire/field"
	"google.golang.org/protobuf/encoding/protowire"
)

// These tests cross-check pbwire's own encoder/decoder against
// google.golang.org/protobuf's low-level wire primitives, proving the
// bytes pbwire produces and consumes are the same bytes any other
// protobuf implementation would.

type widget struct {
	Count int32
	Ratio float64
	Name  string
	Tags  []int32
}

var widgetFields = field.NewList(
	field.Int32Field(1, func(w *widget) *int32 { return &w.Count }),
	field.DoubleField(2, func(w *widget) *float64 { return &w.Ratio }),
	field.StringFieldOf(3, func(w *widget) *string { return &w.Name }),
	field.RepeatedInt32Field(4, func(w *widget) *[]int32 { return &w.Tags }),
)

func (w *widget) Fields() *field.List[widget] { return widgetFields }

func TestSerializeIsProtowireCompatible(t *testing.T) {
	w := &widget{Count: 7, Ratio: 2.5, Name: "gizmo", Tags: []int32{1, 2, 3}}
	buf := Serialize(w, nil)

	var gotCount int32
	var gotRatio float64
	var gotName string
	var gotTags []int32

	b := buf
	for len(b) > 0 {
		num, typ, n := protowire.ConsumeTag(b)
		if n < 0 {
			t.Fatalf("protowire.ConsumeTag failed at %v", b)
		}
		b = b[n:]
		switch num {
		case 1:
			v, n := protowire.ConsumeVarint(b)
			if n < 0 {
				t.Fatal("protowire.ConsumeVarint failed")
			}
			gotCount = int32(v)
			b = b[n:]
		case 2:
			v, n := protowire.ConsumeFixed64(b)
			if n < 0 {
				t.Fatal("protowire.ConsumeFixed64 failed")
			}
			gotRatio = math.Float64frombits(v)
			b = b[n:]
		case 3:
			v, n := protowire.ConsumeBytes(b)
			if n < 0 {
				t.Fatal("protowire.ConsumeBytes failed")
			}
			gotName = string(v)
			b = b[n:]
		case 4:
			if typ == protowire.BytesType {
				span, n := protowire.ConsumeBytes(b)
				if n < 0 {
					t.Fatal("protowire.ConsumeBytes (packed) failed")
				}
				for len(span) > 0 {
					v, n := protowire.ConsumeVarint(span)
					if n < 0 {
						t.Fatal("protowire.ConsumeVarint (packed element) failed")
					}
					gotTags = append(gotTags, int32(v))
					span = span[n:]
				}
				b = b[n:]
			}
		default:
			n := protowire.ConsumeFieldValue(num, typ, b)
			if n < 0 {
				t.Fatal("protowire.ConsumeFieldValue failed")
			}
			b = b[n:]
		}
	}

	if gotCount != w.Count || gotRatio != w.Ratio || gotName != w.Name {
		t.Fatalf("protowire-decoded scalars mismatch: got (%d, %v, %q)", gotCount, gotRatio, gotName)
	}
	if len(gotTags) != 3 || gotTags[0] != 1 || gotTags[2] != 3 {
		t.Fatalf("protowire-decoded packed repeated field mismatch: %v", gotTags)
	}
}

func TestMergeIntoAcceptsProtowireEncodedBytes(t *testing.T) {
	var buf []byte
	buf = protowire.AppendTag(buf, 1, protowire.VarintType)
	buf = protowire.AppendVarint(buf, 99)
	buf = protowire.AppendTag(buf, 3, protowire.BytesType)
	buf = protowire.AppendString(buf, "built-by-protowire")

	w := &widget{}
	if err := MergeInto(w, buf); err != nil {
		t.Fatalf("MergeInto on protowire-built bytes failed: %v", err)
	}
	if w.Count != 99 || w.Name != "built-by-protowire" {
		t.Errorf("got %+v", w)
	}
}
