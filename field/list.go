package field

import (
	"fmt"

	"github.com/gowire/pbwire/wire"
)

// List is the compile-time-declared, runtime-resolved-once field catalog
// for a record type R. It is built exactly once per R by a package-level
// var initialized with NewList (or with NewLazyList and a single later
// Set), and never mutated afterward.
type List[R any] struct {
	fields []Field[R]
}

// NewList builds a List from fields, which must already be ordered by
// strictly increasing field number, mirroring the original's
// AreFieldNumbersMonotonicallyIncreasing static assertion. Go has no
// compile-time assertion mechanism, so this is enforced as early as
// possible instead: NewList panics at package-init time, the first
// moment the violation can be observed, rather than silently accepting
// an unsortable, duplicate-numbered, or out-of-range list.
func NewList[R any](fields ...Field[R]) *List[R] {
	l := &List[R]{}
	l.Set(fields...)
	return l
}

// NewLazyList returns an empty List[R] that must be finalized with Set
// before any decode/encode runs against it. It exists for record types
// whose own field list needs to reference the record type being
// defined (a record with a nested or repeated field of its own type):
// the package-level *List[R] variable must exist before the field
// constructors that close over it can be built, so construction splits
// into "allocate the slot" (NewLazyList, at var-declaration time) and
// "fill it in" (Set, from an init() that can already see the slot).
func NewLazyList[R any]() *List[R] { return &List[R]{} }

// Set finalizes a List built with NewLazyList, applying the same
// ordering and field-number validity checks NewList applies. Calling
// it more than once, or calling it on a List built by NewList, panics.
func (l *List[R]) Set(fields ...Field[R]) {
	if l.fields != nil {
		panic("pbwire: field list already finalized")
	}
	for i, f := range fields {
		if !wire.ValidFieldNumber(f.Number()) {
			panic(fmt.Sprintf("pbwire: field number %d is not valid (must be in [%d,%d], excluding the reserved range)", f.Number(), wire.MinFieldNumber, wire.MaxFieldNumber))
		}
		if i > 0 && fields[i-1].Number() >= f.Number() {
			panic(fmt.Sprintf("pbwire: field list is not monotonically increasing by field number: field %d appears at or after field %d", f.Number(), fields[i-1].Number()))
		}
	}
	if fields == nil {
		fields = []Field[R]{}
	}
	l.fields = fields
}

// Len returns the number of fields declared.
func (l *List[R]) Len() int { return len(l.fields) }

// At returns the field at the given index, in ascending field-number
// order.
func (l *List[R]) At(i int) Field[R] { return l.fields[i] }

// ByNumber binary-searches for the field with the given number, the
// runtime equivalent of the original's compile-time recursive bisection
// in ParseValueAfterTag. Fields are pre-sorted by NewList, so this is a
// plain iterative binary search over an already-sorted slice.
func (l *List[R]) ByNumber(number int32) (Field[R], bool) {
	lo, hi := 0, len(l.fields)
	for lo < hi {
		mid := (lo + hi) / 2
		n := l.fields[mid].Number()
		switch {
		case n == number:
			return l.fields[mid], true
		case n < number:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return nil, false
}
