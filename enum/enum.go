// Package enum defines the contract satisfied by closed-world enumerable
// types: finite, totally ordered value sets with a dense zero-based index,
// together with a bidirectional iterator over ranges of their values.
//
// A type conforms by implementing [Elem] (navigation and indexing) and,
// when it is to be stored in a bit-packed set, [Bits] (a single-bit mask
// per value). Implementations are usually produced by the enumgen tool
// (see cmd/enumgen); [Bool] and [Ordering] are provided here, and [Opt]
// extends any conforming type with one extra "absent" value.
package enum

import "github.com/jnbooth/enumeration/word"

// Elem is the constraint satisfied by enumerable types. An implementation
// maps its values bijectively onto the index range [0, Size), with Min at
// index 0 and Max at index Size-1, and Succ/Pred stepping the index by
// exactly one.
//
// The constant-valued methods (Size, Min, Max) must be callable on any
// value of the type, including the zero value. Implementations whose
// Succ and Pred disagree with Index are broken; the failure mode is a
// panic at the point of use, not an error.
type Elem[E any] interface {
	comparable

	// Size returns the total number of values in the type.
	Size() int

	// Min returns the smallest value in the type.
	// No value's Succ is Min.
	Min() E

	// Max returns the largest value in the type.
	// No value's Pred is Max.
	Max() E

	// Succ returns the value's successor.
	// It reports false exactly when the receiver is Max.
	Succ() (E, bool)

	// Pred returns the value's predecessor.
	// It reports false exactly when the receiver is Min.
	Pred() (E, bool)

	// Index returns the value's position in a complete enumeration
	// of the type, in [0, Size).
	Index() int
}

// Bits is satisfied by enumerable types that additionally carry a
// single-bit mask representation wide enough for Size bits. Masks of
// distinct values never overlap; the value at index i has bit 1<<i.
type Bits[E any, W word.Word] interface {
	Elem[E]

	// Bit returns the value's single-bit mask.
	Bit() W
}

// FromIndex is the inverse of Index. It reports false when i is outside
// [0, Size). This generic form scans the full enumeration; generated
// types also provide a direct O(1) equivalent.
func FromIndex[E Elem[E]](i int) (E, bool) {
	var zero E
	if i < 0 || i >= zero.Size() {
		return zero, false
	}
	for e := range All[E]().All() {
		if e.Index() == i {
			return e, true
		}
	}
	return zero, false
}
