// Package enumset provides a fixed-capacity bit-packed set over an
// enumerable type. A set is a single machine word interpreted as a
// characteristic vector: the value at index i is a member exactly when
// bit i is set.
package enumset

import (
	"fmt"
	"iter"
	"strings"

	"github.com/jnbooth/enumeration/enum"
	"github.com/jnbooth/enumeration/word"
)

// A Set holds values of the enumerable type E in one word of type W,
// E's bit representation. Sets are plain values: every operation copies,
// two set variables never share state, and == compares contents.
// The zero value is the empty set.
//
// Operations never set bits at or above Capacity; in particular Inverse
// masks its result to the low Capacity bits.
type Set[E enum.Bits[E, W], W word.Word] struct {
	raw W
}

// Of returns the set of the given values.
func Of[E enum.Bits[E, W], W word.Word](vals ...E) Set[E, W] {
	var s Set[E, W]
	for _, v := range vals {
		s.Insert(v)
	}
	return s
}

// Collect returns the set of the values yielded by seq.
// Duplicates silently collapse.
func Collect[E enum.Bits[E, W], W word.Word](seq iter.Seq[E]) Set[E, W] {
	var s Set[E, W]
	for v := range seq {
		s.Insert(v)
	}
	return s
}

// FromRaw interprets raw as a set. It is an escape hatch for data
// interchange: the caller is trusted to set only bits that correspond
// to values of E.
func FromRaw[E enum.Bits[E, W], W word.Word](raw W) Set[E, W] {
	return Set[E, W]{raw: raw}
}

// Raw returns the set's backing word.
func (s Set[E, W]) Raw() W {
	return s.raw
}

// Capacity returns the number of values in E.
func (s Set[E, W]) Capacity() int {
	var zero E
	return zero.Size()
}

// Len returns the number of members. It is a population count of the
// backing word, never a walk over the elements.
func (s Set[E, W]) Len() int {
	return word.OnesCount(s.raw)
}

// IsEmpty reports whether the set has no members.
func (s Set[E, W]) IsEmpty() bool {
	return s.raw == 0
}

// Contains reports whether x is a member.
func (s Set[E, W]) Contains(x E) bool {
	return s.raw&x.Bit() != 0
}

// Insert adds x to the set.
func (s *Set[E, W]) Insert(x E) {
	s.raw |= x.Bit()
}

// Remove removes x from the set.
func (s *Set[E, W]) Remove(x E) {
	s.raw &^= x.Bit()
}

// Clear removes every member.
func (s *Set[E, W]) Clear() {
	s.raw = 0
}

// Retain removes the members for which keep returns false. Members are
// visited in ascending index order; keep is only called for values
// currently in the set.
func (s *Set[E, W]) Retain(keep func(E) bool) {
	for v := range enum.All[E]().All() {
		if s.Contains(v) && !keep(v) {
			s.Remove(v)
		}
	}
}

// Union returns the set of values in s, in t, or in both.
func (s Set[E, W]) Union(t Set[E, W]) Set[E, W] {
	return Set[E, W]{raw: s.raw | t.raw}
}

// Intersection returns the set of values in both s and t.
func (s Set[E, W]) Intersection(t Set[E, W]) Set[E, W] {
	return Set[E, W]{raw: s.raw & t.raw}
}

// Difference returns the set of values in s but not in t.
func (s Set[E, W]) Difference(t Set[E, W]) Set[E, W] {
	return Set[E, W]{raw: s.raw &^ t.raw}
}

// SymmetricDifference returns the set of values in exactly one of s and t.
func (s Set[E, W]) SymmetricDifference(t Set[E, W]) Set[E, W] {
	return Set[E, W]{raw: s.raw ^ t.raw}
}

// Inverse returns the set of values not in s.
func (s Set[E, W]) Inverse() Set[E, W] {
	return Set[E, W]{raw: ^s.raw & word.Mask[W](s.Capacity())}
}

// IsDisjoint reports whether s and t have no members in common.
func (s Set[E, W]) IsDisjoint(t Set[E, W]) bool {
	return s.raw&t.raw == 0
}

// IsSubset reports whether every member of s is in t.
func (s Set[E, W]) IsSubset(t Set[E, W]) bool {
	return s.raw|t.raw == t.raw
}

// IsSuperset reports whether every member of t is in s.
func (s Set[E, W]) IsSuperset(t Set[E, W]) bool {
	return s.raw|t.raw == s.raw
}

// All returns an iterator over the members in ascending index order.
func (s Set[E, W]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := range enum.All[E]().All() {
			if s.Contains(v) && !yield(v) {
				return
			}
		}
	}
}

// Backward returns an iterator over the members in descending index order.
func (s Set[E, W]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		for v := range enum.All[E]().Backward() {
			if s.Contains(v) && !yield(v) {
				return
			}
		}
	}
}

// String formats the set as a list of its members in ascending order.
func (s Set[E, W]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	for v := range s.All() {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprintf(&b, "%v", v)
	}
	b.WriteByte(']')
	return b.String()
}
