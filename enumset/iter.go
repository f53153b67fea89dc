package enumset

import (
	"github.com/jnbooth/enumeration/enum"
	"github.com/jnbooth/enumeration/word"
)

// An Iter steps over a set's members one at a time, from either end.
// It walks the full enumeration of E and filters to the bits actually
// set, so members arrive in ascending index order from the front.
// The set is copied at construction; later mutations of the original
// are not observed.
type Iter[E enum.Bits[E, W], W word.Word] struct {
	set       Set[E, W]
	rng       enum.Range[E]
	remaining int
}

// Iter returns a stepping iterator over the set's members.
func (s Set[E, W]) Iter() *Iter[E, W] {
	return &Iter[E, W]{
		set:       s,
		rng:       enum.All[E](),
		remaining: s.Len(),
	}
}

// Next yields the smallest remaining member.
// It reports false once the iterator is drained.
func (it *Iter[E, W]) Next() (E, bool) {
	for {
		v, ok := it.rng.Next()
		if !ok {
			var zero E
			return zero, false
		}
		if it.set.Contains(v) {
			it.remaining--
			return v, true
		}
	}
}

// NextBack yields the largest remaining member.
// It reports false once the iterator is drained.
func (it *Iter[E, W]) NextBack() (E, bool) {
	for {
		v, ok := it.rng.NextBack()
		if !ok {
			var zero E
			return zero, false
		}
		if it.set.Contains(v) {
			it.remaining--
			return v, true
		}
	}
}

// Len returns the remaining member count. Before any stepping it is
// exact; mid-iteration it is an upper bound, since which absent values
// fall inside the unvisited part of the range is only learned by
// advancing. It never exceeds the unvisited range length or the number
// of members not yet yielded.
func (it *Iter[E, W]) Len() int {
	return min(it.rng.Len(), it.remaining)
}
