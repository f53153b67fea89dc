package enum

import "iter"

// A Range is a bidirectional iterator over a closed sub-range of an
// enumerable type. It yields values in ascending index order from the
// front and descending order from the back; the two directions may
// interleave and meet in the middle.
//
// Ranges are values. All and Backward iterate a copy, so a stored Range
// can be ranged over any number of times; Next and NextBack consume the
// receiver. Two empty ranges produced by invalid bound combinations
// compare equal.
type Range[E Elem[E]] struct {
	start    E
	end      E
	finished bool
}

// Enumerate constructs a Range from a pair of bounds. An unbounded start
// or end resolves to Min or Max. Bound combinations that cannot be
// satisfied (excluding Min from below, excluding Max from above, or a
// start whose index exceeds the end's) yield the canonical empty range
// rather than an error.
func Enumerate[E Elem[E]](start, end Bound[E]) Range[E] {
	var zero E
	empty := Range[E]{start: zero.Min(), end: zero.Min(), finished: true}

	var lo E
	switch start.kind {
	case unbounded:
		lo = zero.Min()
	case inclusive:
		lo = start.at
	case exclusive:
		s, ok := start.at.Succ()
		if !ok {
			return empty
		}
		lo = s
	}

	var hi E
	switch end.kind {
	case unbounded:
		hi = zero.Max()
	case inclusive:
		hi = end.at
	case exclusive:
		p, ok := end.at.Pred()
		if !ok {
			return empty
		}
		hi = p
	}

	if lo.Index() > hi.Index() {
		return empty
	}
	return Range[E]{start: lo, end: hi}
}

// All returns the Range covering every value of E.
func All[E Elem[E]]() Range[E] {
	return Enumerate(Unbounded[E](), Unbounded[E]())
}

// Span returns the Range from start to end, inclusive at both ends.
func Span[E Elem[E]](start, end E) Range[E] {
	return Enumerate(Incl(start), Incl(end))
}

// Next yields the front of the range and advances past it.
// It reports false once the range is exhausted.
func (r *Range[E]) Next() (E, bool) {
	var zero E
	if r.finished {
		return zero, false
	}
	at := r.start
	if r.start == r.end {
		r.finished = true
		return at, true
	}
	s, ok := at.Succ()
	if !ok {
		panic("enum: no successor below Max")
	}
	r.start = s
	return at, true
}

// NextBack yields the back of the range and retracts it.
// It reports false once the range is exhausted.
func (r *Range[E]) NextBack() (E, bool) {
	var zero E
	if r.finished {
		return zero, false
	}
	at := r.end
	if r.start == r.end {
		r.finished = true
		return at, true
	}
	p, ok := at.Pred()
	if !ok {
		panic("enum: no predecessor above Min")
	}
	r.end = p
	return at, true
}

// Len returns the exact number of values remaining. It is computed from
// the boundary indexes, not by stepping.
func (r Range[E]) Len() int {
	if r.finished {
		return 0
	}
	return r.end.Index() - r.start.Index() + 1
}

// All returns an iterator over the range's values, front to back.
func (r Range[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if r.finished {
			return
		}
		v := r.start
		for {
			if !yield(v) {
				return
			}
			if v == r.end {
				return
			}
			s, ok := v.Succ()
			if !ok {
				return
			}
			v = s
		}
	}
}

// Backward returns an iterator over the range's values, back to front.
func (r Range[E]) Backward() iter.Seq[E] {
	return func(yield func(E) bool) {
		if r.finished {
			return
		}
		v := r.end
		for {
			if !yield(v) {
				return
			}
			if v == r.start {
				return
			}
			p, ok := v.Pred()
			if !ok {
				return
			}
			v = p
		}
	}
}
