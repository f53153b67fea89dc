package enummap

import (
	"iter"

	"github.com/jnbooth/enumeration/enum"
)

// All returns an iterator over the map's pairs in ascending key index
// order. Values are copies; use Mut to update in place.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.slots == nil {
			return
		}
		r := enum.All[K]()
		for {
			k, ok := r.Next()
			if !ok {
				return
			}
			if s := &m.slots[k.Index()]; s.ok {
				if !yield(k, s.val) {
					return
				}
			}
		}
	}
}

// Mut returns an iterator over the map's pairs with a pointer to each
// value, in ascending key index order. The map must not be otherwise
// mutated during iteration.
func (m *Map[K, V]) Mut() iter.Seq2[K, *V] {
	return func(yield func(K, *V) bool) {
		if m.slots == nil {
			return
		}
		r := enum.All[K]()
		for {
			k, ok := r.Next()
			if !ok {
				return
			}
			if s := &m.slots[k.Index()]; s.ok {
				if !yield(k, &s.val) {
					return
				}
			}
		}
	}
}

// Keys returns an iterator over the occupied keys in ascending index order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the values in ascending key index order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Drain returns an iterator that yields and removes the map's pairs in
// ascending key index order. The map is left empty once the loop
// finishes, even when it stops early; pairs skipped by an early break
// are removed without being yielded. Use ExtractIf to keep unvisited
// pairs.
func (m *Map[K, V]) Drain() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.slots == nil {
			return
		}
		defer m.Clear()
		for k, v := range m.All() {
			if !yield(k, v) {
				return
			}
		}
	}
}

// ExtractIf returns an iterator that removes and yields the pairs for
// which pred returns true, in ascending key index order. Pairs not yet
// visited when the loop stops early remain in the map. When the
// extracted values are not needed, Retain with a negated predicate does
// the same work without the iterator.
func (m *Map[K, V]) ExtractIf(pred func(K, *V) bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m.slots == nil {
			return
		}
		r := enum.All[K]()
		for {
			k, ok := r.Next()
			if !ok {
				return
			}
			s := &m.slots[k.Index()]
			if !s.ok || !pred(k, &s.val) {
				continue
			}
			v := s.val
			var zero V
			s.val, s.ok = zero, false
			m.count--
			if !yield(k, v) {
				return
			}
		}
	}
}
