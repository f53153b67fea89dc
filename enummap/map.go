// Package enummap provides a fixed-capacity map from an enumerable key
// type to arbitrary values. Keys address an array slot directly through
// their dense index; there is no hashing.
package enummap

import (
	"iter"

	"github.com/jnbooth/enumeration/enum"
)

type slot[V any] struct {
	val V
	ok  bool
}

// A Map associates keys of the enumerable type K with values of type V.
// The backing array holds one slot per value of K and is allocated on
// first insertion; the zero value is an empty map ready for use.
//
// Lookups, insertions and removals are O(1). Iteration visits every
// slot, occupied or not, in ascending key index order, so it costs
// O(capacity) rather than O(len).
//
// A Map must not be mutated while an iterator or [Entry] obtained from
// it is in use.
type Map[K enum.Elem[K], V any] struct {
	slots []slot[V]
	count int
}

// New returns an empty map.
func New[K enum.Elem[K], V any]() *Map[K, V] {
	return &Map[K, V]{}
}

// Collect returns a map of the pairs yielded by seq. The backing array
// is allocated up front; a later pair for an already-seen key overwrites
// the earlier value without affecting Len.
func Collect[K enum.Elem[K], V any](seq iter.Seq2[K, V]) *Map[K, V] {
	m := New[K, V]()
	m.alloc()
	for k, v := range seq {
		m.Insert(k, v)
	}
	return m
}

// Equal reports whether a and b hold exactly the same key-value pairs.
func Equal[K enum.Elem[K], V comparable](a, b *Map[K, V]) bool {
	if a.Len() != b.Len() {
		return false
	}
	for k, v := range a.All() {
		p := b.Get(k)
		if p == nil || *p != v {
			return false
		}
	}
	return true
}

func (m *Map[K, V]) alloc() {
	if m.slots == nil {
		m.slots = make([]slot[V], m.Capacity())
	}
}

// Capacity returns the number of values in K.
func (m *Map[K, V]) Capacity() int {
	var zero K
	return zero.Size()
}

// Len returns the number of keys with an associated value. The count is
// maintained incrementally by mutation, never recomputed by scanning.
func (m *Map[K, V]) Len() int {
	return m.count
}

// IsEmpty reports whether the map holds no pairs.
func (m *Map[K, V]) IsEmpty() bool {
	return m.count == 0
}

// Insert associates v with k, returning the value it replaced, if any.
func (m *Map[K, V]) Insert(k K, v V) (prev V, replaced bool) {
	m.alloc()
	s := &m.slots[k.Index()]
	prev, replaced = s.val, s.ok
	s.val, s.ok = v, true
	if !replaced {
		m.count++
	}
	return prev, replaced
}

// Remove deletes k's association, returning the removed value, if any.
func (m *Map[K, V]) Remove(k K) (V, bool) {
	var zero V
	if m.slots == nil {
		return zero, false
	}
	s := &m.slots[k.Index()]
	if !s.ok {
		return zero, false
	}
	v := s.val
	s.val, s.ok = zero, false
	m.count--
	return v, true
}

// Get returns a pointer to k's value, or nil when k is absent. The
// pointer stays valid until the slot is removed and may be written
// through to update the value in place.
func (m *Map[K, V]) Get(k K) *V {
	if m.slots == nil {
		return nil
	}
	s := &m.slots[k.Index()]
	if !s.ok {
		return nil
	}
	return &s.val
}

// At returns the value for k.
// Unlike Get, absence is a caller error: At panics when k is not present.
func (m *Map[K, V]) At(k K) V {
	p := m.Get(k)
	if p == nil {
		panic("enummap: no entry found for key")
	}
	return *p
}

// Contains reports whether k has an associated value.
func (m *Map[K, V]) Contains(k K) bool {
	return m.Get(k) != nil
}

// Retain removes the pairs for which keep returns false. Occupied slots
// are visited in ascending key index order; keep may update the value
// through its pointer.
func (m *Map[K, V]) Retain(keep func(K, *V) bool) {
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
		if s.ok && !keep(k, &s.val) {
			var zero V
			s.val, s.ok = zero, false
			m.count--
		}
	}
}

// Clear removes every pair. The backing array is kept.
func (m *Map[K, V]) Clear() {
	var zero slot[V]
	for i := range m.slots {
		m.slots[i] = zero
	}
	m.count = 0
}
