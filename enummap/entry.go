package enummap

import "github.com/jnbooth/enumeration/enum"

// An Entry is a cursor over a single slot of a map, either occupied or
// vacant, permitting insert-or-update in place without a second lookup.
// It holds the key, a pointer into the slot, and a pointer to the map's
// count, so it must not outlive the map, and the map must not be
// otherwise mutated while the entry is in use.
type Entry[K enum.Elem[K], V any] struct {
	key   K
	slot  *slot[V]
	count *int
}

// Entry returns a cursor over k's slot. The backing array is allocated
// if it has not been yet, so that the cursor has a slot to point at.
func (m *Map[K, V]) Entry(k K) Entry[K, V] {
	m.alloc()
	return Entry[K, V]{key: k, slot: &m.slots[k.Index()], count: &m.count}
}

// Key returns the key this entry addresses.
func (e Entry[K, V]) Key() K {
	return e.key
}

// Occupied reports whether the slot currently holds a value.
func (e Entry[K, V]) Occupied() bool {
	return e.slot.ok
}

// Get returns a pointer to the slot's value, or nil when vacant.
func (e Entry[K, V]) Get() *V {
	if !e.slot.ok {
		return nil
	}
	return &e.slot.val
}

// Insert stores v in the slot, returning the value it replaced, if any.
// Filling a vacant slot increments the map's count.
func (e Entry[K, V]) Insert(v V) (prev V, replaced bool) {
	prev, replaced = e.slot.val, e.slot.ok
	e.slot.val, e.slot.ok = v, true
	if !replaced {
		(*e.count)++
	}
	return prev, replaced
}

// Remove empties the slot, returning the removed value, if any.
// Emptying an occupied slot decrements the map's count.
func (e Entry[K, V]) Remove() (V, bool) {
	var zero V
	if !e.slot.ok {
		return zero, false
	}
	v := e.slot.val
	e.slot.val, e.slot.ok = zero, false
	(*e.count)--
	return v, true
}

// OrInsert stores def when the slot is vacant, then returns a pointer to
// the slot's value.
func (e Entry[K, V]) OrInsert(def V) *V {
	if !e.slot.ok {
		e.Insert(def)
	}
	return &e.slot.val
}

// OrInsertWith stores f's result when the slot is vacant, then returns a
// pointer to the slot's value. f is not called for an occupied slot.
func (e Entry[K, V]) OrInsertWith(f func() V) *V {
	if !e.slot.ok {
		e.Insert(f())
	}
	return &e.slot.val
}

// OrInsertWithKey is OrInsertWith with the key passed to f.
func (e Entry[K, V]) OrInsertWithKey(f func(K) V) *V {
	if !e.slot.ok {
		e.Insert(f(e.key))
	}
	return &e.slot.val
}

// AndModify calls f on the value when the slot is occupied, then returns
// the entry for further chaining.
func (e Entry[K, V]) AndModify(f func(*V)) Entry[K, V] {
	if e.slot.ok {
		f(&e.slot.val)
	}
	return e
}
