package enumset_test

import (
	"slices"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/jnbooth/enumeration/enumset"
	"github.com/jnbooth/enumeration/enumtest"
)

func of(vals ...enumtest.Demo) enumtest.DemoSet {
	return enumset.Of[enumtest.Demo, uint16](vals...)
}

func TestZeroValueIsEmpty(t *testing.T) {
	var s enumtest.DemoSet
	qt.Assert(t, qt.IsTrue(s.IsEmpty()))
	qt.Assert(t, qt.Equals(s.Len(), 0))
	qt.Assert(t, qt.Equals(s.Capacity(), 10))
	qt.Assert(t, qt.IsFalse(s.Contains(enumtest.A)))
}

func TestInsertRemove(t *testing.T) {
	var s enumtest.DemoSet
	s.Insert(enumtest.C)
	s.Insert(enumtest.A)
	s.Insert(enumtest.C) // duplicates collapse
	qt.Assert(t, qt.Equals(s.Len(), 2))
	qt.Assert(t, qt.IsTrue(s.Contains(enumtest.A)))
	qt.Assert(t, qt.IsTrue(s.Contains(enumtest.C)))
	qt.Assert(t, qt.IsFalse(s.Contains(enumtest.B)))

	s.Remove(enumtest.A)
	s.Remove(enumtest.B) // removing an absent value is a no-op
	qt.Assert(t, qt.Equals(s.Len(), 1))
	qt.Assert(t, qt.IsFalse(s.Contains(enumtest.A)))

	s.Clear()
	qt.Assert(t, qt.IsTrue(s.IsEmpty()))
}

func TestSetsAreValues(t *testing.T) {
	a := of(enumtest.A, enumtest.B)
	b := a
	b.Insert(enumtest.C)
	qt.Assert(t, qt.Equals(a.Len(), 2))
	qt.Assert(t, qt.Equals(b.Len(), 3))
	qt.Assert(t, qt.Equals(a, of(enumtest.A, enumtest.B)))
}

func TestInverse(t *testing.T) {
	set := of(enumtest.A, enumtest.C, enumtest.H, enumtest.I, enumtest.J)
	inverse := of(enumtest.B, enumtest.D, enumtest.E, enumtest.F, enumtest.G)
	qt.Assert(t, qt.Equals(set.Inverse(), inverse))
	qt.Assert(t, qt.Equals(inverse.Inverse(), set))

	// No bits at or above Capacity, even when complementing the
	// empty set.
	var empty enumtest.DemoSet
	qt.Assert(t, qt.Equals(empty.Inverse().Raw(), uint16(0x3ff)))
	qt.Assert(t, qt.Equals(empty.Inverse().Len(), 10))
}

func TestAlgebra(t *testing.T) {
	a := of(enumtest.A, enumtest.B, enumtest.C)
	b := of(enumtest.B, enumtest.C, enumtest.D)

	qt.Assert(t, qt.Equals(a.Union(b), of(enumtest.A, enumtest.B, enumtest.C, enumtest.D)))
	qt.Assert(t, qt.Equals(a.Intersection(b), of(enumtest.B, enumtest.C)))
	qt.Assert(t, qt.Equals(a.Difference(b), of(enumtest.A)))
	qt.Assert(t, qt.Equals(b.Difference(a), of(enumtest.D)))
	qt.Assert(t, qt.Equals(a.SymmetricDifference(b), of(enumtest.A, enumtest.D)))
}

func TestComparisons(t *testing.T) {
	a := of(enumtest.A, enumtest.B)
	b := of(enumtest.A, enumtest.B, enumtest.C)
	c := of(enumtest.H, enumtest.I)

	qt.Assert(t, qt.IsTrue(a.IsSubset(b)))
	qt.Assert(t, qt.IsFalse(b.IsSubset(a)))
	qt.Assert(t, qt.IsTrue(b.IsSuperset(a)))
	qt.Assert(t, qt.IsTrue(a.IsSubset(a)))
	qt.Assert(t, qt.IsTrue(a.IsDisjoint(c)))
	qt.Assert(t, qt.IsFalse(a.IsDisjoint(b)))
}

func TestRetain(t *testing.T) {
	s := of(enumtest.A, enumtest.B, enumtest.C, enumtest.D)
	var visited []enumtest.Demo
	s.Retain(func(v enumtest.Demo) bool {
		visited = append(visited, v)
		return v == enumtest.B || v == enumtest.D
	})
	qt.Assert(t, qt.Equals(s, of(enumtest.B, enumtest.D)))
	// Only present elements are visited, in ascending order.
	qt.Assert(t, qt.DeepEquals(visited, []enumtest.Demo{enumtest.A, enumtest.B, enumtest.C, enumtest.D}))
}

func TestFromRaw(t *testing.T) {
	s := enumset.FromRaw[enumtest.Demo, uint16](0b101)
	qt.Assert(t, qt.Equals(s, of(enumtest.A, enumtest.C)))
	qt.Assert(t, qt.Equals(s.Raw(), uint16(0b101)))
}

func TestCollect(t *testing.T) {
	s := enumset.Collect[enumtest.Demo, uint16](slices.Values([]enumtest.Demo{enumtest.E, enumtest.A, enumtest.E}))
	qt.Assert(t, qt.Equals(s, of(enumtest.A, enumtest.E)))
}

func TestAllAscending(t *testing.T) {
	s := of(enumtest.H, enumtest.A, enumtest.E)
	qt.Assert(t, qt.DeepEquals(
		slices.Collect(s.All()),
		[]enumtest.Demo{enumtest.A, enumtest.E, enumtest.H},
	))
	qt.Assert(t, qt.DeepEquals(
		slices.Collect(s.Backward()),
		[]enumtest.Demo{enumtest.H, enumtest.E, enumtest.A},
	))
}

func TestIter(t *testing.T) {
	s := of(enumtest.B, enumtest.E, enumtest.I)
	it := s.Iter()
	qt.Assert(t, qt.Equals(it.Len(), 3))

	v, ok := it.Next()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, enumtest.B))
	qt.Assert(t, qt.Equals(it.Len(), 2))

	v, ok = it.NextBack()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, enumtest.I))
	qt.Assert(t, qt.Equals(it.Len(), 1))

	v, ok = it.Next()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, enumtest.E))

	_, ok = it.Next()
	qt.Assert(t, qt.IsFalse(ok))
	_, ok = it.NextBack()
	qt.Assert(t, qt.IsFalse(ok))
	qt.Assert(t, qt.Equals(it.Len(), 0))
}

func TestIterLenIsUpperBound(t *testing.T) {
	// With every member at the low end, the range length becomes the
	// tighter bound as the back end is consumed first.
	s := of(enumtest.A, enumtest.B)
	it := s.Iter()
	v, ok := it.NextBack()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, enumtest.B))
	qt.Assert(t, qt.Equals(it.Len(), 1))
}

func TestString(t *testing.T) {
	qt.Assert(t, qt.Equals(of(enumtest.A, enumtest.C).String(), "[A C]"))
	var empty enumtest.DemoSet
	qt.Assert(t, qt.Equals(empty.String(), "[]"))
}

func TestBitwiseLaws(t *testing.T) {
	// A few identities over every pair drawn from a sample of sets.
	samples := []enumtest.DemoSet{
		{},
		of(enumtest.A),
		of(enumtest.A, enumtest.C, enumtest.H, enumtest.I, enumtest.J),
		of(enumtest.B, enumtest.D, enumtest.E, enumtest.F, enumtest.G),
		enumset.FromRaw[enumtest.Demo, uint16](0x3ff),
	}
	for _, a := range samples {
		for _, b := range samples {
			qt.Assert(t, qt.Equals(a.Union(b), b.Union(a)))
			qt.Assert(t, qt.Equals(a.Intersection(b), b.Intersection(a)))
			qt.Assert(t, qt.Equals(a.Difference(b), a.Intersection(b.Inverse())))
			qt.Assert(t, qt.Equals(
				a.SymmetricDifference(b),
				a.Difference(b).Union(b.Difference(a)),
			))
			qt.Assert(t, qt.Equals(a.Union(b).Len(), a.Len()+b.Len()-a.Intersection(b).Len()))
		}
	}
}
