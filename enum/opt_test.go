package enum_test

import (
	"slices"
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/jnbooth/enumeration/enum"
	"github.com/jnbooth/enumeration/enumtest"
)

func TestOptAddsOneSlot(t *testing.T) {
	var absent enumtest.OptDemo
	qt.Assert(t, qt.Equals(absent.Size(), 11))
	qt.Assert(t, qt.Equals(absent.Min(), absent))
	qt.Assert(t, qt.Equals(absent.Max(), enumtest.SomeDemo(enumtest.J)))
	qt.Assert(t, qt.IsFalse(absent.Present()))
}

func TestOptOrdering(t *testing.T) {
	// Absent is the new Min; every wrapped value shifts up one index.
	var absent enumtest.OptDemo
	qt.Assert(t, qt.Equals(absent.Index(), 0))
	qt.Assert(t, qt.Equals(enumtest.SomeDemo(enumtest.A).Index(), 1))
	qt.Assert(t, qt.Equals(enumtest.SomeDemo(enumtest.J).Index(), 10))

	var got []int
	for v := range enum.All[enumtest.OptDemo]().All() {
		got = append(got, v.Index())
	}
	qt.Assert(t, qt.DeepEquals(got, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}))
}

func TestOptSuccPred(t *testing.T) {
	var absent enumtest.OptDemo

	s, ok := absent.Succ()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(s, enumtest.SomeDemo(enumtest.A)))

	_, ok = absent.Pred()
	qt.Assert(t, qt.IsFalse(ok))

	p, ok := enumtest.SomeDemo(enumtest.A).Pred()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(p, absent))

	_, ok = enumtest.SomeDemo(enumtest.J).Succ()
	qt.Assert(t, qt.IsFalse(ok))
}

func TestOptBits(t *testing.T) {
	// Absent takes over bit 0; wrapped bits shift one position up.
	var absent enumtest.OptDemo
	qt.Assert(t, qt.Equals(absent.Bit(), uint16(1)))
	qt.Assert(t, qt.Equals(enumtest.SomeDemo(enumtest.A).Bit(), uint16(2)))
	qt.Assert(t, qt.Equals(enumtest.SomeDemo(enumtest.J).Bit(), uint16(1)<<10))

	var seen uint16
	for v := range enum.All[enumtest.OptDemo]().All() {
		bit := v.Bit()
		qt.Assert(t, qt.Equals(seen&bit, uint16(0)))
		seen |= bit
	}
}

func TestOptGet(t *testing.T) {
	v, ok := enumtest.SomeDemo(enumtest.C).Get()
	qt.Assert(t, qt.IsTrue(ok))
	qt.Assert(t, qt.Equals(v, enumtest.C))

	var absent enumtest.OptDemo
	_, ok = absent.Get()
	qt.Assert(t, qt.IsFalse(ok))
}

func TestOptOfBool(t *testing.T) {
	// Wrapping Bool still fits in uint8: three values, three bits.
	type optBool = enum.Opt[enum.Bool, uint8, uint8]
	got := slices.Collect(enum.All[optBool]().All())
	qt.Assert(t, qt.HasLen(got, 3))
	qt.Assert(t, qt.Equals(got[0].Bit(), uint8(1)))
	qt.Assert(t, qt.Equals(got[1].Bit(), uint8(2)))
	qt.Assert(t, qt.Equals(got[2].Bit(), uint8(4)))
}
