package word_test

import (
	"testing"

	"github.com/go-quicktest/qt"

	"github.com/jnbooth/enumeration/word"
)

func TestWidth(t *testing.T) {
	qt.Assert(t, qt.Equals(word.Width[uint8](), 8))
	qt.Assert(t, qt.Equals(word.Width[uint16](), 16))
	qt.Assert(t, qt.Equals(word.Width[uint32](), 32))
	qt.Assert(t, qt.Equals(word.Width[uint64](), 64))
}

func TestOnesCount(t *testing.T) {
	qt.Assert(t, qt.Equals(word.OnesCount(uint8(0)), 0))
	qt.Assert(t, qt.Equals(word.OnesCount(uint8(0b10110)), 3))
	qt.Assert(t, qt.Equals(word.OnesCount(^uint16(0)), 16))
	qt.Assert(t, qt.Equals(word.OnesCount(^uint64(0)), 64))
}

func TestIncr(t *testing.T) {
	qt.Assert(t, qt.Equals(word.Incr(uint8(0)), uint8(1)))
	qt.Assert(t, qt.Equals(word.Incr(uint8(0xff)), uint8(0)))
	qt.Assert(t, qt.Equals(word.Incr(uint32(41)), uint32(42)))
}

func TestMask(t *testing.T) {
	qt.Assert(t, qt.Equals(word.Mask[uint8](0), uint8(0)))
	qt.Assert(t, qt.Equals(word.Mask[uint8](3), uint8(0b111)))
	qt.Assert(t, qt.Equals(word.Mask[uint8](8), uint8(0xff)))
	qt.Assert(t, qt.Equals(word.Mask[uint16](10), uint16(0x3ff)))
	qt.Assert(t, qt.Equals(word.Mask[uint64](64), ^uint64(0)))
}

func TestMaskOutOfRange(t *testing.T) {
	mustPanic(t, func() { word.Mask[uint8](9) })
	mustPanic(t, func() { word.Mask[uint8](-1) })
}

func mustPanic(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("expected panic, got none")
		}
	}()
	f()
}
