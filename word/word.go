// Package word provides generic bit-level operations on the fixed-width
// unsigned integer types that back an enumeration's bit representation.
package word

import "math/bits"

// Word is satisfied by the unsigned integer types that can hold
// a bit per enumerated value.
type Word interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Width returns the number of bits in W.
func Width[W Word]() int {
	return bits.Len64(uint64(^W(0)))
}

// OnesCount returns the number of set bits in w.
func OnesCount[W Word](w W) int {
	return bits.OnesCount64(uint64(w))
}

// Incr returns w's successor word.
func Incr[W Word](w W) W {
	return w + 1
}

// Mask returns a word with the low n bits set.
// It panics if n is negative or exceeds the width of W.
func Mask[W Word](n int) W {
	width := Width[W]()
	if n < 0 || n > width {
		panic("word: mask width out of range")
	}
	if n == 0 {
		return 0
	}
	return ^W(0) >> (width - n)
}
