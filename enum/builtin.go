package enum

import "github.com/jnbooth/enumeration/word"

// Bool is a two-valued enumerable type ordered false < true.
type Bool bool

func (Bool) Size() int { return 2 }

func (Bool) Min() Bool { return false }

func (Bool) Max() Bool { return true }

func (b Bool) Succ() (Bool, bool) {
	if b {
		return b, false
	}
	return true, true
}

func (b Bool) Pred() (Bool, bool) {
	if b {
		return false, true
	}
	return b, false
}

func (b Bool) Index() int {
	if b {
		return 1
	}
	return 0
}

func (b Bool) Bit() uint8 {
	return 1 << b.Index()
}

func (b Bool) String() string {
	if b {
		return "true"
	}
	return "false"
}

func assertBits[E Bits[E, W], W word.Word]() {}

var _ = assertBits[Bool, uint8]

// Ordering is a three-valued enumerable type describing the result of a
// comparison, ordered Less < Equal < Greater. Its values follow the
// convention of the cmp package, so Ordering(cmp.Compare(a, b)) is valid.
type Ordering int8

const (
	Less Ordering = iota - 1
	Equal
	Greater
)

func (Ordering) Size() int { return 3 }

func (Ordering) Min() Ordering { return Less }

func (Ordering) Max() Ordering { return Greater }

func (o Ordering) Succ() (Ordering, bool) {
	if o == Greater {
		return o, false
	}
	return o + 1, true
}

func (o Ordering) Pred() (Ordering, bool) {
	if o == Less {
		return o, false
	}
	return o - 1, true
}

func (o Ordering) Index() int {
	return int(o) + 1
}

func (o Ordering) Bit() uint8 {
	return 1 << o.Index()
}

func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	}
	return "Ordering(?)"
}

var _ = assertBits[Ordering, uint8]
