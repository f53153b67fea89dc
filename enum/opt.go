package enum

import "github.com/jnbooth/enumeration/word"

// Opt extends an enumerable type E with one extra value, "absent", placed
// below E's Min. The result is itself enumerable, of size E's Size + 1:
// absent is the new Min with index 0, and every wrapped value keeps its
// order with index one higher than before. Bit masks shift up one
// position to make room, so X must have at least one more usable bit
// than E occupies in W; enumgen selects the next-wider word type when
// E's top value uses W's top bit. The zero value of Opt is absent.
type Opt[E Bits[E, W], W word.Word, X word.Word] struct {
	elem    E
	present bool
}

// OptOf returns the Opt holding e.
func OptOf[E Bits[E, W], W word.Word, X word.Word](e E) Opt[E, W, X] {
	return Opt[E, W, X]{elem: e, present: true}
}

// Get returns the wrapped value, reporting false when o is absent.
func (o Opt[E, W, X]) Get() (E, bool) {
	return o.elem, o.present
}

// Present reports whether o holds a value.
func (o Opt[E, W, X]) Present() bool {
	return o.present
}

func (Opt[E, W, X]) Size() int {
	var zero E
	return zero.Size() + 1
}

func (Opt[E, W, X]) Min() Opt[E, W, X] {
	return Opt[E, W, X]{}
}

func (Opt[E, W, X]) Max() Opt[E, W, X] {
	var zero E
	return Opt[E, W, X]{elem: zero.Max(), present: true}
}

func (o Opt[E, W, X]) Succ() (Opt[E, W, X], bool) {
	if !o.present {
		var zero E
		return Opt[E, W, X]{elem: zero.Min(), present: true}, true
	}
	s, ok := o.elem.Succ()
	if !ok {
		return o, false
	}
	return Opt[E, W, X]{elem: s, present: true}, true
}

func (o Opt[E, W, X]) Pred() (Opt[E, W, X], bool) {
	if !o.present {
		return o, false
	}
	p, ok := o.elem.Pred()
	if !ok {
		// The predecessor of the wrapped Min is absent.
		return Opt[E, W, X]{}, true
	}
	return Opt[E, W, X]{elem: p, present: true}, true
}

func (o Opt[E, W, X]) Index() int {
	if !o.present {
		return 0
	}
	return o.elem.Index() + 1
}

func (o Opt[E, W, X]) Bit() X {
	if !o.present {
		return 1
	}
	return X(o.elem.Bit()) << 1
}
