package enum

type boundKind uint8

const (
	unbounded boundKind = iota
	inclusive
	exclusive
)

// A Bound selects one end of a range of enumerable values.
type Bound[E any] struct {
	at   E
	kind boundKind
}

// Incl bounds a range at v, including v itself.
func Incl[E any](v E) Bound[E] {
	return Bound[E]{at: v, kind: inclusive}
}

// Excl bounds a range at v, excluding v itself.
func Excl[E any](v E) Bound[E] {
	return Bound[E]{at: v, kind: exclusive}
}

// Unbounded leaves one end of a range open, extending it
// to Min or Max as appropriate.
func Unbounded[E any]() Bound[E] {
	return Bound[E]{}
}
