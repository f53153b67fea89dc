package enumset

import "encoding/json"

// MarshalJSON encodes the set as an array of its members in ascending
// index order.
func (s Set[E, W]) MarshalJSON() ([]byte, error) {
	elems := make([]E, 0, s.Len())
	for v := range s.All() {
		elems = append(elems, v)
	}
	return json.Marshal(elems)
}

// UnmarshalJSON decodes an array of values, inserting each in turn into
// a fresh empty set. The order of the decoded array does not affect the
// final contents; duplicates silently collapse.
func (s *Set[E, W]) UnmarshalJSON(data []byte) error {
	var elems []E
	if err := json.Unmarshal(data, &elems); err != nil {
		return err
	}
	var out Set[E, W]
	for _, v := range elems {
		out.Insert(v)
	}
	*s = out
	return nil
}
