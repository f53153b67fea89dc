package enummap

import (
	"bytes"
	"encoding"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/jnbooth/enumeration/enum"
)

// MarshalJSON encodes the map as an object whose members appear in
// ascending key index order. Keys that marshal to JSON strings are used
// as-is; keys that marshal to numbers are quoted, the way encoding/json
// renders integer-keyed maps.
func (m *Map[K, V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	for k, v := range m.All() {
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		if len(kb) == 0 || kb[0] != '"' {
			kb = []byte(strconv.Quote(string(kb)))
		}
		vb, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.Write(kb)
		buf.WriteByte(':')
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes an object, inserting each pair in turn into a
// fresh empty map. A later duplicate of a key overwrites the earlier
// value.
func (m *Map[K, V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("enummap: cannot unmarshal %v into a map", tok)
	}
	out := New[K, V]()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("enummap: object key %v is not a string", tok)
		}
		var k K
		if err := unmarshalKey(name, &k); err != nil {
			return err
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return err
		}
		out.Insert(k, v)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*m = *out
	return nil
}

// unmarshalKey reverses the key encoding of MarshalJSON: text-capable
// keys decode from the bare name, others from its JSON form, quoted
// first and bare (numeric) second.
func unmarshalKey[K enum.Elem[K]](name string, k *K) error {
	if u, ok := any(k).(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText([]byte(name))
	}
	if err := json.Unmarshal([]byte(strconv.Quote(name)), k); err == nil {
		return nil
	}
	return json.Unmarshal([]byte(name), k)
}
