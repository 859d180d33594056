package settingskey

import (
	"encoding/json"
	"fmt"
)

// Defaulting returns a key that reads def whenever k reads nil. Writes go to k
// unchanged, so the only way back to def is to write it.
func Defaulting[V any](k Key[*V], def V) Key[V] {
	return newKey(
		func(s Store) V {
			if v := k.Get(s); v != nil {
				return *v
			}
			return def
		},
		func(s Store, v V) { k.Set(s, &v) },
	)
}

// DefaultingFallible is Defaulting for keys that can fail. Failures from k are
// returned as is.
func DefaultingFallible[V any](k FallibleKey[*V], def V) FallibleKey[V] {
	return FallibleKey[V]{
		get: func(s Store) (V, error) {
			v, err := k.Get(s)
			if err != nil {
				var zero V
				return zero, err
			}
			if v == nil {
				return def, nil
			}
			return *v, nil
		},
		set: func(s Store, v V) error { return k.Set(s, &v) },
	}
}

// RawValuer is implemented by enumerations stored as a raw primitive value.
type RawValuer[R any] interface {
	RawValue() R
}

// RawRepresentable returns a key storing an enumeration through raw. fromRaw
// maps a raw value back to its case; raw values with no case read as nil.
//
//	type Theme string
//	func (t Theme) RawValue() string { return string(t) }
//
//	var themeKey = settingskey.RawRepresentable(settingskey.String("theme"), settingskey.Cases[string](Light, Dark))
func RawRepresentable[R any, E RawValuer[R]](raw Key[*R], fromRaw func(R) (E, bool)) Key[*E] {
	return newKey(
		func(s Store) *E {
			r := raw.Get(s)
			if r == nil {
				return nil
			}
			e, ok := fromRaw(*r)
			if !ok {
				return nil
			}
			return &e
		},
		func(s Store, v *E) {
			if v == nil {
				raw.Set(s, nil)
				return
			}
			r := (*v).RawValue()
			raw.Set(s, &r)
		},
	)
}

// Cases builds a fromRaw function for RawRepresentable out of every case of an
// enumeration. When two cases share a raw value the last one wins.
func Cases[R comparable, E RawValuer[R]](cases ...E) func(R) (E, bool) {
	lookup := make(map[R]E, len(cases))
	for _, c := range cases {
		lookup[c.RawValue()] = c
	}
	return func(r R) (E, bool) {
		e, ok := lookup[r]
		return e, ok
	}
}

// JSONCoded returns a key storing V as a JSON encoded blob.
//
// A missing blob reads as nil. A blob that does not decode is an error wrapping
// ErrDecode rather than nil, so structured state is never dropped silently.
// Writing nil removes the blob; a value that does not encode is an error
// wrapping ErrEncode and leaves the store untouched.
func JSONCoded[V any](name KeyName) FallibleKey[*V] {
	n := name.Name()
	return FallibleKey[*V]{
		get: func(s Store) (*V, error) {
			data := s.Data(n)
			if data == nil {
				return nil, nil
			}
			v := new(V)
			if err := json.Unmarshal(data, v); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrDecode, n, err)
			}
			return v, nil
		},
		set: func(s Store, v *V) error {
			if v == nil {
				s.Remove(n)
				return nil
			}
			data, err := json.Marshal(v)
			if err != nil {
				return fmt.Errorf("%w: %s: %w", ErrEncode, n, err)
			}
			s.SetData(n, data)
			return nil
		},
	}
}
