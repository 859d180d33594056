package settingskey

// Key reads and writes a typed value through a Store. Operations on a Key never
// fail: missing or malformed data reads as absence or as the zero value.
//
// Keys hold no state of their own and are safe to copy and share between
// goroutines. The zero Key reads the zero value and ignores writes.
type Key[V any] struct {
	get func(Store) V
	set func(Store, V)
}

func newKey[V any](get func(Store) V, set func(Store, V)) Key[V] {
	return Key[V]{get: get, set: set}
}

// Get reads the value of the key from s.
func (k Key[V]) Get(s Store) V {
	if k.get == nil {
		var zero V
		return zero
	}
	return k.get(s)
}

// Set writes v to s.
func (k Key[V]) Set(s Store, v V) {
	if k.set != nil {
		k.set(s, v)
	}
}

// Fallible lifts k into a FallibleKey whose operations always succeed.
func (k Key[V]) Fallible() FallibleKey[V] {
	return FallibleKey[V]{
		get: func(s Store) (V, error) { return k.Get(s), nil },
		set: func(s Store, v V) error {
			k.Set(s, v)
			return nil
		},
	}
}

// FallibleKey reads and writes a typed value through a Store where decoding or
// encoding can fail. Failures are returned to the caller, never absorbed.
type FallibleKey[V any] struct {
	get func(Store) (V, error)
	set func(Store, V) error
}

// Get reads the value of the key from s.
func (k FallibleKey[V]) Get(s Store) (V, error) {
	if k.get == nil {
		var zero V
		return zero, nil
	}
	return k.get(s)
}

// Set writes v to s.
func (k FallibleKey[V]) Set(s Store, v V) error {
	if k.set == nil {
		return nil
	}
	return k.set(s, v)
}

// Ptr returns a pointer to v, for writing optional keys.
func Ptr[T any](v T) *T {
	return &v
}
