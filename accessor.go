package settingskey

// Get reads k from s.
func Get[V any](s Store, k Key[V]) V {
	return k.Get(s)
}

// Set writes v to s through k.
func Set[V any](s Store, k Key[V], v V) {
	k.Set(s, v)
}

// Read reads k from s, returning any decoding failure.
func Read[V any](s Store, k FallibleKey[V]) (V, error) {
	return k.Get(s)
}

// Write writes v to s through k, returning any encoding failure.
func Write[V any](s Store, k FallibleKey[V], v V) error {
	return k.Set(s, v)
}

// Result is the outcome of reading a FallibleKey, for callers that branch on it
// instead of returning early.
type Result[V any] struct {
	Value V
	Err   error
}

// Get unpacks the result.
func (r Result[V]) Get() (V, error) {
	return r.Value, r.Err
}

// OK reports whether the read succeeded.
func (r Result[V]) OK() bool {
	return r.Err == nil
}

// ResultOf reads k from s without unwrapping the outcome.
func ResultOf[V any](s Store, k FallibleKey[V]) Result[V] {
	v, err := k.Get(s)
	return Result[V]{Value: v, Err: err}
}

// GetOrInit reads k from s. When nothing is stored it writes initial and
// returns it, so later calls return the first value written whatever initial
// they pass. Unlike Defaulting this performs a real write, which suits values
// such as the time something was first seen.
//
// The read and the write are separate store operations: two goroutines racing
// on an empty key may both write.
func GetOrInit[V any](s Store, k Key[*V], initial V) V {
	if v := k.Get(s); v != nil {
		return *v
	}
	k.Set(s, &initial)
	return initial
}
