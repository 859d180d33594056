package settingskey

import "time"

// plistValue lists the kinds a Store holds natively. Native keys are limited to
// these so a key can never ask the store to hold something it cannot.
type plistValue interface {
	bool | int | float32 | float64 | string | time.Time | []byte
}

// Bool returns an optional key for a stored boolean.
func Bool(name KeyName) Key[*bool] { return plistKey[bool](name) }

// Integer returns an optional key for a stored integer.
func Integer(name KeyName) Key[*int] { return plistKey[int](name) }

// Float returns an optional key for a stored single precision float.
func Float(name KeyName) Key[*float32] { return plistKey[float32](name) }

// Double returns an optional key for a stored double precision float.
func Double(name KeyName) Key[*float64] { return plistKey[float64](name) }

// Date returns an optional key for a stored point in time.
func Date(name KeyName) Key[*time.Time] { return plistKey[time.Time](name) }

// String returns an optional key for a stored string.
func String(name KeyName) Key[*string] { return plistKey[string](name) }

// Data returns an optional key for a stored binary blob.
func Data(name KeyName) Key[*[]byte] { return plistKey[[]byte](name) }

// plistKey reads the value stored under name when it has kind T. A value of any
// other kind reads as nil, the same as a missing one.
//
// TODO(settingskey): add a probe that reports kind mismatches separately from
// missing values for callers that need to diagnose bad data.
func plistKey[T plistValue](name KeyName) Key[*T] {
	n := name.Name()
	return newKey(
		func(s Store) *T {
			v, ok := s.Object(n).(T)
			if !ok {
				return nil
			}
			return &v
		},
		func(s Store, v *T) {
			if v == nil {
				s.Remove(n)
				return
			}
			s.SetObject(n, *v)
		},
	)
}
