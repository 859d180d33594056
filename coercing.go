package settingskey

import "net/url"

// CoercingBool returns a key that reads any stored value as a boolean using the
// store's coercion rules. Missing or uncoercible values read as false.
func CoercingBool(name KeyName) Key[bool] {
	n := name.Name()
	return newKey(
		func(s Store) bool { return s.Bool(n) },
		func(s Store, v bool) { s.SetBool(n, v) },
	)
}

// CoercingInteger returns a key that reads any stored value as an integer.
// Missing or uncoercible values read as 0.
func CoercingInteger(name KeyName) Key[int] {
	n := name.Name()
	return newKey(
		func(s Store) int { return s.Integer(n) },
		func(s Store, v int) { s.SetInteger(n, v) },
	)
}

// CoercingFloat returns a key that reads any stored value as a single precision float.
// Missing or uncoercible values read as 0.
func CoercingFloat(name KeyName) Key[float32] {
	n := name.Name()
	return newKey(
		func(s Store) float32 { return s.Float(n) },
		func(s Store, v float32) { s.SetFloat(n, v) },
	)
}

// CoercingDouble returns a key that reads any stored value as a double precision float.
// Missing or uncoercible values read as 0.
func CoercingDouble(name KeyName) Key[float64] {
	n := name.Name()
	return newKey(
		func(s Store) float64 { return s.Double(n) },
		func(s Store, v float64) { s.SetDouble(n, v) },
	)
}

// CoercingString returns a key that reads strings and numbers as a string.
// Writing nil removes the name.
func CoercingString(name KeyName) Key[*string] {
	n := name.Name()
	return newKey(
		func(s Store) *string { return s.String(n) },
		func(s Store, v *string) { s.SetString(n, v) },
	)
}

// CoercingURL returns a key that reads stored URLs, and strings as either an
// absolute URL or a file URL for a path. Writing nil removes the name.
func CoercingURL(name KeyName) Key[*url.URL] {
	n := name.Name()
	return newKey(
		func(s Store) *url.URL { return s.URL(n) },
		func(s Store, v *url.URL) { s.SetURL(n, v) },
	)
}
