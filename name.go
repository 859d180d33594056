package settingskey

// KeyName identifies a value in a Store. Names are used verbatim: no
// normalization, case folding or validation is applied, and the empty name is
// accepted.
//
//	const launchCount settingskey.KeyName = "launchCount"
type KeyName string

// Name returns the store name.
func (n KeyName) Name() string { return string(n) }

// ID returns the identity of the name, which is the name itself.
func (n KeyName) ID() string { return string(n) }

func (n KeyName) String() string { return string(n) }
