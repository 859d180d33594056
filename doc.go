// Package settingskey provides typed keys over an untyped settings store.
//
// # Overview
//
// A settings store maps names to loosely typed primitive values. settingskey
// lets callers declare each setting once as a Key that knows how to read and
// write it: which kind it holds, how other kinds coerce to it, what it reads as
// when missing, and how enumerations or structured values are stored.
//
// # Architecture
//
// The package consists of three layers:
//
// 1. Key[V] and FallibleKey[V]: a getter/setter pair bound to a KeyName
// 2. Store: the untyped store keys operate on, implemented by Defaults
// 3. Driver: raw byte storage behind Defaults (Memory, File)
//
// Names are stored in the driver as "suite:name", with separators in the
// suite escaped, so suites never collide.
//
// # Quick Start
//
//	var (
//	    launchCount = settingskey.Defaulting(settingskey.Integer("launchCount"), 0)
//	    firstSeen   = settingskey.Date("firstSeen")
//	)
//
//	defaults := settingskey.New("com.example.app")
//	settingskey.Set(defaults, launchCount, settingskey.Get(defaults, launchCount)+1)
//	seen := settingskey.GetOrInit(defaults, firstSeen, time.Now())
//
// # Key Kinds
//
// Native keys (Bool, Integer, Float, Double, Date, String, Data) read a value of
// exactly their kind and nil otherwise; writing nil removes the name.
//
// Coercing keys (CoercingBool, CoercingInteger, ...) convert whatever is stored:
// "10" reads as the integer 10, "YES" as true, true as the string "1".
//
// Combinators build on other keys: Defaulting replaces nil with a value,
// RawRepresentable stores enumerations through a raw key, and JSONCoded stores
// any JSON encodable type as a blob.
//
// # Error Handling
//
// Keys follow one of two tracks. Key operations never fail: missing, mistyped or
// unmapped values read as nil or the zero value. FallibleKey operations, such as
// those of JSONCoded keys, return errors:
//
//	cfg, err := settingskey.Read(defaults, layoutKey)
//	if errors.Is(err, settingskey.ErrDecode) {
//	    // Stored blob is not valid JSON for the type
//	}
//
// Available errors: ErrNotFound, ErrTypeMismatch, ErrInvalidPattern,
// ErrCorruptValue, ErrDecode, ErrEncode
//
// # Thread Safety
//
// Keys are immutable and may be shared freely. Defaults and the bundled drivers
// are thread-safe per name; nothing is atomic across names, and GetOrInit may
// write twice when callers race on an empty key.
package settingskey
