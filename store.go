package settingskey

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
)

var (
	ErrNotFound       = errors.New("settingskey: not found")
	ErrTypeMismatch   = errors.New("settingskey: type mismatch")
	ErrInvalidPattern = errors.New("settingskey: invalid pattern")
	ErrCorruptValue   = errors.New("settingskey: corrupt value")
	ErrDecode         = errors.New("settingskey: decode failed")
	ErrEncode         = errors.New("settingskey: encode failed")
)

// Store is an untyped settings store mapping names to primitive values.
// Implementations must be thread-safe.
type Store interface {
	// Object returns the value stored under name, or nil when there is none.
	Object(name string) any
	// SetObject stores value under name; nil removes the name. Storing a kind
	// the store cannot hold is a programming error and panics.
	SetObject(name string, value any)
	Remove(name string)

	// Coercing accessors. Missing or uncoercible values read as the zero value.
	Bool(name string) bool
	Integer(name string) int
	Float(name string) float32
	Double(name string) float64
	String(name string) *string
	URL(name string) *url.URL
	Data(name string) []byte

	SetBool(name string, value bool)
	SetInteger(name string, value int)
	SetFloat(name string, value float32)
	SetDouble(name string, value float64)
	SetString(name string, value *string)
	SetURL(name string, value *url.URL)
	SetData(name string, value []byte)
}

// Driver describes the raw storage behind Defaults.
// Implementations must be thread-safe.
type Driver interface {
	// Get returns ErrNotFound when key is absent.
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error

	// Keys returns the keys under prefix whose remainder matches pattern.
	Keys(prefix, pattern string) ([]string, error)
	Clear(prefix string) error
}

// Option customizes Defaults behavior.
type Option func(*Defaults)

// WithDriver specifies the storage driver.
// If not provided, NewMemory() will be used.
func WithDriver(d Driver) Option {
	return func(s *Defaults) {
		if d != nil {
			s.driver = d
		}
	}
}

// WithLogger specifies a logger for driver failures.
// If not provided, a no-op logger is used (no logging).
func WithLogger(logger Logger) Option {
	return func(s *Defaults) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithZap logs through a zap logger.
func WithZap(logger *zap.Logger) Option {
	return func(s *Defaults) {
		if logger != nil {
			s.logger = logger.Sugar()
		}
	}
}

// WithLogTag sets a tag prefix for all log messages.
// Useful for telling suites apart when they share a logger.
func WithLogTag(tag string) Option {
	return func(s *Defaults) {
		s.logTag = tag
	}
}

// Defaults is a Store scoped to a suite. Names are stored in the driver as
// "suite:name" with ':' and '%' escaped in the suite, so suites sharing a
// driver never see each other's values even when one suite name extends
// another.
//
// Driver failures never reach callers: they are logged and the read yields
// absence or the write is dropped.
type Defaults struct {
	suite  string
	ns     string // escaped suite, the driver prefix
	prefix string
	driver Driver
	logger Logger
	logTag string

	mu         sync.RWMutex
	registered map[string]any
}

var _ Store = (*Defaults)(nil)

// New creates a suite-scoped Defaults.
// If no driver is provided via WithDriver, NewMemory() is used.
// If no logger is provided via WithLogger, a no-op logger is used (no logging).
func New(suite string, opts ...Option) *Defaults {
	s := &Defaults{
		suite:      suite,
		ns:         escapeSuite(suite),
		prefix:     escapeSuite(suite) + ":",
		driver:     NewMemory(), // Default to in-memory
		logger:     defaultLogger,
		registered: make(map[string]any),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Suite returns the suite name.
func (s *Defaults) Suite() string {
	return s.suite
}

func (s *Defaults) key(name string) string {
	return s.prefix + name
}

var suiteEscaper = strings.NewReplacer("%", "%25", ":", "%3A")

// escapeSuite keeps the suite/name separator unambiguous in driver keys.
func escapeSuite(suite string) string {
	return suiteEscaper.Replace(suite)
}

func (s *Defaults) logf(level string, format string, args ...interface{}) {
	if s.logTag != "" {
		format = s.logTag + " " + format
	}
	switch level {
	case "info":
		s.logger.Infof(format, args...)
	case "warn":
		s.logger.Warnf(format, args...)
	case "error":
		s.logger.Errorf(format, args...)
	case "debug":
		s.logger.Debugf(format, args...)
	}
}

func (s *Defaults) Object(name string) any {
	data, err := s.driver.Get(s.key(name))
	if err != nil {
		if !errors.Is(err, ErrNotFound) {
			s.logf("error", "Get %s failed: %v", name, err)
		}
		return s.registeredValue(name)
	}

	v, err := decodeValue(data)
	if err != nil {
		s.logf("warn", "Get %s: %v", name, err)
		return s.registeredValue(name)
	}
	return v
}

func (s *Defaults) SetObject(name string, value any) {
	if value == nil {
		s.Remove(name)
		return
	}
	if u, ok := value.(*url.URL); ok && u == nil {
		s.Remove(name)
		return
	}

	data, err := encodeValue(value)
	if err != nil {
		panic(fmt.Sprintf("settingskey: cannot store %T under %q: %v", value, name, err))
	}
	if err := s.driver.Set(s.key(name), data); err != nil {
		s.logf("error", "Set %s failed: %v", name, err)
	}
}

func (s *Defaults) Remove(name string) {
	if err := s.driver.Delete(s.key(name)); err != nil {
		s.logf("error", "Delete %s failed: %v", name, err)
	}
}

func (s *Defaults) Bool(name string) bool {
	return coerceBool(s.Object(name))
}

func (s *Defaults) Integer(name string) int {
	return coerceInteger(s.Object(name))
}

func (s *Defaults) Float(name string) float32 {
	return coerceFloat(s.Object(name))
}

func (s *Defaults) Double(name string) float64 {
	return coerceDouble(s.Object(name))
}

func (s *Defaults) String(name string) *string {
	return coerceString(s.Object(name))
}

func (s *Defaults) URL(name string) *url.URL {
	return coerceURL(s.Object(name))
}

// Data returns the blob stored under name, or nil when the name is missing or
// holds another kind.
func (s *Defaults) Data(name string) []byte {
	b, _ := s.Object(name).([]byte)
	return b
}

func (s *Defaults) SetBool(name string, v bool) {
	s.SetObject(name, v)
}

func (s *Defaults) SetInteger(name string, v int) {
	s.SetObject(name, v)
}

func (s *Defaults) SetFloat(name string, v float32) {
	s.SetObject(name, v)
}

func (s *Defaults) SetDouble(name string, v float64) {
	s.SetObject(name, v)
}

func (s *Defaults) SetString(name string, v *string) {
	if v == nil {
		s.Remove(name)
		return
	}
	s.SetObject(name, *v)
}

func (s *Defaults) SetURL(name string, v *url.URL) {
	if v == nil {
		s.Remove(name)
		return
	}
	s.SetObject(name, v)
}

func (s *Defaults) SetData(name string, v []byte) {
	if v == nil {
		s.Remove(name)
		return
	}
	s.SetObject(name, v)
}

// Date returns the date stored under name, or nil.
func (s *Defaults) Date(name string) *time.Time {
	t, ok := s.Object(name).(time.Time)
	if !ok {
		return nil
	}
	return &t
}

func (s *Defaults) SetDate(name string, v *time.Time) {
	if v == nil {
		s.Remove(name)
		return
	}
	s.SetObject(name, *v)
}

// Names returns the sorted names stored in this suite matching pattern.
// An empty pattern or "*" matches every name.
func (s *Defaults) Names(pattern string) ([]string, error) {
	keys, err := s.driver.Keys(s.ns, pattern)
	if err != nil {
		s.logf("error", "Keys pattern=%s failed: %v", pattern, err)
		return nil, err
	}

	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, k[len(s.prefix):])
	}
	sort.Strings(names)
	return names, nil
}

// RemoveSuite removes every name stored in this suite. Registered defaults are
// kept.
func (s *Defaults) RemoveSuite() error {
	err := s.driver.Clear(s.ns)
	if err != nil {
		s.logf("error", "Clear failed: %v", err)
	}
	return err
}
