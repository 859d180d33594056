package settingskey

import (
	"fmt"
	"io"
	"net/url"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Register adds fallback values for names with nothing stored. Registered
// values are never written to the driver and survive RemoveSuite. Registering a
// name again replaces its value.
//
// Values must be one of the stored kinds; int64 is accepted as int. Nothing is
// registered if any value is rejected.
func (s *Defaults) Register(values map[string]any) error {
	accepted := make(map[string]any, len(values))
	for name, v := range values {
		rv, err := registrable(v)
		if err != nil {
			return fmt.Errorf("register %q: %w", name, err)
		}
		accepted[name] = rv
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for name, v := range accepted {
		s.registered[name] = v
	}
	return nil
}

// RegisterTOML registers the values of a TOML document. Tables are flattened
// into dotted names, so
//
//	[ui]
//	theme = "dark"
//
// registers "ui.theme". Offset date-times become dates; arrays and local dates
// or times are rejected with ErrTypeMismatch.
func (s *Defaults) RegisterTOML(r io.Reader) error {
	var doc map[string]any
	if err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return fmt.Errorf("settingskey: parsing registered defaults: %w", err)
	}

	values := make(map[string]any)
	flatten(values, "", doc)
	return s.Register(values)
}

func flatten(dst map[string]any, prefix string, src map[string]any) {
	for k, v := range src {
		name := k
		if prefix != "" {
			name = prefix + "." + k
		}
		if table, ok := v.(map[string]any); ok {
			flatten(dst, name, table)
			continue
		}
		dst[name] = v
	}
}

func (s *Defaults) registeredValue(name string) any {
	s.mu.RLock()
	v, ok := s.registered[name]
	s.mu.RUnlock()
	if !ok {
		return nil
	}
	return copyValue(v)
}

func registrable(v any) (any, error) {
	switch v := v.(type) {
	case bool, int, float32, float64, string:
		return v, nil
	case int64:
		return int(v), nil
	case time.Time:
		return v.UTC(), nil
	case []byte:
		return copyValue(v), nil
	case *url.URL:
		if v != nil {
			return copyValue(v), nil
		}
	}
	return nil, fmt.Errorf("%w: %T", ErrTypeMismatch, v)
}

// copyValue keeps callers from mutating registered values through a read.
func copyValue(v any) any {
	switch v := v.(type) {
	case []byte:
		out := make([]byte, len(v))
		copy(out, v)
		return out
	case *url.URL:
		u := *v
		return &u
	}
	return v
}
