package settingskey

import (
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// The coerce functions turn whatever is stored under a name into the kind a
// caller asked for. They never fail: anything they cannot convert reads as the
// zero value.

func coerceBool(v any) bool {
	switch v := v.(type) {
	case bool:
		return v
	case int:
		return v != 0
	case float32:
		return v != 0
	case float64:
		return v != 0
	case string:
		return strings.EqualFold(v, "yes") || strings.EqualFold(v, "true")
	}
	return false
}

// coerceInteger truncates floats but parses strings strictly, so "10.75" reads
// as 0 while a stored 10.75 reads as 10.
func coerceInteger(v any) int {
	switch v := v.(type) {
	case bool:
		if v {
			return 1
		}
		return 0
	case int:
		return v
	case float32:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

func coerceFloat(v any) float32 {
	switch v := v.(type) {
	case float32:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 32)
		if err != nil {
			return 0
		}
		return float32(f)
	}
	return float32(coerceDouble(v))
}

func coerceDouble(v any) float64 {
	switch v := v.(type) {
	case bool:
		if v {
			return 1
		}
		return 0
	case int:
		return float64(v)
	case float32:
		return float64(v)
	case float64:
		return v
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	}
	return 0
}

func coerceString(v any) *string {
	var s string
	switch v := v.(type) {
	case string:
		s = v
	case bool:
		s = "0"
		if v {
			s = "1"
		}
	case int:
		s = strconv.Itoa(v)
	case float32:
		s = strconv.FormatFloat(float64(v), 'f', -1, 32)
	case float64:
		s = strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return nil
	}
	return &s
}

func coerceURL(v any) *url.URL {
	switch v := v.(type) {
	case *url.URL:
		return v
	case string:
		return urlFromString(v)
	}
	return nil
}

// urlFromString reads s as an absolute URL, falling back to a file URL for s
// as a path.
func urlFromString(s string) *url.URL {
	if s == "" {
		return nil
	}
	if u, err := url.Parse(s); err == nil && u.IsAbs() {
		return u
	}
	return fileURL(s)
}

func fileURL(path string) *url.URL {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	return &url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
}
