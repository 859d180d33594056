package settingskey

import (
	"encoding/binary"
	"fmt"
	"math"
	"net/url"
	"time"
)

// Stored values are a kind byte followed by the payload.
const (
	kindBool byte = iota + 1
	kindInteger
	kindFloat
	kindDouble
	kindString
	kindDate
	kindData
	kindURL
)

// encodeValue encodes one of the kinds a Store holds. Dates are stored as UTC
// instants; their location is not kept.
func encodeValue(v any) ([]byte, error) {
	switch v := v.(type) {
	case bool:
		if v {
			return []byte{kindBool, 1}, nil
		}
		return []byte{kindBool, 0}, nil
	case int:
		buf := make([]byte, 9)
		buf[0] = kindInteger
		binary.LittleEndian.PutUint64(buf[1:], uint64(int64(v)))
		return buf, nil
	case float32:
		buf := make([]byte, 5)
		buf[0] = kindFloat
		binary.LittleEndian.PutUint32(buf[1:], math.Float32bits(v))
		return buf, nil
	case float64:
		buf := make([]byte, 9)
		buf[0] = kindDouble
		binary.LittleEndian.PutUint64(buf[1:], math.Float64bits(v))
		return buf, nil
	case string:
		return append([]byte{kindString}, v...), nil
	case time.Time:
		b, err := v.UTC().MarshalBinary()
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrTypeMismatch, err)
		}
		return append([]byte{kindDate}, b...), nil
	case []byte:
		return append([]byte{kindData}, v...), nil
	case *url.URL:
		if v == nil {
			return nil, fmt.Errorf("%w: nil URL", ErrTypeMismatch)
		}
		return append([]byte{kindURL}, v.String()...), nil
	}
	return nil, fmt.Errorf("%w: %T", ErrTypeMismatch, v)
}

func decodeValue(b []byte) (any, error) {
	if len(b) == 0 {
		return nil, fmt.Errorf("%w: empty", ErrCorruptValue)
	}

	kind, payload := b[0], b[1:]
	switch kind {
	case kindBool:
		if len(payload) != 1 {
			break
		}
		return payload[0] != 0, nil
	case kindInteger:
		if len(payload) != 8 {
			break
		}
		return int(int64(binary.LittleEndian.Uint64(payload))), nil
	case kindFloat:
		if len(payload) != 4 {
			break
		}
		return math.Float32frombits(binary.LittleEndian.Uint32(payload)), nil
	case kindDouble:
		if len(payload) != 8 {
			break
		}
		return math.Float64frombits(binary.LittleEndian.Uint64(payload)), nil
	case kindString:
		return string(payload), nil
	case kindDate:
		var t time.Time
		if err := t.UnmarshalBinary(payload); err != nil {
			return nil, fmt.Errorf("%w: date: %w", ErrCorruptValue, err)
		}
		return t, nil
	case kindData:
		data := make([]byte, len(payload))
		copy(data, payload)
		return data, nil
	case kindURL:
		u, err := url.Parse(string(payload))
		if err != nil {
			return nil, fmt.Errorf("%w: url: %w", ErrCorruptValue, err)
		}
		return u, nil
	default:
		return nil, fmt.Errorf("%w: unknown kind %d", ErrCorruptValue, kind)
	}
	return nil, fmt.Errorf("%w: kind %d with %d byte payload", ErrCorruptValue, kind, len(payload))
}
