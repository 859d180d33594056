package settingskey

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeValue_Layout(t *testing.T) {
	b, err := encodeValue(true)
	require.NoError(t, err)
	assert.Equal(t, []byte{kindBool, 1}, b)

	b, err = encodeValue(258)
	require.NoError(t, err)
	assert.Equal(t, []byte{kindInteger, 2, 1, 0, 0, 0, 0, 0, 0}, b)

	b, err = encodeValue("hi")
	require.NoError(t, err)
	assert.Equal(t, []byte{kindString, 'h', 'i'}, b)
}

func TestEncodeValue_Unsupported(t *testing.T) {
	for _, v := range []any{int32(1), uint(1), struct{}{}, (*url.URL)(nil), []int{1}} {
		_, err := encodeValue(v)
		assert.ErrorIs(t, err, ErrTypeMismatch, "%T", v)
	}
}

func TestDecodeValue_KeepsKinds(t *testing.T) {
	u, _ := url.Parse("https://example.com/x")
	when := time.Date(2020, 2, 29, 23, 59, 59, 999, time.FixedZone("X", 3600))

	for _, v := range []any{false, -1, float32(3.5), 3.5, "", []byte{}, when, u} {
		b, err := encodeValue(v)
		require.NoError(t, err)

		got, err := decodeValue(b)
		require.NoError(t, err)
		assert.IsType(t, v, got)
	}
}

func TestDecodeValue_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"empty", nil},
		{"unknown kind", []byte{0}},
		{"short bool", []byte{kindBool}},
		{"short integer", []byte{kindInteger, 1, 2}},
		{"long float", []byte{kindFloat, 1, 2, 3, 4, 5}},
		{"short double", []byte{kindDouble, 1}},
		{"bad date", []byte{kindDate, 9}},
		{"bad url", []byte{kindURL, ':', '/'}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := decodeValue(tt.data)
			assert.ErrorIs(t, err, ErrCorruptValue)
		})
	}
}
