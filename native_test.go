package settingskey

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNativeKey_Bool(t *testing.T) {
	testKeyIndependence(t, Bool("key1"), true, Bool("key2"), false)
}

func TestNativeKey_Integer(t *testing.T) {
	testKeyIndependence(t, Integer("key1"), 10, Integer("key2"), 20)
}

func TestNativeKey_Float(t *testing.T) {
	testKeyIndependence(t, Float("key1"), float32(10), Float("key2"), float32(20))
}

func TestNativeKey_Double(t *testing.T) {
	testKeyIndependence(t, Double("key1"), 10.0, Double("key2"), 20.0)
}

func TestNativeKey_String(t *testing.T) {
	testKeyIndependence(t, String("key1"), "1", String("key2"), "2")
}

func TestNativeKey_Data(t *testing.T) {
	testKeyIndependence(t, Data("key1"), []byte{1, 2, 3}, Data("key2"), []byte{4, 5, 6})
}

func TestNativeKey_Date(t *testing.T) {
	date1 := time.Now().UTC().Round(0)
	date2 := date1.Add(10 * time.Second)
	testKeyIndependence(t, Date("key1"), date1, Date("key2"), date2)
}

func testKeyIndependence[V any](t *testing.T, key1 Key[*V], v1 V, key2 Key[*V], v2 V) {
	t.Helper()
	d := newTestDefaults(t)

	require.NotEqual(t, v1, v2, "test values must differ")

	// No initial data.
	assert.Nil(t, Get(d, key1))
	assert.Nil(t, Get(d, key2))

	// Assign 1 doesn't assign 2.
	Set(d, key1, &v1)
	assert.Equal(t, &v1, Get(d, key1))
	assert.Nil(t, Get(d, key2))

	// Assign 2 doesn't assign 1.
	Set(d, key2, &v2)
	assert.Equal(t, &v1, Get(d, key1))
	assert.Equal(t, &v2, Get(d, key2))

	// Clear 1 doesn't clear 2.
	Set(d, key1, nil)
	assert.Nil(t, Get(d, key1))
	assert.Equal(t, &v2, Get(d, key2))

	// Clear 2 leaves both clear.
	Set(d, key2, nil)
	assert.Nil(t, Get(d, key1))
	assert.Nil(t, Get(d, key2))
}

func TestNativeKey_Date_KeepsInstant(t *testing.T) {
	d := newTestDefaults(t)
	loc := time.FixedZone("UTC+5:30", 5*3600+1800)
	want := time.Date(2025, 3, 14, 15, 9, 26, 535897932, loc)

	Set(d, Date("when"), &want)

	got := Get(d, Date("when"))
	require.NotNil(t, got)
	assert.True(t, want.Equal(*got), "got %v, want %v", got, want)
}

func TestNativeKey_TypeMismatchReadsNil(t *testing.T) {
	d := newTestDefaults(t)

	Set(d, String("key"), Ptr("10"))

	assert.Nil(t, Get(d, Integer("key")))
	assert.Nil(t, Get(d, Bool("key")))
	assert.Nil(t, Get(d, Double("key")))
	assert.Nil(t, Get(d, Float("key")))
	assert.Nil(t, Get(d, Data("key")))
	assert.Nil(t, Get(d, Date("key")))
	assert.Equal(t, "10", *Get(d, String("key")))
}

func TestNativeKey_FloatAndDoubleAreDistinct(t *testing.T) {
	d := newTestDefaults(t)

	Set(d, Double("key"), Ptr(1.5))
	assert.Nil(t, Get(d, Float("key")))

	Set(d, Float("key"), Ptr(float32(1.5)))
	assert.Nil(t, Get(d, Double("key")))
	assert.Equal(t, float32(1.5), *Get(d, Float("key")))
}

func TestNativeKey_EmptyDataIsNotAbsent(t *testing.T) {
	d := newTestDefaults(t)

	Set(d, Data("key"), Ptr([]byte{}))

	got := Get(d, Data("key"))
	require.NotNil(t, got)
	assert.Empty(t, *got)
}

func TestNativeKey_URLIsNotAString(t *testing.T) {
	d := newTestDefaults(t)
	u, err := url.Parse("https://example.com/a")
	require.NoError(t, err)

	Set(d, CoercingURL("key"), u)

	assert.Nil(t, Get(d, String("key")))
	assert.Nil(t, Get(d, Data("key")))
}

func TestNativeKey_SameNameSameKey(t *testing.T) {
	d := newTestDefaults(t)
	const name KeyName = "shared"

	Set(d, Integer(name), Ptr(7))

	assert.Equal(t, 7, *Get(d, Integer(KeyName("shared"))))
}

func TestNativeKey_EmptyName(t *testing.T) {
	d := newTestDefaults(t)

	Set(d, String(""), Ptr("empty"))

	assert.Equal(t, "empty", *Get(d, String("")))
	assert.Nil(t, Get(d, String(" ")))
}

func TestKeyName(t *testing.T) {
	n := KeyName("Key")

	assert.Equal(t, "Key", n.Name())
	assert.Equal(t, "Key", n.ID())
	assert.Equal(t, "Key", n.String())
	assert.NotEqual(t, n, KeyName("key"), "names are not case folded")

	seen := map[KeyName]int{"a": 1}
	seen[KeyName("a")]++
	assert.Equal(t, 2, seen["a"])
}
