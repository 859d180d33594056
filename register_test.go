package settingskey

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister_FallbackWhenNothingStored(t *testing.T) {
	d := newTestDefaults(t)
	require.NoError(t, d.Register(map[string]any{
		"theme":   "dark",
		"retries": int64(3),
		"enabled": true,
	}))

	assert.Equal(t, "dark", *Get(d, String("theme")))
	assert.Equal(t, 3, *Get(d, Integer("retries")))
	assert.True(t, Get(d, CoercingBool("enabled")))

	Set(d, String("theme"), Ptr("light"))
	assert.Equal(t, "light", *Get(d, String("theme")))

	// Removing the stored value reveals the registered one again.
	Set(d, String("theme"), nil)
	assert.Equal(t, "dark", *Get(d, String("theme")))
}

func TestRegister_NotListedAndSurvivesRemoveSuite(t *testing.T) {
	d := newTestDefaults(t)
	require.NoError(t, d.Register(map[string]any{"theme": "dark"}))

	names, err := d.Names("")
	require.NoError(t, err)
	assert.Empty(t, names)

	require.NoError(t, d.RemoveSuite())
	assert.Equal(t, "dark", *Get(d, String("theme")))
}

func TestRegister_RejectsUnsupportedKinds(t *testing.T) {
	d := newTestDefaults(t)

	err := d.Register(map[string]any{
		"ok":  "fine",
		"bad": []string{"a"},
	})
	assert.ErrorIs(t, err, ErrTypeMismatch)

	// Nothing is registered when any value is rejected.
	assert.Nil(t, d.Object("ok"))

	assert.ErrorIs(t, d.Register(map[string]any{"url": (*url.URL)(nil)}), ErrTypeMismatch)
}

func TestRegister_ValuesAreCopied(t *testing.T) {
	d := newTestDefaults(t)
	blob := []byte{1, 2}
	require.NoError(t, d.Register(map[string]any{"blob": blob}))

	blob[0] = 9
	got := d.Data("blob")
	assert.Equal(t, []byte{1, 2}, got)

	got[1] = 9
	assert.Equal(t, []byte{1, 2}, d.Data("blob"))
}

func TestRegister_Defaulting(t *testing.T) {
	d := newTestDefaults(t)
	key := Defaulting(Integer("retries"), 1)

	assert.Equal(t, 1, Get(d, key))

	require.NoError(t, d.Register(map[string]any{"retries": 5}))
	assert.Equal(t, 5, Get(d, key))
}

func TestRegisterTOML(t *testing.T) {
	d := newTestDefaults(t)
	doc := `
launchCount = 0
scale = 1.5
"sync.enabled" = true
firstSeen = 2024-05-01T10:00:00Z

[ui]
theme = "dark"

[ui.font]
size = 12
`
	require.NoError(t, d.RegisterTOML(strings.NewReader(doc)))

	assert.Equal(t, 0, *Get(d, Integer("launchCount")))
	assert.Equal(t, 1.5, *Get(d, Double("scale")))
	assert.Equal(t, true, *Get(d, Bool("sync.enabled")))
	assert.Equal(t, "dark", *Get(d, String("ui.theme")))
	assert.Equal(t, 12, *Get(d, Integer("ui.font.size")))

	seen := Get(d, Date("firstSeen"))
	require.NotNil(t, seen)
	assert.True(t, seen.Equal(time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)))
}

func TestRegisterTOML_Rejects(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"array", `tags = ["a", "b"]`},
		{"local date", `day = 2024-05-01`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newTestDefaults(t)
			assert.ErrorIs(t, d.RegisterTOML(strings.NewReader(tt.doc)), ErrTypeMismatch)
		})
	}
}

func TestRegisterTOML_Malformed(t *testing.T) {
	d := newTestDefaults(t)

	err := d.RegisterTOML(strings.NewReader(`theme = `))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrTypeMismatch)
}
