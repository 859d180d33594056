package settingskey

import (
	"testing"

	"github.com/google/uuid"
)

// newTestDefaults returns a fresh suite that is removed when the test ends.
func newTestDefaults(t testing.TB, opts ...Option) *Defaults {
	t.Helper()
	d := New(uuid.NewString(), opts...)
	t.Cleanup(func() { _ = d.RemoveSuite() })
	return d
}
