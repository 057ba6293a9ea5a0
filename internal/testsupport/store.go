package testsupport

import (
	"testing"

	"washline/internal/config"
	"washline/internal/history"
)

// MustOpenStore opens a history store for the given config and closes it
// when the test finishes.
func MustOpenStore(t testing.TB, cfg *config.Config) *history.Store {
	t.Helper()

	store, err := history.Open(cfg)
	if err != nil {
		t.Fatalf("open history store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close history store: %v", err)
		}
	})
	return store
}
