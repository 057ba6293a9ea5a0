// Package testsupport provides shared fixtures for package tests: configs
// rooted in per-test temp directories and pre-opened history stores.
package testsupport

import (
	"path/filepath"
	"testing"

	"washline/internal/config"
)

// NewConfig produces a config seeded with a unique temp data directory per
// test and latency bounds small enough to keep tests fast.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Storage.DataDir = filepath.Join(t.TempDir(), "data")
	cfg.Simulation.LatencyMinMS = 0
	cfg.Simulation.LatencyMaxMS = 1
	cfg.Pipeline.PollTimeoutMS = 5
	return &cfg
}
