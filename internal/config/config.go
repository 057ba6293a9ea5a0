package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Simulation controls the workload fed to both strategies.
type Simulation struct {
	ItemCount    int   `toml:"item_count"`
	Seed         int64 `toml:"seed"`
	LatencyMinMS int   `toml:"latency_min_ms"`
	LatencyMaxMS int   `toml:"latency_max_ms"`
}

// Pipeline controls the concurrent engine's timing.
type Pipeline struct {
	PollTimeoutMS int `toml:"poll_timeout_ms"`
	JoinTimeoutMS int `toml:"join_timeout_ms"`
}

// Storage contains the data directory holding the run history database and
// log file.
type Storage struct {
	DataDir string `toml:"data_dir"`
}

// Logging contains configuration for log output.
type Logging struct {
	Format string `toml:"format"`
	Level  string `toml:"level"`
}

// Config encapsulates all configuration values for washline.
type Config struct {
	Simulation Simulation `toml:"simulation"`
	Pipeline   Pipeline   `toml:"pipeline"`
	Storage    Storage    `toml:"storage"`
	Logging    Logging    `toml:"logging"`
}

// LatencyMin returns the lower simulated-latency bound.
func (c *Config) LatencyMin() time.Duration {
	return time.Duration(c.Simulation.LatencyMinMS) * time.Millisecond
}

// LatencyMax returns the upper simulated-latency bound.
func (c *Config) LatencyMax() time.Duration {
	return time.Duration(c.Simulation.LatencyMaxMS) * time.Millisecond
}

// PollTimeout returns the per-dequeue wait used by stage workers.
func (c *Config) PollTimeout() time.Duration {
	return time.Duration(c.Pipeline.PollTimeoutMS) * time.Millisecond
}

// JoinTimeout returns the bound on waiting for workers to exit.
func (c *Config) JoinTimeout() time.Duration {
	return time.Duration(c.Pipeline.JoinTimeoutMS) * time.Millisecond
}

// DefaultConfigPath returns the absolute path to the default configuration
// file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/washline/config.toml")
}

// Load locates, parses, and validates a configuration file. The returned
// config has all path fields expanded. The second return is the resolved
// path, the third whether a file was actually found there.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		if _, err := os.Stat(expanded); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}

	projectPath, err := filepath.Abs("washline.toml")
	if err != nil {
		return "", false, err
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

// EnsureDirectories creates the directories washline writes into.
func (c *Config) EnsureDirectories() error {
	if c.Storage.DataDir == "" {
		return nil
	}
	if err := os.MkdirAll(c.Storage.DataDir, 0o755); err != nil {
		return fmt.Errorf("create directory %q: %w", c.Storage.DataDir, err)
	}
	return nil
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if pathValue[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	absolute, err := filepath.Abs(filepath.Clean(pathValue))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", pathValue, err)
	}
	return absolute, nil
}

// ExpandPath expands a leading tilde and returns an absolute path.
func ExpandPath(pathValue string) (string, error) {
	return expandPath(pathValue)
}

// CreateSample writes a sample configuration file to the specified location.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
