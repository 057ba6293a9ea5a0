package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	var err error
	if strings.TrimSpace(c.Storage.DataDir) == "" {
		c.Storage.DataDir = defaultDataDir
	}
	if c.Storage.DataDir, err = expandPath(c.Storage.DataDir); err != nil {
		return fmt.Errorf("storage.data_dir: %w", err)
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
