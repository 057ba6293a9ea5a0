// Package config loads, normalizes, and validates washline's TOML
// configuration. Load resolves the file from an explicit path, the user
// config directory, or a project-local washline.toml, and falls back to
// defaults when no file exists.
package config
