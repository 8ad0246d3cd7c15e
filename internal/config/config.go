// Package config resolves client configuration from defaults, an optional
// config file in the state directory, and environment variables, in that
// order of precedence.
package config

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultAPIURL is the local development backend.
	DefaultAPIURL = "http://localhost:8000/api/v1"

	// EnvAPIURL selects the backend host.
	EnvAPIURL = "WORKZEN_API_URL"

	// EnvStateDir overrides where credentials and config live.
	EnvStateDir = "WORKZEN_STATE_DIR"

	// EnvLogLevel overrides the log level.
	EnvLogLevel = "WORKZEN_LOG_LEVEL"

	configFileName = "config.yaml"
	stateDirName   = ".workzen"
)

// Config holds the resolved client configuration.
type Config struct {
	// APIURL is the backend base URL including the /api/v1 prefix.
	APIURL string `yaml:"api_url"`

	// LogLevel is the minimum log level (debug|info|warn|error).
	LogLevel string `yaml:"log_level"`

	// LogFormat is the log output format (text|json).
	LogFormat string `yaml:"log_format"`

	// Output is the default output format for list commands (text|json|yaml).
	Output string `yaml:"output"`

	// StateDir is where credentials are persisted. Not read from the file
	// since the file lives inside it.
	StateDir string `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		APIURL:    DefaultAPIURL,
		LogLevel:  "warn",
		LogFormat: "text",
		Output:    "text",
	}
}

// Load resolves configuration. A missing or unreadable config file is not an
// error; the client must come up with defaults on a fresh machine.
func Load() *Config {
	cfg := Default()
	cfg.StateDir = resolveStateDir()

	if cfg.StateDir != "" {
		path := filepath.Join(cfg.StateDir, configFileName)
		if data, err := os.ReadFile(path); err == nil {
			// A malformed file degrades to defaults rather than blocking
			// the CLI; it gets reported at debug level by the caller.
			_ = yaml.Unmarshal(data, cfg)
		}
	}

	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = v
	}

	return cfg
}

// Save writes the file-backed portion of the configuration to the state dir.
func (c *Config) Save() error {
	if c.StateDir == "" {
		return nil
	}
	if err := os.MkdirAll(c.StateDir, 0o700); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.StateDir, configFileName), data, 0o600)
}

func resolveStateDir() string {
	if v := os.Getenv(EnvStateDir); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, stateDirName)
}
