package platform

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigFile is the optional settings file inside the store root.
const ConfigFile = "config.yaml"

// Config mirrors config.yaml. Pointer fields distinguish "unset" from false.
type Config struct {
	File      string `yaml:"file,omitempty"`
	Adapter   string `yaml:"adapter,omitempty"`
	ReadOnly  *bool  `yaml:"read_only,omitempty"`
	LogLevel  string `yaml:"log_level,omitempty"`
	DevSafety *bool  `yaml:"dev_safety,omitempty"`
}

// LoadConfig reads ConfigFile from dir. A missing file yields a zero Config.
func LoadConfig(dir string) (Config, error) {
	var cfg Config

	data, err := os.ReadFile(filepath.Join(dir, ConfigFile))
	if errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", ConfigFile, err)
	}
	if cfg.LogLevel != "" {
		if _, err := ParseLevel(cfg.LogLevel); err != nil {
			return cfg, err
		}
	}
	return cfg, nil
}

// Options converts the set fields into functional options. Options passed
// after these (e.g. from CLI flags) take precedence.
func (c Config) Options() []Option {
	var opts []Option
	if c.File != "" {
		opts = append(opts, WithFile(c.File))
	}
	if c.Adapter != "" {
		opts = append(opts, WithAdapter(c.Adapter))
	}
	if c.ReadOnly != nil {
		opts = append(opts, WithReadOnly(*c.ReadOnly))
	}
	if c.DevSafety != nil {
		opts = append(opts, WithDevSafety(*c.DevSafety))
	}
	return opts
}

// ParseLevel maps debug/info/warn/error (any case) to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q", s)
	}
	return level, nil
}
