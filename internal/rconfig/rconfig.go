// Package rconfig loads the optional CLI config file, a TOML file holding
// the structured settings (paths, logging level, per-gaṇa overrides). It
// does not read the dhātupāṭha or any other data sidecar; flat tables stay
// CSV/TSV, read elsewhere by the package that owns that table's shape.
package rconfig

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
)

// Config is the top-level, statically-typed shape of the CLI config file.
type Config struct {
	// DataDir names the directory for the dhātupāṭha and kosha sidecar
	// files. Load only records it; no path is resolved against it here.
	DataDir string `toml:"data_dir" mapstructure:"data_dir"`
	// LogLevel names an hclog level string ("trace"|"debug"|"info"|"warn"|"error").
	LogLevel string `toml:"log_level" mapstructure:"log_level"`
	// JSONLogs switches internal/obslog's writer to JSON output, for
	// machine-consumed operational logs.
	JSONLogs bool `toml:"json_logs" mapstructure:"json_logs"`

	// Overrides holds any additional, per-table sections the top-level
	// struct does not name statically (e.g. a gaṇa-specific sanādi
	// default). DecodeSection pulls a named section out of this into a typed
	// struct on demand.
	Overrides map[string]any `toml:"-"`
}

const defaultLogLevel = "info"

// Load parses path as TOML into a Config. A missing LogLevel defaults to
// "info" so callers never have to special-case an empty string.
func Load(path string) (*Config, error) {
	var raw map[string]any
	if _, err := toml.DecodeFile(path, &raw); err != nil {
		return nil, fmt.Errorf("rconfig: decode %s: %w", path, err)
	}

	cfg := &Config{LogLevel: defaultLogLevel, Overrides: make(map[string]any)}
	if err := mapstructure.Decode(raw, cfg); err != nil {
		return nil, fmt.Errorf("rconfig: map %s onto Config: %w", path, err)
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = defaultLogLevel
	}

	known := map[string]bool{"data_dir": true, "log_level": true, "json_logs": true}
	for k, v := range raw {
		if !known[k] {
			cfg.Overrides[k] = v
		}
	}

	return cfg, nil
}

// DecodeSection decodes the named Overrides section into dst, which must
// be a pointer to a struct whose fields carry `mapstructure:"..."` tags
// matching the TOML table's own key names (mapstructure does not read
// `toml` tags, so a struct meant for both toml.DecodeFile and this method
// needs both tags, the way Config itself is tagged above).
func (c *Config) DecodeSection(name string, dst any) error {
	section, ok := c.Overrides[name]
	if !ok {
		return fmt.Errorf("rconfig: no section %q in config", name)
	}
	if err := mapstructure.Decode(section, dst); err != nil {
		return fmt.Errorf("rconfig: decode section %q: %w", name, err)
	}
	return nil
}

// LoadOrDefault behaves like Load, but returns a zero-value Config with
// defaults applied instead of an error when path does not exist -- the
// config file is optional per spec.md §6's CLI surface description.
func LoadOrDefault(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return &Config{LogLevel: defaultLogLevel, Overrides: make(map[string]any)}, nil
	}
	return Load(path)
}
