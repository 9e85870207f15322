// Package config handles configuration management for promptline.
// Configuration is layered: embedded defaults, then the user's TOML
// file, then PROMPTLINE_* environment variables, then programmatic
// overrides. A malformed layer aborts the whole load; promptline never
// renders with a partially applied configuration.
package config

import (
	"sync"
)

// Config is the fully merged promptline configuration.
type Config struct {
	// Format sequences the prompt's segments, one variable per
	// segment name.
	Format string `koanf:"format" toml:"format"`

	OS       OSConfig       `koanf:"os" toml:"os"`
	Hostname HostnameConfig `koanf:"hostname" toml:"hostname"`
}

// OSConfig configures the os segment.
type OSConfig struct {
	Format string `koanf:"format" toml:"format"`
	Style  string `koanf:"style" toml:"style"`

	// Symbols overrides the built-in symbol table. Keys are OS
	// identifiers, matched case-insensitively; an empty value is a
	// deliberate "no symbol" and is honored as such.
	Symbols map[string]string `koanf:"symbols" toml:"symbols,omitempty"`

	Disabled bool `koanf:"disabled" toml:"disabled"`
}

// HostnameConfig configures the hostname segment.
type HostnameConfig struct {
	Format   string `koanf:"format" toml:"format"`
	Style    string `koanf:"style" toml:"style"`
	Disabled bool   `koanf:"disabled" toml:"disabled"`
}

var (
	defaultOnce sync.Once
	defaultCfg  *Config
)

// Default returns the built-in configuration (the embedded defaults
// with no user layers applied). The result is shared; callers must not
// mutate it.
func Default() *Config {
	defaultOnce.Do(func() {
		cfg, err := parseDefaults()
		if err != nil {
			// The embedded defaults are fixed at compile time; a
			// parse failure is a build defect.
			panic(err)
		}
		defaultCfg = cfg
	})
	return defaultCfg
}
