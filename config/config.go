// Package config loads the node's TOML configuration file. Every field
// has a default, so running without a file works out of the box.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the node's runtime settings. The ledger itself takes no
// configuration: difficulty is fixed and the chain lives in memory.
type Config struct {
	// Listen is the address the HTTP server binds, all interfaces on a
	// fixed port by default.
	Listen string `toml:"listen"`

	// LogLevel is the logrus level name (debug/info/warning/error).
	LogLevel string `toml:"log_level"`
}

// Default returns the configuration used when no file or flag overrides
// anything.
func Default() Config {
	return Config{
		Listen:   ":5000",
		LogLevel: "info",
	}
}

// Load reads a TOML config file on top of the defaults. An empty path or
// a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("decode config %s: %w", path, err)
	}
	return cfg, nil
}
