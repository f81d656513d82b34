// Package config loads engine configuration from a TOML file: search
// depth, opening book path, and time control, consumed by cmd/uci.
package config

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/tinbergen/chesscore/search"
)

// Config is the decoded contents of a chesscore.toml file.
type Config struct {
	Search SearchConfig `toml:"search"`
	Book   BookConfig   `toml:"book"`
	Clock  ClockConfig  `toml:"clock"`
}

// SearchConfig controls the fixed-depth negamax search.
type SearchConfig struct {
	Depth int `toml:"depth"`
}

// BookConfig names the Polyglot opening book to consult before searching.
type BookConfig struct {
	Path    string `toml:"path"`
	Enabled bool   `toml:"enabled"`
}

// ClockConfig is a simple per-move time budget; the engine does not manage
// a game clock beyond this value (see spec Non-goals).
type ClockConfig struct {
	MoveTimeMS int `toml:"move_time_ms"`
}

// MoveTime returns the configured per-move budget as a time.Duration.
func (c ClockConfig) MoveTime() time.Duration {
	return time.Duration(c.MoveTimeMS) * time.Millisecond
}

// Default returns the configuration used when no file is supplied.
func Default() Config {
	return Config{
		Search: SearchConfig{Depth: search.DefaultDepth},
		Book:   BookConfig{Enabled: false},
		Clock:  ClockConfig{MoveTimeMS: 0},
	}
}

// Load decodes a TOML file at path, filling in Default() for any field
// the file does not set.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if cfg.Search.Depth <= 0 {
		cfg.Search.Depth = search.DefaultDepth
	}
	return cfg, nil
}
