// Package config handles memctl.toml configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileName is the configuration file memctl looks for.
const FileName = "memctl.toml"

// Allocator backends.
const (
	BackendHeap   = "heap"
	BackendManual = "manual"
)

// ErrInvalid indicates a configuration value outside its allowed set.
var ErrInvalid = errors.New("config: invalid value")

// Config represents a memctl.toml file.
type Config struct {
	Log   Log   `toml:"log"`
	Alloc Alloc `toml:"alloc"`
	Bench Bench `toml:"bench"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-"`
}

// Log configures diagnostic logging.
type Log struct {
	Enabled bool   `toml:"enabled"`
	Level   string `toml:"level"`
	JSON    bool   `toml:"json"`
	File    string `toml:"file"`
}

// Alloc selects the allocator backend for arrays built by memctl.
type Alloc struct {
	Backend string `toml:"backend"`
}

// Bench configures the bench command.
type Bench struct {
	N int `toml:"n"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Log:   Log{Level: "info"},
		Alloc: Alloc{Backend: BackendHeap},
		Bench: Bench{N: 100_000},
	}
}

// Load parses the file at path on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", path, err)
	}

	c := Default()
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, fmt.Errorf("parse error in %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q in %s", ErrInvalid, undecoded[0].String(), path)
	}
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	c.Path = path
	return c, nil
}

// FindAndLoad walks up from startDir to find a memctl.toml file and loads
// it. It returns Default when none is found.
func FindAndLoad(startDir string) (*Config, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return Default(), nil
		}
		dir = parent
	}
}

// Validate checks enumerated and numeric fields.
func (c *Config) Validate() error {
	switch c.Alloc.Backend {
	case BackendHeap, BackendManual:
	default:
		return fmt.Errorf("%w: alloc.backend %q (want %s or %s)", ErrInvalid, c.Alloc.Backend, BackendHeap, BackendManual)
	}
	if c.Bench.N <= 0 {
		return fmt.Errorf("%w: bench.n %d must be positive", ErrInvalid, c.Bench.N)
	}
	return nil
}
