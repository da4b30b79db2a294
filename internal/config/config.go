// Package config loads thing registration from configuration files.
//
// The package handles TOML and JSON configuration plus a Lua extension hook
// for hosts that script their setup. All loaders produce the same Config
// value, which is applied to a thing registry.
package config

import (
	"fmt"

	"github.com/dshills/cjkmark/internal/thing"
)

// Config is the on-disk configuration.
type Config struct {
	// Things maps thing names to their include-syntax entries.
	Things map[string]ThingConfig `toml:"things" json:"things"`
}

// ThingConfig is one include-syntax entry.
type ThingConfig struct {
	// Forward is the character set absorbed at the edge of a forward
	// movement.
	Forward string `toml:"forward" json:"forward"`

	// Backward is the set absorbed at the edge of a backward movement.
	Backward string `toml:"backward" json:"backward"`
}

// Apply registers every configured entry in reg.
// Unknown thing names are rejected; entries already applied stay registered.
func (c *Config) Apply(reg *thing.Registry) error {
	if c == nil {
		return nil
	}
	for name, tc := range c.Things {
		t, ok := thing.Parse(name)
		if !ok {
			return fmt.Errorf("config: unknown thing %q", name)
		}
		reg.Set(t, thing.IncludeSyntax{
			Forward:  tc.Forward,
			Backward: tc.Backward,
		})
	}
	return nil
}
