// Package override installs the engine's entry points in place of a host's
// default thing behaviors.
//
// Installation is an explicit capability rather than process-wide mutation:
// the host exposes a registration interface, and a Capability object holds
// the restore handle it returns. Install and Uninstall are idempotent, so a
// mode toggle can call them freely.
package override

import (
	"errors"
	"sync"

	"github.com/dshills/cjkmark/internal/thing"
)

// EntryPoints are the behaviors installed over the host's defaults.
type EntryPoints struct {
	// MarkThing selects the thing at the cursor.
	MarkThing func(t, category thing.Thing, backward bool, regexpFormat string) error

	// NextThing moves across n things and realizes the resulting selection.
	NextThing func(t, category thing.Thing, n int, includeSyntax ...string) error
}

// Registrar is implemented by hosts that support behavior overrides.
type Registrar interface {
	// InstallOverride replaces the host's default thing behaviors with
	// points and returns a handle that restores the originals.
	InstallOverride(points EntryPoints) (restore func(), err error)
}

// ErrNilRegistrar reports a capability created without a host.
var ErrNilRegistrar = errors.New("override: nil registrar")

// Capability owns one installed override and its restore handle.
type Capability struct {
	mu      sync.Mutex
	host    Registrar
	points  EntryPoints
	restore func()
}

// New creates an uninstalled capability for the given host and entry points.
func New(host Registrar, points EntryPoints) *Capability {
	return &Capability{
		host:   host,
		points: points,
	}
}

// Install replaces the host's defaults with the capability's entry points.
// Installing an already-installed capability is a no-op.
func (c *Capability) Install() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.restore != nil {
		return nil
	}
	if c.host == nil {
		return ErrNilRegistrar
	}

	restore, err := c.host.InstallOverride(c.points)
	if err != nil {
		return err
	}
	c.restore = restore
	return nil
}

// Uninstall restores the host's original behaviors.
// Uninstalling an uninstalled capability is a no-op.
func (c *Capability) Uninstall() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.restore == nil {
		return
	}
	c.restore()
	c.restore = nil
}

// Installed reports whether the override is currently in place.
func (c *Capability) Installed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.restore != nil
}
