package override

import (
	"errors"
	"testing"

	"github.com/dshills/cjkmark/internal/thing"
)

// fakeRegistrar counts installs and restores.
type fakeRegistrar struct {
	installs int
	restores int
	err      error
}

func (r *fakeRegistrar) InstallOverride(points EntryPoints) (func(), error) {
	if r.err != nil {
		return nil, r.err
	}
	r.installs++
	return func() { r.restores++ }, nil
}

func points() EntryPoints {
	return EntryPoints{
		MarkThing: func(t, category thing.Thing, backward bool, regexpFormat string) error {
			return nil
		},
		NextThing: func(t, category thing.Thing, n int, includeSyntax ...string) error {
			return nil
		},
	}
}

func TestInstallUninstall(t *testing.T) {
	reg := &fakeRegistrar{}
	c := New(reg, points())

	if c.Installed() {
		t.Error("new capability should not be installed")
	}

	if err := c.Install(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.Installed() {
		t.Error("expected installed state")
	}
	if reg.installs != 1 {
		t.Errorf("expected 1 install, got %d", reg.installs)
	}

	c.Uninstall()
	if c.Installed() {
		t.Error("expected uninstalled state")
	}
	if reg.restores != 1 {
		t.Errorf("expected 1 restore, got %d", reg.restores)
	}
}

func TestInstallIdempotent(t *testing.T) {
	reg := &fakeRegistrar{}
	c := New(reg, points())

	for i := 0; i < 3; i++ {
		if err := c.Install(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if reg.installs != 1 {
		t.Errorf("repeated installs should register once, got %d", reg.installs)
	}
}

func TestUninstallIdempotent(t *testing.T) {
	reg := &fakeRegistrar{}
	c := New(reg, points())

	c.Uninstall() // before any install
	if reg.restores != 0 {
		t.Error("uninstall before install should do nothing")
	}

	_ = c.Install()
	c.Uninstall()
	c.Uninstall()
	if reg.restores != 1 {
		t.Errorf("repeated uninstalls should restore once, got %d", reg.restores)
	}
}

func TestReinstallAfterUninstall(t *testing.T) {
	reg := &fakeRegistrar{}
	c := New(reg, points())

	_ = c.Install()
	c.Uninstall()
	_ = c.Install()

	if reg.installs != 2 {
		t.Errorf("expected 2 installs, got %d", reg.installs)
	}
	if !c.Installed() {
		t.Error("expected installed state after reinstall")
	}
}

func TestInstallError(t *testing.T) {
	wantErr := errors.New("host refused")
	c := New(&fakeRegistrar{err: wantErr}, points())

	if err := c.Install(); !errors.Is(err, wantErr) {
		t.Errorf("expected host error, got %v", err)
	}
	if c.Installed() {
		t.Error("failed install should leave the capability uninstalled")
	}
}

func TestNilRegistrar(t *testing.T) {
	c := New(nil, points())

	if err := c.Install(); !errors.Is(err, ErrNilRegistrar) {
		t.Errorf("expected ErrNilRegistrar, got %v", err)
	}
}
