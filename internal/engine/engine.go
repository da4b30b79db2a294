package engine

import (
	"github.com/dshills/cjkmark/internal/host"
	"github.com/dshills/cjkmark/internal/override"
	"github.com/dshills/cjkmark/internal/segment"
	"github.com/dshills/cjkmark/internal/selection"
	"github.com/dshills/cjkmark/internal/thing"
)

// Config collects the collaborators an Engine drives.
type Config struct {
	// Buffer supplies text and cursor. Required.
	Buffer host.Buffer

	// Source performs segmentation and raw word stepping. Required.
	// The engine wraps it for once-only loading.
	Source segment.Source

	// Stepper moves by generic things. Required.
	Stepper host.Stepper

	// Realizer realizes selections in the host. Required.
	Realizer selection.Realizer

	// Search is the host's search-pattern ring. Required.
	Search selection.SearchRing

	// Overlay receives repeat-count step callbacks. Optional.
	Overlay host.Overlay

	// Things maps things to include-syntax. Optional; an empty registry
	// (absorb nothing) is used when nil.
	Things *thing.Registry

	// CJK and Generic replace the default selection strategies.
	// Optional; intended for tests and hosts with custom semantics.
	CJK     Strategy
	Generic Strategy
}

// Engine computes selections and movements and requests their realization.
type Engine struct {
	buf      host.Buffer
	source   segment.Source
	stepper  host.Stepper
	realizer selection.Realizer
	search   selection.SearchRing
	overlay  host.Overlay
	things   *thing.Registry

	cjk     Strategy
	generic Strategy
}

// New creates an engine from cfg.
func New(cfg Config) (*Engine, error) {
	switch {
	case cfg.Buffer == nil:
		return nil, ErrNilBuffer
	case cfg.Source == nil:
		return nil, ErrNilSource
	case cfg.Stepper == nil:
		return nil, ErrNilStepper
	case cfg.Realizer == nil:
		return nil, ErrNilRealizer
	case cfg.Search == nil:
		return nil, ErrNilSearch
	}

	e := &Engine{
		buf:      cfg.Buffer,
		source:   segment.NewLazy(cfg.Source),
		stepper:  cfg.Stepper,
		realizer: cfg.Realizer,
		search:   cfg.Search,
		overlay:  cfg.Overlay,
		things:   cfg.Things,
	}
	if e.things == nil {
		e.things = thing.NewRegistry()
	}

	e.cjk = cfg.CJK
	if e.cjk == nil {
		e.cjk = &CJKSegmentStrategy{
			buf:      e.buf,
			source:   e.source,
			realizer: e.realizer,
			search:   e.search,
		}
	}
	e.generic = cfg.Generic
	if e.generic == nil {
		e.generic = &GenericThingStrategy{
			buf:      e.buf,
			stepper:  e.stepper,
			realizer: e.realizer,
			search:   e.search,
		}
	}
	return e, nil
}

// Things returns the engine's include-syntax registry.
func (e *Engine) Things() *thing.Registry {
	return e.things
}

// MarkThing selects the thing at the cursor using the strategy the cursor's
// character class and the requested category imply.
//
// regexpFormat, when non-empty, is a Sprintf template applied to the
// regexp-quoted selection text before search registration on the generic
// path; the segment path always registers the quoted literal.
func (e *Engine) MarkThing(t, category thing.Thing, backward bool, regexpFormat string) error {
	if err := e.source.Load(); err != nil {
		return err
	}
	return e.strategyFor(category).Mark(MarkRequest{
		Thing:        t,
		Category:     category,
		Backward:     backward,
		RegexpFormat: regexpFormat,
	})
}

// strategyFor routes symbol requests and non-CJK cursors to the generic
// strategy.
func (e *Engine) strategyFor(category thing.Thing) Strategy {
	if category == thing.Symbol || !segment.CJKAt(e.buf.Text(), e.buf.Cursor()) {
		return e.generic
	}
	return e.cjk
}

// EntryPoints returns the engine's behaviors in the form the override
// capability installs.
func (e *Engine) EntryPoints() override.EntryPoints {
	return override.EntryPoints{
		MarkThing: e.MarkThing,
		NextThing: e.NextThing,
	}
}
