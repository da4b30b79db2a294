// Package selection defines the selection descriptor built by the movement
// engine and the host collaborator interfaces that realize it.
package selection

import (
	"fmt"

	"github.com/dshills/cjkmark/internal/textspan"
	"github.com/dshills/cjkmark/internal/thing"
)

// Kind distinguishes elastic selections from one-shot ones.
type Kind uint8

const (
	// Select is a one-shot selection, replaced wholesale by the next
	// movement.
	Select Kind = iota

	// Expand is an elastic selection that subsequent same-category
	// movements extend rather than replace.
	Expand
)

// String returns a string representation of the kind.
func (k Kind) String() string {
	if k == Expand {
		return "expand"
	}
	return "select"
}

// Selection describes a region the engine wants realized in the host.
// It is a transient value: the engine constructs it, hands it to a Realizer,
// and never retains it.
type Selection struct {
	// Kind controls whether later movements grow or replace the selection.
	Kind Kind

	// Bounds are the absolute buffer bounds, Start <= End.
	Bounds textspan.Span

	// Category tags the selection with the thing family that produced it.
	// Movements of a different category discard the selection instead of
	// extending it.
	Category thing.Thing

	// Direction records which way the producing movement went.
	Direction textspan.Direction
}

// New creates a selection descriptor.
func New(kind Kind, bounds textspan.Span, category thing.Thing, dir textspan.Direction) Selection {
	return Selection{
		Kind:      kind,
		Bounds:    bounds,
		Category:  category,
		Direction: dir,
	}
}

// Anchor returns the fixed end of the selection: the bound the producing
// movement started from.
func (s Selection) Anchor() textspan.Pos {
	if s.Direction == textspan.Backward {
		return s.Bounds.End
	}
	return s.Bounds.Start
}

// Head returns the moving end of the selection: the bound the producing
// movement reached.
func (s Selection) Head() textspan.Pos {
	if s.Direction == textspan.Backward {
		return s.Bounds.Start
	}
	return s.Bounds.End
}

// String returns a human-readable representation of the selection.
func (s Selection) String() string {
	return fmt.Sprintf("%s %s %s %s", s.Kind, s.Category, s.Bounds, s.Direction)
}
