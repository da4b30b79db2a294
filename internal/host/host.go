// Package host defines the editor-side collaborator interfaces the movement
// engine drives, plus a reference plain-text host used by the demo binary
// and the tests.
//
// The engine never owns editor state. The host supplies the buffer text and
// cursor, steps generic things, realizes selections, and displays the
// repeat-count overlay; package host names those capabilities as small
// interfaces so any editor integration can provide them.
package host

import (
	"github.com/dshills/cjkmark/internal/textspan"
	"github.com/dshills/cjkmark/internal/thing"
)

// Buffer provides read access to the host's text and cursor.
type Buffer interface {
	// Text returns the buffer contents.
	Text() string

	// Cursor returns the current cursor position.
	Cursor() textspan.Pos
}

// Stepper moves the cursor by generic (non-segmentation) things.
type Stepper interface {
	// Step moves pos across count things. Negative counts step backward.
	// Returns pos unchanged when no movement is possible.
	Step(t thing.Thing, pos textspan.Pos, count int) textspan.Pos

	// BoundsOf reports the span of the thing at pos, or false when the
	// cursor is not on one.
	BoundsOf(t thing.Thing, pos textspan.Pos) (textspan.Span, bool)
}

// Overlay receives the single-step callbacks the host UI uses to preview a
// repeat count incrementally without re-invoking the full engine.
type Overlay interface {
	// SetRepeatSteps registers the callbacks for one backward and one
	// forward step of the most recent movement.
	SetRepeatSteps(backward, forward func())
}
