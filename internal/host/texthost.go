package host

import (
	"errors"
	"fmt"
	"regexp"

	"github.com/google/uuid"

	"github.com/dshills/cjkmark/internal/override"
	"github.com/dshills/cjkmark/internal/selection"
	"github.com/dshills/cjkmark/internal/textspan"
	"github.com/dshills/cjkmark/internal/thing"
)

// ErrInvalidBounds reports a selection whose bounds do not fit the buffer.
var ErrInvalidBounds = errors.New("host: selection bounds outside buffer")

// realized is a selection the host has made current, tagged with an identity
// so callers can tell replacement from extension.
type realized struct {
	sel selection.Selection
	id  string
}

// TextHost is a reference host over a plain text buffer.
//
// It implements Buffer, Stepper, Overlay, the selection collaborators, and
// the override registrar, which makes it a complete stand-in for an editor
// integration. All state belongs to a single command loop; TextHost takes no
// locks and must not be shared across goroutines.
type TextHost struct {
	text   string
	cursor textspan.Pos

	active   *realized
	patterns []string
	matches  []textspan.Span

	points    override.EntryPoints
	overrides bool

	stepBackward func()
	stepForward  func()
}

// NewTextHost creates a host over the given text with the cursor at zero.
// The default thing behaviors move the cursor without building selections;
// installing an override replaces them.
func NewTextHost(text string) *TextHost {
	h := &TextHost{text: text}
	h.points = h.defaultPoints()
	return h
}

// Text implements Buffer.
func (h *TextHost) Text() string { return h.text }

// Cursor implements Buffer.
func (h *TextHost) Cursor() textspan.Pos { return h.cursor }

// SetText replaces the buffer contents and resets selection state.
func (h *TextHost) SetText(text string) {
	h.text = text
	h.active = nil
	h.matches = nil
	if h.cursor > textspan.Pos(len(text)) {
		h.cursor = textspan.Pos(len(text))
	}
}

// SetCursor moves the cursor, clamped to the buffer.
func (h *TextHost) SetCursor(pos textspan.Pos) {
	if pos < 0 {
		pos = 0
	}
	if max := textspan.Pos(len(h.text)); pos > max {
		pos = max
	}
	h.cursor = pos
}

// Step implements Stepper.
func (h *TextHost) Step(t thing.Thing, pos textspan.Pos, count int) textspan.Pos {
	return stepThing(h.text, t, pos, count)
}

// BoundsOf implements Stepper.
func (h *TextHost) BoundsOf(t thing.Thing, pos textspan.Pos) (textspan.Span, bool) {
	return boundsOfThing(h.text, t, pos)
}

// Realize implements selection.Realizer.
//
// With extend requested, an active expand selection of the same category
// grows to cover the union of both bounds and keeps its identity; anything
// else replaces the active selection under a fresh identity. The cursor
// follows the selection head either way.
func (h *TextHost) Realize(sel selection.Selection, extend bool) error {
	if !sel.Bounds.IsValid() || sel.Bounds.End > textspan.Pos(len(h.text)) || sel.Bounds.Start < 0 {
		return fmt.Errorf("%w: %s", ErrInvalidBounds, sel.Bounds)
	}

	if extend && h.active != nil &&
		h.active.sel.Kind == selection.Expand &&
		sel.Kind == selection.Expand &&
		h.active.sel.Category == sel.Category {
		merged := sel
		if h.active.sel.Bounds.Start < merged.Bounds.Start {
			merged.Bounds.Start = h.active.sel.Bounds.Start
		}
		if h.active.sel.Bounds.End > merged.Bounds.End {
			merged.Bounds.End = h.active.sel.Bounds.End
		}
		h.active.sel = merged
		h.cursor = merged.Head()
		return nil
	}

	h.active = &realized{sel: sel, id: uuid.NewString()}
	h.cursor = sel.Head()
	return nil
}

// Active implements selection.Realizer.
func (h *TextHost) Active() (selection.Selection, bool) {
	if h.active == nil {
		return selection.Selection{}, false
	}
	return h.active.sel, true
}

// Clear implements selection.Realizer.
func (h *TextHost) Clear() {
	h.active = nil
}

// ActiveID returns the identity of the current selection, or empty.
// A changed identity means the selection was replaced, not extended.
func (h *TextHost) ActiveID() string {
	if h.active == nil {
		return ""
	}
	return h.active.id
}

// PushPattern implements selection.SearchRing.
func (h *TextHost) PushPattern(pattern string) {
	h.patterns = append(h.patterns, pattern)
}

// HighlightAll implements selection.SearchRing.
// Invalid patterns clear the highlights rather than failing the movement
// that pushed them.
func (h *TextHost) HighlightAll(pattern string) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		h.matches = nil
		return
	}
	h.matches = nil
	for _, m := range re.FindAllStringIndex(h.text, -1) {
		h.matches = append(h.matches, textspan.NewSpan(textspan.Pos(m[0]), textspan.Pos(m[1])))
	}
}

// Patterns returns the search ring, most recent last.
func (h *TextHost) Patterns() []string { return h.patterns }

// Matches returns the highlight spans from the last HighlightAll.
func (h *TextHost) Matches() []textspan.Span { return h.matches }

// SetRepeatSteps implements Overlay.
func (h *TextHost) SetRepeatSteps(backward, forward func()) {
	h.stepBackward = backward
	h.stepForward = forward
}

// RepeatSteps returns the registered single-step callbacks, which may be nil.
func (h *TextHost) RepeatSteps() (backward, forward func()) {
	return h.stepBackward, h.stepForward
}

// MarkThing invokes the current mark behavior, default or overridden.
func (h *TextHost) MarkThing(t, category thing.Thing, backward bool, regexpFormat string) error {
	return h.points.MarkThing(t, category, backward, regexpFormat)
}

// NextThing invokes the current movement behavior, default or overridden.
func (h *TextHost) NextThing(t, category thing.Thing, n int, includeSyntax ...string) error {
	return h.points.NextThing(t, category, n, includeSyntax...)
}

// Overridden reports whether an override is currently installed.
func (h *TextHost) Overridden() bool { return h.overrides }

// InstallOverride implements override.Registrar.
func (h *TextHost) InstallOverride(points override.EntryPoints) (func(), error) {
	if points.MarkThing == nil || points.NextThing == nil {
		return nil, errors.New("host: incomplete entry points")
	}

	previous := h.points
	wasOverridden := h.overrides
	h.points = points
	h.overrides = true

	return func() {
		h.points = previous
		h.overrides = wasOverridden
	}, nil
}

// defaultPoints returns the host's built-in thing behaviors: plain cursor
// movement with no selection or search side effects.
func (h *TextHost) defaultPoints() override.EntryPoints {
	return override.EntryPoints{
		MarkThing: func(t, category thing.Thing, backward bool, regexpFormat string) error {
			bounds, ok := h.BoundsOf(t, h.cursor)
			if !ok {
				return nil
			}
			dir := textspan.Forward
			if backward {
				dir = textspan.Backward
			}
			return h.Realize(selection.New(selection.Select, bounds, category, dir), false)
		},
		NextThing: func(t, category thing.Thing, n int, includeSyntax ...string) error {
			h.SetCursor(h.Step(t, h.cursor, n))
			return nil
		},
	}
}
