package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dshills/cjkmark/internal/host"
	"github.com/dshills/cjkmark/internal/segment"
	"github.com/dshills/cjkmark/internal/selection"
	"github.com/dshills/cjkmark/internal/textspan"
	"github.com/dshills/cjkmark/internal/thing"
)

// mixed is "go " (3 bytes), a Han run 中文字 (bytes 3..12), " on".
// Word starts: go=0, 中=3, 文=6, 字=9, on=13.
const mixed = "go 中文字 on"

func newTestEngine(t *testing.T, text string) (*Engine, *host.TextHost) {
	t.Helper()
	h := host.NewTextHost(text)
	e, err := New(Config{
		Buffer:   h,
		Source:   segment.NewWords(),
		Stepper:  h,
		Realizer: h,
		Search:   h,
		Overlay:  h,
	})
	require.NoError(t, err)
	return e, h
}

func TestNewValidatesConfig(t *testing.T) {
	h := host.NewTextHost("text")

	_, err := New(Config{Source: segment.NewWords(), Stepper: h, Realizer: h, Search: h})
	assert.ErrorIs(t, err, ErrNilBuffer)

	_, err = New(Config{Buffer: h, Stepper: h, Realizer: h, Search: h})
	assert.ErrorIs(t, err, ErrNilSource)

	_, err = New(Config{Buffer: h, Source: segment.NewWords(), Realizer: h, Search: h})
	assert.ErrorIs(t, err, ErrNilStepper)
}

func TestNextThingSelectsSteppedRange(t *testing.T) {
	e, h := newTestEngine(t, "alpha beta gamma")

	require.NoError(t, e.NextThing(thing.Word, thing.Word, 2))

	sel, ok := h.Active()
	require.True(t, ok)
	assert.Equal(t, selection.Select, sel.Kind, "no prior expand selection means select kind")
	assert.Equal(t, textspan.NewSpan(0, 11), sel.Bounds)
	assert.Equal(t, thing.Word, sel.Category)
	assert.Empty(t, h.Patterns(), "movement must not touch the search ring")
	assert.EqualValues(t, 11, h.Cursor())
}

func TestNextThingZeroCountIsNoOp(t *testing.T) {
	e, h := newTestEngine(t, "alpha beta")

	require.NoError(t, e.NextThing(thing.Word, thing.Word, 0))

	_, ok := h.Active()
	assert.False(t, ok)
	assert.Empty(t, h.Patterns())
	assert.EqualValues(t, 0, h.Cursor())
}

func TestNextThingNoMovementIsNoOp(t *testing.T) {
	e, h := newTestEngine(t, "alpha beta")

	// Build a selection, then attempt a backward step from the start.
	require.NoError(t, e.NextThing(thing.Word, thing.Word, 1))
	prior, ok := h.Active()
	require.True(t, ok)
	priorID := h.ActiveID()

	h.SetCursor(0)
	require.NoError(t, e.NextThing(thing.Word, thing.Word, -1))

	sel, ok := h.Active()
	require.True(t, ok, "prior selection must be left untouched")
	assert.Equal(t, prior, sel)
	assert.Equal(t, priorID, h.ActiveID())
}

func TestNextThingCategorySwitchDiscards(t *testing.T) {
	e, h := newTestEngine(t, mixed+"\nsecond line\n")

	// Expand word selection over 文.
	h.SetCursor(6)
	require.NoError(t, e.MarkThing(thing.Word, thing.Word, false, ""))
	sel, ok := h.Active()
	require.True(t, ok)
	require.Equal(t, selection.Expand, sel.Kind)

	// A line movement never reuses the word selection as a base.
	require.NoError(t, e.NextThing(thing.Line, thing.Line, 1))

	sel, ok = h.Active()
	require.True(t, ok)
	assert.Equal(t, thing.Line, sel.Category)
	assert.Equal(t, selection.Select, sel.Kind)
	assert.EqualValues(t, 9, sel.Bounds.Start, "anchor is the cursor, not the old selection")
	assert.EqualValues(t, 16, sel.Bounds.End)
}

func TestNextThingExpandKeepsGrowing(t *testing.T) {
	e, h := newTestEngine(t, mixed)

	h.SetCursor(6)
	require.NoError(t, e.MarkThing(thing.Word, thing.Word, false, ""))
	id := h.ActiveID()

	require.NoError(t, e.NextThing(thing.Word, thing.Word, 1))

	sel, ok := h.Active()
	require.True(t, ok)
	assert.Equal(t, selection.Expand, sel.Kind)
	assert.Equal(t, id, h.ActiveID(), "growing a selection keeps its identity")
	assert.Equal(t, textspan.NewSpan(6, 13), sel.Bounds)
}

func TestNextThingExpandReversalGrows(t *testing.T) {
	e, h := newTestEngine(t, mixed)

	h.SetCursor(6)
	require.NoError(t, e.MarkThing(thing.Word, thing.Word, false, ""))
	id := h.ActiveID()
	sel, ok := h.Active()
	require.True(t, ok)
	require.Equal(t, textspan.NewSpan(6, 9), sel.Bounds)

	// Reversing direction grows out of the selection's other end on the
	// first repeat already.
	require.NoError(t, e.NextThing(thing.Word, thing.Word, -1))
	sel, ok = h.Active()
	require.True(t, ok)
	assert.Equal(t, selection.Expand, sel.Kind)
	assert.Equal(t, id, h.ActiveID(), "reversal grows the selection, not replaces it")
	assert.Equal(t, textspan.NewSpan(3, 9), sel.Bounds)

	require.NoError(t, e.NextThing(thing.Word, thing.Word, -1))
	sel, ok = h.Active()
	require.True(t, ok)
	assert.Equal(t, textspan.NewSpan(0, 9), sel.Bounds)
}

func TestNextThingDirectionSymmetry(t *testing.T) {
	e, h := newTestEngine(t, "alpha beta gamma delta")

	require.NoError(t, e.NextThing(thing.Word, thing.Word, 2))
	require.EqualValues(t, 11, h.Cursor())

	require.NoError(t, e.NextThing(thing.Word, thing.Word, -2))
	assert.EqualValues(t, 0, h.Cursor())
}

func TestNextThingIncludeSyntaxFromRegistry(t *testing.T) {
	things := thing.NewRegistry()
	things.Set(thing.Word, thing.IncludeSyntax{Forward: "be", Backward: " "})

	h := host.NewTextHost("alpha beta")
	e, err := New(Config{
		Buffer: h, Source: segment.NewWords(), Stepper: h,
		Realizer: h, Search: h, Things: things,
	})
	require.NoError(t, err)

	// Forward landing at 6 absorbs 'b' and 'e'.
	require.NoError(t, e.NextThing(thing.Word, thing.Word, 1))
	sel, ok := h.Active()
	require.True(t, ok)
	assert.Equal(t, textspan.NewSpan(0, 8), sel.Bounds)

	// Backward landing at 6 absorbs the preceding space.
	h.Clear()
	h.SetCursor(8)
	require.NoError(t, e.NextThing(thing.Word, thing.Word, -1))
	sel, ok = h.Active()
	require.True(t, ok)
	assert.Equal(t, textspan.NewSpan(5, 8), sel.Bounds)
}

func TestNextThingIncludeSyntaxOverride(t *testing.T) {
	e, h := newTestEngine(t, "alpha beta")

	require.NoError(t, e.NextThing(thing.Word, thing.Word, 1, "be"))
	sel, ok := h.Active()
	require.True(t, ok)
	assert.Equal(t, textspan.NewSpan(0, 8), sel.Bounds)
}

func TestNextThingEmptyOverrideSuppressesRegistry(t *testing.T) {
	things := thing.NewRegistry()
	things.Set(thing.Word, thing.IncludeSyntax{Forward: "be"})

	h := host.NewTextHost("alpha beta")
	e, err := New(Config{
		Buffer: h, Source: segment.NewWords(), Stepper: h,
		Realizer: h, Search: h, Things: things,
	})
	require.NoError(t, err)

	require.NoError(t, e.NextThing(thing.Word, thing.Word, 1, ""))
	sel, ok := h.Active()
	require.True(t, ok)
	assert.Equal(t, textspan.NewSpan(0, 6), sel.Bounds, "explicit empty override absorbs nothing")
}

func TestNextThingUnregisteredThingExactBounds(t *testing.T) {
	e, h := newTestEngine(t, "alpha beta")

	require.NoError(t, e.NextThing(thing.Word, thing.Word, 1))
	sel, ok := h.Active()
	require.True(t, ok)
	assert.Equal(t, textspan.NewSpan(0, 6), sel.Bounds, "no include-syntax means unextended bounds")
}

func TestNextThingRegistersRepeatSteps(t *testing.T) {
	e, h := newTestEngine(t, "alpha beta gamma")

	require.NoError(t, e.NextThing(thing.Word, thing.Word, 1))
	backward, forward := h.RepeatSteps()
	require.NotNil(t, backward)
	require.NotNil(t, forward)

	forward()
	assert.EqualValues(t, 11, h.Cursor(), "forward callback performs one more step")
	backward()
	assert.EqualValues(t, 6, h.Cursor())
}

func TestMarkThingCJKSelectsSegment(t *testing.T) {
	e, h := newTestEngine(t, mixed)

	h.SetCursor(6) // on 文
	require.NoError(t, e.MarkThing(thing.Word, thing.Word, false, ""))

	sel, ok := h.Active()
	require.True(t, ok)
	assert.Equal(t, selection.Expand, sel.Kind)
	assert.Equal(t, thing.Word, sel.Category)
	assert.Equal(t, textspan.NewSpan(6, 9), sel.Bounds)
	assert.Equal(t, "文", mixed[sel.Bounds.Start:sel.Bounds.End])

	require.Len(t, h.Patterns(), 1)
	assert.Equal(t, "文", h.Patterns()[0])
	assert.Len(t, h.Matches(), 1, "every match of the segment is highlighted")
}

func TestMarkThingSymbolAlwaysGeneric(t *testing.T) {
	e, h := newTestEngine(t, mixed)

	// Cursor on a CJK rune, but symbol requests route to the generic path.
	h.SetCursor(6)
	require.NoError(t, e.MarkThing(thing.Symbol, thing.Symbol, false, "<%s>"))

	sel, ok := h.Active()
	require.True(t, ok)
	assert.Equal(t, thing.Symbol, sel.Category)
	assert.Equal(t, textspan.NewSpan(3, 12), sel.Bounds, "generic symbol bounds cover the whole run")

	require.Len(t, h.Patterns(), 1)
	assert.Equal(t, "<中文字>", h.Patterns()[0], "pattern goes through the caller's template")
}

func TestMarkThingNonCJKRoutesGeneric(t *testing.T) {
	e, h := newTestEngine(t, "hello 中")

	require.NoError(t, e.MarkThing(thing.Word, thing.Word, false, ""))

	sel, ok := h.Active()
	require.True(t, ok)
	assert.Equal(t, textspan.NewSpan(0, 5), sel.Bounds)
	assert.Empty(t, h.Patterns(), "generic path without a template registers nothing")
}

func TestMarkThingNoBoundsIsNoOp(t *testing.T) {
	e, h := newTestEngine(t, mixed)

	h.SetCursor(2) // on the space
	require.NoError(t, e.MarkThing(thing.Word, thing.Word, false, ""))

	_, ok := h.Active()
	assert.False(t, ok)
	assert.Empty(t, h.Patterns())
}

// failingSource always fails to load.
type failingSource struct {
	segment.Words
	err error
}

func (s *failingSource) Load() error { return s.err }

func TestUnavailableSourcePropagates(t *testing.T) {
	loadErr := errors.New("segmenter dictionary missing")
	h := host.NewTextHost(mixed)
	e, err := New(Config{
		Buffer: h, Source: &failingSource{err: loadErr}, Stepper: h,
		Realizer: h, Search: h,
	})
	require.NoError(t, err)

	err = e.NextThing(thing.Word, thing.Word, 1)
	assert.ErrorIs(t, err, loadErr)

	err = e.MarkThing(thing.Word, thing.Word, false, "")
	assert.ErrorIs(t, err, loadErr)

	_, ok := h.Active()
	assert.False(t, ok, "a failed load must have no selection side effects")
	assert.Empty(t, h.Patterns())
}

func TestSingleStepPrimitives(t *testing.T) {
	e, h := newTestEngine(t, "alpha beta gamma")

	require.NoError(t, e.StepForward(thing.Word, thing.Word))
	assert.EqualValues(t, 6, h.Cursor())

	require.NoError(t, e.StepBackward(thing.Word, thing.Word))
	assert.EqualValues(t, 0, h.Cursor())
}

func TestEntryPointsBridge(t *testing.T) {
	e, h := newTestEngine(t, "alpha beta")

	points := e.EntryPoints()
	require.NotNil(t, points.MarkThing)
	require.NotNil(t, points.NextThing)

	require.NoError(t, points.NextThing(thing.Word, thing.Word, 1))
	assert.EqualValues(t, 6, h.Cursor())
}
