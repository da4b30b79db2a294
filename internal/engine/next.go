package engine

import (
	"strings"
	"unicode/utf8"

	"github.com/dshills/cjkmark/internal/selection"
	"github.com/dshills/cjkmark/internal/textspan"
	"github.com/dshills/cjkmark/internal/thing"
)

// NextThing moves across n things and realizes the resulting selection.
//
// The sign of n picks the direction, its magnitude the number of things to
// traverse. Word movement is segmentation-aware; other things use the host
// stepper. Rules, applied in order:
//
//  1. An active selection of a different category is discarded first.
//  2. The include-syntax for the reached edge comes from the thing registry
//     unless includeSyntax supplies an override. Unregistered things absorb
//     nothing.
//  3. An active expand selection of the requested category keeps growing.
//     The direction bias applies before the step: the step starts from the
//     selection edge on the side the sign of n points toward, with the
//     opposite edge as the anchor, so a reversed sign grows the selection
//     out of its other end.
//  4. A step that does not move the cursor makes the whole call a no-op.
//  5. Otherwise the reached edge absorbs the resolved include-syntax and the
//     selection is realized: expand-kind when growing, select-kind when not.
//  6. Single-step callbacks are handed to the repeat-count overlay so the
//     host can preview further repeats.
//
// n == 0 returns immediately with no side effects.
func (e *Engine) NextThing(t, category thing.Thing, n int, includeSyntax ...string) error {
	if n == 0 {
		return nil
	}
	if err := e.source.Load(); err != nil {
		return err
	}

	if active, ok := e.realizer.Active(); ok && active.Category != category {
		e.realizer.Clear()
	}

	extra := e.things.Resolve(t, n)
	if len(includeSyntax) > 0 {
		extra = includeSyntax[0]
	}

	dir := textspan.DirectionOf(n)
	mark := e.buf.Cursor()
	anchor := mark
	expanding := false
	if active, ok := e.realizer.Active(); ok &&
		active.Kind == selection.Expand && active.Category == category {
		// Bias before stepping: rebased to the movement's direction, the
		// selection's head is the step origin and its anchor the held edge.
		expanding = true
		active.Direction = dir
		mark = active.Head()
		anchor = active.Anchor()
	}

	p := e.step(t, mark, n)
	if p == mark {
		return nil
	}

	head := e.absorb(p, n, extra)
	kind := selection.Select
	if expanding {
		kind = selection.Expand
	}

	sel := selection.New(kind, textspan.Between(anchor, head), category, dir)
	if err := e.realizer.Realize(sel, true); err != nil {
		return err
	}

	if e.overlay != nil {
		e.overlay.SetRepeatSteps(
			func() { _ = e.StepBackward(t, category) },
			func() { _ = e.StepForward(t, category) },
		)
	}
	return nil
}

// StepForward performs a single forward movement of t.
// Hosts use this for incremental repeat-count feedback.
func (e *Engine) StepForward(t, category thing.Thing) error {
	return e.NextThing(t, category, 1)
}

// StepBackward performs a single backward movement of t.
func (e *Engine) StepBackward(t, category thing.Thing) error {
	return e.NextThing(t, category, -1)
}

// step moves pos across n things, routing word movement to the
// segmentation source.
func (e *Engine) step(t thing.Thing, pos textspan.Pos, n int) textspan.Pos {
	if t == thing.Word {
		return e.source.StepWords(e.buf.Text(), pos, n)
	}
	return e.stepper.Step(t, pos, n)
}

// absorb extends p across runes in set at the edge a movement with count n
// reached. An empty set leaves p untouched.
func (e *Engine) absorb(p textspan.Pos, n int, set string) textspan.Pos {
	if set == "" {
		return p
	}
	text := e.buf.Text()

	if n > 0 {
		for p < textspan.Pos(len(text)) {
			r, size := utf8.DecodeRuneInString(text[p:])
			if r == utf8.RuneError && size <= 1 {
				break
			}
			if !strings.ContainsRune(set, r) {
				break
			}
			p += textspan.Pos(size)
		}
		return p
	}

	for p > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:p])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		if !strings.ContainsRune(set, r) {
			break
		}
		p -= textspan.Pos(size)
	}
	return p
}
