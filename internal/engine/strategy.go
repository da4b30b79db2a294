package engine

import (
	"fmt"
	"regexp"

	"github.com/dshills/cjkmark/internal/host"
	"github.com/dshills/cjkmark/internal/locate"
	"github.com/dshills/cjkmark/internal/segment"
	"github.com/dshills/cjkmark/internal/selection"
	"github.com/dshills/cjkmark/internal/textspan"
	"github.com/dshills/cjkmark/internal/thing"
)

// MarkRequest describes one thing-at-point selection request.
type MarkRequest struct {
	Thing        thing.Thing
	Category     thing.Thing
	Backward     bool
	RegexpFormat string
}

// Strategy selects the thing at the cursor and realizes the selection.
// Failure to find anything is a silent no-op, not an error.
type Strategy interface {
	Mark(req MarkRequest) error
}

// CJKSegmentStrategy selects the segment containing the cursor within the
// word-like run around it.
type CJKSegmentStrategy struct {
	buf      host.Buffer
	source   segment.Source
	realizer selection.Realizer
	search   selection.SearchRing
}

// Mark implements Strategy.
//
// The scan range comes from the source's directional word-run lookup; the
// range's text is segmented and the boundary locator picks the segment under
// the cursor. On success the segment becomes an expand-kind word selection
// and its literal text becomes the active search pattern, highlighted
// buffer-wide. Any missing piece makes the whole call a no-op.
func (s *CJKSegmentStrategy) Mark(req MarkRequest) error {
	text := s.buf.Text()
	cursor := s.buf.Cursor()

	dir := textspan.Forward
	if req.Backward {
		dir = textspan.Backward
	}

	scan, ok := s.source.BoundsForScan(text, cursor, dir)
	if !ok {
		return nil
	}

	segments := s.source.Segments(text[scan.Start:scan.End])
	bounds, ok := locate.Locate(cursor, scan, segments)
	if !ok {
		return nil
	}

	sel := selection.New(selection.Expand, bounds, thing.Word, dir)
	if err := s.realizer.Realize(sel, true); err != nil {
		return err
	}

	literal := regexp.QuoteMeta(text[bounds.Start:bounds.End])
	s.search.PushPattern(literal)
	s.search.HighlightAll(literal)
	return nil
}

// GenericThingStrategy delegates selection to the host's thing-at-point
// bounds.
type GenericThingStrategy struct {
	buf      host.Buffer
	stepper  host.Stepper
	realizer selection.Realizer
	search   selection.SearchRing
}

// Mark implements Strategy.
//
// Search registration only happens when the caller supplied a format
// template; the template receives the regexp-quoted selection text.
func (s *GenericThingStrategy) Mark(req MarkRequest) error {
	text := s.buf.Text()
	cursor := s.buf.Cursor()

	bounds, ok := s.stepper.BoundsOf(req.Thing, cursor)
	if !ok {
		return nil
	}

	dir := textspan.Forward
	if req.Backward {
		dir = textspan.Backward
	}

	sel := selection.New(selection.Expand, bounds, req.Category, dir)
	if err := s.realizer.Realize(sel, true); err != nil {
		return err
	}

	if req.RegexpFormat != "" {
		pattern := fmt.Sprintf(req.RegexpFormat, regexp.QuoteMeta(text[bounds.Start:bounds.End]))
		s.search.PushPattern(pattern)
		s.search.HighlightAll(pattern)
	}
	return nil
}
