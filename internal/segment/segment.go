// Package segment provides the segmentation source that splits text into
// linguistic segments and performs raw counted word stepping.
//
// The package does not implement a segmentation algorithm of its own.
// Segmentation is delegated to a Source implementation; the default source
// splits on Unicode word boundaries (UAX #29), which handles CJK runs where
// words are not whitespace-delimited.
package segment

import "github.com/dshills/cjkmark/internal/textspan"

// Source produces segment spans and performs raw word stepping over text.
//
// Sources are treated as read-only once loaded. Load must be idempotent; a
// load failure is fatal to the operation that observed it and is reported on
// every subsequent use.
type Source interface {
	// Load prepares the source for use. Safe to call repeatedly.
	Load() error

	// Segments splits text into an ordered sequence of half-open spans with
	// offsets relative to the start of text. Segments are produced left to
	// right and cover the text.
	Segments(text string) []textspan.Span

	// StepWords moves pos across count word boundaries within text.
	// Negative counts step backward. Returns pos unchanged when no movement
	// is possible in the requested direction.
	StepWords(text string, pos textspan.Pos, count int) textspan.Pos

	// BoundsForScan reports the span of the word-like run at or around pos,
	// scanning in the given direction. Returns false when no such run exists.
	BoundsForScan(text string, pos textspan.Pos, dir textspan.Direction) (textspan.Span, bool)
}
