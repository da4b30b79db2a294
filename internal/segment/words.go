package segment

import (
	"unicode"

	"github.com/clipperhouse/uax29/v2/words"

	"github.com/dshills/cjkmark/internal/textspan"
)

// Words is a Source backed by Unicode word segmentation (UAX #29).
// It needs no external resources, so Load always succeeds.
type Words struct{}

// NewWords creates a UAX #29 word segmentation source.
func NewWords() *Words {
	return &Words{}
}

// Load implements Source. The UAX #29 tables are compiled in.
func (*Words) Load() error {
	return nil
}

// Segments splits text into word tokens. Tokens partition the text: every
// byte belongs to exactly one span, including whitespace and punctuation
// runs.
func (*Words) Segments(text string) []textspan.Span {
	if text == "" {
		return nil
	}

	spans := make([]textspan.Span, 0, 8)
	var pos int
	tokens := words.FromString(text)
	for tokens.Next() {
		n := len(tokens.Value())
		spans = append(spans, textspan.Span{
			Start: textspan.Pos(pos),
			End:   textspan.Pos(pos + n),
		})
		pos += n
	}
	return spans
}

// StepWords moves pos across count word starts.
// Forward movement lands on the start of the next word token; backward
// movement lands on the start of the previous one. Whitespace and
// punctuation tokens are skipped.
func (w *Words) StepWords(text string, pos textspan.Pos, count int) textspan.Pos {
	if count == 0 || text == "" {
		return pos
	}

	starts := w.wordStarts(text)
	if len(starts) == 0 {
		return pos
	}

	if count > 0 {
		for ; count > 0; count-- {
			next, ok := firstAfter(starts, pos)
			if !ok {
				break
			}
			pos = next
		}
		return pos
	}

	for ; count < 0; count++ {
		prev, ok := lastBefore(starts, pos)
		if !ok {
			break
		}
		pos = prev
	}
	return pos
}

// BoundsForScan finds the word-like run at or around pos.
// Scanning forward returns the run containing or following pos; scanning
// backward returns the run containing or preceding it. A run is a maximal
// sequence of adjacent word tokens, so an unbroken CJK stretch is a single
// run even though UAX #29 splits it into many tokens.
func (w *Words) BoundsForScan(text string, pos textspan.Pos, dir textspan.Direction) (textspan.Span, bool) {
	spans := w.Segments(text)
	if len(spans) == 0 {
		return textspan.Span{}, false
	}

	idx := -1
	if dir == textspan.Forward {
		for i, s := range spans {
			if s.End > pos && wordlike(text[s.Start:s.End]) {
				idx = i
				break
			}
		}
	} else {
		for i := len(spans) - 1; i >= 0; i-- {
			if spans[i].Start < pos && wordlike(text[spans[i].Start:spans[i].End]) {
				idx = i
				break
			}
		}
	}
	if idx < 0 {
		return textspan.Span{}, false
	}

	lo, hi := idx, idx
	for lo > 0 && wordlike(text[spans[lo-1].Start:spans[lo-1].End]) {
		lo--
	}
	for hi < len(spans)-1 && wordlike(text[spans[hi+1].Start:spans[hi+1].End]) {
		hi++
	}
	return textspan.Span{Start: spans[lo].Start, End: spans[hi].End}, true
}

// wordStarts returns the start offsets of word-like tokens in text.
func (w *Words) wordStarts(text string) []textspan.Pos {
	spans := w.Segments(text)
	starts := make([]textspan.Pos, 0, len(spans))
	for _, s := range spans {
		if wordlike(text[s.Start:s.End]) {
			starts = append(starts, s.Start)
		}
	}
	return starts
}

// wordlike reports whether a token carries word content, as opposed to
// whitespace or punctuation.
func wordlike(tok string) bool {
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}

// firstAfter returns the smallest start strictly greater than pos.
func firstAfter(starts []textspan.Pos, pos textspan.Pos) (textspan.Pos, bool) {
	for _, s := range starts {
		if s > pos {
			return s, true
		}
	}
	return 0, false
}

// lastBefore returns the largest start strictly less than pos.
func lastBefore(starts []textspan.Pos, pos textspan.Pos) (textspan.Pos, bool) {
	for i := len(starts) - 1; i >= 0; i-- {
		if starts[i] < pos {
			return starts[i], true
		}
	}
	return 0, false
}
