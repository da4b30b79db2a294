package host

import (
	"strings"
	"unicode"

	"github.com/rivo/uniseg"

	"github.com/dshills/cjkmark/internal/textspan"
	"github.com/dshills/cjkmark/internal/thing"
)

// stepThing moves pos across count things within text.
// Movement walks the sorted start offsets of the requested thing; when no
// further start exists in the requested direction the position stays put.
func stepThing(text string, t thing.Thing, pos textspan.Pos, count int) textspan.Pos {
	if count == 0 || text == "" {
		return pos
	}

	starts := startsOf(text, t)
	if len(starts) == 0 {
		return pos
	}

	if count > 0 {
		for ; count > 0; count-- {
			moved := false
			for _, s := range starts {
				if s > pos {
					pos = s
					moved = true
					break
				}
			}
			if !moved {
				break
			}
		}
		return pos
	}

	for ; count < 0; count++ {
		moved := false
		for i := len(starts) - 1; i >= 0; i-- {
			if starts[i] < pos {
				pos = starts[i]
				moved = true
				break
			}
		}
		if !moved {
			break
		}
	}
	return pos
}

// boundsOfThing reports the span of the thing containing pos.
func boundsOfThing(text string, t thing.Thing, pos textspan.Pos) (textspan.Span, bool) {
	for _, span := range spansOf(text, t) {
		if span.Contains(pos) {
			return span, true
		}
	}
	return textspan.Span{}, false
}

// startsOf returns the sorted start offsets of every thing instance in text.
func startsOf(text string, t thing.Thing) []textspan.Pos {
	spans := spansOf(text, t)
	starts := make([]textspan.Pos, len(spans))
	for i, s := range spans {
		starts[i] = s.Start
	}
	return starts
}

// spansOf returns the spans of every instance of t in text, left to right.
func spansOf(text string, t thing.Thing) []textspan.Span {
	switch t {
	case thing.Line:
		return lineSpans(text)
	case thing.Symbol:
		return runSpans(text, symbolRune)
	case thing.Sentence:
		return sentenceSpans(text)
	case thing.Paragraph:
		return paragraphSpans(text)
	default:
		return wordSpans(text)
	}
}

// lineSpans covers each line without its trailing newline.
func lineSpans(text string) []textspan.Span {
	var spans []textspan.Span
	start := 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			spans = append(spans, textspan.NewSpan(textspan.Pos(start), textspan.Pos(i)))
			start = i + 1
		}
	}
	if start < len(text) {
		spans = append(spans, textspan.NewSpan(textspan.Pos(start), textspan.Pos(len(text))))
	}
	return spans
}

// runSpans covers each maximal run of runes satisfying accept.
func runSpans(text string, accept func(rune) bool) []textspan.Span {
	var spans []textspan.Span
	start := -1
	for i, r := range text {
		if accept(r) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			spans = append(spans, textspan.NewSpan(textspan.Pos(start), textspan.Pos(i)))
			start = -1
		}
	}
	if start >= 0 {
		spans = append(spans, textspan.NewSpan(textspan.Pos(start), textspan.Pos(len(text))))
	}
	return spans
}

// symbolRune accepts identifier-like runes.
func symbolRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// wordSpans covers each Unicode word containing letter or number content.
func wordSpans(text string) []textspan.Span {
	var spans []textspan.Span
	var pos int
	state := -1
	rest := text
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if hasWordRune(word) {
			spans = append(spans, textspan.NewSpan(textspan.Pos(pos), textspan.Pos(pos+len(word))))
		}
		pos += len(word)
	}
	return spans
}

// sentenceSpans covers each sentence, trimmed of surrounding whitespace.
func sentenceSpans(text string) []textspan.Span {
	var spans []textspan.Span
	var pos int
	state := -1
	rest := text
	for len(rest) > 0 {
		var sentence string
		sentence, rest, state = uniseg.FirstSentenceInString(rest, state)
		if span, ok := trimSpan(sentence, pos); ok {
			spans = append(spans, span)
		}
		pos += len(sentence)
	}
	return spans
}

// paragraphSpans covers each blank-line separated block.
func paragraphSpans(text string) []textspan.Span {
	var spans []textspan.Span
	start := -1
	lineStart := 0
	flush := func(end int) {
		if start >= 0 {
			spans = append(spans, textspan.NewSpan(textspan.Pos(start), textspan.Pos(end)))
			start = -1
		}
	}
	for i := 0; i <= len(text); i++ {
		if i < len(text) && text[i] != '\n' {
			continue
		}
		line := text[lineStart:i]
		if strings.TrimSpace(line) == "" {
			// End before the newline that closed the previous line.
			flush(lineStart - 1)
		} else if start < 0 {
			start = lineStart
		}
		lineStart = i + 1
	}
	flush(len(text))
	return spans
}

// trimSpan returns the span of s at offset pos with surrounding whitespace
// removed. Returns false when nothing remains.
func trimSpan(s string, pos int) (textspan.Span, bool) {
	trimmed := strings.TrimLeftFunc(s, unicode.IsSpace)
	lead := len(s) - len(trimmed)
	trimmed = strings.TrimRightFunc(trimmed, unicode.IsSpace)
	if trimmed == "" {
		return textspan.Span{}, false
	}
	return textspan.NewSpan(textspan.Pos(pos+lead), textspan.Pos(pos+lead+len(trimmed))), true
}

// hasWordRune reports whether s contains letter or number content.
func hasWordRune(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsNumber(r) {
			return true
		}
	}
	return false
}
