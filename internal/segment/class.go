package segment

import (
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/dshills/cjkmark/internal/textspan"
)

// cjkScripts are the Unicode scripts treated as CJK regardless of their
// East Asian width property.
var cjkScripts = []*unicode.RangeTable{
	unicode.Han,
	unicode.Hiragana,
	unicode.Katakana,
	unicode.Hangul,
	unicode.Bopomofo,
}

// IsCJK reports whether r belongs to the CJK character class.
// A rune qualifies by script (Han, kana, Hangul, Bopomofo) or by carrying an
// East Asian wide or fullwidth width property, excluding punctuation and
// symbols so that fullwidth brackets do not route to segment selection.
func IsCJK(r rune) bool {
	for _, rt := range cjkScripts {
		if unicode.Is(rt, r) {
			return true
		}
	}
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return !unicode.IsPunct(r) && !unicode.IsSymbol(r)
	}
	return false
}

// CJKAt reports whether the rune beginning at pos in text is CJK.
// Positions outside the text, or in the middle of a rune, are not CJK.
func CJKAt(text string, pos textspan.Pos) bool {
	if pos < 0 || pos >= textspan.Pos(len(text)) {
		return false
	}
	r, size := utf8.DecodeRuneInString(text[pos:])
	if r == utf8.RuneError && size <= 1 {
		return false
	}
	return IsCJK(r)
}
