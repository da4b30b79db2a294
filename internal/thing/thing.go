// Package thing defines movement granularities and their per-direction
// include-syntax policies.
//
// A Thing names a unit of movement: word, line, symbol, sentence, or
// paragraph. Each Thing may carry an include-syntax entry describing extra
// characters absorbed into a selection at the edge reached by a movement.
// Things with no registered entry absorb nothing.
package thing

// Thing identifies a movement granularity.
// The set of things is a closed enumeration; unknown values behave like
// unregistered things (no include-syntax, generic stepping).
type Thing uint8

const (
	// Word moves by linguistic words. Word movement is segmentation-aware:
	// inside CJK text it follows segment boundaries rather than whitespace.
	Word Thing = iota

	// Line moves by buffer lines.
	Line

	// Symbol moves by identifier-like runs (letters, digits, underscores).
	Symbol

	// Sentence moves by sentences.
	Sentence

	// Paragraph moves by blank-line separated blocks.
	Paragraph

	numThings // sentinel, keep last
)

// String returns the thing's name.
func (t Thing) String() string {
	switch t {
	case Word:
		return "word"
	case Line:
		return "line"
	case Symbol:
		return "symbol"
	case Sentence:
		return "sentence"
	case Paragraph:
		return "paragraph"
	default:
		return "unknown"
	}
}

// IsValid returns true if t is a member of the closed enumeration.
func (t Thing) IsValid() bool {
	return t < numThings
}

// Parse returns the thing named by s.
// Returns false for names outside the enumeration.
func Parse(s string) (Thing, bool) {
	switch s {
	case "word":
		return Word, true
	case "line":
		return Line, true
	case "symbol":
		return Symbol, true
	case "sentence":
		return Sentence, true
	case "paragraph":
		return Paragraph, true
	default:
		return 0, false
	}
}

// Things returns all members of the enumeration.
func Things() []Thing {
	return []Thing{Word, Line, Symbol, Sentence, Paragraph}
}
