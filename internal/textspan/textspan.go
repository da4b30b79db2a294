// Package textspan provides the offset, span, and direction value types
// shared by the selection and movement packages.
package textspan

import "fmt"

// Pos represents a byte position in a text buffer.
// This is the fundamental position type, directly indexing into the text.
type Pos = int64

// Span represents a byte range in a buffer.
// Start is inclusive, End is exclusive: [Start, End).
// Spans are used both in absolute buffer coordinates and relative to the
// start of a scanned range; Shift translates between the two.
type Span struct {
	Start Pos // Inclusive start position
	End   Pos // Exclusive end position
}

// NewSpan creates a new Span from start and end offsets.
func NewSpan(start, end Pos) Span {
	return Span{Start: start, End: end}
}

// String returns a human-readable representation of the span.
func (s Span) String() string {
	return fmt.Sprintf("[%d:%d)", s.Start, s.End)
}

// Len returns the length of the span in bytes.
func (s Span) Len() Pos {
	return s.End - s.Start
}

// IsEmpty returns true if the span has zero length.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// IsValid returns true if the span is valid (Start <= End).
func (s Span) IsValid() bool {
	return s.Start <= s.End
}

// Contains returns true if the given offset is within the span.
// The start is inclusive and the end is exclusive, so an offset exactly at
// a boundary belongs to the span starting there, not the one ending there.
func (s Span) Contains(offset Pos) bool {
	return offset >= s.Start && offset < s.End
}

// Shift returns a new span translated by the given delta.
func (s Span) Shift(delta Pos) Span {
	return Span{
		Start: s.Start + delta,
		End:   s.End + delta,
	}
}

// Clamp returns a span clamped to the valid range [0, maxOffset].
func (s Span) Clamp(maxOffset Pos) Span {
	start := s.Start
	end := s.End

	if start < 0 {
		start = 0
	} else if start > maxOffset {
		start = maxOffset
	}

	if end < 0 {
		end = 0
	} else if end > maxOffset {
		end = maxOffset
	}

	return Span{Start: start, End: end}
}

// Between returns the span covering the two offsets regardless of their order.
func Between(a, b Pos) Span {
	if a <= b {
		return Span{Start: a, End: b}
	}
	return Span{Start: b, End: a}
}
