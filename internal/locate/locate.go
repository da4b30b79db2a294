// Package locate maps a cursor offset to the segment that contains it
// within a scanned range.
package locate

import "github.com/dshills/cjkmark/internal/textspan"

// Locate finds the segment containing cursor and returns its absolute span.
//
// segments carry offsets relative to scan.Start, in left-to-right order.
// A segment matches when the relative cursor falls in [Start, End); when
// several match the last one in iteration order wins. The full sequence is
// always scanned rather than stopping at the first hit: overlapping input is
// not rejected, and the trailing match is the one reported.
//
// When nothing matches, the first segment is returned as the default, so a
// non-empty sequence always yields a result. Only an empty sequence or an
// empty scanned range reports false.
func Locate(cursor textspan.Pos, scan textspan.Span, segments []textspan.Span) (textspan.Span, bool) {
	if scan.IsEmpty() || len(segments) == 0 {
		return textspan.Span{}, false
	}

	rel := cursor - scan.Start
	match := segments[0]
	for _, seg := range segments {
		if rel >= seg.Start && rel < seg.End {
			match = seg
		}
	}
	return match.Shift(scan.Start), true
}
