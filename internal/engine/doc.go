// Package engine implements CJK-aware text object selection and repeat
// movement.
//
// The engine maps a cursor position and a requested movement granularity to
// a selection or a new cursor position, respecting CJK segmentation where
// words are not whitespace-delimited. It owns no editor state: the host
// supplies the buffer, the generic thing stepper, the selection realizer,
// and the search ring, and the engine drives them synchronously within one
// command invocation.
//
// # Strategies
//
// Two selection strategies exist, chosen once at construction:
//
//   - CJKSegmentStrategy: scans the word-like run around the cursor, splits
//     it into segments, and selects the segment containing the cursor.
//   - GenericThingStrategy: delegates to the host's thing-at-point bounds.
//
// A mark request routes to the generic strategy when the requested category
// is symbol or the rune at the cursor is not CJK; everything else takes the
// segment path.
//
// # Movement
//
// NextThing moves across a signed count of things. Word movement delegates
// to the segmentation source's counted stepper; other things use the host
// stepper. A movement that does not change the position is a complete no-op:
// no selection, no search registration, no overlay callbacks.
package engine
