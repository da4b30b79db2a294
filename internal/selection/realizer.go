package selection

// Realizer is implemented by hosts that can display and track selections.
//
// The engine always requests extend; the realizer differentiates expand and
// select kinds itself. The realizer owns the active selection for the
// duration of the host's command cycle.
type Realizer interface {
	// Realize makes the selection current in the host.
	Realize(sel Selection, extend bool) error

	// Active returns the current selection, if any.
	Active() (Selection, bool)

	// Clear discards the current selection.
	Clear()
}

// SearchRing is implemented by hosts with a search-pattern ring and match
// highlighting.
type SearchRing interface {
	// PushPattern registers pattern as the active search pattern.
	PushPattern(pattern string)

	// HighlightAll highlights every match of pattern in the buffer.
	HighlightAll(pattern string)
}
