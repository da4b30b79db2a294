package thing

import "sync"

// IncludeSyntax describes the extra characters absorbed into a selection at
// the edge reached by a movement. Forward applies when moving toward the end
// of the buffer, Backward when moving toward the start. Each field is a set
// of characters; absorption stops at the first character outside the set.
type IncludeSyntax struct {
	Forward  string
	Backward string
}

// IsZero returns true if neither direction absorbs anything.
func (s IncludeSyntax) IsZero() bool {
	return s.Forward == "" && s.Backward == ""
}

// Edge returns the character set for the edge reached by a movement with
// the given signed repeat count.
func (s IncludeSyntax) Edge(n int) string {
	if n < 0 {
		return s.Backward
	}
	return s.Forward
}

// Registry maps things to their include-syntax entries.
// Unregistered things resolve to the zero entry (absorb nothing).
// The registry may be mutated at configuration time while movements read it,
// so access is guarded.
type Registry struct {
	mu      sync.RWMutex
	entries map[Thing]IncludeSyntax
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		entries: make(map[Thing]IncludeSyntax),
	}
}

// Set registers or replaces the include-syntax entry for a thing.
func (r *Registry) Set(t Thing, syntax IncludeSyntax) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[t] = syntax
}

// Remove deletes the entry for a thing, restoring the default.
func (r *Registry) Remove(t Thing) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, t)
}

// Lookup returns the entry for a thing.
// Unregistered things return the zero entry.
func (r *Registry) Lookup(t Thing) IncludeSyntax {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.entries[t]
}

// Resolve returns the character set absorbed at the edge reached by moving
// t with the given signed repeat count.
func (r *Registry) Resolve(t Thing, n int) string {
	return r.Lookup(t).Edge(n)
}

// Registered returns the things that have an explicit entry.
func (r *Registry) Registered() []Thing {
	r.mu.RLock()
	defer r.mu.RUnlock()
	things := make([]Thing, 0, len(r.entries))
	for t := range r.entries {
		things = append(things, t)
	}
	return things
}
