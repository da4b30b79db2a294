package segment

import (
	"fmt"
	"sync"

	"github.com/dshills/cjkmark/internal/textspan"
)

// Lazy wraps a Source, deferring its Load until first use.
//
// Load runs the underlying load exactly once; the result is sticky, so a
// failed load is reported on every call rather than retried. Operations
// other than Load degrade to no movement when the underlying source never
// loaded.
type Lazy struct {
	src  Source
	once sync.Once
	err  error
}

// NewLazy wraps src with once-only loading.
func NewLazy(src Source) *Lazy {
	return &Lazy{src: src}
}

// Load implements Source. The first call loads the underlying source;
// subsequent calls return the recorded result.
func (l *Lazy) Load() error {
	l.once.Do(func() {
		if err := l.src.Load(); err != nil {
			l.err = fmt.Errorf("loading segmentation source: %w", err)
		}
	})
	return l.err
}

// Segments implements Source.
func (l *Lazy) Segments(text string) []textspan.Span {
	if l.Load() != nil {
		return nil
	}
	return l.src.Segments(text)
}

// StepWords implements Source.
func (l *Lazy) StepWords(text string, pos textspan.Pos, count int) textspan.Pos {
	if l.Load() != nil {
		return pos
	}
	return l.src.StepWords(text, pos, count)
}

// BoundsForScan implements Source.
func (l *Lazy) BoundsForScan(text string, pos textspan.Pos, dir textspan.Direction) (textspan.Span, bool) {
	if l.Load() != nil {
		return textspan.Span{}, false
	}
	return l.src.BoundsForScan(text, pos, dir)
}
