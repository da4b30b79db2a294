package selection

import (
	"testing"

	"github.com/dshills/cjkmark/internal/textspan"
	"github.com/dshills/cjkmark/internal/thing"
)

func TestAnchorHeadForward(t *testing.T) {
	s := New(Select, textspan.NewSpan(10, 20), thing.Word, textspan.Forward)

	if s.Anchor() != 10 {
		t.Errorf("forward anchor should be the start, got %d", s.Anchor())
	}
	if s.Head() != 20 {
		t.Errorf("forward head should be the end, got %d", s.Head())
	}
}

func TestAnchorHeadBackward(t *testing.T) {
	s := New(Expand, textspan.NewSpan(10, 20), thing.Word, textspan.Backward)

	if s.Anchor() != 20 {
		t.Errorf("backward anchor should be the end, got %d", s.Anchor())
	}
	if s.Head() != 10 {
		t.Errorf("backward head should be the start, got %d", s.Head())
	}
}

func TestKindString(t *testing.T) {
	if Expand.String() != "expand" {
		t.Errorf("got %q", Expand.String())
	}
	if Select.String() != "select" {
		t.Errorf("got %q", Select.String())
	}
}
