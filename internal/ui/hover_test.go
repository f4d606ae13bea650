package ui

import (
	"testing"

	"github.com/desertthunder/prefview/internal/models"
)

func TestHoverTransitions(t *testing.T) {
	h := NoHover()
	if h.Active() {
		t.Fatal("initial state should not be active")
	}

	h = h.EnterProfile(2)
	if h.Profile != 2 || h.Margin != models.NoCandidate {
		t.Errorf("EnterProfile(2) = %+v", h)
	}

	h = h.EnterMargin(1)
	if h.Profile != 1 || h.Margin != 1 {
		t.Errorf("EnterMargin(1) should mark row 1 in both tables, got %+v", h)
	}

	h = h.EnterProfile(0)
	if h.Profile != 0 || h.Margin != models.NoCandidate {
		t.Errorf("EnterProfile after margin should clear margin hover, got %+v", h)
	}

	h = h.Leave()
	if h != NoHover() {
		t.Errorf("Leave() = %+v, want %+v", h, NoHover())
	}
}

func TestCellHighlight(t *testing.T) {
	const none = models.NoCandidate

	tc := []struct {
		name    string
		cand    int
		c1, c2  int
		hovered int
		want    Highlight
	}{
		{name: "c1 wins over everything", cand: 1, c1: 1, c2: 1, hovered: 1, want: HighlightPrimary},
		{name: "c1 without others", cand: 0, c1: 0, c2: none, hovered: none, want: HighlightPrimary},
		{name: "c2 over hover", cand: 2, c1: 1, c2: 2, hovered: 2, want: HighlightSecondary},
		{name: "hover when not pinned", cand: 0, c1: 1, c2: 2, hovered: 0, want: HighlightHover},
		{name: "unstyled", cand: 0, c1: 1, c2: 2, hovered: none, want: HighlightNone},
		{name: "unpinned selectors never match", cand: 0, c1: none, c2: none, hovered: none, want: HighlightNone},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			if got := CellHighlight(tt.cand, tt.c1, tt.c2, tt.hovered); got != tt.want {
				t.Errorf("CellHighlight() = %v, want %v", got, tt.want)
			}
		})
	}
}
