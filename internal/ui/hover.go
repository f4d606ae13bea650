package ui

import "github.com/desertthunder/prefview/internal/models"

// HoverState holds the hovered candidate of each table. [models.NoCandidate] means none.
type HoverState struct {
	Profile int
	Margin  int
}

// NoHover is the state with nothing hovered.
func NoHover() HoverState {
	return HoverState{Profile: models.NoCandidate, Margin: models.NoCandidate}
}

// EnterProfile is the pointer entering a profile cell holding candidate c.
func (h HoverState) EnterProfile(c int) HoverState {
	return HoverState{Profile: c, Margin: models.NoCandidate}
}

// EnterMargin is the pointer entering a margin cell in row r; the row candidate is marked in both tables.
func (h HoverState) EnterMargin(r int) HoverState {
	return HoverState{Profile: r, Margin: r}
}

// Leave is the pointer leaving any cell.
func (h HoverState) Leave() HoverState {
	return NoHover()
}

// Active reports whether anything is hovered.
func (h HoverState) Active() bool {
	return h.Profile != models.NoCandidate || h.Margin != models.NoCandidate
}

// Highlight is the visual state of one profile cell.
type Highlight int

const (
	HighlightNone      Highlight = iota
	HighlightPrimary             // style A
	HighlightSecondary           // style B
	HighlightHover               // style C
)

func (h Highlight) String() string {
	switch h {
	case HighlightPrimary:
		return "primary"
	case HighlightSecondary:
		return "secondary"
	case HighlightHover:
		return "hover"
	default:
		return "none"
	}
}

// CellHighlight applies the precedence c1 > c2 > hover to the candidate shown in a cell.
func CellHighlight(cand, c1, c2, hovered int) Highlight {
	switch {
	case cand == c1:
		return HighlightPrimary
	case cand == c2:
		return HighlightSecondary
	case cand == hovered:
		return HighlightHover
	default:
		return HighlightNone
	}
}
