package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/desertthunder/prefview/internal/shared"
)

// Palette is a simple stylesheet built with named [lipgloss.Style] fields
type Palette struct {
	title     lipgloss.Style
	header    lipgloss.Style
	rule      lipgloss.Style
	cell      lipgloss.Style
	primary   lipgloss.Style // style A: pinned c1
	secondary lipgloss.Style // style B: pinned c2
	hover     lipgloss.Style // style C: transient hover
	help      lipgloss.Style
	err       lipgloss.Style
}

// NewPalette builds the widget styles from theme colors using renderer r.
//
// A nil renderer uses [lipgloss.DefaultRenderer].
func NewPalette(r *lipgloss.Renderer, theme shared.ThemeConfig) *Palette {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	highlight := func(bg string) lipgloss.Style {
		return r.NewStyle().
			Background(lipgloss.Color(bg)).
			Foreground(lipgloss.Color(theme.Foreground))
	}

	return &Palette{
		title:     r.NewStyle().Foreground(lipgloss.Color(theme.Title)).Bold(true).MarginBottom(1),
		header:    r.NewStyle(),
		rule:      r.NewStyle().Foreground(lipgloss.Color(theme.HeaderRule)),
		cell:      r.NewStyle(),
		primary:   highlight(theme.PinnedPrimary),
		secondary: highlight(theme.PinnedSecondary),
		hover:     highlight(theme.Hover),
		help:      r.NewStyle().Foreground(lipgloss.Color("#626262")).Italic(true),
		err:       r.NewStyle().Foreground(lipgloss.Color(theme.PinnedSecondary)).Bold(true),
	}
}

// DefaultPalette uses the embedded default theme.
func DefaultPalette() *Palette {
	return NewPalette(nil, shared.DefaultConfig().Theme)
}

// For returns the cell style of a highlight level.
func (p *Palette) For(h Highlight) lipgloss.Style {
	switch h {
	case HighlightPrimary:
		return p.primary
	case HighlightSecondary:
		return p.secondary
	case HighlightHover:
		return p.hover
	default:
		return p.cell
	}
}
