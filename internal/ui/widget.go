package ui

import (
	"strings"

	"github.com/desertthunder/prefview/internal/models"
)

// ValueFunc receives the widget's outbound value.
type ValueFunc func(value int)

// Options configures a [Widget].
type Options struct {
	Gap          int       // columns between the profile and margin tables
	MaxNameWidth int       // truncate longer candidate names; 0 disables
	Palette      *Palette  // nil uses [DefaultPalette]
	OnValue      ValueFunc // optional sink for [Widget.Click]
}

// Widget renders one [models.DisplayArgs] record and tracks its hover state.
//
// The arguments never change after construction; only the hover fields and the click counter do.
type Widget struct {
	args    models.DisplayArgs
	layout  Layout
	palette *Palette
	gap     int
	hover   HoverState
	clicks  int
	onValue ValueFunc
}

// NewWidget validates args and lays out the tables.
func NewWidget(args models.DisplayArgs, opts Options) (*Widget, error) {
	if err := args.Validate(); err != nil {
		return nil, err
	}
	if opts.Palette == nil {
		opts.Palette = DefaultPalette()
	}
	if opts.Gap < 0 {
		opts.Gap = 0
	}

	return &Widget{
		args:    args,
		layout:  NewLayout(args, opts.Gap, opts.MaxNameWidth),
		palette: opts.Palette,
		gap:     opts.Gap,
		hover:   NoHover(),
		onValue: opts.OnValue,
	}, nil
}

func (w *Widget) Args() models.DisplayArgs { return w.args }
func (w *Widget) Layout() Layout           { return w.layout }
func (w *Widget) Hover() HoverState        { return w.hover }
func (w *Widget) Clicks() int              { return w.clicks }

// CandidateAt returns the candidate shown at rank position row of ranking column col.
func (w *Widget) CandidateAt(col, row int) int {
	return w.args.Prof[col][row]
}

// Highlight returns the style level of a profile cell.
func (w *Widget) Highlight(col, row int) Highlight {
	return CellHighlight(w.CandidateAt(col, row), w.args.C1, w.args.C2, w.hover.Profile)
}

// Pointer applies the transition for the pointer being at (x, y) in widget coordinates
// and reports whether the hover state changed.
func (w *Widget) Pointer(x, y int) (Target, bool) {
	t := w.layout.HitTest(x, y)

	next := w.hover
	switch t.Kind {
	case TargetProfileCell:
		next = next.EnterProfile(w.CandidateAt(t.Col, t.Row))
	case TargetMarginCell:
		next = next.EnterMargin(t.Row)
	default:
		next = next.Leave()
	}

	changed := next != w.hover
	w.hover = next
	return t, changed
}

// Leave resets hover state and reports whether anything was hovered.
func (w *Widget) Leave() bool {
	was := w.hover.Active()
	w.hover = w.hover.Leave()
	return was
}

// Click increments the click counter and forwards it to the value sink, if any.
func (w *Widget) Click() int {
	w.clicks++
	if w.onValue != nil {
		w.onValue(w.clicks)
	}
	return w.clicks
}

// Width is the number of columns [Widget.View] occupies.
func (w *Widget) Width() int {
	if !w.layout.HasMargins {
		return w.layout.ProfileWidth()
	}
	return w.layout.MarginX + w.layout.MarginWidth()
}

// ProfileView renders the profile table alone.
func (w *Widget) ProfileView() string {
	return strings.Join(w.profileLines(), "\n")
}

// MarginView renders the margin table alone; empty when there is no matrix.
func (w *Widget) MarginView() string {
	return strings.Join(w.marginLines(), "\n")
}

// View renders both tables side by side.
func (w *Widget) View() string {
	profile := w.profileLines()
	margins := w.marginLines()
	if margins == nil {
		return strings.Join(profile, "\n")
	}

	gap := strings.Repeat(" ", w.gap)
	lines := make([]string, len(profile))
	for i := range profile {
		lines[i] = profile[i] + gap + margins[i]
	}
	return strings.Join(lines, "\n")
}
