package ui

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/desertthunder/prefview/internal/models"
)

const (
	headerRows  = 2 // header line and the rule beneath it
	cellPadding = 2
	minCellText = 1
	ellipsis    = "…"
)

// Layout is the cell geometry shared by the renderer and the hit-tester.
//
// Both tables use one cell width. Row 0 is the header, row 1 a rule, row 2+r holds rank/candidate r.
// The margin table starts MarginX columns from the widget's left edge and separates cells with a
// one column rule.
type Layout struct {
	CellWidth   int
	ProfileCols int
	Rows        int
	MarginX     int
	HasMargins  bool
	names       []string
}

// NewLayout sizes cells to the widest name, voter count or margin.
//
// Names wider than maxNameWidth are truncated; zero means no limit. Widths are grapheme widths,
// the same measure lipgloss pads cells with.
func NewLayout(args models.DisplayArgs, gap, maxNameWidth int) Layout {
	names := make([]string, args.NumCands)
	text := minCellText
	for c := range names {
		name := args.CandNames[c]
		if maxNameWidth > 0 && lipgloss.Width(name) > maxNameWidth {
			name = ansi.Truncate(name, maxNameWidth, ellipsis)
		}
		names[c] = name
		text = max(text, lipgloss.Width(name))
	}
	for _, n := range args.RankSizes {
		text = max(text, len(strconv.Itoa(n)))
	}
	for _, row := range args.MarginMatrix {
		for _, m := range row {
			text = max(text, len(strconv.Itoa(m)))
		}
	}

	l := Layout{
		CellWidth:   text + cellPadding,
		ProfileCols: len(args.Prof),
		Rows:        args.NumCands,
		HasMargins:  args.HasMargins(),
		names:       names,
	}
	l.MarginX = l.ProfileWidth() + gap
	return l
}

// Name returns the display (possibly truncated) name of candidate c.
func (l Layout) Name(c int) string {
	return l.names[c]
}

// ProfileWidth is the width of the profile table in columns.
func (l Layout) ProfileWidth() int {
	return l.ProfileCols * l.CellWidth
}

// MarginWidth is the width of the margin table: Rows+1 cells and Rows separators.
func (l Layout) MarginWidth() int {
	if !l.HasMargins {
		return 0
	}
	return (l.Rows+1)*l.CellWidth + l.Rows
}

// Height is the number of lines of the widget.
func (l Layout) Height() int {
	return headerRows + l.Rows
}

// TargetKind says what a point of the widget is over.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetProfileCell
	TargetMarginCell
)

func (k TargetKind) String() string {
	switch k {
	case TargetProfileCell:
		return "profile"
	case TargetMarginCell:
		return "margin"
	default:
		return "none"
	}
}

// Target is the result of hit-testing one point.
//
// For profile cells Col is the ranking column and Row the rank position.
// For margin cells Row and Col are the candidate indices of the matrix entry.
type Target struct {
	Kind TargetKind
	Col  int
	Row  int
}

// HitTest maps a point in widget coordinates to the cell under it.
//
// Header rows, the margin table's name column and separators are not cells.
func (l Layout) HitTest(x, y int) Target {
	row := y - headerRows
	if x < 0 || row < 0 || row >= l.Rows {
		return Target{}
	}

	if x < l.ProfileWidth() {
		return Target{Kind: TargetProfileCell, Col: x / l.CellWidth, Row: row}
	}

	mx := x - l.MarginX
	if !l.HasMargins || mx < 0 || mx >= l.MarginWidth() {
		return Target{}
	}

	stride := l.CellWidth + 1
	if mx%stride == l.CellWidth {
		return Target{}
	}
	col := mx / stride
	if col == 0 {
		return Target{}
	}
	return Target{Kind: TargetMarginCell, Col: col - 1, Row: row}
}
