package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	ruleChar      = "─"
	ruleCross     = "┼"
	cellSeparator = "│"
)

// profileLines draws the profile table, one string per widget line.
func (w *Widget) profileLines() []string {
	l, p, a := w.layout, w.palette, w.args
	lines := make([]string, 0, l.Height())

	var header strings.Builder
	for _, size := range a.RankSizes {
		header.WriteString(centered(p.header, l.CellWidth, strconv.Itoa(size)))
	}
	lines = append(lines, header.String())
	lines = append(lines, p.rule.Render(strings.Repeat(ruleChar, l.ProfileWidth())))

	for row := 0; row < l.Rows; row++ {
		var line strings.Builder
		for col := range a.Prof {
			cand := a.Prof[col][row]
			line.WriteString(centered(p.For(w.Highlight(col, row)), l.CellWidth, l.Name(cand)))
		}
		lines = append(lines, line.String())
	}

	return lines
}

// marginLines draws the margin table, or returns nil when there is no matrix.
func (w *Widget) marginLines() []string {
	l, p, a := w.layout, w.palette, w.args
	if !l.HasMargins {
		return nil
	}

	sep := p.rule.Render(cellSeparator)
	lines := make([]string, 0, l.Height())

	cells := []string{centered(p.header, l.CellWidth, "")}
	for c := 0; c < l.Rows; c++ {
		cells = append(cells, centered(p.header, l.CellWidth, l.Name(c)))
	}
	lines = append(lines, strings.Join(cells, sep))

	rule := make([]string, l.Rows+1)
	for i := range rule {
		rule[i] = strings.Repeat(ruleChar, l.CellWidth)
	}
	lines = append(lines, p.rule.Render(strings.Join(rule, ruleCross)))

	for r, mrow := range a.MarginMatrix {
		cells := []string{centered(p.header, l.CellWidth, l.Name(r))}
		for _, m := range mrow {
			cells = append(cells, centered(p.cell, l.CellWidth, strconv.Itoa(m)))
		}
		lines = append(lines, strings.Join(cells, sep))
	}

	return lines
}

// centered renders text centered in a cell of the given width.
func centered(s lipgloss.Style, width int, text string) string {
	return s.Width(width).Align(lipgloss.Center).Render(text)
}
