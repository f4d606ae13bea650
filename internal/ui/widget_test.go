package ui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/desertthunder/prefview/internal/models"
	"github.com/desertthunder/prefview/internal/shared"
)

func plainPalette() *Palette {
	return NewPalette(lipgloss.NewRenderer(io.Discard), shared.DefaultConfig().Theme)
}

func newTestWidget(t *testing.T, args models.DisplayArgs, opts Options) *Widget {
	t.Helper()
	if opts.Palette == nil {
		opts.Palette = plainPalette()
	}
	w, err := NewWidget(args, opts)
	if err != nil {
		t.Fatalf("NewWidget() error = %v", err)
	}
	return w
}

// cellText returns the trimmed text of profile cell (col, row) from a rendered view.
func cellText(view string, cw, col, row int) string {
	line := strings.Split(view, "\n")[headerRows+row]
	return strings.TrimSpace(ansi.Cut(line, col*cw, (col+1)*cw))
}

func TestNewWidget(t *testing.T) {
	t.Run("rejects invalid args", func(t *testing.T) {
		args := models.NewDisplayArgs([][]int{{0, 0}}, []int{1}, []string{"A", "B"})
		_, err := NewWidget(args, Options{})
		if !errors.Is(err, shared.ErrInvalidInput) {
			t.Errorf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("starts with nothing hovered", func(t *testing.T) {
		w := newTestWidget(t, marginArgs(), Options{})
		if w.Hover() != NoHover() {
			t.Errorf("Hover() = %+v", w.Hover())
		}
		if w.Clicks() != 0 {
			t.Errorf("Clicks() = %d", w.Clicks())
		}
	})
}

func TestWidgetPinnedHighlight(t *testing.T) {
	args := models.NewDisplayArgs([][]int{{0, 1, 2}}, []int{1}, []string{"A", "B", "C"})
	args.C1 = 1
	w := newTestWidget(t, args, Options{})

	want := []Highlight{HighlightNone, HighlightPrimary, HighlightNone}
	for row, h := range want {
		if got := w.Highlight(0, row); got != h {
			t.Errorf("Highlight(0, %d) = %v, want %v", row, got, h)
		}
	}

	w.Pointer(1, headerRows+1)
	if got := w.Highlight(0, 1); got != HighlightPrimary {
		t.Errorf("hovering a pinned candidate should keep style A, got %v", got)
	}
}

func TestWidgetRendersNames(t *testing.T) {
	args := marginArgs()
	w := newTestWidget(t, args, Options{Gap: 3})
	view := w.ProfileView()

	for col, ranking := range args.Prof {
		for row, cand := range ranking {
			if got := cellText(view, w.Layout().CellWidth, col, row); got != args.CandNames[cand] {
				t.Errorf("cell (%d, %d) = %q, want %q", col, row, got, args.CandNames[cand])
			}
		}
	}

	header := strings.Fields(strings.Split(view, "\n")[0])
	if strings.Join(header, ",") != "1,2,2" {
		t.Errorf("header = %v, want rank sizes", header)
	}
}

func TestWidgetWideNames(t *testing.T) {
	tc := []struct {
		name  string
		names []string
	}{
		{name: "emoji with variation selectors", names: []string{"❤️❤️❤️", "b"}},
		{name: "east asian wide", names: []string{"投票者", "b"}},
		{name: "combining marks", names: []string{"Zoe\u0308", "b"}},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			args := models.NewDisplayArgs([][]int{{0, 1}, {1, 0}}, []int{1, 1}, tt.names)
			w := newTestWidget(t, args, Options{})
			view := w.ProfileView()
			lines := strings.Split(view, "\n")

			if len(lines) != w.Layout().Height() {
				t.Fatalf("rendered %d lines, layout height is %d", len(lines), w.Layout().Height())
			}
			for i, line := range lines {
				if got := lipgloss.Width(line); got != w.Layout().ProfileWidth() {
					t.Errorf("line %d width = %d, want %d", i, got, w.Layout().ProfileWidth())
				}
			}
			for col, ranking := range args.Prof {
				for row, cand := range ranking {
					if got := cellText(view, w.Layout().CellWidth, col, row); got != tt.names[cand] {
						t.Errorf("cell (%d, %d) = %q, want %q", col, row, got, tt.names[cand])
					}
				}
			}
		})
	}

	t.Run("truncated wide name fits the cell", func(t *testing.T) {
		args := models.NewDisplayArgs([][]int{{0, 1}}, []int{1}, []string{"❤️❤️❤️❤️", "b"})
		w := newTestWidget(t, args, Options{MaxNameWidth: 5})
		if got := lipgloss.Width(w.Layout().Name(0)); got > 5 {
			t.Errorf("truncated width = %d, want <= 5", got)
		}
		if lines := strings.Split(w.ProfileView(), "\n"); len(lines) != w.Layout().Height() {
			t.Errorf("rendered %d lines, layout height is %d", len(lines), w.Layout().Height())
		}
	})
}

func TestWidgetEmitsHighlightColors(t *testing.T) {
	var buf bytes.Buffer
	r := lipgloss.NewRenderer(&buf)
	r.SetColorProfile(termenv.TrueColor)
	theme := shared.DefaultConfig().Theme

	args := models.NewDisplayArgs([][]int{{0, 1, 2}}, []int{1}, []string{"A", "B", "C"})
	args.C1, args.C2 = 1, 2
	w := newTestWidget(t, args, Options{Palette: NewPalette(r, theme)})
	w.Pointer(0, headerRows)

	lines := strings.Split(w.ProfileView(), "\n")
	tc := []struct {
		name string
		row  int
		want string
	}{
		{name: "hover", row: 0, want: "48;2;128;128;128"},
		{name: "pinned primary", row: 1, want: "48;2;0;0;255"},
		{name: "pinned secondary", row: 2, want: "48;2;255;0;0"},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			line := lines[headerRows+tt.row]
			if !strings.Contains(line, tt.want) {
				t.Errorf("row %d = %q, want background %q", tt.row, line, tt.want)
			}
			if ansi.Strip(line) == line {
				t.Errorf("row %d carries no styling", tt.row)
			}
		})
	}
}

func TestWidgetPointer(t *testing.T) {
	w := newTestWidget(t, marginArgs(), Options{Gap: 3})

	tc := []struct {
		name    string
		x, y    int
		want    HoverState
		changed bool
	}{
		{name: "enter profile cell", x: 5, y: 3, want: HoverState{Profile: 2, Margin: -1}, changed: true},
		{name: "same cell again", x: 6, y: 3, want: HoverState{Profile: 2, Margin: -1}},
		{name: "enter margin row", x: 20, y: 3, want: HoverState{Profile: 1, Margin: 1}, changed: true},
		{name: "move along margin row", x: 27, y: 3, want: HoverState{Profile: 1, Margin: 1}},
		{name: "leave into gap", x: 12, y: 2, want: NoHover(), changed: true},
		{name: "stay outside", x: 40, y: 0, want: NoHover()},
	}

	for _, tt := range tc {
		t.Run(tt.name, func(t *testing.T) {
			_, changed := w.Pointer(tt.x, tt.y)
			if changed != tt.changed {
				t.Errorf("changed = %v, want %v", changed, tt.changed)
			}
			if w.Hover() != tt.want {
				t.Errorf("Hover() = %+v, want %+v", w.Hover(), tt.want)
			}
		})
	}
}

func TestWidgetMarginHoverHighlightsProfile(t *testing.T) {
	w := newTestWidget(t, marginArgs(), Options{Gap: 3})
	w.Pointer(20, headerRows+2)

	for col, ranking := range w.Args().Prof {
		for row, cand := range ranking {
			want := HighlightNone
			if cand == 2 {
				want = HighlightHover
			}
			if got := w.Highlight(col, row); got != want {
				t.Errorf("Highlight(%d, %d) = %v, want %v", col, row, got, want)
			}
		}
	}
}

func TestWidgetLeave(t *testing.T) {
	w := newTestWidget(t, marginArgs(), Options{})
	if w.Leave() {
		t.Error("Leave() with nothing hovered should report false")
	}
	w.Pointer(0, headerRows)
	if !w.Leave() {
		t.Error("Leave() after hover should report true")
	}
	if w.Hover() != NoHover() {
		t.Errorf("Hover() = %+v", w.Hover())
	}
}

func TestWidgetMargins(t *testing.T) {
	t.Run("absent", func(t *testing.T) {
		args := marginArgs()
		args.MarginMatrix = nil
		w := newTestWidget(t, args, Options{Gap: 3})
		if w.MarginView() != "" {
			t.Errorf("MarginView() = %q, want empty", w.MarginView())
		}
		if strings.Contains(w.View(), cellSeparator) {
			t.Error("View() should not contain margin table markup")
		}
		if w.View() != w.ProfileView() {
			t.Error("View() should equal ProfileView() without margins")
		}
	})

	t.Run("present", func(t *testing.T) {
		w := newTestWidget(t, marginArgs(), Options{Gap: 3})
		lines := strings.Split(w.View(), "\n")
		if len(lines) != w.Layout().Height() {
			t.Fatalf("View() has %d lines, want %d", len(lines), w.Layout().Height())
		}

		margin := strings.Split(w.MarginView(), "\n")
		fields := strings.Split(margin[2], cellSeparator)
		got := []string{}
		for _, f := range fields {
			got = append(got, strings.TrimSpace(f))
		}
		if strings.Join(got, ",") != "A,0,1,-1" {
			t.Errorf("first margin row = %v", got)
		}
		if !strings.Contains(lines[2], "   A ") {
			t.Errorf("expected gap before the margin table, got %q", lines[2])
		}
	})
}

func TestWidgetClick(t *testing.T) {
	var got []int
	w := newTestWidget(t, marginArgs(), Options{OnValue: func(v int) { got = append(got, v) }})

	for range 3 {
		w.Click()
	}

	if w.Clicks() != 3 {
		t.Errorf("Clicks() = %d, want 3", w.Clicks())
	}
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Errorf("sink received %v, want [1 2 3]", got)
	}

	t.Run("without sink", func(t *testing.T) {
		w := newTestWidget(t, marginArgs(), Options{})
		if n := w.Click(); n != 1 {
			t.Errorf("Click() = %d, want 1", n)
		}
	})
}
