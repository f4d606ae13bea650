package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/desertthunder/prefview/internal/models"
)

// Model hosts a [Widget] in a bubbletea program.
//
// Run it with tea.WithAltScreen and tea.WithMouseAllMotion so that screen coordinates
// start at the top-left of the view and every pointer move is reported.
type Model struct {
	widget   *Widget
	title    string
	showHelp bool
	width    int
	height   int
	help     help.Model
	keys     keyMap
	logger   *log.Logger
}

// NewModel creates a TUI model around w. A nil logger discards log output.
func NewModel(w *Widget, title string, showHelp bool, logger *log.Logger) *Model {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Model{
		widget:   w,
		title:    title,
		showHelp: showHelp,
		help:     help.New(),
		keys:     newKeyMap(),
		logger:   logger,
	}
}

// Widget returns the hosted widget.
func (m *Model) Widget() *Widget { return m.widget }

// Init implements [tea.Model]. The widget has no startup work.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.clear):
			if m.widget.Leave() {
				m.logger.Debug("hover cleared")
			}
		case key.Matches(msg, m.keys.help):
			m.help.ShowAll = !m.help.ShowAll
		}
		return m, nil

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	x, y := msg.X, msg.Y-m.widgetTop()

	switch msg.Action {
	case tea.MouseActionMotion:
		if t, changed := m.widget.Pointer(x, y); changed {
			hover := m.widget.Hover()
			m.logger.Debug("hover", "target", t.Kind, "profile", hover.Profile, "margin", hover.Margin)
		}
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if t := m.widget.Layout().HitTest(x, y); t.Kind != TargetNone {
			n := m.widget.Click()
			m.logger.Debug("click", "target", t.Kind, "value", n)
		}
	}

	return m, nil
}

// View renders the title, the widget and the footer.
func (m *Model) View() string {
	parts := []string{}
	if title := m.renderTitle(); title != "" {
		parts = append(parts, title)
	}
	parts = append(parts, m.widget.View())
	if m.showHelp {
		parts = append(parts, "", m.renderStatus(), m.help.View(m.keys))
	}
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderTitle() string {
	if m.title == "" {
		return ""
	}
	return m.widget.palette.title.Render(m.title)
}

// widgetTop is the screen row of the widget's first line.
func (m *Model) widgetTop() int {
	title := m.renderTitle()
	if title == "" {
		return 0
	}
	return lipgloss.Height(title)
}

func (m *Model) renderStatus() string {
	a, h := m.widget.Args(), m.widget.Hover()
	name := func(c int) string {
		if c == models.NoCandidate {
			return "-"
		}
		return a.Name(c)
	}

	fields := []string{
		fmt.Sprintf("voters: %d", a.NumVoters()),
		fmt.Sprintf("hover: %s", name(h.Profile)),
	}
	if a.HasMargins() {
		fields = append(fields, fmt.Sprintf("margin row: %s", name(h.Margin)))
	}
	if a.C1 != models.NoCandidate || a.C2 != models.NoCandidate {
		fields = append(fields, fmt.Sprintf("pinned: %s, %s", name(a.C1), name(a.C2)))
	}
	status := m.widget.palette.help.Render(strings.Join(fields, " • "))

	// Wrapped lines would no longer line up with the hit-test grid.
	if need := m.widget.Width(); m.width > 0 && m.width < need {
		warning := fmt.Sprintf("window too narrow: need %d columns", need)
		status = lipgloss.JoinVertical(lipgloss.Left, m.widget.palette.err.Render(warning), status)
	}
	return status
}
