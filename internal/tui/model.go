// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/typr-dev/typr/internal/render"
	"github.com/typr-dev/typr/internal/session"
)

// pollInterval bounds the wait between frames so the timer keeps
// updating without keystrokes.
const pollInterval = 50 * time.Millisecond

var (
	statusStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Underline(true)
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cursorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5AA9E6")).Underline(true).Bold(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea typing UI over a session engine.
type Model struct {
	engine  *session.Engine
	showWPM bool

	width  int
	height int
}

type tickMsg time.Time

// NewModel constructs a typing TUI model.
func NewModel(engine *session.Engine, showWPM bool) *Model {
	return &Model{engine: engine, showWPM: showWPM}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return pollTick()
}

func pollTick() tea.Cmd {
	return tea.Tick(pollInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.engine.Tick()
		if m.engine.State() == session.Completed {
			return m, tea.Quit
		}
		return m, pollTick()
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.engine.Cancel()
			return m, tea.Quit
		case tea.KeyBackspace, tea.KeyDelete:
			m.engine.Backspace()
		case tea.KeySpace:
			m.engine.Key(' ')
		case tea.KeyRunes:
			for _, r := range msg.Runes {
				m.engine.Key(r)
			}
		}
		if m.engine.State() == session.Completed {
			return m, tea.Quit
		}
		return m, nil
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	width := m.width
	if width <= 0 {
		width = 80
	}
	height := m.height
	if height <= 0 {
		height = 24
	}
	textWidth := width - 4
	if textWidth < 1 {
		textWidth = 1
	}
	textHeight := height - 4
	if textHeight < 1 {
		textHeight = 1
	}

	layout := render.Project(m.engine, textWidth, textHeight, m.showWPM)

	statusLine := lipgloss.Place(width, 1, lipgloss.Center, lipgloss.Center,
		statusStyle.Render(layout.Status))
	body := lipgloss.Place(width, height-2, lipgloss.Center, lipgloss.Center,
		renderRows(layout.Rows))
	footerLine := lipgloss.Place(width, 1, lipgloss.Center, lipgloss.Center,
		footerStyle.Render("ESC: Quit"))

	return statusLine + "\n" + body + "\n" + footerLine
}

func renderRows(rows [][]render.Cell) string {
	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		var b strings.Builder
		for _, cell := range row {
			b.WriteString(styleFor(cell.Class).Render(string(cell.Rune)))
		}
		lines = append(lines, b.String())
	}
	return strings.Join(lines, "\n")
}

func styleFor(class render.CharClass) lipgloss.Style {
	switch class {
	case render.ClassCorrect:
		return correctStyle
	case render.ClassIncorrect:
		return incorrectStyle
	case render.ClassCursor:
		return cursorStyle
	default:
		return pendingStyle
	}
}
