// Package statsui provides the Bubble Tea history browser.
package statsui

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/typr-dev/typr/internal/lexicon"
	"github.com/typr-dev/typr/internal/session"
	"github.com/typr-dev/typr/internal/stats"
	"github.com/typr-dev/typr/internal/store"
)

const (
	tabOverview = iota
	tabResults
	tabLetters
)

const curveWindow = 10

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle      = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder(), true).BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

type letterRow struct {
	char     string
	accuracy float64
	speed    float64
	shown    int
	correct  int
}

// Model implements the Bubble Tea history UI.
type Model struct {
	results []session.Result
	letters []letterRow
	errMsg  string

	tabs      []string
	activeTab int

	overview     viewport.Model
	resultsTable table.Model
	lettersTable table.Model

	width  int
	height int
}

// NewModel loads history and aggregates from the store and builds the
// browser model.
func NewModel(st *store.Store) *Model {
	m := &Model{tabs: []string{"Overview", "Results", "Letters"}}
	ctx := context.Background()

	results, err := st.ListResults(ctx)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load results: %v", err)
	}
	m.results = results

	letters, err := st.LoadLetters(ctx)
	if err != nil {
		m.errMsg = fmt.Sprintf("failed to load letter stats: %v", err)
	}
	m.letters = letterRows(letters)

	m.overview = viewport.New(0, 0)
	m.initResultsTable()
	m.initLettersTable()
	return m
}

// letterRows sorts aggregates worst accuracy first, like the letter
// weighting does.
func letterRows(letters map[rune]*lexicon.LetterStats) []letterRow {
	rows := make([]letterRow, 0, len(letters))
	for ch, entry := range letters {
		label := string(ch)
		if ch == ' ' {
			label = "<space>"
		}
		rows = append(rows, letterRow{
			char:     label,
			accuracy: entry.Accuracy,
			speed:    entry.Speed,
			shown:    entry.Shown,
			correct:  entry.Correct,
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].accuracy == rows[j].accuracy {
			return rows[i].char < rows[j].char
		}
		return rows[i].accuracy < rows[j].accuracy
	})
	return rows
}

func (m *Model) initResultsTable() {
	columns := []table.Column{
		{Title: "Date", Width: 16},
		{Title: "Net WPM", Width: 8},
		{Title: "Raw WPM", Width: 8},
		{Title: "Accuracy", Width: 9},
		{Title: "Time", Width: 7},
		{Title: "Words", Width: 6},
	}
	rows := make([]table.Row, 0, len(m.results))
	for i := len(m.results) - 1; i >= 0; i-- {
		res := m.results[i]
		rows = append(rows, table.Row{
			res.Timestamp.Format("2006-01-02 15:04"),
			fmt.Sprintf("%.1f", res.NetWPM),
			fmt.Sprintf("%.1f", res.RawWPM),
			fmt.Sprintf("%.1f%%", res.Accuracy),
			fmt.Sprintf("%.0fs", res.Seconds),
			fmt.Sprintf("%d", res.Words),
		})
	}
	m.resultsTable = table.New(table.WithColumns(columns), table.WithRows(rows))
}

func (m *Model) initLettersTable() {
	columns := []table.Column{
		{Title: "Char", Width: 8},
		{Title: "Accuracy", Width: 9},
		{Title: "Speed", Width: 7},
		{Title: "Shown", Width: 7},
		{Title: "Correct", Width: 8},
	}
	rows := make([]table.Row, 0, len(m.letters))
	for _, r := range m.letters {
		rows = append(rows, table.Row{
			r.char,
			fmt.Sprintf("%.1f%%", r.accuracy*100),
			fmt.Sprintf("%.1f", r.speed),
			fmt.Sprintf("%d", r.shown),
			fmt.Sprintf("%d", r.correct),
		})
	}
	m.lettersTable = table.New(table.WithColumns(columns), table.WithRows(rows))
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "tab", "right", "l":
			m.activeTab = (m.activeTab + 1) % len(m.tabs)
			m.focusActive()
			return m, nil
		case "shift+tab", "left", "h":
			m.activeTab = (m.activeTab + len(m.tabs) - 1) % len(m.tabs)
			m.focusActive()
			return m, nil
		}
	}
	var cmd tea.Cmd
	switch m.activeTab {
	case tabOverview:
		m.overview, cmd = m.overview.Update(msg)
	case tabResults:
		m.resultsTable, cmd = m.resultsTable.Update(msg)
	case tabLetters:
		m.lettersTable, cmd = m.lettersTable.Update(msg)
	}
	return m, cmd
}

func (m *Model) focusActive() {
	m.resultsTable.Blur()
	m.lettersTable.Blur()
	switch m.activeTab {
	case tabResults:
		m.resultsTable.Focus()
	case tabLetters:
		m.lettersTable.Focus()
	}
}

func (m *Model) updateLayout() {
	contentHeight := m.height - 4
	if contentHeight < 1 {
		contentHeight = 1
	}
	m.overview.Width = m.width
	m.overview.Height = contentHeight
	m.overview.SetContent(m.overviewContent())
	m.resultsTable.SetHeight(contentHeight)
	m.lettersTable.SetHeight(contentHeight)
}

// View implements tea.Model.
func (m *Model) View() string {
	nav := m.renderNav()
	if m.errMsg != "" {
		return nav + "\n" + errorStyle.Render(m.errMsg)
	}
	var content string
	switch m.activeTab {
	case tabOverview:
		if m.overview.Height == 0 {
			content = m.overviewContent()
		} else {
			content = m.overview.View()
		}
	case tabResults:
		content = m.resultsTable.View()
	case tabLetters:
		content = m.lettersTable.View()
	}
	hint := headerStyle.Render("tab: switch · q: quit")
	return nav + "\n" + content + "\n" + hint
}

func (m *Model) renderNav() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) overviewContent() string {
	if len(m.results) == 0 {
		return "No results yet. Finish a test to record history."
	}
	summary := Summarize(m.results)
	cards := lipgloss.JoinHorizontal(lipgloss.Top,
		card("Sessions", fmt.Sprintf("%d", summary.Sessions)),
		card("Avg Net WPM", fmt.Sprintf("%.1f", summary.AvgNetWPM)),
		card("Best Net WPM", fmt.Sprintf("%.1f", summary.BestNetWPM)),
		card("Avg Accuracy", fmt.Sprintf("%.1f%%", summary.AvgAccuracy)),
		card("Practice Time", formatDuration(summary.TotalSeconds)),
	)

	width := m.width - 2
	if width < 10 {
		width = 60
	}
	curve := stats.Resample(stats.MovingAverage(netSeries(m.results), curveWindow), width)
	spark := stats.Sparkline(curve)
	return cards + "\n\n" + cardTitleStyle.Render("Net WPM trend") + "\n" + spark
}

func card(title, value string) string {
	return cardStyle.Render(cardTitleStyle.Render(title) + "\n" + cardValueStyle.Render(value))
}

func formatDuration(seconds float64) string {
	d := time.Duration(seconds * float64(time.Second)).Round(time.Second)
	return d.String()
}

func netSeries(results []session.Result) []float64 {
	out := make([]float64, len(results))
	for i, res := range results {
		out[i] = res.NetWPM
	}
	return out
}
