// Package tui provides the Bubble Tea word frequency browser.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/readometer/internal/model"
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// Model implements the Bubble Tea frequency browser.
type Model struct {
	ref    model.FileReference
	result model.Result
	keep   func(string) bool

	filterMode  bool
	filterInput textinput.Model
	filter      string
	hideStop    bool

	table table.Model

	width  int
	height int
}

// NewModel constructs a browser over the result's frequency table. keep is
// the stopword filter toggled with "s"; nil disables the toggle.
func NewModel(ref model.FileReference, result model.Result, keep func(string) bool) *Model {
	m := &Model{
		ref:    ref,
		result: result,
		keep:   keep,
	}
	m.filterInput = textinput.New()
	m.filterInput.Prompt = "Filter: "
	m.filterInput.Placeholder = "word prefix"
	m.filterInput.Cursor.SetMode(cursor.CursorBlink)
	m.table = table.New(
		table.WithColumns(columns()),
		table.WithFocused(true),
		table.WithHeight(1),
	)
	m.table.SetStyles(tableStyles())
	m.refreshRows()
	return m
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
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.filterMode {
			return m.updateFilter(msg)
		}
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "/":
			m.filterMode = true
			m.filterInput.SetValue(m.filter)
			return m, m.filterInput.Focus()
		case "s":
			if m.keep != nil {
				m.hideStop = !m.hideStop
				m.refreshRows()
			}
			return m, nil
		case "g", "home":
			m.table.GotoTop()
			return m, nil
		case "G", "end":
			m.table.GotoBottom()
			return m, nil
		}
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.filterMode = false
		m.filterInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.filter = strings.ToLower(strings.TrimSpace(m.filterInput.Value()))
		m.filterMode = false
		m.filterInput.Blur()
		m.refreshRows()
		return m, nil
	}
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	parts := []string{m.renderHeader(), m.table.View(), m.renderFooter()}
	return strings.Join(parts, "\n")
}

func (m *Model) renderHeader() string {
	title := titleStyle.Render(fmt.Sprintf("%s (%s)", m.ref.Path, m.ref.Kind))
	summary := fmt.Sprintf("Words: %d  Unique: %d  Reading time: %d min @ %d wpm",
		m.result.Words, m.result.Unique, m.result.ReadingMinutes, m.result.WPM)
	return title + "\n" + headerStyle.Render(truncateLine(summary, m.width))
}

func (m *Model) renderFooter() string {
	if m.filterMode {
		return m.filterInput.View()
	}
	help := "Scroll: up/down/pgup/pgdn  Filter: /  Quit: q"
	if m.keep != nil {
		help = "Scroll: up/down/pgup/pgdn  Filter: /  Stopwords: s  Quit: q"
	}
	if m.filter != "" {
		help += fmt.Sprintf("  [prefix %q]", m.filter)
	}
	return footerStyle.Render(truncateLine(help, m.width))
}

func (m *Model) updateLayout() {
	// Two header lines and one footer line.
	bodyHeight := m.height - 3
	if bodyHeight < 2 {
		bodyHeight = 2
	}
	m.table.SetWidth(m.width)
	m.table.SetHeight(bodyHeight)
}

func (m *Model) refreshRows() {
	m.table.SetRows(buildRows(m.visibleEntries(), m.result.Words))
	m.table.GotoTop()
}

func (m *Model) visibleEntries() []model.WordCount {
	out := make([]model.WordCount, 0, len(m.result.Frequencies))
	for _, wc := range m.result.Frequencies {
		if m.filter != "" && !strings.HasPrefix(wc.Word, m.filter) {
			continue
		}
		if m.hideStop && m.keep != nil && !m.keep(wc.Word) {
			continue
		}
		out = append(out, wc)
	}
	return out
}

func columns() []table.Column {
	return []table.Column{
		{Title: "Rank", Width: 6},
		{Title: "Word", Width: 24},
		{Title: "Count", Width: 8},
		{Title: "Share", Width: 8},
	}
}

func buildRows(entries []model.WordCount, total int) []table.Row {
	rows := make([]table.Row, 0, len(entries))
	for i, wc := range entries {
		share := 0.0
		if total > 0 {
			share = float64(wc.Count) / float64(total) * 100
		}
		rows = append(rows, table.Row{
			strconv.Itoa(i + 1),
			wc.Word,
			strconv.Itoa(wc.Count),
			fmt.Sprintf("%.2f%%", share),
		})
	}
	return rows
}

func tableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func truncateLine(s string, width int) string {
	if width <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
