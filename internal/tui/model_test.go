package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/readometer/internal/model"
)

func testModel(keep func(string) bool) *Model {
	ref := model.FileReference{Path: "post.md", Kind: model.Markdown}
	result := model.Result{
		Words:  10,
		Unique: 4,
		Frequencies: []model.WordCount{
			{Word: "the", Count: 4},
			{Word: "reading", Count: 3},
			{Word: "read", Count: 2},
			{Word: "go", Count: 1},
		},
		ReadingMinutes: 0,
		WPM:            200,
	}
	return NewModel(ref, result, keep)
}

func typeRunes(m *Model, s string) {
	for _, r := range s {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func TestBuildRows(t *testing.T) {
	rows := buildRows([]model.WordCount{{Word: "a", Count: 1}, {Word: "b", Count: 3}}, 4)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "1" || rows[0][1] != "a" || rows[0][3] != "25.00%" {
		t.Fatalf("unexpected first row: %v", rows[0])
	}
	if rows[1][0] != "2" || rows[1][2] != "3" || rows[1][3] != "75.00%" {
		t.Fatalf("unexpected second row: %v", rows[1])
	}
}

func TestPrefixFilter(t *testing.T) {
	m := testModel(nil)
	if got := len(m.table.Rows()); got != 4 {
		t.Fatalf("expected 4 rows, got %d", got)
	}
	typeRunes(m, "/")
	if !m.filterMode {
		t.Fatalf("expected filter mode after /")
	}
	typeRunes(m, "Rea")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.filterMode {
		t.Fatalf("expected filter mode to end on enter")
	}
	if m.filter != "rea" {
		t.Fatalf("expected lowercased filter, got %q", m.filter)
	}
	rows := m.table.Rows()
	if len(rows) != 2 || rows[0][1] != "reading" || rows[1][1] != "read" {
		t.Fatalf("unexpected filtered rows: %v", rows)
	}
}

func TestStopwordToggle(t *testing.T) {
	m := testModel(func(w string) bool { return w != "the" })
	typeRunes(m, "s")
	rows := m.table.Rows()
	if len(rows) != 3 || rows[0][1] != "reading" {
		t.Fatalf("expected stopword hidden, got %v", rows)
	}
	typeRunes(m, "s")
	if len(m.table.Rows()) != 4 {
		t.Fatalf("expected stopword shown again")
	}
}

func TestStopwordToggleWithoutFilter(t *testing.T) {
	m := testModel(nil)
	typeRunes(m, "s")
	if m.hideStop {
		t.Fatalf("expected toggle to be ignored without a stopword filter")
	}
}

func TestViewIncludesSummary(t *testing.T) {
	m := testModel(nil)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 20})
	view := m.View()
	if !strings.Contains(view, "post.md (markdown)") {
		t.Fatalf("expected title in view")
	}
	if !strings.Contains(view, "Words: 10  Unique: 4") {
		t.Fatalf("expected summary in view")
	}
}

func TestQuitKeys(t *testing.T) {
	m := testModel(nil)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
