package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/readometer/internal/model"
)

func TestRenderHistory(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	records := []model.AnalysisRecord{
		{AnalyzedAt: now.Add(-3 * time.Hour), Path: "essay.md", Kind: "markdown", Words: 12345, Unique: 2100, ReadingMinutes: 62, WPM: 200},
		{AnalyzedAt: now.Add(-2 * time.Minute), Path: "notes.txt", Kind: "text", Words: 400, Unique: 400, ReadingMinutes: 2, WPM: 200},
	}
	var buf bytes.Buffer
	if err := RenderHistory(&buf, records, now); err != nil {
		t.Fatalf("RenderHistory failed: %v", err)
	}
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), buf.String())
	}
	if !strings.HasPrefix(lines[0], "When") {
		t.Fatalf("unexpected header: %q", lines[0])
	}
	if !strings.Contains(lines[1], "3 hours ago") || !strings.Contains(lines[1], "12,345") {
		t.Fatalf("unexpected first row: %q", lines[1])
	}
	if !strings.Contains(lines[2], "2 minutes ago") || !strings.Contains(lines[2], "notes.txt") {
		t.Fatalf("unexpected second row: %q", lines[2])
	}
}

func TestRenderHistoryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderHistory(&buf, nil, time.Now()); err != nil {
		t.Fatalf("RenderHistory failed: %v", err)
	}
	if buf.String() != "No analyses recorded.\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestResultLines(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEstimate(&buf, 2); err != nil {
		t.Fatalf("WriteEstimate failed: %v", err)
	}
	if err := WriteWordCount(&buf, 400); err != nil {
		t.Fatalf("WriteWordCount failed: %v", err)
	}
	if err := WriteUniqueCount(&buf, 7); err != nil {
		t.Fatalf("WriteUniqueCount failed: %v", err)
	}
	want := "Estimated reading time: 2 minutes\nWord Count: 400\nUnique Words: 7\n"
	if buf.String() != want {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}
