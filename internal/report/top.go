package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/verte-zerg/readometer/internal/model"
)

const (
	barChar             = '#'
	minBarWidth         = 5
	terminalWidthBackup = 80
)

// RenderTop prints a ranked frequency table. total is the document word
// count used for the share column; width bounds the line length and sizes
// the bar column (width <= 0 disables bars).
func RenderTop(w io.Writer, entries []model.WordCount, total, width int) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(w, "No words found.")
		return err
	}
	headers := []string{"Rank", "Word", "Count", "Share"}
	rows := make([][]string, 0, len(entries))
	for i, wc := range entries {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			wc.Word,
			strconv.Itoa(wc.Count),
			formatShare(wc.Count, total),
		})
	}
	lines := formatTable(headers, rows, map[int]bool{0: true, 2: true, 3: true})

	widest := 0
	for _, line := range lines {
		if lw := tableWidth(line); lw > widest {
			widest = lw
		}
	}
	barWidth := 0
	if width > 0 {
		barWidth = width - widest - 1
		if barWidth < minBarWidth {
			barWidth = 0
		}
	}

	maxCount := entries[0].Count
	for _, wc := range entries {
		if wc.Count > maxCount {
			maxCount = wc.Count
		}
	}
	for i, line := range lines {
		if barWidth > 0 && i > 0 {
			line = padToWidth(line, widest) + " " + bar(entries[i-1].Count, maxCount, barWidth)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// TerminalWidth returns the width of stdout, or a fallback when stdout is
// not a terminal.
func TerminalWidth() int {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return terminalWidthBackup
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func formatShare(count, total int) string {
	if total <= 0 {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", float64(count)/float64(total)*100)
}

func bar(count, maxCount, width int) string {
	if maxCount <= 0 || count <= 0 {
		return ""
	}
	n := count * width / maxCount
	if n < 1 {
		n = 1
	}
	return strings.Repeat(string(barChar), n)
}

func padToWidth(line string, widest int) string {
	if pad := widest - tableWidth(line); pad > 0 {
		return line + strings.Repeat(" ", pad)
	}
	return line
}
