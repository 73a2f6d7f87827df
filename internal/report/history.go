package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/readometer/internal/model"
)

// RenderHistory prints stored analyses, oldest first. Times are shown
// relative to now.
func RenderHistory(w io.Writer, records []model.AnalysisRecord, now time.Time) error {
	if len(records) == 0 {
		_, err := fmt.Fprintln(w, "No analyses recorded.")
		return err
	}
	headers := []string{"When", "Path", "Kind", "Words", "Unique", "Minutes", "WPM"}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		rows = append(rows, []string{
			humanize.RelTime(rec.AnalyzedAt, now, "ago", "from now"),
			rec.Path,
			rec.Kind,
			humanize.Comma(int64(rec.Words)),
			humanize.Comma(int64(rec.Unique)),
			strconv.Itoa(rec.ReadingMinutes),
			strconv.Itoa(rec.WPM),
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{3: true, 4: true, 5: true, 6: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
