// Package model defines shared data structures.
package model

import "time"

// FileKind classifies an input file by extension.
type FileKind int

const (
	// PlainText files are analyzed verbatim.
	PlainText FileKind = iota
	// Markdown files have markup stripped before analysis.
	Markdown
)

// String returns the lowercase name of the kind.
func (k FileKind) String() string {
	switch k {
	case PlainText:
		return "text"
	case Markdown:
		return "markdown"
	default:
		return "unknown"
	}
}

// FileReference is an input path with its inferred kind.
type FileReference struct {
	Path string
	Kind FileKind
}

// Config defines analysis settings.
type Config struct {
	WPM       int
	Verbose   bool
	Record    bool
	Limit     int
	Stopwords string
	SkipShort int
}

// WordCount is a single frequency table entry.
type WordCount struct {
	Word  string
	Count int
}

// Result holds the metrics computed for one document.
type Result struct {
	Words          int
	Unique         int
	Frequencies    []WordCount
	ReadingMinutes int
	WPM            int
}

// AnalysisRecord is a stored analysis run.
type AnalysisRecord struct {
	ID             int64
	AnalyzedAt     time.Time
	Path           string
	Kind           string
	Words          int
	Unique         int
	ReadingMinutes int
	WPM            int
}

// HistoryConfig defines filters for history output.
type HistoryConfig struct {
	Path string
	Last int
}
