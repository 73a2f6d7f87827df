// Package store handles SQLite persistence of analysis history.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/verte-zerg/readometer/internal/model"

	_ "modernc.org/sqlite" // SQLite driver.
)

// timeLayout keeps a fixed-width fraction so stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

// Store wraps SQLite access for analysis records.
type Store struct {
	db *sql.DB
}

// Open opens or creates the SQLite database and applies migrations.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		if cerr := db.Close(); cerr != nil {
			// Best-effort close on migration failure.
			_ = cerr
		}
		return nil, err
	}
	return store, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id INTEGER PRIMARY KEY,
			analyzed_at TEXT NOT NULL,
			path TEXT NOT NULL,
			kind TEXT NOT NULL,
			words INTEGER NOT NULL,
			unique_words INTEGER NOT NULL,
			reading_minutes INTEGER NOT NULL,
			wpm INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_analyzed_at ON analyses(analyzed_at);`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_path ON analyses(path);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// InsertAnalysis stores a completed analysis and returns its id.
func (s *Store) InsertAnalysis(ctx context.Context, rec model.AnalysisRecord) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO analyses (analyzed_at, path, kind, words, unique_words, reading_minutes, wpm)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		rec.AnalyzedAt.UTC().Format(timeLayout),
		rec.Path,
		rec.Kind,
		rec.Words,
		rec.Unique,
		rec.ReadingMinutes,
		rec.WPM,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

// ListAnalyses returns records filtered by cfg, oldest first. When cfg.Last
// is positive only the most recent cfg.Last records are returned.
func (s *Store) ListAnalyses(ctx context.Context, cfg model.HistoryConfig) ([]model.AnalysisRecord, error) {
	clauses := []string{"1=1"}
	args := []any{}
	if cfg.Path != "" {
		clauses = append(clauses, "path = ?")
		args = append(args, cfg.Path)
	}
	limit := ""
	if cfg.Last > 0 {
		limit = "LIMIT ?"
		args = append(args, cfg.Last)
	}
	query := fmt.Sprintf(`SELECT id, analyzed_at, path, kind, words, unique_words, reading_minutes, wpm
		FROM analyses
		WHERE %s
		ORDER BY analyzed_at DESC, id DESC
		%s`, strings.Join(clauses, " AND "), limit)
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var records []model.AnalysisRecord
	for rows.Next() {
		var rec model.AnalysisRecord
		var analyzedAt string
		if err := rows.Scan(&rec.ID, &analyzedAt, &rec.Path, &rec.Kind, &rec.Words, &rec.Unique, &rec.ReadingMinutes, &rec.WPM); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(timeLayout, analyzedAt)
		if err != nil {
			return nil, err
		}
		rec.AnalyzedAt = parsed
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}
