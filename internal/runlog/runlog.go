// Package runlog records metadata about training runs to a local SQLite
// database, separate from the tokenizer artifact itself: a durable history
// of "when did I train what, on what corpus, for how long" that a user can
// list with the bpetok runs command.
package runlog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/ncruces/go-strftime"
	_ "modernc.org/sqlite"
)

// Run is one recorded training run.
type Run struct {
	ID         string
	CorpusPath string
	CorpusSize int64
	VocabSize  int
	MergeCount int
	Duration   time.Duration
	StartedAt  time.Time
}

// Summary renders a one-line, human-readable description of the run,
// using strftime for the timestamp, humanize for the corpus size and the
// run's age relative to now, and a millisecond-rounded duration.
func (r Run) Summary() string {
	ts, err := strftime.Format("%Y-%m-%d %H:%M:%S", r.StartedAt)
	if err != nil {
		ts = r.StartedAt.Format(time.RFC3339)
	}
	return fmt.Sprintf("%s  %s (%s)  corpus=%s (%s)  vocab=%d  merges=%d  took=%s",
		r.ID, ts, humanize.Time(r.StartedAt), r.CorpusPath, humanize.Bytes(uint64(r.CorpusSize)),
		r.VocabSize, r.MergeCount, r.Duration.Round(time.Millisecond))
}

// Store is a SQLite-backed ledger of training runs.
type Store struct {
	db *sql.DB
}

// Open opens (creating if necessary) the ledger database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("runlog: open %s: %w", path, err)
	}
	if _, err := db.Exec(createRunsTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("runlog: create schema: %w", err)
	}
	return &Store{db: db}, nil
}

const createRunsTable = `
CREATE TABLE IF NOT EXISTS runs (
	id           TEXT PRIMARY KEY,
	corpus_path  TEXT NOT NULL,
	corpus_size  INTEGER NOT NULL,
	vocab_size   INTEGER NOT NULL,
	merge_count  INTEGER NOT NULL,
	duration_ms  INTEGER NOT NULL,
	started_at   TEXT NOT NULL
)`

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}

// NewRunID generates a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

// Record appends a completed run to the ledger. If run.ID is empty, one is
// generated.
func (s *Store) Record(run Run) (Run, error) {
	if run.ID == "" {
		run.ID = NewRunID()
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO runs (id, corpus_path, corpus_size, vocab_size, merge_count, duration_ms, started_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.CorpusPath, run.CorpusSize, run.VocabSize, run.MergeCount,
		run.Duration.Milliseconds(), run.StartedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return Run{}, fmt.Errorf("runlog: record run: %w", err)
	}
	return run, nil
}

// List returns every recorded run, most recent first.
func (s *Store) List() ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, corpus_path, corpus_size, vocab_size, merge_count, duration_ms, started_at
		 FROM runs ORDER BY started_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("runlog: list runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var (
			r          Run
			durationMs int64
			startedAt  string
		)
		if err := rows.Scan(&r.ID, &r.CorpusPath, &r.CorpusSize, &r.VocabSize, &r.MergeCount, &durationMs, &startedAt); err != nil {
			return nil, fmt.Errorf("runlog: scan run: %w", err)
		}
		r.Duration = time.Duration(durationMs) * time.Millisecond
		if t, err := time.Parse(time.RFC3339Nano, startedAt); err == nil {
			r.StartedAt = t
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("runlog: iterate runs: %w", err)
	}
	return runs, nil
}
