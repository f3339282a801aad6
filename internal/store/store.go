// Package store handles SQLite persistence of letter aggregates and
// test history.
package store

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"time"

	"github.com/typr-dev/typr/internal/lexicon"
	"github.com/typr-dev/typr/internal/session"

	_ "modernc.org/sqlite" // SQLite driver.
)

// Store wraps SQLite access for user data.
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
		`CREATE TABLE IF NOT EXISTS letter_stats (
			char TEXT PRIMARY KEY,
			shown INTEGER NOT NULL,
			correct INTEGER NOT NULL,
			accuracy REAL NOT NULL,
			latency_sum REAL NOT NULL,
			latency_count INTEGER NOT NULL,
			speed REAL NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY,
			created_at TEXT NOT NULL,
			raw_wpm REAL NOT NULL,
			net_wpm REAL NOT NULL,
			accuracy REAL NOT NULL,
			seconds REAL NOT NULL,
			chars INTEGER NOT NULL,
			words INTEGER NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_results_created_at ON results(created_at);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// LoadLetters reads all persisted per-letter aggregates.
func (s *Store) LoadLetters(ctx context.Context) (map[rune]*lexicon.LetterStats, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT char, shown, correct, accuracy, latency_sum, latency_count, speed FROM letter_stats`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	letters := map[rune]*lexicon.LetterStats{}
	for rows.Next() {
		var ch string
		entry := &lexicon.LetterStats{}
		if err := rows.Scan(&ch, &entry.Shown, &entry.Correct, &entry.Accuracy,
			&entry.LatencySum, &entry.LatencyCount, &entry.Speed); err != nil {
			return nil, err
		}
		runes := []rune(ch)
		if len(runes) != 1 {
			continue
		}
		letters[runes[0]] = entry
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return letters, nil
}

// SaveLetters upserts the full per-letter aggregate map.
func (s *Store) SaveLetters(ctx context.Context, letters map[rune]*lexicon.LetterStats) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rerr := tx.Rollback(); rerr != nil {
				// Best-effort rollback.
				_ = rerr
			}
		}
	}()

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO letter_stats (char, shown, correct, accuracy, latency_sum, latency_count, speed)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(char) DO UPDATE SET
			shown = excluded.shown,
			correct = excluded.correct,
			accuracy = excluded.accuracy,
			latency_sum = excluded.latency_sum,
			latency_count = excluded.latency_count,
			speed = excluded.speed`)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := stmt.Close(); cerr != nil {
			// Best-effort statement close.
			_ = cerr
		}
	}()

	for ch, entry := range letters {
		if _, err = stmt.ExecContext(ctx, string(ch), entry.Shown, entry.Correct,
			entry.Accuracy, entry.LatencySum, entry.LatencyCount, entry.Speed); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// AppendResult stores one completed test result.
func (s *Store) AppendResult(ctx context.Context, res session.Result) (int64, error) {
	out, err := s.db.ExecContext(ctx,
		`INSERT INTO results (created_at, raw_wpm, net_wpm, accuracy, seconds, chars, words)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		res.Timestamp.Format(time.RFC3339Nano),
		res.RawWPM,
		res.NetWPM,
		res.Accuracy,
		res.Seconds,
		res.Chars,
		res.Words,
	)
	if err != nil {
		return 0, err
	}
	return out.LastInsertId()
}

// ListResults returns the full history ordered oldest first.
func (s *Store) ListResults(ctx context.Context) ([]session.Result, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT created_at, raw_wpm, net_wpm, accuracy, seconds, chars, words
		 FROM results ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := rows.Close(); cerr != nil {
			// Best-effort rows close.
			_ = cerr
		}
	}()

	var results []session.Result
	for rows.Next() {
		var res session.Result
		var createdAt string
		if err := rows.Scan(&createdAt, &res.RawWPM, &res.NetWPM, &res.Accuracy,
			&res.Seconds, &res.Chars, &res.Words); err != nil {
			return nil, err
		}
		parsed, err := time.Parse(time.RFC3339Nano, createdAt)
		if err != nil {
			return nil, err
		}
		res.Timestamp = parsed
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// ResetAll clears aggregates and history.
func (s *Store) ResetAll(ctx context.Context) error {
	for _, stmt := range []string{`DELETE FROM letter_stats;`, `DELETE FROM results;`} {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
