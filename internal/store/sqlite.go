package store

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/drillbank/backend/internal/domain/question"
	"github.com/drillbank/backend/internal/domain/stats"
)

const schema = `
CREATE TABLE IF NOT EXISTS questions (
    id TEXT PRIMARY KEY,
    text TEXT NOT NULL,
    answer TEXT NOT NULL,
    category TEXT,
    position INTEGER NOT NULL
);

CREATE TABLE IF NOT EXISTS question_stats (
    question_id TEXT PRIMARY KEY,
    attempts INTEGER NOT NULL DEFAULT 0,
    fails INTEGER NOT NULL DEFAULT 0,
    CHECK (fails >= 0 AND fails <= attempts),
    FOREIGN KEY (question_id) REFERENCES questions(id) ON DELETE CASCADE
);
`

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLite(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, unavailable(err)
	}

	// SQLite allows one writer at a time; funnel everything through a
	// single connection so concurrent callers queue instead of getting
	// SQLITE_BUSY back.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		return nil, unavailable(err)
	}

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

// ============================================================================
// Questions
// ============================================================================

// ReplaceQuestions swaps the whole bank for the given set in one
// transaction. Stats for the old bank are cleared with it, matching a
// reload from the source file.
func (s *SQLiteStore) ReplaceQuestions(ctx context.Context, questions []question.Question) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return unavailable(err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM question_stats"); err != nil {
		return unavailable(err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM questions"); err != nil {
		return unavailable(err)
	}

	for i, q := range questions {
		var category sql.NullString
		if q.Category != "" {
			category = sql.NullString{String: q.Category, Valid: true}
		}
		_, err := tx.ExecContext(ctx,
			"INSERT INTO questions (id, text, answer, category, position) VALUES (?, ?, ?, ?, ?)",
			q.ID, q.Text, q.Answer, category, i,
		)
		if err != nil {
			return unavailable(err)
		}
	}

	if err := tx.Commit(); err != nil {
		return unavailable(err)
	}
	return nil
}

// ListQuestions returns the bank in its loaded order.
func (s *SQLiteStore) ListQuestions(ctx context.Context) ([]question.Question, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, text, answer, category FROM questions ORDER BY position")
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	var questions []question.Question
	for rows.Next() {
		var q question.Question
		var category sql.NullString
		if err := rows.Scan(&q.ID, &q.Text, &q.Answer, &category); err != nil {
			return nil, unavailable(err)
		}
		if category.Valid {
			q.Category = category.String
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return questions, nil
}

func (s *SQLiteStore) GetQuestion(ctx context.Context, id string) (question.Question, error) {
	var q question.Question
	var category sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT id, text, answer, category FROM questions WHERE id = ?", id,
	).Scan(&q.ID, &q.Text, &q.Answer, &category)
	if err == sql.ErrNoRows {
		return question.Question{}, ErrNotFound
	}
	if err != nil {
		return question.Question{}, unavailable(err)
	}
	if category.Valid {
		q.Category = category.String
	}
	return q, nil
}

func (s *SQLiteStore) CountQuestions(ctx context.Context) (int, error) {
	var count int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM questions").Scan(&count); err != nil {
		return 0, unavailable(err)
	}
	return count, nil
}

// ============================================================================
// Stats
// ============================================================================

// GetAllStats returns one record per judged question. Questions absent
// from the map have the zero record.
func (s *SQLiteStore) GetAllStats(ctx context.Context) (map[string]stats.Record, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT question_id, attempts, fails FROM question_stats")
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	records := make(map[string]stats.Record)
	for rows.Next() {
		var id string
		var rec stats.Record
		if err := rows.Scan(&id, &rec.Attempts, &rec.Fails); err != nil {
			return nil, unavailable(err)
		}
		records[id] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return records, nil
}

// RecordOutcome increments attempts, and fails on a failed judgment, as a
// single upsert inside one transaction. Concurrent calls for the same
// question serialize on the row, so no increment is ever lost, and either
// the full effect is applied or none of it.
func (s *SQLiteStore) RecordOutcome(ctx context.Context, questionID string, passed bool) error {
	fail := 0
	if !passed {
		fail = 1
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return unavailable(err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx, "SELECT COUNT(*) FROM questions WHERE id = ?", questionID).Scan(&exists); err != nil {
		return unavailable(err)
	}
	if exists == 0 {
		return fmt.Errorf("%w: %s", ErrUnknownQuestion, questionID)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO question_stats (question_id, attempts, fails) VALUES (?, 1, ?)
		ON CONFLICT(question_id) DO UPDATE SET
			attempts = attempts + 1,
			fails = fails + excluded.fails
	`, questionID, fail)
	if err != nil {
		return unavailable(err)
	}

	if err := tx.Commit(); err != nil {
		return unavailable(err)
	}
	return nil
}

// ResetAll clears every record, leaving the store as if no question had
// ever been judged. Single statement, so it is all-or-nothing.
func (s *SQLiteStore) ResetAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM question_stats"); err != nil {
		return unavailable(err)
	}
	return nil
}
