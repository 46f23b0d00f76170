package simulation_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/drillbank/backend/internal/domain/question"
	"github.com/drillbank/backend/internal/simulation"
	"github.com/drillbank/backend/internal/store"
)

func newSeededStore(t *testing.T, n int) *store.SQLiteStore {
	t.Helper()
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "sim-test.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	questions := make([]question.Question, n)
	for i := 0; i < n; i++ {
		questions[i] = question.Question{
			ID:     "q" + string(rune('a'+i)),
			Text:   "Question " + string(rune('A'+i)),
			Answer: "Answer " + string(rune('A'+i)),
		}
	}
	if err := s.ReplaceQuestions(context.Background(), questions); err != nil {
		t.Fatalf("ReplaceQuestions failed: %v", err)
	}
	return s
}

// Concurrent writers must not lose a single judged presentation: the
// store's records have to match the simulation's own tally exactly.
func TestRun_NoLostUpdates(t *testing.T) {
	s := newSeededStore(t, 5)
	ctx := context.Background()

	summary, err := simulation.Run(ctx, s, 200, 8, 1)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Errors != 0 {
		t.Fatalf("expected no store errors, got %d", summary.Errors)
	}
	if summary.Judged != 200 {
		t.Fatalf("expected 200 judged presentations, got %d", summary.Judged)
	}

	records, err := s.GetAllStats(ctx)
	if err != nil {
		t.Fatalf("GetAllStats failed: %v", err)
	}

	totalAttempts, totalFails := 0, 0
	for id, want := range summary.Expected {
		got := records[id]
		if got != want {
			t.Errorf("question %s: store has %+v, simulation sent %+v", id, got, want)
		}
		totalAttempts += got.Attempts
		totalFails += got.Fails
	}
	if totalAttempts != summary.Judged {
		t.Errorf("expected %d total attempts, got %d", summary.Judged, totalAttempts)
	}
	if totalFails != summary.Failed {
		t.Errorf("expected %d total fails, got %d", summary.Failed, totalFails)
	}
}

func TestRun_EmptyBank(t *testing.T) {
	s := newSeededStore(t, 0)

	if _, err := simulation.Run(context.Background(), s, 10, 2, 1); err == nil {
		t.Fatal("expected error for empty bank")
	}
}
