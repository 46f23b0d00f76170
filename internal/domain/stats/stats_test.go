package stats_test

import (
	"testing"

	"github.com/drillbank/backend/internal/domain/question"
	"github.com/drillbank/backend/internal/domain/stats"
)

func TestFailRate(t *testing.T) {
	tests := []struct {
		name string
		rec  stats.Record
		want float64
	}{
		{"never judged", stats.Record{}, 0},
		{"all passed", stats.Record{Attempts: 4, Fails: 0}, 0},
		{"all failed", stats.Record{Attempts: 4, Fails: 4}, 1},
		{"half failed", stats.Record{Attempts: 4, Fails: 2}, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rec.FailRate(); got != tt.want {
				t.Errorf("FailRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBuildReport_SortsByFailRateThenAttempts(t *testing.T) {
	questions := []question.Question{
		{ID: "q1", Text: "One", Answer: "1"},
		{ID: "q2", Text: "Two", Answer: "2"},
		{ID: "q3", Text: "Three", Answer: "3"},
		{ID: "q4", Text: "Four", Answer: "4"},
	}
	records := map[string]stats.Record{
		"q1": {Attempts: 4, Fails: 2},  // rate 0.5
		"q2": {Attempts: 10, Fails: 5}, // rate 0.5, more attempts
		"q3": {Attempts: 2, Fails: 2},  // rate 1.0
		// q4 never judged                rate 0
	}

	rows := stats.BuildReport(questions, records)

	wantOrder := []string{"q3", "q2", "q1", "q4"}
	for i, want := range wantOrder {
		if rows[i].QuestionID != want {
			t.Fatalf("row %d: expected %s, got %s", i, want, rows[i].QuestionID)
		}
	}
}

func TestBuildReport_IncludesUnjudgedQuestions(t *testing.T) {
	questions := []question.Question{
		{ID: "q1", Text: "One", Answer: "1", Category: "History"},
	}

	rows := stats.BuildReport(questions, map[string]stats.Record{})

	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got %d", len(rows))
	}
	row := rows[0]
	if row.Attempts != 0 || row.Fails != 0 || row.FailRate != 0 {
		t.Errorf("expected zero stats for unjudged question, got %+v", row)
	}
	if row.Category != "History" {
		t.Errorf("expected category to carry through, got %q", row.Category)
	}
}

func TestAggregate(t *testing.T) {
	questions := []question.Question{
		{ID: "q1", Text: "One", Answer: "1"},
		{ID: "q2", Text: "Two", Answer: "2"},
		{ID: "q3", Text: "Three", Answer: "3"},
	}
	records := map[string]stats.Record{
		"q1": {Attempts: 4, Fails: 1},
		"q2": {Attempts: 2, Fails: 2},
	}

	got := stats.Aggregate(questions, records)

	if got.Questions != 3 {
		t.Errorf("expected 3 questions, got %d", got.Questions)
	}
	if got.Attempts != 6 {
		t.Errorf("expected 6 attempts, got %d", got.Attempts)
	}
	if got.Fails != 3 {
		t.Errorf("expected 3 fails, got %d", got.Fails)
	}
	if got.PassRate != 0.5 {
		t.Errorf("expected pass rate 0.5, got %v", got.PassRate)
	}
}

func TestAggregate_NoAttempts(t *testing.T) {
	questions := []question.Question{{ID: "q1", Text: "One", Answer: "1"}}

	got := stats.Aggregate(questions, map[string]stats.Record{})

	if got.PassRate != 0 {
		t.Errorf("expected pass rate 0 with no attempts, got %v", got.PassRate)
	}
}
