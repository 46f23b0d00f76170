package stats

import (
	"sort"

	"github.com/drillbank/backend/internal/domain/question"
)

// Record tracks judged presentations for a single question.
// Invariant: 0 <= Fails <= Attempts. The zero value is the state of a
// question that has never been judged, so plain map lookups give the
// right default for unseen questions.
type Record struct {
	Attempts int
	Fails    int
}

// FailRate returns Fails/Attempts, or 0 for a question never judged.
// Unseen questions are not treated as failed.
func (r Record) FailRate() float64 {
	if r.Attempts == 0 {
		return 0
	}
	return float64(r.Fails) / float64(r.Attempts)
}

// ReportRow is one line of the "most missed" view.
type ReportRow struct {
	QuestionID   string
	QuestionText string
	Category     string
	Attempts     int
	Fails        int
	FailRate     float64
}

// BuildReport joins questions with their records and sorts by fail rate
// descending, ties broken by attempts descending. Questions without a
// record appear with zero stats at the bottom.
func BuildReport(questions []question.Question, records map[string]Record) []ReportRow {
	rows := make([]ReportRow, 0, len(questions))
	for _, q := range questions {
		rec := records[q.ID]
		rows = append(rows, ReportRow{
			QuestionID:   q.ID,
			QuestionText: q.Text,
			Category:     q.Category,
			Attempts:     rec.Attempts,
			Fails:        rec.Fails,
			FailRate:     rec.FailRate(),
		})
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].FailRate != rows[j].FailRate {
			return rows[i].FailRate > rows[j].FailRate
		}
		return rows[i].Attempts > rows[j].Attempts
	})
	return rows
}

// Totals aggregates the whole bank for the overview display.
type Totals struct {
	Questions int
	Attempts  int
	Fails     int
	PassRate  float64 // 0 when nothing has been attempted yet
}

func Aggregate(questions []question.Question, records map[string]Record) Totals {
	t := Totals{Questions: len(questions)}
	for _, q := range questions {
		rec := records[q.ID]
		t.Attempts += rec.Attempts
		t.Fails += rec.Fails
	}
	if t.Attempts > 0 {
		t.PassRate = float64(t.Attempts-t.Fails) / float64(t.Attempts)
	}
	return t
}
