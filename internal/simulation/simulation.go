// Package simulation hammers a statistics store with concurrent judged
// presentations to exercise the atomic-update contract end to end.
package simulation

import (
	"context"
	"math/rand"

	"github.com/drillbank/backend/internal/domain/question"
	"github.com/drillbank/backend/internal/domain/stats"
	"github.com/drillbank/backend/internal/selector"
	"github.com/drillbank/backend/internal/worker"
)

// Store is the slice of the statistics store the simulation drives.
type Store interface {
	ListQuestions(ctx context.Context) ([]question.Question, error)
	GetAllStats(ctx context.Context) (map[string]stats.Record, error)
	RecordOutcome(ctx context.Context, questionID string, passed bool) error
}

// Outcome is one simulated judged presentation.
type Outcome struct {
	QuestionID string
	Passed     bool
	Err        error
}

// Summary tallies what the simulation sent to the store. Comparing
// Expected against a fresh GetAllStats shows whether any update was lost.
type Summary struct {
	Judged   int
	Failed   int
	Errors   int
	Expected map[string]stats.Record
}

// Run draws `judgments` questions (weighted against the stats snapshot
// taken at the start) and records a coin-flip outcome for each through a
// pool of `workers` concurrent writers.
func Run(ctx context.Context, st Store, judgments, workers int, seed int64) (Summary, error) {
	questions, err := st.ListQuestions(ctx)
	if err != nil {
		return Summary{}, err
	}
	records, err := st.GetAllStats(ctx)
	if err != nil {
		return Summary{}, err
	}

	rng := rand.New(rand.NewSource(seed))
	pool := worker.NewPool[Outcome](workers, judgments)

	for i := 0; i < judgments; i++ {
		q, err := selector.Select(questions, records, rng)
		if err != nil {
			pool.Close()
			return Summary{}, err
		}
		passed := rng.Float64() < 0.5
		pool.Submit(func() Outcome {
			return Outcome{
				QuestionID: q.ID,
				Passed:     passed,
				Err:        st.RecordOutcome(ctx, q.ID, passed),
			}
		})
	}
	pool.Close()

	summary := Summary{Expected: make(map[string]stats.Record)}
	for out := range pool.Results() {
		if out.Err != nil {
			summary.Errors++
			continue
		}
		summary.Judged++
		rec := summary.Expected[out.QuestionID]
		rec.Attempts++
		if !out.Passed {
			rec.Fails++
			summary.Failed++
		}
		summary.Expected[out.QuestionID] = rec
	}
	return summary, nil
}
