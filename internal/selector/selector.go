// Package selector implements the weighted random draw that biases
// practice toward questions the user keeps missing.
package selector

import (
	"errors"
	"math/rand"
	"sort"

	"github.com/drillbank/backend/internal/domain/question"
	"github.com/drillbank/backend/internal/domain/stats"
)

// ErrEmptyBank is returned when a draw is attempted with no questions loaded.
// Use errors.Is to check: errors.Is(err, selector.ErrEmptyBank)
var ErrEmptyBank = errors.New("selector: empty question bank")

const (
	// failRateFactor linearly amplifies the weight of missed questions,
	// up to 4x total for a 100% fail rate.
	failRateFactor = 3.0

	// Questions judged fewer than newQuestionThreshold times get the
	// newQuestionBoost so they surface before their fail rate alone
	// would make them.
	newQuestionThreshold = 3
	newQuestionBoost     = 1.5
)

// Weight maps a question's record to its sampling weight. The base weight
// of 1 keeps every question reachable regardless of how well it is known.
func Weight(rec stats.Record) float64 {
	w := 1 + rec.FailRate()*failRateFactor
	if rec.Attempts < newQuestionThreshold {
		w *= newQuestionBoost
	}
	return w
}

// Select draws one question with probability proportional to its weight.
// Questions without a record weigh in as never judged. The draw is a single
// uniform sample over a prefix-sum of the weights followed by a binary
// search, so cost stays O(n) no matter how skewed the stats are.
func Select(questions []question.Question, records map[string]stats.Record, rng *rand.Rand) (question.Question, error) {
	if len(questions) == 0 {
		return question.Question{}, ErrEmptyBank
	}

	prefix := make([]float64, len(questions))
	total := 0.0
	for i, q := range questions {
		total += Weight(records[q.ID])
		prefix[i] = total
	}

	x := rng.Float64() * total
	i := sort.SearchFloat64s(prefix, x)
	if i >= len(questions) {
		// Float64 is in [0,1) so x < total, but guard the rounding edge.
		i = len(questions) - 1
	}
	return questions[i], nil
}
