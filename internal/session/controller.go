// Package session orchestrates one practice turn at a time: draw a
// question, collect the pass/fail judgment, record it.
package session

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/drillbank/backend/internal/domain/question"
	"github.com/drillbank/backend/internal/domain/stats"
	"github.com/drillbank/backend/internal/selector"
)

var (
	// ErrNoPendingQuestion means Judge was called with nothing drawn.
	ErrNoPendingQuestion = errors.New("session: no question awaiting judgment")

	// ErrJudgmentPending means Draw was called while a drawn question is
	// still awaiting its judgment.
	ErrJudgmentPending = errors.New("session: a drawn question is awaiting judgment")
)

// Store is the slice of the statistics store the controller needs.
type Store interface {
	ListQuestions(ctx context.Context) ([]question.Question, error)
	GetAllStats(ctx context.Context) (map[string]stats.Record, error)
	RecordOutcome(ctx context.Context, questionID string, passed bool) error
	ResetAll(ctx context.Context) error
}

// Controller runs a single practice session with at most one question
// outstanding for judgment at a time. A session is one logical caller,
// but its HTTP requests can still arrive on concurrent goroutines, so
// state transitions are serialized internally; concurrent calls see the
// one-question-outstanding rule, never a torn state.
type Controller struct {
	store Store

	mu      sync.Mutex
	rng     *rand.Rand
	pending *question.Question
}

// NewController creates a controller in the awaiting-draw state. A nil
// rng falls back to a time-seeded source.
func NewController(st Store, rng *rand.Rand) *Controller {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Controller{store: st, rng: rng}
}

// Pending reports the drawn question still awaiting judgment, if any.
func (c *Controller) Pending() (question.Question, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending == nil {
		return question.Question{}, false
	}
	return *c.pending, true
}

// Draw picks the next question from a fresh snapshot of the bank and its
// stats. On any error the controller stays in the awaiting-draw state.
// The returned record is the question's history at draw time, for display.
func (c *Controller) Draw(ctx context.Context) (question.Question, stats.Record, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending != nil {
		return question.Question{}, stats.Record{}, ErrJudgmentPending
	}

	questions, err := c.store.ListQuestions(ctx)
	if err != nil {
		return question.Question{}, stats.Record{}, err
	}
	records, err := c.store.GetAllStats(ctx)
	if err != nil {
		return question.Question{}, stats.Record{}, err
	}

	q, err := selector.Select(questions, records, c.rng)
	if err != nil {
		return question.Question{}, stats.Record{}, err
	}

	c.pending = &q
	return q, records[q.ID], nil
}

// Judge records the outcome for the pending question and returns the
// controller to the awaiting-draw state. If the store call fails the
// question stays pending, so the judgment can be retried without being
// counted twice.
func (c *Controller) Judge(ctx context.Context, passed bool) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.pending == nil {
		return ErrNoPendingQuestion
	}
	if err := c.store.RecordOutcome(ctx, c.pending.ID, passed); err != nil {
		return err
	}
	c.pending = nil
	return nil
}

// Reset clears all recorded stats. Any pending judgment is discarded, but
// only once the store reset succeeds; on failure the session is untouched.
func (c *Controller) Reset(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.store.ResetAll(ctx); err != nil {
		return err
	}
	c.pending = nil
	return nil
}
