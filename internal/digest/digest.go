// Package digest logs periodic practice summaries so progress shows up in
// the server logs without anyone opening the stats view.
package digest

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/drillbank/backend/internal/domain/question"
	"github.com/drillbank/backend/internal/domain/stats"
)

type Store interface {
	ListQuestions(ctx context.Context) ([]question.Question, error)
	GetAllStats(ctx context.Context) (map[string]stats.Record, error)
}

// Start schedules the digest with a standard 5-field cron expression
// (minute hour day-of-month month day-of-week). The returned cron can be
// stopped on shutdown.
func Start(schedule string, st Store, logger *slog.Logger) (*cron.Cron, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)
	spec, err := parser.Parse(schedule)
	if err != nil {
		return nil, err
	}

	c := cron.New()
	c.Schedule(spec, cron.FuncJob(func() {
		Log(context.Background(), st, logger)
	}))
	c.Start()

	logger.Info("progress digest scheduled", "cron", schedule)
	return c, nil
}

// Log emits one digest line from the current bank and stats.
func Log(ctx context.Context, st Store, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	questions, err := st.ListQuestions(ctx)
	if err != nil {
		logger.Error("digest: listing questions", "error", err)
		return
	}
	records, err := st.GetAllStats(ctx)
	if err != nil {
		logger.Error("digest: loading stats", "error", err)
		return
	}

	t := stats.Aggregate(questions, records)
	logger.Info("practice digest",
		"questions", t.Questions,
		"attempts", t.Attempts,
		"fails", t.Fails,
		"pass_rate", t.PassRate,
	)
}
