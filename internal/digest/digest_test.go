package digest_test

import (
	"bytes"
	"context"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drillbank/backend/internal/digest"
	"github.com/drillbank/backend/internal/domain/question"
	"github.com/drillbank/backend/internal/store"
)

func TestLog_EmitsTotals(t *testing.T) {
	s, err := store.NewSQLite(filepath.Join(t.TempDir(), "digest-test.db"))
	if err != nil {
		t.Fatalf("NewSQLite failed: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })

	ctx := context.Background()
	questions := []question.Question{
		{ID: "q1", Text: "One", Answer: "1"},
		{ID: "q2", Text: "Two", Answer: "2"},
	}
	if err := s.ReplaceQuestions(ctx, questions); err != nil {
		t.Fatalf("ReplaceQuestions failed: %v", err)
	}
	if err := s.RecordOutcome(ctx, "q1", false); err != nil {
		t.Fatalf("RecordOutcome failed: %v", err)
	}

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))

	digest.Log(ctx, s, logger)

	out := buf.String()
	if !strings.Contains(out, "practice digest") {
		t.Fatalf("expected a digest line, got %q", out)
	}
	if !strings.Contains(out, `"questions":2`) || !strings.Contains(out, `"fails":1`) {
		t.Errorf("digest line missing totals: %q", out)
	}
}

func TestStart_RejectsBadSchedule(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	if _, err := digest.Start("not a cron", nil, logger); err == nil {
		t.Fatal("expected error for invalid cron expression")
	}
}
