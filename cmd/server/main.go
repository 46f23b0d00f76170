package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/drillbank/backend/internal/api"
	"github.com/drillbank/backend/internal/digest"
	"github.com/drillbank/backend/internal/infrastructure/config"
	"github.com/drillbank/backend/internal/ingest"
	"github.com/drillbank/backend/internal/session"
	"github.com/drillbank/backend/internal/store"

	_ "github.com/drillbank/backend/docs" // generated swagger docs
)

// @title           Drillbank API
// @version         1.0
// @description     Adaptive self-quizzing backend — import a question bank, practice, and let your misses steer what comes up next.

// @host      localhost:8080
// @BasePath  /

func main() {
	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// ── Dependencies ────────────────────────────────────────────────
	db, err := store.NewSQLite(cfg.DBPath)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if cfg.QuestionsFile != "" {
		if err := seedBank(db, cfg.QuestionsFile, logger); err != nil {
			logger.Error("failed to seed question bank", "file", cfg.QuestionsFile, "error", err)
			os.Exit(1)
		}
	}

	sessions := session.NewManager(db)
	handler := api.NewHandler(db, sessions, logger)

	// Reclaim sessions whose clients went away without a DELETE.
	go func() {
		const maxIdle = 2 * time.Hour
		ticker := time.NewTicker(15 * time.Minute)
		defer ticker.Stop()
		for range ticker.C {
			if n := sessions.PruneIdle(maxIdle); n > 0 {
				logger.Info("pruned idle sessions", "count", n)
			}
		}
	}()

	if cfg.DigestSchedule != "" {
		c, err := digest.Start(cfg.DigestSchedule, db, logger)
		if err != nil {
			logger.Error("invalid digest schedule", "cron", cfg.DigestSchedule, "error", err)
			os.Exit(1)
		}
		defer c.Stop()
	}

	// ── Routes ──────────────────────────────────────────────────────
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status": "ok"}`))
	})

	api.RegisterRoutes(mux, handler)

	// Swagger UI served at /swagger/
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// ── Middleware chain: Logging → CORS → mux ──────────────────────
	logged := api.Logging(logger)(api.CORS(mux))

	// ── Server ──────────────────────────────────────────────────────
	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           logged,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down server")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("server forced to shutdown", "error", err)
		}
	}()

	logger.Info("starting server", "address", cfg.ServerAddress)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("server failed to start", "error", err)
		os.Exit(1)
	}
}

// seedBank loads the configured question file, but only into an empty
// bank — an existing bank and its stats are never clobbered at startup.
func seedBank(db *store.SQLiteStore, path string, logger *slog.Logger) error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := db.CountQuestions(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	questions, err := ingest.LoadFile(path)
	if err != nil {
		return err
	}
	if err := db.ReplaceQuestions(ctx, questions); err != nil {
		return err
	}

	logger.Info("question bank seeded", "file", path, "count", len(questions))
	return nil
}
