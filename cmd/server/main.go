package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	stdhttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"
	"github.com/vncsmyrnk/polls/internal/adapters/auth/jwtauth"
	"github.com/vncsmyrnk/polls/internal/adapters/handler/http"
	"github.com/vncsmyrnk/polls/internal/adapters/metrics"
	"github.com/vncsmyrnk/polls/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/polls/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/polls/internal/config"
	"github.com/vncsmyrnk/polls/internal/core/ports"
	"github.com/vncsmyrnk/polls/internal/core/services"
)

func main() {
	loaded, err := config.LoadDotEnv()
	if err != nil {
		log.Fatal(err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := config.NewLogger(cfg.LogLevel, os.Stderr)
	slog.SetDefault(logger)
	if !loaded {
		logger.Debug("No .env file found")
	}

	var (
		questionRepo ports.QuestionRepository
		choiceRepo   ports.ChoiceRepository
	)
	switch cfg.Storage {
	case config.StorageMemory:
		repo := memory.NewRepository()
		questionRepo, choiceRepo = repo, repo
		logger.Warn("using in-memory storage, data is lost on shutdown")
	default:
		db, err := sql.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			log.Fatal(err)
		}
		questionRepo = postgres.NewQuestionRepository(db)
		choiceRepo = postgres.NewChoiceRepository(db)
	}

	m := metrics.New()
	questionSvc := services.NewQuestionService(questionRepo, services.SystemClock, cfg.IndexLimit)
	choiceSvc := services.NewChoiceService(questionRepo, choiceRepo, m, services.SystemClock)

	opts := http.RouterOptions{Logger: logger, Metrics: m}
	var adminHandler *http.AdminHandler
	if cfg.AdminJWTSecret != "" {
		opts.AdminVerifier = jwtauth.NewTokens(cfg.AdminJWTSecret, 0)
		adminHandler = http.NewAdminHandler(questionSvc, choiceSvc, services.SystemClock)
	} else {
		logger.Warn("ADMIN_JWT_SECRET not set, admin API disabled")
	}

	handler := http.NewHandler(http.NewPollHandler(questionSvc, choiceSvc), adminHandler, opts)
	server := &stdhttp.Server{Addr: cfg.HTTPAddr, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("listening", "addr", cfg.HTTPAddr, "storage", cfg.Storage)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	logger.Info("Gracefully shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal(err)
	}
}
