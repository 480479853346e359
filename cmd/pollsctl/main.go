// Command pollsctl manages questions and choices from the terminal.
package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/vncsmyrnk/polls/internal/adapters/auth/jwtauth"
	"github.com/vncsmyrnk/polls/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/polls/internal/config"
	"github.com/vncsmyrnk/polls/internal/core/services"
)

func main() {
	if err := newRootCmd(openApp).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func openApp() (*app, func(), error) {
	if _, err := config.LoadDotEnv(); err != nil {
		return nil, nil, err
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.Storage != config.StoragePostgres {
		return nil, nil, fmt.Errorf("pollsctl needs postgres storage, got %q", cfg.Storage)
	}

	db, err := sql.Open("postgres", cfg.Postgres.DSN())
	if err != nil {
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}

	questionRepo := postgres.NewQuestionRepository(db)
	choiceRepo := postgres.NewChoiceRepository(db)

	a := &app{
		questions: services.NewQuestionService(questionRepo, services.SystemClock, 0),
		choices:   services.NewChoiceService(questionRepo, choiceRepo, nil, services.SystemClock),
		tokens:    jwtauth.NewTokens(cfg.AdminJWTSecret, 24*time.Hour),
		now:       services.SystemClock,
	}
	return a, func() { db.Close() }, nil
}
