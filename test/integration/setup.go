package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/vncsmyrnk/polls/internal/adapters/auth/jwtauth"
	handler "github.com/vncsmyrnk/polls/internal/adapters/handler/http"
	"github.com/vncsmyrnk/polls/internal/adapters/metrics"
	repo "github.com/vncsmyrnk/polls/internal/adapters/repository/postgres"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
	"github.com/vncsmyrnk/polls/internal/core/services"
)

const adminSecret = "test-secret"

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase(dbName),
		tcpostgres.WithUsername(user),
		tcpostgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

type TestApp struct {
	DB          *sql.DB
	Server      *httptest.Server
	Client      *http.Client
	Questions   ports.QuestionService
	Tokens      *jwtauth.Tokens
	DBContainer testcontainers.Container
}

func setupTestApp(t *testing.T) *TestApp {
	t.Helper()

	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	err = repo.ApplyMigrations(ctx, db)
	require.NoError(t, err)

	questionRepo := repo.NewQuestionRepository(db)
	choiceRepo := repo.NewChoiceRepository(db)

	questionSvc := services.NewQuestionService(questionRepo, services.SystemClock, 0)
	choiceSvc := services.NewChoiceService(questionRepo, choiceRepo, nil, services.SystemClock)
	tokens := jwtauth.NewTokens(adminSecret, time.Hour)

	router := handler.NewHandler(
		handler.NewPollHandler(questionSvc, choiceSvc),
		handler.NewAdminHandler(questionSvc, choiceSvc, services.SystemClock),
		handler.RouterOptions{Metrics: metrics.New(), AdminVerifier: tokens},
	)

	server := httptest.NewServer(router)

	return &TestApp{
		DB:          db,
		Server:      server,
		Client:      server.Client(),
		Questions:   questionSvc,
		Tokens:      tokens,
		DBContainer: dbContainer,
	}
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}

// createQuestion stores a question published the given number of days from
// now (negative for questions published in the past, positive for the future).
func (app *TestApp) createQuestion(t *testing.T, text string, days int, choices ...string) *domain.Question {
	t.Helper()
	q, err := app.Questions.Create(context.Background(), ports.CreateQuestionInput{
		QuestionText: text,
		PubDate:      time.Now().UTC().AddDate(0, 0, days),
		Choices:      choices,
	})
	require.NoError(t, err)
	return q
}

func (app *TestApp) url(path string) string {
	return app.Server.URL + path
}
