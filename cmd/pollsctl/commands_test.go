package main

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/polls/internal/adapters/auth/jwtauth"
	"github.com/vncsmyrnk/polls/internal/adapters/repository/memory"
	"github.com/vncsmyrnk/polls/internal/core/services"
)

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestApp() *app {
	repo := memory.NewRepository()
	clock := func() time.Time { return testNow }
	return &app{
		questions: services.NewQuestionService(repo, clock, 0),
		choices:   services.NewChoiceService(repo, repo, nil, clock),
		tokens:    jwtauth.NewTokens("test-secret", time.Hour),
		now:       clock,
	}
}

func run(t *testing.T, a *app, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(func() (*app, func(), error) { return a, func() {}, nil })
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestQuestionCreateAndList(t *testing.T) {
	a := newTestApp()

	out, err := run(t, a, "question", "create", "--text", "Past question.", "--days=-30", "--choice", "Yes", "--choice", "No")
	require.NoError(t, err)
	id, err := uuid.Parse(strings.TrimSpace(out))
	require.NoError(t, err)

	_, err = run(t, a, "question", "create", "--text", "Future question.", "--days=2")
	require.NoError(t, err)

	out, err = run(t, a, "choice", "add", "--question", id.String(), "--text", "Maybe")
	require.NoError(t, err)
	assert.NotEmpty(t, strings.TrimSpace(out))

	out, err = run(t, a, "question", "list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "PUB DATE")
	assert.Contains(t, lines[1], "Future question.")
	assert.Contains(t, lines[1], "false")
	assert.Contains(t, lines[2], id.String())

	q, err := a.questions.Detail(context.Background(), id.String())
	require.NoError(t, err)
	assert.Len(t, q.Choices, 3)
}

func TestQuestionCreate_RequiresText(t *testing.T) {
	_, err := run(t, newTestApp(), "question", "create", "--days=1")
	assert.ErrorContains(t, err, "text")
}

func TestToken(t *testing.T) {
	a := newTestApp()
	out, err := run(t, a, "token", "--subject", "ops")
	require.NoError(t, err)

	sub, err := a.tokens.(*jwtauth.Tokens).Verify(strings.TrimSpace(out))
	require.NoError(t, err)
	assert.Equal(t, "ops", sub)
}
