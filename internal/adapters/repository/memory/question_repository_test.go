package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vncsmyrnk/polls/internal/core/domain"
)

func newQuestion(text string, pubDate time.Time, choices ...string) *domain.Question {
	q := &domain.Question{ID: uuid.New(), QuestionText: text, PubDate: pubDate}
	for _, c := range choices {
		q.Choices = append(q.Choices, domain.Choice{ID: uuid.New(), QuestionID: q.ID, ChoiceText: c})
	}
	return q
}

func TestListPublished(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	repo := NewRepository()

	older := newQuestion("older", now.AddDate(0, 0, -30))
	newer := newQuestion("newer", now.AddDate(0, 0, -1))
	future := newQuestion("future", now.AddDate(0, 0, 1))
	atNow := newQuestion("at now", now)
	for _, q := range []*domain.Question{older, future, newer, atNow} {
		require.NoError(t, repo.Save(ctx, q))
	}

	got, err := repo.ListPublished(ctx, now, 0)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "at now", got[0].QuestionText)
	assert.Equal(t, "newer", got[1].QuestionText)
	assert.Equal(t, "older", got[2].QuestionText)

	limited, err := repo.ListPublished(ctx, now, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 4)
	assert.Equal(t, "future", all[0].QuestionText)
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	_, err := repo.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, domain.ErrQuestionNotFound)

	q := newQuestion("q", time.Now(), "a", "b")
	require.NoError(t, repo.Save(ctx, q))
	assert.Error(t, repo.Save(ctx, q), "duplicate id")

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, q.QuestionText, got.QuestionText)
	assert.Len(t, got.Choices, 2)

	// Mutating the returned value must not touch the stored one.
	got.Choices[0].Votes = 99
	again, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), again.Choices[0].Votes)
}

func TestChoices(t *testing.T) {
	ctx := context.Background()
	repo := NewRepository()

	q := newQuestion("q", time.Now())
	require.NoError(t, repo.Save(ctx, q))

	c := &domain.Choice{ID: uuid.New(), QuestionID: q.ID, ChoiceText: "yes"}
	require.NoError(t, repo.SaveChoice(ctx, c))
	assert.ErrorIs(t, repo.SaveChoice(ctx, &domain.Choice{ID: uuid.New(), QuestionID: uuid.New()}), domain.ErrQuestionNotFound)

	ok, err := repo.IncrementVotes(ctx, q.ID, c.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.IncrementVotes(ctx, uuid.New(), c.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	got, err := repo.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.Choices[0].Votes)
}
