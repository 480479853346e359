package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestWasPublishedRecently(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		pubDate  time.Time
		expected bool
	}{
		{"future question", now.Add(30 * 24 * time.Hour), false},
		{"one second in the future", now.Add(time.Second), false},
		{"old question", now.Add(-(24*time.Hour + time.Second)), false},
		{"exactly one day old", now.Add(-24 * time.Hour), false},
		{"recent question", now.Add(-(23*time.Hour + 59*time.Minute + 59*time.Second)), true},
		{"published now", now, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := Question{PubDate: tt.pubDate}
			assert.Equal(t, tt.expected, q.WasPublishedRecently(now))
		})
	}
}

func TestIsPublished(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	assert.True(t, (&Question{PubDate: now}).IsPublished(now), "pub date equal to now is published")
	assert.True(t, (&Question{PubDate: now.AddDate(0, 0, -30)}).IsPublished(now))
	assert.False(t, (&Question{PubDate: now.Add(time.Nanosecond)}).IsPublished(now))
}

func TestIsPublished_TimezoneAware(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	// 09:30 in UTC-3 is 12:30 UTC, still in the future.
	q := Question{PubDate: time.Date(2024, 3, 10, 9, 30, 0, 0, saoPaulo)}
	assert.False(t, q.IsPublished(now))
	assert.False(t, q.WasPublishedRecently(now))
}

func TestQuestionChoices(t *testing.T) {
	a := Choice{ID: uuid.New(), ChoiceText: "Not much", Votes: 2}
	b := Choice{ID: uuid.New(), ChoiceText: "The sky", Votes: 3}
	q := Question{QuestionText: "What's up?", Choices: []Choice{a, b}}

	assert.Equal(t, int64(5), q.TotalVotes())
	assert.Equal(t, "What's up?", q.String())

	got, ok := q.Choice(b.ID)
	assert.True(t, ok)
	assert.Equal(t, b, got)

	_, ok = q.Choice(uuid.New())
	assert.False(t, ok)
}
