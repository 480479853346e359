package domain

import (
	"time"

	"github.com/google/uuid"
)

// RecentWindow is how far back a publication still counts as recent.
const RecentWindow = 24 * time.Hour

type Question struct {
	ID           uuid.UUID `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
	Choices      []Choice  `json:"choices,omitempty"`
}

type Choice struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"question_id"`
	ChoiceText string    `json:"choice_text"`
	Votes      int64     `json:"votes"`
}

// IsPublished reports whether the question is visible at now.
// A question whose pub date equals now is already published.
func (q *Question) IsPublished(now time.Time) bool {
	return !q.PubDate.After(now)
}

// WasPublishedRecently reports whether the pub date falls in (now-24h, now].
func (q *Question) WasPublishedRecently(now time.Time) bool {
	return q.IsPublished(now) && q.PubDate.After(now.Add(-RecentWindow))
}

// TotalVotes sums the votes of every choice.
func (q *Question) TotalVotes() int64 {
	var total int64
	for _, c := range q.Choices {
		total += c.Votes
	}
	return total
}

// Choice returns the choice with the given id, if it belongs to the question.
func (q *Question) Choice(id uuid.UUID) (Choice, bool) {
	for _, c := range q.Choices {
		if c.ID == id {
			return c, true
		}
	}
	return Choice{}, false
}

func (q *Question) String() string {
	return q.QuestionText
}
