package ports

import (
	"context"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polls/internal/core/domain"
)

type ChoiceRepository interface {
	SaveChoice(ctx context.Context, choice *domain.Choice) error
	// IncrementVotes adds one vote to the choice if it belongs to the question.
	// It returns false when no such choice exists.
	IncrementVotes(ctx context.Context, questionID, choiceID uuid.UUID) (bool, error)
}

type AddChoiceInput struct {
	QuestionID string
	ChoiceText string
}

type VoteInput struct {
	QuestionID string
	ChoiceID   string
}

type ChoiceService interface {
	AddChoice(ctx context.Context, input AddChoiceInput) (*domain.Choice, error)
	Vote(ctx context.Context, input VoteInput) (*domain.Question, error)
}
