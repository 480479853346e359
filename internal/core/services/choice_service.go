package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

type choiceService struct {
	questionRepo ports.QuestionRepository
	choiceRepo   ports.ChoiceRepository
	recorder     ports.VoteRecorder
	now          Clock
}

type noopRecorder struct{}

func (noopRecorder) VoteRecorded() {}

func NewChoiceService(questionRepo ports.QuestionRepository, choiceRepo ports.ChoiceRepository, recorder ports.VoteRecorder, clock Clock) ports.ChoiceService {
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if clock == nil {
		clock = SystemClock
	}
	return &choiceService{
		questionRepo: questionRepo,
		choiceRepo:   choiceRepo,
		recorder:     recorder,
		now:          clock,
	}
}

// AddChoice attaches a choice to any existing question, published or not.
func (s *choiceService) AddChoice(ctx context.Context, input ports.AddChoiceInput) (*domain.Choice, error) {
	text := strings.TrimSpace(input.ChoiceText)
	if text == "" {
		return nil, domain.ErrChoiceTextRequired
	}

	question, err := getQuestion(ctx, s.questionRepo, input.QuestionID)
	if err != nil {
		return nil, err
	}

	choice := &domain.Choice{
		ID:         uuid.New(),
		QuestionID: question.ID,
		ChoiceText: text,
	}
	if err := s.choiceRepo.SaveChoice(ctx, choice); err != nil {
		return nil, err
	}

	return choice, nil
}

// Vote counts one vote for a choice of a published question. When the choice
// is missing or foreign to the question, the question is returned alongside
// ErrChoiceNotSelected so the caller can show the form again.
func (s *choiceService) Vote(ctx context.Context, input ports.VoteInput) (*domain.Question, error) {
	question, err := getQuestion(ctx, s.questionRepo, input.QuestionID)
	if err != nil {
		return nil, err
	}
	if !question.IsPublished(s.now()) {
		return nil, domain.ErrQuestionNotFound
	}

	choiceID, err := uuid.Parse(input.ChoiceID)
	if err != nil {
		return question, domain.ErrChoiceNotSelected
	}
	if _, ok := question.Choice(choiceID); !ok {
		return question, domain.ErrChoiceNotSelected
	}

	ok, err := s.choiceRepo.IncrementVotes(ctx, question.ID, choiceID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return question, domain.ErrChoiceNotSelected
	}

	s.recorder.VoteRecorded()
	return question, nil
}
