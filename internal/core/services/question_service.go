package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

type questionService struct {
	repo       ports.QuestionRepository
	now        Clock
	indexLimit int
}

func NewQuestionService(repo ports.QuestionRepository, clock Clock, indexLimit int) ports.QuestionService {
	if clock == nil {
		clock = SystemClock
	}
	return &questionService{
		repo:       repo,
		now:        clock,
		indexLimit: indexLimit,
	}
}

func (s *questionService) Create(ctx context.Context, input ports.CreateQuestionInput) (*domain.Question, error) {
	text := strings.TrimSpace(input.QuestionText)
	if text == "" {
		return nil, domain.ErrQuestionTextRequired
	}

	pubDate := input.PubDate
	if pubDate.IsZero() {
		pubDate = s.now()
	}

	question := &domain.Question{
		ID:           uuid.New(),
		QuestionText: text,
		PubDate:      pubDate.UTC(),
	}

	for _, choiceText := range input.Choices {
		choiceText = strings.TrimSpace(choiceText)
		if choiceText == "" {
			continue
		}
		question.Choices = append(question.Choices, domain.Choice{
			ID:         uuid.New(),
			QuestionID: question.ID,
			ChoiceText: choiceText,
		})
	}

	if err := s.repo.Save(ctx, question); err != nil {
		return nil, err
	}

	return question, nil
}

func (s *questionService) Index(ctx context.Context) ([]*domain.Question, error) {
	questions, err := s.repo.ListPublished(ctx, s.now(), s.indexLimit)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []*domain.Question{}
	}
	return questions, nil
}

func (s *questionService) Detail(ctx context.Context, id string) (*domain.Question, error) {
	return s.getPublished(ctx, id)
}

func (s *questionService) Results(ctx context.Context, id string) (*domain.Question, error) {
	return s.getPublished(ctx, id)
}

func (s *questionService) ListAll(ctx context.Context) ([]*domain.Question, error) {
	questions, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []*domain.Question{}
	}
	return questions, nil
}

// getPublished hides unpublished questions behind the same error as missing ones.
func (s *questionService) getPublished(ctx context.Context, id string) (*domain.Question, error) {
	question, err := getQuestion(ctx, s.repo, id)
	if err != nil {
		return nil, err
	}
	if !question.IsPublished(s.now()) {
		return nil, domain.ErrQuestionNotFound
	}
	return question, nil
}

func getQuestion(ctx context.Context, repo ports.QuestionRepository, id string) (*domain.Question, error) {
	questionID, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrQuestionNotFound, domain.ErrInvalidQuestionID)
	}
	return repo.GetByID(ctx, questionID)
}
