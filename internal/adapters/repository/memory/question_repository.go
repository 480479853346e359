package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vncsmyrnk/polls/internal/core/domain"
)

// Repository keeps questions and choices in process memory. It satisfies both
// ports.QuestionRepository and ports.ChoiceRepository.
type Repository struct {
	mu        sync.RWMutex
	questions map[uuid.UUID]domain.Question
	choices   map[uuid.UUID][]domain.Choice
}

func NewRepository() *Repository {
	return &Repository{
		questions: make(map[uuid.UUID]domain.Question),
		choices:   make(map[uuid.UUID][]domain.Choice),
	}
}

func (r *Repository) Save(ctx context.Context, question *domain.Question) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.questions[question.ID]; exists {
		return fmt.Errorf("failed to insert question: duplicate id %s", question.ID)
	}

	stored := *question
	stored.Choices = nil
	r.questions[question.ID] = stored
	r.choices[question.ID] = append([]domain.Choice(nil), question.Choices...)
	return nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	question, ok := r.questions[id]
	if !ok {
		return nil, domain.ErrQuestionNotFound
	}
	return r.withChoices(question), nil
}

func (r *Repository) ListPublished(ctx context.Context, now time.Time, limit int) ([]*domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var questions []*domain.Question
	for _, q := range r.questions {
		if q.IsPublished(now) {
			questions = append(questions, r.withChoices(q))
		}
	}
	sortNewestFirst(questions)

	if limit > 0 && len(questions) > limit {
		questions = questions[:limit]
	}
	return questions, nil
}

func (r *Repository) GetAll(ctx context.Context) ([]*domain.Question, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	questions := make([]*domain.Question, 0, len(r.questions))
	for _, q := range r.questions {
		questions = append(questions, r.withChoices(q))
	}
	sortNewestFirst(questions)
	return questions, nil
}

func (r *Repository) SaveChoice(ctx context.Context, choice *domain.Choice) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.questions[choice.QuestionID]; !ok {
		return domain.ErrQuestionNotFound
	}
	r.choices[choice.QuestionID] = append(r.choices[choice.QuestionID], *choice)
	return nil
}

func (r *Repository) IncrementVotes(ctx context.Context, questionID, choiceID uuid.UUID) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	choices := r.choices[questionID]
	for i := range choices {
		if choices[i].ID == choiceID {
			choices[i].Votes++
			return true, nil
		}
	}
	return false, nil
}

func (r *Repository) withChoices(q domain.Question) *domain.Question {
	q.Choices = append([]domain.Choice(nil), r.choices[q.ID]...)
	return &q
}

// sortNewestFirst orders by pub date descending, then id ascending, which is
// the order the postgres repository uses.
func sortNewestFirst(questions []*domain.Question) {
	sort.Slice(questions, func(i, j int) bool {
		a, b := questions[i], questions[j]
		if !a.PubDate.Equal(b.PubDate) {
			return a.PubDate.After(b.PubDate)
		}
		return a.ID.String() < b.ID.String()
	})
}
