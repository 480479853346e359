package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

const insertChoiceQuery = `
	INSERT INTO choices (id, question_id, choice_text, votes)
	VALUES ($1, $2, $3, $4)
`

// foreignKeyViolation is the postgres SQLSTATE for a failed REFERENCES check.
const foreignKeyViolation = "23503"

type choiceRepository struct {
	db *sql.DB
}

func NewChoiceRepository(db *sql.DB) ports.ChoiceRepository {
	return &choiceRepository{
		db: db,
	}
}

func (r *choiceRepository) SaveChoice(ctx context.Context, choice *domain.Choice) error {
	_, err := r.db.ExecContext(ctx, insertChoiceQuery, choice.ID, choice.QuestionID, choice.ChoiceText, choice.Votes)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == foreignKeyViolation {
			return domain.ErrQuestionNotFound
		}
		return fmt.Errorf("failed to save choice: %w", err)
	}
	return nil
}

func (r *choiceRepository) IncrementVotes(ctx context.Context, questionID, choiceID uuid.UUID) (bool, error) {
	query := `UPDATE choices SET votes = votes + 1 WHERE id = $1 AND question_id = $2`
	res, err := r.db.ExecContext(ctx, query, choiceID, questionID)
	if err != nil {
		return false, fmt.Errorf("failed to increment votes: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

func fetchChoices(ctx context.Context, db *sql.DB, questionID uuid.UUID) ([]domain.Choice, error) {
	query := `
		SELECT id, question_id, choice_text, votes
		FROM choices
		WHERE question_id = $1
		ORDER BY seq
	`
	rows, err := db.QueryContext(ctx, query, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get choices: %w", err)
	}
	defer rows.Close()

	var choices []domain.Choice
	for rows.Next() {
		var c domain.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating choices: %w", err)
	}
	return choices, nil
}
