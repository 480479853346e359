package domain

import "errors"

var (
	ErrQuestionNotFound     = errors.New("question not found")
	ErrInvalidQuestionID    = errors.New("invalid question id")
	ErrQuestionTextRequired = errors.New("question text is required")
	ErrChoiceTextRequired   = errors.New("choice text is required")
	ErrChoiceNotSelected    = errors.New("you didn't select a choice")
)
