package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

type AdminHandler struct {
	questions ports.QuestionService
	choices   ports.ChoiceService
	now       func() time.Time
}

func NewAdminHandler(questions ports.QuestionService, choices ports.ChoiceService, now func() time.Time) *AdminHandler {
	if now == nil {
		now = time.Now
	}
	return &AdminHandler{
		questions: questions,
		choices:   choices,
		now:       now,
	}
}

type createQuestionRequest struct {
	QuestionText string     `json:"question_text"`
	PubDate      *time.Time `json:"pub_date"`
	Choices      []string   `json:"choices"`
}

type addChoiceRequest struct {
	ChoiceText string `json:"choice_text"`
}

type questionResponse struct {
	ID                   uuid.UUID       `json:"id"`
	QuestionText         string          `json:"question_text"`
	PubDate              time.Time       `json:"pub_date"`
	WasPublishedRecently bool            `json:"was_published_recently"`
	Choices              []domain.Choice `json:"choices"`
}

func (h *AdminHandler) toResponse(q *domain.Question) questionResponse {
	choices := q.Choices
	if choices == nil {
		choices = []domain.Choice{}
	}
	return questionResponse{
		ID:                   q.ID,
		QuestionText:         q.QuestionText,
		PubDate:              q.PubDate,
		WasPublishedRecently: q.WasPublishedRecently(h.now()),
		Choices:              choices,
	}
}

// CreateQuestion godoc
// @Summary      Creates a question, optionally scheduled for a future pub date
// @Tags         admin
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Failure      401
// @Router       /admin/questions [post]
func (h *AdminHandler) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var req createQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	input := ports.CreateQuestionInput{
		QuestionText: req.QuestionText,
		Choices:      req.Choices,
	}
	if req.PubDate != nil {
		input.PubDate = *req.PubDate
	}

	question, err := h.questions.Create(r.Context(), input)
	if err != nil {
		h.adminError(w, r, err)
		return
	}

	slog.InfoContext(r.Context(), "question created",
		"id", question.ID,
		"pub_date", question.PubDate,
		"admin", r.Context().Value(AdminSubjectKey))
	writeJSON(w, http.StatusCreated, h.toResponse(question))
}

// ListQuestions godoc
// @Summary      Lists every question, including unpublished ones
// @Tags         admin
// @Produce      json
// @Success      200
// @Failure      401
// @Router       /admin/questions [get]
func (h *AdminHandler) ListQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questions.ListAll(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	resp := make([]questionResponse, 0, len(questions))
	for _, q := range questions {
		resp = append(resp, h.toResponse(q))
	}
	writeJSON(w, http.StatusOK, resp)
}

// AddChoice godoc
// @Summary      Adds a choice to a question
// @Tags         admin
// @Accept       json
// @Produce      json
// @Success      201
// @Failure      400
// @Failure      404
// @Router       /admin/questions/{id}/choices [post]
func (h *AdminHandler) AddChoice(w http.ResponseWriter, r *http.Request) {
	var req addChoiceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	choice, err := h.choices.AddChoice(r.Context(), ports.AddChoiceInput{
		QuestionID: chi.URLParam(r, "id"),
		ChoiceText: req.ChoiceText,
	})
	if err != nil {
		h.adminError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, choice)
}

func (h *AdminHandler) adminError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuestionID),
		errors.Is(err, domain.ErrQuestionTextRequired),
		errors.Is(err, domain.ErrChoiceTextRequired):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, domain.ErrQuestionNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		serverError(w, r, err)
	}
}
