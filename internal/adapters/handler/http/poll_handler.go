package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/vncsmyrnk/polls/internal/core/domain"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

const noChoiceMessage = "You didn't select a choice."

type PollHandler struct {
	questions ports.QuestionService
	choices   ports.ChoiceService
}

func NewPollHandler(questions ports.QuestionService, choices ports.ChoiceService) *PollHandler {
	return &PollHandler{
		questions: questions,
		choices:   choices,
	}
}

type indexPage struct {
	LatestQuestionList []*domain.Question `json:"latest_question_list"`
}

type questionPage struct {
	Question     *domain.Question `json:"question"`
	ErrorMessage string           `json:"error_message,omitempty"`
}

// Index godoc
// @Summary      Lists published questions
// @Description  Questions whose pub date is not in the future, newest first.
// @Tags         polls
// @Produce      html,json
// @Success      200
// @Router       /polls/ [get]
func (h *PollHandler) Index(w http.ResponseWriter, r *http.Request) {
	questions, err := h.questions.Index(r.Context())
	if err != nil {
		serverError(w, r, err)
		return
	}

	render(w, r, http.StatusOK, "index", indexPage{LatestQuestionList: questions})
}

// Detail godoc
// @Summary      Shows a published question with its voting form
// @Tags         polls
// @Produce      html,json
// @Success      200
// @Failure      404
// @Router       /polls/{id}/ [get]
func (h *PollHandler) Detail(w http.ResponseWriter, r *http.Request) {
	question, err := h.questions.Detail(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.lookupError(w, r, err)
		return
	}

	render(w, r, http.StatusOK, "detail", questionPage{Question: question})
}

// Results godoc
// @Summary      Shows the vote counts of a published question
// @Tags         polls
// @Produce      html,json
// @Success      200
// @Failure      404
// @Router       /polls/{id}/results/ [get]
func (h *PollHandler) Results(w http.ResponseWriter, r *http.Request) {
	question, err := h.questions.Results(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.lookupError(w, r, err)
		return
	}

	render(w, r, http.StatusOK, "results", questionPage{Question: question})
}

// Vote godoc
// @Summary      Votes for one choice of a published question
// @Tags         polls
// @Accept       x-www-form-urlencoded
// @Success      303
// @Failure      404
// @Router       /polls/{id}/vote/ [post]
func (h *PollHandler) Vote(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "failed to parse form", http.StatusBadRequest)
		return
	}

	question, err := h.choices.Vote(r.Context(), ports.VoteInput{
		QuestionID: chi.URLParam(r, "id"),
		ChoiceID:   r.PostFormValue("choice"),
	})
	if err != nil {
		if errors.Is(err, domain.ErrChoiceNotSelected) && question != nil {
			render(w, r, http.StatusOK, "detail", questionPage{
				Question:     question,
				ErrorMessage: noChoiceMessage,
			})
			return
		}
		h.lookupError(w, r, err)
		return
	}

	http.Redirect(w, r, ResultsURL(question.ID), http.StatusSeeOther)
}

func (h *PollHandler) lookupError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrQuestionNotFound) {
		http.Error(w, "question not found", http.StatusNotFound)
		return
	}
	serverError(w, r, err)
}
