package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/vncsmyrnk/polls/internal/adapters/metrics"
	"github.com/vncsmyrnk/polls/internal/core/ports"
)

type RouterOptions struct {
	Logger *slog.Logger
	// Metrics is optional; without it /metrics is not served.
	Metrics *metrics.Metrics
	// AdminVerifier is optional; without it the /admin routes are not mounted.
	AdminVerifier ports.TokenVerifier
}

func NewHandler(pollHandler *PollHandler, adminHandler *AdminHandler, opts RouterOptions) http.Handler {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{
		Logger:  slog.NewLogLogger(logger.Handler(), slog.LevelInfo),
		NoColor: true,
	}))
	r.Use(middleware.Recoverer)
	if opts.Metrics != nil {
		r.Use(opts.Metrics.Middleware)
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, IndexURL(), http.StatusFound)
	})
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/polls", func(r chi.Router) {
		r.Get("/", pollHandler.Index)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", pollHandler.Detail)
			r.Get("/results/", pollHandler.Results)
			r.Post("/vote/", pollHandler.Vote)
		})
	})

	if adminHandler != nil && opts.AdminVerifier != nil {
		r.Route("/admin", func(r chi.Router) {
			r.Use(RequireBearer(opts.AdminVerifier))
			r.Route("/questions", func(r chi.Router) {
				r.Get("/", adminHandler.ListQuestions)
				r.Post("/", adminHandler.CreateQuestion)
				r.Post("/{id}/choices", adminHandler.AddChoice)
			})
		})
	}

	return r
}
