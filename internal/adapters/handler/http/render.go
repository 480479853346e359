package http

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
)

//go:embed templates/*.html
var templateFiles embed.FS

var pages = mustParsePages("index", "detail", "results")

func mustParsePages(names ...string) map[string]*template.Template {
	funcs := template.FuncMap{
		"detailURL":  DetailURL,
		"resultsURL": ResultsURL,
		"voteURL":    VoteURL,
		"pluralize": func(n int64) string {
			if n == 1 {
				return ""
			}
			return "s"
		},
	}

	parsed := make(map[string]*template.Template, len(names))
	for _, name := range names {
		parsed[name] = template.Must(template.New(name).Funcs(funcs).ParseFS(
			templateFiles, "templates/base.html", fmt.Sprintf("templates/%s.html", name),
		))
	}
	return parsed
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

// render writes data as JSON when the client asks for it and as the named
// HTML page otherwise.
func render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	if wantsJSON(r) {
		writeJSON(w, status, data)
		return
	}

	var buf bytes.Buffer
	if err := pages[page].ExecuteTemplate(&buf, "base", data); err != nil {
		serverError(w, r, fmt.Errorf("failed to render %s: %w", page, err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func serverError(w http.ResponseWriter, r *http.Request, err error) {
	slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
