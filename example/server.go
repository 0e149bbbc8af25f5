package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/localize/middlewares"
	"github.com/dmitrymomot/localize/pkg/catalog"
	"github.com/dmitrymomot/localize/pkg/langtag"
)

type messageResponse struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Found bool   `json:"found"`
}

func newRouter(cat *catalog.Catalog, supported []langtag.Tag, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middlewares.RequestID(),
		middlewares.Recover(middlewares.WithRecoverLogger(log)),
		middlewares.Language(middlewares.WithSupportedLanguages(supported...)),
	)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		if err := cat.Ping(r.Context()); err != nil {
			log.WarnContext(r.Context(), "catalog store unhealthy", slog.String("error", err.Error()))
			http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("OK"))
	})

	r.Get("/greeting", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(cat.T(r.Context(), "greetings.hello")))
	})

	r.Get("/messages/{name}", func(w http.ResponseWriter, r *http.Request) {
		name := chi.URLParam(r, "name")

		value, found, err := cat.Resolve(r.Context(), name)
		if errors.Is(err, catalog.ErrUnknownTable) {
			writeJSON(w, http.StatusNotFound, messageResponse{
				Name:  name,
				Value: cat.T(r.Context(), "errors.not_found"),
			})
			return
		}
		if err != nil {
			log.ErrorContext(r.Context(), "message lookup failed", slog.String("name", name), slog.String("error", err.Error()))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusOK, messageResponse{Name: name, Value: value, Found: found})
	})

	r.Get("/languages", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string][]langtag.Tag{
			"available": cat.Languages(),
			"preferred": middlewares.GetLanguages(r),
		})
	})

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
