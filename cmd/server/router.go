package main

import (
	"net/http"

	"github.com/dayoun/memopad/internal/api"
	apiMiddleware "github.com/dayoun/memopad/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware(app.logger))

	memoHandler := api.NewMemoHandler(app.memoService, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/memos", memoHandler.ListMemos)
		r.Post("/memos", memoHandler.CreateMemo)
		r.Put("/memos/{id}", memoHandler.UpdateMemo)
		r.Delete("/memos/{id}", memoHandler.DeleteMemo)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
