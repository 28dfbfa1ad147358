package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/pluzgi/survey-backend/app"
	"github.com/pluzgi/survey-backend/routes/middlewares"
)

func Wire(app app.App) http.Handler {
	root := chi.NewRouter()
	root.Use(middleware.Logger, middleware.Recoverer)
	root.Use(middlewares.CORS(app.CORSOrigins))

	root.Get("/health", HealthCheck())
	root.Mount("/api", apiRouter(app))

	return root
}

func apiRouter(app app.App) http.Handler {
	api := chi.NewRouter()

	api.Post("/submit", SubmitSurvey(app))
	api.Get("/stats", GetStats(app))

	return api
}
