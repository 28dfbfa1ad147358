package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// HealthCheck is a liveness signal, it touches nothing.
func HealthCheck() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, map[string]any{
			"status":    "healthy",
			"timestamp": time.Now().UTC(),
		})
	}
}
