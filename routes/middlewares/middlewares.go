package middlewares

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS builds the cross-origin middleware from the configured allow-list.
// The survey frontend is hosted on a different origin, so the listed origins
// get every method and header, with credentials.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300,
	})
}
