package httpx

import (
	"fmt"
	"net/http"

	"github.com/go-chi/render"

	"github.com/pluzgi/survey-backend/log"
)

// Error sends an error response in the {"detail": ...} JSON shape shared by
// every failure path of the API.
func Error(w http.ResponseWriter, r *http.Request, status int, detail string) {
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"detail": detail})
}

// Will log an error, and send an HTTP response with status 500 carrying the
// failure cause. The persistence layer is the only source of internal errors
// in this API, the response body says as much.
func LogInternalError(w http.ResponseWriter, r *http.Request, code string, err error) {
	log.Errorf("%s: %s", code, err)
	Error(w, r, http.StatusInternalServerError, fmt.Sprintf("Database error: %s", err))
}

// Will log an error code and message at the given level,
// and send an HTTP response with the given status and formatted detail
func LogStatusMsg(w http.ResponseWriter, r *http.Request, status int, level log.Level, code string, msg string, args ...any) {
	detail := fmt.Sprintf(msg, args...)
	log.Log(level, code+":", detail)
	Error(w, r, status, detail)
}
