package routes

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/render"

	"github.com/pluzgi/survey-backend/app"
	"github.com/pluzgi/survey-backend/httpx"
	"github.com/pluzgi/survey-backend/log"
	"github.com/pluzgi/survey-backend/model"
	"github.com/pluzgi/survey-backend/validate"
)

// SubmitSurvey stores one complete survey submission. The parent row and
// every child rating land in a single transaction, a failure anywhere rolls
// back the lot. Validation happens up front, before any database write.
func SubmitSurvey(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		submission := model.SurveySubmission{}
		err := render.DecodeJSON(r.Body, &submission)
		if err != nil {
			status := http.StatusBadRequest
			var typeErr *json.UnmarshalTypeError
			if errors.As(err, &typeErr) {
				// body was JSON, a field just carries the wrong type
				status = http.StatusUnprocessableEntity
			}
			httpx.LogStatusMsg(w, r, status, log.DebugLevel, "submit.parse_body", "Invalid request body: %s", err)
			return
		}

		err = validate.Struct(submission)
		if err != nil {
			httpx.LogStatusMsg(w, r, http.StatusUnprocessableEntity, log.DebugLevel, "submit.validate", "%s", err)
			return
		}

		record := submission.Record(time.Now().UTC())

		tx, err := app.BeginTx(r.Context(), nil)
		if err != nil {
			httpx.LogInternalError(w, r, "db.begin_tx", err)
			return
		}
		defer tx.Rollback()

		var responseId int
		err = tx.QueryRowContext(r.Context(), `
			INSERT INTO survey_responses (
				created_at,
				q1_eligible, q2_participation, q3_tech_comfort,
				experimental_group, q4_willingness,
				q7_data_usage, q8_question_usage, q9_retention_time, q10_server_location,
				q11_open_response,
				q12_age, q13_gender, q14_canton, q15_language, q16_education
			)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING id`,
			record.CreatedAt,
			record.Q1Eligible, record.Q2Participation, record.Q3TechComfort,
			record.ExperimentalGroup, record.Q4Willingness,
			record.Q7DataUsage, record.Q8QuestionUsage, record.Q9RetentionTime, record.Q10ServerLocation,
			record.Q11OpenResponse,
			record.Q12Age, record.Q13Gender, record.Q14Canton, record.Q15Language, record.Q16Education,
		).Scan(&responseId)
		if err != nil {
			httpx.LogInternalError(w, r, "db.insert_response", err)
			return
		}

		concernStmt, err := tx.PrepareContext(r.Context(), `
			INSERT INTO concern_ratings (response_id, concern_type, rating)
			VALUES (?, ?, ?)`)
		if err != nil {
			httpx.LogInternalError(w, r, "db.insert_concerns.prepare", err)
			return
		}
		defer concernStmt.Close()

		for _, c := range record.Concerns {
			_, err = concernStmt.ExecContext(r.Context(), responseId, c.ConcernType, c.Rating)
			if err != nil {
				httpx.LogInternalError(w, r, "db.insert_concerns.insert", err)
				return
			}
		}

		featureStmt, err := tx.PrepareContext(r.Context(), `
			INSERT INTO feature_importance (response_id, feature_type, rating)
			VALUES (?, ?, ?)`)
		if err != nil {
			httpx.LogInternalError(w, r, "db.insert_features.prepare", err)
			return
		}
		defer featureStmt.Close()

		for _, f := range record.Features {
			_, err = featureStmt.ExecContext(r.Context(), responseId, f.FeatureType, f.Rating)
			if err != nil {
				httpx.LogInternalError(w, r, "db.insert_features.insert", err)
				return
			}
		}

		err = tx.Commit()
		if err != nil {
			httpx.LogInternalError(w, r, "db.insert_response.commit", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"status":      "success",
			"message":     "Survey response recorded",
			"response_id": responseId,
		})
	}
}

// GetStats reports how many responses have been collected so far.
func GetStats(app app.App) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var total int
		err := app.QueryRowContext(r.Context(), `SELECT COUNT(*) FROM survey_responses`).Scan(&total)
		if err != nil {
			httpx.LogInternalError(w, r, "db.count_responses", err)
			return
		}

		render.JSON(w, r, map[string]any{
			"total_responses": total,
			"timestamp":       time.Now().UTC(),
		})
	}
}
