package model

import "time"

// SurveyResponse is the parent record, one row per submission. It owns its
// child ratings; the children carry the response ID for joins and cascade
// delete only, never as an independent identity.
type SurveyResponse struct {
	ID        int       `json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Q1Eligible        bool    `json:"q1_eligible"`
	Q2Participation   int     `json:"q2_participation"`
	Q3TechComfort     int     `json:"q3_tech_comfort"`
	ExperimentalGroup string  `json:"experimental_group"`
	Q4Willingness     int     `json:"q4_willingness"`
	Q7DataUsage       string  `json:"q7_data_usage"`
	Q8QuestionUsage   string  `json:"q8_question_usage"`
	Q9RetentionTime   string  `json:"q9_retention_time"`
	Q10ServerLocation string  `json:"q10_server_location"`
	Q11OpenResponse   *string `json:"q11_open_response"`
	Q12Age            string  `json:"q12_age"`
	Q13Gender         string  `json:"q13_gender"`
	Q14Canton         string  `json:"q14_canton"`
	Q15Language       string  `json:"q15_language"`
	Q16Education      string  `json:"q16_education"`

	Concerns []ConcernRating     `json:"concerns"`
	Features []FeatureImportance `json:"features"`
}

type ConcernRating struct {
	ID          int    `json:"id"`
	ResponseID  int    `json:"response_id"`
	ConcernType string `json:"concern_type"`
	Rating      int    `json:"rating"`
}

type FeatureImportance struct {
	ID          int    `json:"id"`
	ResponseID  int    `json:"response_id"`
	FeatureType string `json:"feature_type"`
	Rating      int    `json:"rating"`
}

// SurveySubmission is the wire shape of a survey submission. Required scalars
// that may legitimately hold a zero value (false, 0) are pointers, so that a
// missing field is distinguishable from an explicit one.
type SurveySubmission struct {
	Q1Eligible        *bool  `json:"q1_eligible" validate:"required"`
	Q2Participation   *int   `json:"q2_participation" validate:"required,min=1,max=5"`
	Q3TechComfort     *int   `json:"q3_tech_comfort" validate:"required,min=1,max=5"`
	ExperimentalGroup string `json:"experimental_group" validate:"required,oneof=group1 group2 group3 group4"`
	Q4Willingness     *int   `json:"q4_willingness" validate:"required,min=1,max=5"`

	// q5 and q6 arrive as the concerns and features collections
	Concerns []ConcernRatingData     `json:"concerns" validate:"required,dive"`
	Features []FeatureImportanceData `json:"features" validate:"required,dive"`

	Q7DataUsage       string  `json:"q7_data_usage" validate:"required"`
	Q8QuestionUsage   string  `json:"q8_question_usage" validate:"required"`
	Q9RetentionTime   string  `json:"q9_retention_time" validate:"required"`
	Q10ServerLocation string  `json:"q10_server_location" validate:"required"`
	Q11OpenResponse   *string `json:"q11_open_response"`

	Q12Age       string `json:"q12_age" validate:"required"`
	Q13Gender    string `json:"q13_gender" validate:"required"`
	Q14Canton    string `json:"q14_canton" validate:"required"`
	Q15Language  string `json:"q15_language" validate:"required"`
	Q16Education string `json:"q16_education" validate:"required"`
}

type ConcernRatingData struct {
	ConcernType string `json:"concern_type" validate:"required,oneof=privacy misuse commercial trust security"`
	Rating      *int   `json:"rating" validate:"required,min=1,max=5"`
}

type FeatureImportanceData struct {
	FeatureType string `json:"feature_type" validate:"required,oneof=anonymization swiss_only delete impact civic_use time_limit"`
	Rating      *int   `json:"rating" validate:"required,min=1,max=5"`
}

// Record converts a validated submission into its storage representation.
// Child records are attached without a response ID; that is assigned when the
// parent row is inserted.
func (s SurveySubmission) Record(now time.Time) SurveyResponse {
	rec := SurveyResponse{
		CreatedAt:         now,
		Q1Eligible:        *s.Q1Eligible,
		Q2Participation:   *s.Q2Participation,
		Q3TechComfort:     *s.Q3TechComfort,
		ExperimentalGroup: s.ExperimentalGroup,
		Q4Willingness:     *s.Q4Willingness,
		Q7DataUsage:       s.Q7DataUsage,
		Q8QuestionUsage:   s.Q8QuestionUsage,
		Q9RetentionTime:   s.Q9RetentionTime,
		Q10ServerLocation: s.Q10ServerLocation,
		Q11OpenResponse:   s.Q11OpenResponse,
		Q12Age:            s.Q12Age,
		Q13Gender:         s.Q13Gender,
		Q14Canton:         s.Q14Canton,
		Q15Language:       s.Q15Language,
		Q16Education:      s.Q16Education,
	}
	for _, c := range s.Concerns {
		rec.Concerns = append(rec.Concerns, ConcernRating{
			ConcernType: c.ConcernType,
			Rating:      *c.Rating,
		})
	}
	for _, f := range s.Features {
		rec.Features = append(rec.Features, FeatureImportance{
			FeatureType: f.FeatureType,
			Rating:      *f.Rating,
		})
	}
	return rec
}
