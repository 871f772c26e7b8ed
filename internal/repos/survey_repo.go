package repos

import (
	"github.com/jmoiron/sqlx"

	"shopmate/internal/domain"
)

type SurveyRepo struct{ db *sqlx.DB }

func NewSurveyRepo(db *sqlx.DB) *SurveyRepo { return &SurveyRepo{db: db} }

func (r *SurveyRepo) Insert(resp domain.SurveyResponse) error {
	_, err := r.db.Exec(`
		INSERT INTO survey_responses(q1_list, q2_offers, q3_scan, q4_kids, q5_feedback)
		VALUES(?,?,?,?,?)
	`, resp.Q1List, resp.Q2Offers, resp.Q3Scan, resp.Q4Kids, resp.Q5Feedback)
	return err
}

// List returns every response, newest first.
func (r *SurveyRepo) List() ([]domain.SurveyResponse, error) {
	out := []domain.SurveyResponse{}
	err := r.db.Select(&out, `
		SELECT id, q1_list, q2_offers, q3_scan, q4_kids,
		       COALESCE(q5_feedback,'') AS q5_feedback, created_at
		FROM survey_responses
		ORDER BY created_at DESC, id DESC
	`)
	return out, err
}
