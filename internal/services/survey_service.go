package services

import (
	"errors"

	"shopmate/internal/domain"
	"shopmate/internal/repos"
	"shopmate/internal/validate"
)

var ErrBadAnswer = errors.New("invalid survey answer")

type SurveyService struct {
	Repo *repos.SurveyRepo
}

func NewSurveyService(repo *repos.SurveyRepo) *SurveyService { return &SurveyService{Repo: repo} }

// Submit validates the four choice answers, caps the free-text field and
// stores a single row.
func (s *SurveyService) Submit(resp domain.SurveyResponse) error {
	for _, answer := range []string{resp.Q1List, resp.Q2Offers, resp.Q3Scan, resp.Q4Kids} {
		if _, ok := validate.Answer(answer); !ok {
			return ErrBadAnswer
		}
	}
	resp.Q5Feedback = validate.Feedback(resp.Q5Feedback)
	return s.Repo.Insert(resp)
}

func (s *SurveyService) List() ([]domain.SurveyResponse, error) {
	return s.Repo.List()
}
