package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchell1972/examCoachNG/internal/models"

	"gorm.io/gorm"
)

type AttemptService struct {
	db *gorm.DB
}

func NewAttemptService(db *gorm.DB) *AttemptService {
	return &AttemptService{db: db}
}

type SubmitAnswerParams struct {
	SessionID    string
	QuestionID   string
	ChosenOption string
	TimeSpentMs  int
	Flagged      bool
	UserID       *string
}

type AnswerResult struct {
	IsCorrect     bool   `json:"isCorrect"`
	CorrectOption string `json:"correctOption"`
	Explanation   string `json:"explanation,omitempty"`
	ChosenOption  string `json:"chosenOption"`
}

// Submit records one answer. Correctness is computed against the stored
// key, case-insensitively. Every call appends a row: a learner changing
// their answer produces duplicates, all of which count at completion.
func (s *AttemptService) Submit(p SubmitAnswerParams) (*AnswerResult, error) {
	if p.SessionID == "" || p.QuestionID == "" || p.ChosenOption == "" {
		return nil, fmt.Errorf("%w: session ID, question ID, and chosen option are required", ErrInvalidInput)
	}

	var question models.Question
	err := s.db.Select("correct_option", "explanation").
		Where("id = ?", p.QuestionID).
		First(&question).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %w", ErrNotFound)
		}
		return nil, fmt.Errorf("fetch question: %w", err)
	}

	chosen := strings.ToUpper(p.ChosenOption)
	isCorrect := chosen == strings.ToUpper(question.CorrectOption)

	attempt := models.Attempt{
		SessionID:    p.SessionID,
		QuestionID:   p.QuestionID,
		UserID:       p.UserID,
		ChosenOption: chosen,
		IsCorrect:    isCorrect,
		TimeSpentMs:  p.TimeSpentMs,
		Flagged:      p.Flagged,
	}
	if err := s.db.Create(&attempt).Error; err != nil {
		return nil, fmt.Errorf("record attempt: %w", err)
	}

	return &AnswerResult{
		IsCorrect:     isCorrect,
		CorrectOption: question.CorrectOption,
		Explanation:   question.Explanation,
		ChosenOption:  chosen,
	}, nil
}
