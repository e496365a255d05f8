package services

import (
	"errors"
	"testing"

	"github.com/mitchell1972/examCoachNG/internal/models"
)

func TestSubmit_MissingFields(t *testing.T) {
	svc := NewAttemptService(newTestDB(t))

	cases := []SubmitAnswerParams{
		{QuestionID: "q", ChosenOption: "A"},
		{SessionID: "s", ChosenOption: "A"},
		{SessionID: "s", QuestionID: "q"},
	}
	for _, p := range cases {
		if _, err := svc.Submit(p); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("params %+v: expected ErrInvalidInput, got %v", p, err)
		}
	}
}

func TestSubmit_UnknownQuestion(t *testing.T) {
	svc := NewAttemptService(newTestDB(t))

	_, err := svc.Submit(SubmitAnswerParams{
		SessionID:    "session",
		QuestionID:   "missing",
		ChosenOption: "A",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSubmit_CaseInsensitiveCorrectness(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)
	q := seedQuestion(t, db, "ENG", "Oral English", "A", 2, true)

	for _, chosen := range []string{"a", "A"} {
		result, err := svc.Submit(SubmitAnswerParams{
			SessionID:    "session",
			QuestionID:   q.ID,
			ChosenOption: chosen,
		})
		if err != nil {
			t.Fatalf("submit %q: %v", chosen, err)
		}
		if !result.IsCorrect {
			t.Errorf("submitting %q against correct option A: expected isCorrect", chosen)
		}
		if result.ChosenOption != "A" {
			t.Errorf("expected normalized chosen option A, got %q", result.ChosenOption)
		}
		if result.CorrectOption != "A" {
			t.Errorf("expected correct option A, got %q", result.CorrectOption)
		}
	}
}

func TestSubmit_WrongAnswer(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)
	q := seedQuestion(t, db, "ENG", "Oral English", "B", 2, true)

	result, err := svc.Submit(SubmitAnswerParams{
		SessionID:    "session",
		QuestionID:   q.ID,
		ChosenOption: "c",
		TimeSpentMs:  1500,
		Flagged:      true,
	})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if result.IsCorrect {
		t.Error("expected incorrect result")
	}
	if result.Explanation != "because" {
		t.Errorf("expected explanation returned, got %q", result.Explanation)
	}

	var attempt models.Attempt
	if err := db.First(&attempt, "session_id = ?", "session").Error; err != nil {
		t.Fatalf("load attempt: %v", err)
	}
	if attempt.ChosenOption != "C" || attempt.IsCorrect || attempt.TimeSpentMs != 1500 || !attempt.Flagged {
		t.Errorf("persisted attempt mismatch: %+v", attempt)
	}
}

func TestSubmit_AllowsDuplicates(t *testing.T) {
	db := newTestDB(t)
	svc := NewAttemptService(db)
	q := seedQuestion(t, db, "ENG", "Oral English", "A", 2, true)

	for i := 0; i < 2; i++ {
		if _, err := svc.Submit(SubmitAnswerParams{
			SessionID:    "session",
			QuestionID:   q.ID,
			ChosenOption: "A",
		}); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}

	var count int64
	db.Model(&models.Attempt{}).
		Where("session_id = ? AND question_id = ?", "session", q.ID).
		Count(&count)
	if count != 2 {
		t.Errorf("expected 2 attempt rows for the same question, got %d", count)
	}
}
