package services

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/mitchell1972/examCoachNG/internal/models"
	"github.com/mitchell1972/examCoachNG/internal/subjects"

	"gorm.io/gorm"
)

type SessionService struct {
	db *gorm.DB
}

func NewSessionService(db *gorm.DB) *SessionService {
	return &SessionService{db: db}
}

type CreateSessionParams struct {
	SubjectCode   string
	Mode          string
	Topic         *string
	QuestionCount int // 0 means the subject default
	TimeLimit     int // minutes, 0 means the subject default
	UserID        *string
}

type SessionDescriptor struct {
	SessionID     string    `json:"sessionId"`
	SubjectCode   string    `json:"subjectCode"`
	Mode          string    `json:"mode"`
	Topic         *string   `json:"topic,omitempty"`
	QuestionCount int       `json:"questionCount"`
	TimeLimit     int       `json:"timeLimit"`
	StartedAt     time.Time `json:"startedAt"`
}

// Create opens a practice session and pins its question set. The session
// row and its session_questions are written in one transaction, so a
// failure mid-assignment never leaves an orphan session behind. The
// assigned count may be lower than requested when the subject or topic
// has fewer verified questions; that is not an error.
func (s *SessionService) Create(p CreateSessionParams) (*SessionDescriptor, error) {
	if strings.TrimSpace(p.SubjectCode) == "" {
		return nil, fmt.Errorf("%w: subject code is required", ErrInvalidInput)
	}

	subject, ok := subjects.ByCode(p.SubjectCode)
	if !ok {
		return nil, fmt.Errorf("%w: invalid subject code", ErrInvalidInput)
	}

	mode := p.Mode
	if mode == "" {
		mode = models.SessionModePractice
	}

	questionCount := p.QuestionCount
	if questionCount <= 0 {
		questionCount = subject.QuestionCount
	}
	timeLimit := p.TimeLimit
	if timeLimit <= 0 {
		timeLimit = subject.Duration
	}

	session := models.Session{
		UserID:        p.UserID,
		Mode:          mode,
		SubjectCode:   subject.Code,
		Topic:         p.Topic,
		QuestionCount: questionCount,
		TimeLimit:     timeLimit,
		Status:        models.SessionStatusActive,
		Metadata:      map[string]string{"created_by": "anonymous"},
	}
	if p.UserID != nil {
		session.Metadata["created_by"] = *p.UserID
	}

	assigned := 0
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}

		q := tx.Model(&models.Question{}).
			Where("subject_code = ? AND verified = ?", subject.Code, true)
		if p.Topic != nil && *p.Topic != "" {
			q = q.Where("section = ?", *p.Topic)
		}

		var questionIDs []string
		if err := q.Order("RANDOM()").Limit(questionCount).Pluck("id", &questionIDs).Error; err != nil {
			return err
		}

		for i, id := range questionIDs {
			sq := models.SessionQuestion{
				SessionID:     session.ID,
				QuestionID:    id,
				QuestionOrder: i + 1,
			}
			if err := tx.Create(&sq).Error; err != nil {
				return err
			}
		}
		assigned = len(questionIDs)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	return &SessionDescriptor{
		SessionID:     session.ID,
		SubjectCode:   subject.Code,
		Mode:          mode,
		Topic:         p.Topic,
		QuestionCount: assigned,
		TimeLimit:     timeLimit,
		StartedAt:     session.StartedAt,
	}, nil
}

// SessionQuestionView is what a learner sees mid-session: the answer key
// and explanation are deliberately absent.
type SessionQuestionView struct {
	ID         string  `json:"id"`
	Stem       string  `json:"stem"`
	OptionA    string  `json:"optionA"`
	OptionB    string  `json:"optionB"`
	OptionC    string  `json:"optionC"`
	OptionD    string  `json:"optionD"`
	OptionE    *string `json:"optionE,omitempty"`
	Difficulty int     `json:"difficulty"`
	ImageURL   string  `json:"imageUrl,omitempty"`
	Order      int     `json:"order"`
}

func (s *SessionService) Questions(sessionID string) ([]SessionQuestionView, error) {
	var views []SessionQuestionView
	err := s.db.Model(&models.Question{}).
		Select(`questions.id, questions.stem,
			questions.option_a, questions.option_b, questions.option_c,
			questions.option_d, questions.option_e,
			questions.difficulty, questions.image_url,
			session_questions.question_order AS "order"`).
		Joins("JOIN session_questions ON session_questions.question_id = questions.id").
		Where("session_questions.session_id = ?", sessionID).
		Order("session_questions.question_order").
		Scan(&views).Error
	if err != nil {
		return nil, fmt.Errorf("fetch session questions: %w", err)
	}
	return views, nil
}

type QuestionResult struct {
	ID            string `json:"id"`
	Stem          string `json:"stem"`
	CorrectOption string `json:"correctOption"`
	ChosenOption  string `json:"chosenOption"`
	IsCorrect     bool   `json:"isCorrect"`
	Explanation   string `json:"explanation,omitempty"`
	Section       string `json:"section"`
	TimeSpentMs   int    `json:"timeSpentMs"`
	Flagged       bool   `json:"flagged"`
}

type SessionResult struct {
	SessionID      string           `json:"sessionId"`
	SubjectCode    string           `json:"subjectCode"`
	Mode           string           `json:"mode"`
	Topic          *string          `json:"topic,omitempty"`
	TotalQuestions int              `json:"totalQuestions"`
	CorrectAnswers int              `json:"correctAnswers"`
	Percentage     float64          `json:"percentage"`
	AvgTimeMs      int              `json:"avgTimeMs"`
	TimeLimit      int              `json:"timeLimit"`
	Questions      []QuestionResult `json:"questions"`
}

// Complete finalizes a session from its attempt rows. The score is a pure
// function of the attempts present at call time; duplicate submissions all
// count. A session with zero attempts is indistinguishable from an unknown
// session and both surface as NotFound. Concurrent completions are not
// serialized; the last writer wins.
func (s *SessionService) Complete(sessionID string) (*SessionResult, error) {
	var agg struct {
		TotalQuestions int
		CorrectAnswers int
		AvgTimeMs      float64
		SubjectCode    string
		Mode           string
		Topic          *string
		TimeLimit      int
	}
	err := s.db.Model(&models.Attempt{}).
		Select(`COUNT(*) AS total_questions,
			COUNT(CASE WHEN attempts.is_correct THEN 1 END) AS correct_answers,
			COALESCE(AVG(attempts.time_spent_ms), 0) AS avg_time_ms,
			sessions.subject_code, sessions.mode, sessions.topic, sessions.time_limit`).
		Joins("JOIN sessions ON sessions.id = attempts.session_id").
		Where("attempts.session_id = ?", sessionID).
		Group("sessions.subject_code, sessions.mode, sessions.topic, sessions.time_limit").
		Scan(&agg).Error
	if err != nil {
		return nil, fmt.Errorf("complete session: %w", err)
	}
	if agg.TotalQuestions == 0 {
		return nil, fmt.Errorf("%w: session not found or no answers submitted", ErrNotFound)
	}

	score := agg.CorrectAnswers
	percentage := float64(score) / float64(agg.TotalQuestions) * 100
	percentage = math.Round(percentage*100) / 100

	now := time.Now()
	err = s.db.Model(&models.Session{}).
		Where("id = ?", sessionID).
		Updates(map[string]interface{}{
			"score":    score,
			"ended_at": now,
			"status":   models.SessionStatusCompleted,
		}).Error
	if err != nil {
		return nil, fmt.Errorf("finalize session: %w", err)
	}

	var breakdown []QuestionResult
	err = s.db.Model(&models.Attempt{}).
		Select(`questions.id, questions.stem, questions.correct_option,
			questions.explanation, questions.section,
			attempts.chosen_option, attempts.is_correct,
			attempts.time_spent_ms, attempts.flagged`).
		Joins("JOIN questions ON questions.id = attempts.question_id").
		Where("attempts.session_id = ?", sessionID).
		Order("attempts.created_at").
		Scan(&breakdown).Error
	if err != nil {
		return nil, fmt.Errorf("fetch session breakdown: %w", err)
	}

	return &SessionResult{
		SessionID:      sessionID,
		SubjectCode:    agg.SubjectCode,
		Mode:           agg.Mode,
		Topic:          agg.Topic,
		TotalQuestions: agg.TotalQuestions,
		CorrectAnswers: score,
		Percentage:     percentage,
		AvgTimeMs:      int(math.Round(agg.AvgTimeMs)),
		TimeLimit:      agg.TimeLimit,
		Questions:      breakdown,
	}, nil
}
