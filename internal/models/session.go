package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Session struct {
	ID            string            `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        *string           `gorm:"type:uuid;index" json:"userId,omitempty"`
	Mode          string            `gorm:"size:20;not null;default:'practice'" json:"mode"`
	SubjectCode   string            `gorm:"size:3;not null;index" json:"subjectCode"`
	Topic         *string           `gorm:"size:100" json:"topic,omitempty"`
	QuestionCount int               `gorm:"not null" json:"questionCount"`
	TimeLimit     int               `gorm:"not null" json:"timeLimit"` // minutes
	StartedAt     time.Time         `json:"startedAt"`
	EndedAt       *time.Time        `json:"endedAt,omitempty"`
	Score         *int              `json:"score,omitempty"`
	Status        string            `gorm:"size:20;not null;default:'active';index" json:"status"`
	Metadata      map[string]string `gorm:"serializer:json" json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

const (
	SessionModePractice = "practice"
	SessionModeMock     = "mock"
	SessionModeTopic    = "topic"

	SessionStatusActive    = "active"
	SessionStatusCompleted = "completed"
	// Reserved in the data model, no transition reaches them yet.
	SessionStatusPaused    = "paused"
	SessionStatusAbandoned = "abandoned"
)

func (s *Session) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.StartedAt.IsZero() {
		s.StartedAt = time.Now()
	}
	return nil
}

// SessionQuestion pins the ordered question set assigned to a session at
// creation time. Written once, read-only afterward.
type SessionQuestion struct {
	SessionID     string `gorm:"type:uuid;primaryKey" json:"sessionId"`
	QuestionID    string `gorm:"type:uuid;primaryKey" json:"questionId"`
	QuestionOrder int    `gorm:"not null" json:"questionOrder"`
}
