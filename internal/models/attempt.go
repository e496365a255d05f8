package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Attempt is append-only: resubmitting the same question in the same
// session creates another row, and session completion counts every row.
// There is deliberately no uniqueness constraint on (session, question).
type Attempt struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	SessionID    string    `gorm:"type:uuid;not null;index" json:"sessionId"`
	QuestionID   string    `gorm:"type:uuid;not null;index" json:"questionId"`
	UserID       *string   `gorm:"type:uuid;index" json:"userId,omitempty"`
	ChosenOption string    `gorm:"size:1;not null" json:"chosenOption"`
	IsCorrect    bool      `gorm:"not null" json:"isCorrect"`
	TimeSpentMs  int       `gorm:"not null;default:0" json:"timeSpentMs"`
	Flagged      bool      `gorm:"not null;default:false" json:"flagged"`
	CreatedAt    time.Time `gorm:"index" json:"createdAt"`
}

func (a *Attempt) BeforeCreate(tx *gorm.DB) error {
	if a.ID == "" {
		a.ID = uuid.NewString()
	}
	return nil
}
