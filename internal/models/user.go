package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID               string    `gorm:"type:uuid;primaryKey" json:"id"`
	Phone            *string   `gorm:"size:20;uniqueIndex" json:"phone,omitempty"`
	Name             string    `gorm:"size:100" json:"name,omitempty"`
	Email            string    `gorm:"size:100;index" json:"email,omitempty"`
	PasswordHash     string    `gorm:"size:200" json:"-"`
	SelectedSubjects []string  `gorm:"serializer:json" json:"selectedSubjects"`
	CreatedAt        time.Time `json:"createdAt"`
	LastActive       time.Time `json:"lastActive"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if u.LastActive.IsZero() {
		u.LastActive = time.Now()
	}
	return nil
}
