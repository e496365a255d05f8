package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Question struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	SubjectCode    string    `gorm:"size:3;not null;index:idx_subject_section" json:"subjectCode"`
	Section        string    `gorm:"size:100;not null;index:idx_subject_section" json:"section"`
	Year           *int      `gorm:"index" json:"year,omitempty"`
	QuestionNumber *int      `json:"questionNumber,omitempty"`
	Stem           string    `gorm:"type:text;not null" json:"stem"`
	OptionA        string    `gorm:"type:text;not null" json:"optionA"`
	OptionB        string    `gorm:"type:text;not null" json:"optionB"`
	OptionC        string    `gorm:"type:text;not null" json:"optionC"`
	OptionD        string    `gorm:"type:text;not null" json:"optionD"`
	OptionE        *string   `gorm:"type:text" json:"optionE,omitempty"`
	CorrectOption  string    `gorm:"size:1;not null" json:"correctOption"`
	Explanation    string    `gorm:"type:text" json:"explanation,omitempty"`
	Difficulty     int       `gorm:"not null;default:2;index" json:"difficulty"`
	ImageURL       string    `gorm:"type:text" json:"imageUrl,omitempty"`
	SyllabusTopic  string    `gorm:"size:200" json:"syllabusTopic,omitempty"`
	Tags           []string  `gorm:"serializer:json" json:"tags"`
	Verified       bool      `gorm:"not null;default:false;index" json:"verified"`
	Source         string    `gorm:"size:50;default:'JAMB'" json:"source"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func (q *Question) BeforeCreate(tx *gorm.DB) error {
	if q.ID == "" {
		q.ID = uuid.NewString()
	}
	return nil
}
