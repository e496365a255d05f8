package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchell1972/examCoachNG/internal/models"

	"gorm.io/gorm"
)

type QuestionService struct {
	db *gorm.DB
}

func NewQuestionService(db *gorm.DB) *QuestionService {
	return &QuestionService{db: db}
}

const defaultPageSize = 40

// QuestionFilter narrows a per-subject listing. Unverified questions are
// excluded unless IncludeUnverified is set.
type QuestionFilter struct {
	Section           string
	Difficulties      []int
	Year              *int
	IncludeUnverified bool
	Limit             int
	Offset            int
}

// Filtered returns questions for a subject in random order. Ordering is
// intentionally non-deterministic across calls; callers wanting a stable
// set must pin it (sessions do, via session_questions).
func (s *QuestionService) Filtered(subjectCode string, f QuestionFilter) ([]models.Question, error) {
	if f.Limit <= 0 {
		f.Limit = defaultPageSize
	}
	if f.Offset < 0 {
		f.Offset = 0
	}

	q := s.db.Model(&models.Question{}).
		Where("subject_code = ?", strings.ToUpper(subjectCode))

	if f.Section != "" {
		q = q.Where("section = ?", f.Section)
	}
	if len(f.Difficulties) > 0 {
		q = q.Where("difficulty IN ?", f.Difficulties)
	}
	if f.Year != nil {
		q = q.Where("year = ?", *f.Year)
	}
	if !f.IncludeUnverified {
		q = q.Where("verified = ?", true)
	}

	var questions []models.Question
	err := q.Order("RANDOM()").
		Limit(f.Limit).
		Offset(f.Offset).
		Find(&questions).Error
	if err != nil {
		return nil, fmt.Errorf("fetch questions: %w", err)
	}
	return questions, nil
}

func (s *QuestionService) ByID(id string) (*models.Question, error) {
	var question models.Question
	if err := s.db.Where("id = ?", id).First(&question).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("question %w", ErrNotFound)
		}
		return nil, fmt.Errorf("fetch question: %w", err)
	}
	return &question, nil
}

type SubjectOverview struct {
	TotalQuestions    int64   `json:"totalQuestions"`
	VerifiedQuestions int64   `json:"verifiedQuestions"`
	AvgDifficulty     float64 `json:"avgDifficulty"`
	TotalSections     int64   `json:"totalSections"`
	TotalYears        int64   `json:"totalYears"`
}

type SectionStat struct {
	Section       string  `json:"section"`
	QuestionCount int64   `json:"questionCount"`
	AvgDifficulty float64 `json:"avgDifficulty"`
}

type SubjectStats struct {
	Overview SubjectOverview `json:"overview"`
	Sections []SectionStat   `json:"sections"`
}

// Stats aggregates the question bank for one subject. Read-only and
// eventually consistent with concurrent imports.
func (s *QuestionService) Stats(subjectCode string) (*SubjectStats, error) {
	code := strings.ToUpper(subjectCode)

	var overview SubjectOverview
	err := s.db.Model(&models.Question{}).
		Select(`COUNT(*) AS total_questions,
			COUNT(CASE WHEN verified THEN 1 END) AS verified_questions,
			COALESCE(AVG(difficulty), 0) AS avg_difficulty,
			COUNT(DISTINCT section) AS total_sections,
			COUNT(DISTINCT year) AS total_years`).
		Where("subject_code = ?", code).
		Scan(&overview).Error
	if err != nil {
		return nil, fmt.Errorf("fetch question stats: %w", err)
	}

	var sections []SectionStat
	err = s.db.Model(&models.Question{}).
		Select("section, COUNT(*) AS question_count, AVG(difficulty) AS avg_difficulty").
		Where("subject_code = ?", code).
		Group("section").
		Order("question_count DESC").
		Scan(&sections).Error
	if err != nil {
		return nil, fmt.Errorf("fetch section stats: %w", err)
	}

	return &SubjectStats{Overview: overview, Sections: sections}, nil
}
