package services

import (
	"fmt"
	"math"
	"time"

	"github.com/mitchell1972/examCoachNG/internal/models"

	"gorm.io/gorm"
)

// AnalyticsService answers read-only aggregate queries over persisted
// sessions and attempts. Every call computes fresh; nothing is cached.
type AnalyticsService struct {
	db *gorm.DB
}

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

type UserStats struct {
	TotalUsers     int64 `json:"totalUsers"`
	ActiveUsers30d int64 `json:"activeUsers30d"`
	ActiveUsers7d  int64 `json:"activeUsers7d"`
}

type QuestionBankStats struct {
	TotalQuestions    int64 `json:"totalQuestions"`
	TotalSubjects     int64 `json:"totalSubjects"`
	VerifiedQuestions int64 `json:"verifiedQuestions"`
}

type SessionStats struct {
	TotalSessions     int64   `json:"totalSessions"`
	CompletedSessions int64   `json:"completedSessions"`
	AvgScore          float64 `json:"avgScore"`
}

type PlatformStats struct {
	Users     UserStats         `json:"users"`
	Questions QuestionBankStats `json:"questions"`
	Sessions  SessionStats      `json:"sessions"`
}

func (s *AnalyticsService) PlatformStats() (*PlatformStats, error) {
	now := time.Now()
	var stats PlatformStats

	err := s.db.Model(&models.User{}).
		Select(`COUNT(*) AS total_users,
			COUNT(CASE WHEN last_active >= ? THEN 1 END) AS active_users30d,
			COUNT(CASE WHEN last_active >= ? THEN 1 END) AS active_users7d`,
			now.AddDate(0, 0, -30), now.AddDate(0, 0, -7)).
		Scan(&stats.Users).Error
	if err != nil {
		return nil, fmt.Errorf("fetch user stats: %w", err)
	}

	err = s.db.Model(&models.Question{}).
		Select(`COUNT(*) AS total_questions,
			COUNT(DISTINCT subject_code) AS total_subjects,
			COUNT(CASE WHEN verified THEN 1 END) AS verified_questions`).
		Scan(&stats.Questions).Error
	if err != nil {
		return nil, fmt.Errorf("fetch question stats: %w", err)
	}

	err = s.db.Model(&models.Session{}).
		Select(`COUNT(*) AS total_sessions,
			COUNT(CASE WHEN status = ? THEN 1 END) AS completed_sessions,
			COALESCE(AVG(score), 0) AS avg_score`, models.SessionStatusCompleted).
		Where("created_at >= ?", now.AddDate(0, 0, -30)).
		Scan(&stats.Sessions).Error
	if err != nil {
		return nil, fmt.Errorf("fetch session stats: %w", err)
	}

	return &stats, nil
}

type SubjectPerformance struct {
	SubjectCode       string  `json:"subjectCode"`
	TotalSessions     int64   `json:"totalSessions"`
	CompletedSessions int64   `json:"completedSessions"`
	AvgScore          float64 `json:"avgScore"`
	AvgPercentage     float64 `json:"avgPercentage"`
	UniqueUsers       int64   `json:"uniqueUsers"`
}

// SubjectPerformanceStats groups session outcomes by subject over the
// trailing window. days <= 0 falls back to 30.
func (s *AnalyticsService) SubjectPerformanceStats(days int) ([]SubjectPerformance, error) {
	if days <= 0 {
		days = 30
	}
	since := time.Now().AddDate(0, 0, -days)

	var rows []SubjectPerformance
	err := s.db.Model(&models.Session{}).
		Select(`sessions.subject_code,
			COUNT(DISTINCT sessions.id) AS total_sessions,
			COUNT(DISTINCT CASE WHEN sessions.status = ? THEN sessions.id END) AS completed_sessions,
			COALESCE(AVG(sessions.score), 0) AS avg_score,
			COALESCE(AVG(CASE WHEN sessions.status = ?
				THEN CAST(sessions.score AS REAL) / sessions.question_count * 100 END), 0) AS avg_percentage,
			COUNT(DISTINCT attempts.user_id) AS unique_users`,
			models.SessionStatusCompleted, models.SessionStatusCompleted).
		Joins("LEFT JOIN attempts ON attempts.session_id = sessions.id").
		Where("sessions.created_at >= ?", since).
		Group("sessions.subject_code").
		Order("completed_sessions DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("fetch subject performance: %w", err)
	}
	return rows, nil
}

type DifficultyStat struct {
	Difficulty      int     `json:"difficulty"`
	TotalAttempts   int64   `json:"totalAttempts"`
	CorrectAttempts int64   `json:"correctAttempts"`
	Accuracy        float64 `json:"accuracy"`
	AvgTimeMs       int     `json:"avgTimeMs"`
}

// DifficultyStats breaks attempt outcomes down by question difficulty,
// optionally scoped to one subject.
func (s *AnalyticsService) DifficultyStats(subjectCode string) ([]DifficultyStat, error) {
	q := s.db.Model(&models.Question{}).
		Select(`questions.difficulty,
			COUNT(attempts.id) AS total_attempts,
			COUNT(CASE WHEN attempts.is_correct THEN 1 END) AS correct_attempts,
			COALESCE(AVG(attempts.time_spent_ms), 0) AS avg_time_ms`).
		Joins("LEFT JOIN attempts ON attempts.question_id = questions.id")

	if subjectCode != "" {
		q = q.Where("questions.subject_code = ?", subjectCode)
	}

	var raw []struct {
		Difficulty      int
		TotalAttempts   int64
		CorrectAttempts int64
		AvgTimeMs       float64
	}
	err := q.Group("questions.difficulty").
		Order("questions.difficulty").
		Scan(&raw).Error
	if err != nil {
		return nil, fmt.Errorf("fetch difficulty stats: %w", err)
	}

	stats := make([]DifficultyStat, len(raw))
	for i, r := range raw {
		accuracy := 0.0
		if r.TotalAttempts > 0 {
			accuracy = math.Round(float64(r.CorrectAttempts)/float64(r.TotalAttempts)*100*100) / 100
		}
		stats[i] = DifficultyStat{
			Difficulty:      r.Difficulty,
			TotalAttempts:   r.TotalAttempts,
			CorrectAttempts: r.CorrectAttempts,
			Accuracy:        accuracy,
			AvgTimeMs:       int(math.Round(r.AvgTimeMs)),
		}
	}
	return stats, nil
}
