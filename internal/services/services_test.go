package services

import (
	"fmt"
	"strings"
	"testing"

	"github.com/mitchell1972/examCoachNG/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database per test. A single shared
// connection keeps every gorm session on the same sqlite instance.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("access pool: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	err = db.AutoMigrate(
		&models.User{},
		&models.Question{},
		&models.Session{},
		&models.SessionQuestion{},
		&models.Attempt{},
	)
	if err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

func seedQuestion(t *testing.T, db *gorm.DB, subjectCode, section, correct string, difficulty int, verified bool) models.Question {
	t.Helper()

	q := models.Question{
		SubjectCode:   subjectCode,
		Section:       section,
		Stem:          fmt.Sprintf("%s %s question (difficulty %d)", subjectCode, section, difficulty),
		OptionA:       "first",
		OptionB:       "second",
		OptionC:       "third",
		OptionD:       "fourth",
		CorrectOption: correct,
		Explanation:   "because",
		Difficulty:    difficulty,
		Verified:      verified,
	}
	if err := db.Create(&q).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}
	return q
}
