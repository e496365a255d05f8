package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mitchell1972/examCoachNG/internal/models"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type RegisterUserParams struct {
	Phone            string
	Name             string
	Email            string
	SelectedSubjects []string
}

// Register creates a learner profile keyed by phone number. Re-registering
// the same phone is a conflict, not an upsert.
func (s *UserService) Register(p RegisterUserParams) (*models.User, error) {
	phone := strings.TrimSpace(p.Phone)
	if phone == "" {
		return nil, fmt.Errorf("%w: phone number is required", ErrInvalidInput)
	}

	user := models.User{
		Phone:            &phone,
		Name:             p.Name,
		Email:            p.Email,
		SelectedSubjects: p.SelectedSubjects,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err) {
			return nil, fmt.Errorf("%w: phone number already registered", ErrConflict)
		}
		return nil, fmt.Errorf("register user: %w", err)
	}
	return &user, nil
}

func (s *UserService) ByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("phone = ?", phone).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %w", ErrNotFound)
		}
		return nil, fmt.Errorf("fetch user: %w", err)
	}
	return &user, nil
}

// isUniqueViolation matches driver-level unique constraint errors that gorm
// does not always translate to ErrDuplicatedKey.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint")
}
