package services

import (
	"errors"
	"testing"
)

func TestUserRegister_RequiresPhone(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	if _, err := svc.Register(RegisterUserParams{Name: "No Phone"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserRegister_DuplicatePhoneConflict(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	first, err := svc.Register(RegisterUserParams{
		Phone:            "+2348012345678",
		Name:             "Ada",
		SelectedSubjects: []string{"MTH", "PHY"},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected generated user id")
	}

	if _, err := svc.Register(RegisterUserParams{Phone: "+2348012345678"}); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict on duplicate phone, got %v", err)
	}
}

func TestUserByPhone(t *testing.T) {
	svc := NewUserService(newTestDB(t))

	created, err := svc.Register(RegisterUserParams{Phone: "+2348011111111", Name: "Bola"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	found, err := svc.ByPhone("+2348011111111")
	if err != nil {
		t.Fatalf("by phone: %v", err)
	}
	if found.ID != created.ID {
		t.Errorf("expected user %q, got %q", created.ID, found.ID)
	}

	if _, err := svc.ByPhone("+2340000000000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
