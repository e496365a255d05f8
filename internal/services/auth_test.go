package services

import (
	"errors"
	"testing"
)

func TestAuth_RegisterLoginRoundTrip(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")

	reg, err := svc.Register("Learner@Example.com", "password123", "Learner", "+2348000000001")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if reg.Token == "" {
		t.Fatal("expected a token from register")
	}
	if reg.User.Email != "learner@example.com" {
		t.Errorf("expected lowercased email, got %q", reg.User.Email)
	}

	login, err := svc.Login("learner@example.com", "password123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	userID, err := svc.ValidateToken(login.Token)
	if err != nil {
		t.Fatalf("validate token: %v", err)
	}
	if userID != reg.User.ID {
		t.Errorf("token user id %q, want %q", userID, reg.User.ID)
	}
}

func TestAuth_RegisterValidation(t *testing.T) {
	svc := NewAuthService(newTestDB(t), "test-secret")

	if _, err := svc.Register("", "password123", "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("missing email: expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Register("a@b.com", "short", "", ""); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("short password: expected ErrInvalidInput, got %v", err)
	}
}

func TestAuth_DuplicateEmailConflict(t *testing.T) {
	svc := NewAuthService(newTestDB(t), "test-secret")

	if _, err := svc.Register("a@b.com", "password123", "", "+111"); err != nil {
		t.Fatalf("first register: %v", err)
	}
	if _, err := svc.Register("a@b.com", "password456", "", "+222"); !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestAuth_BadCredentials(t *testing.T) {
	svc := NewAuthService(newTestDB(t), "test-secret")

	if _, err := svc.Register("a@b.com", "password123", "", "+111"); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login("a@b.com", "wrong-password"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("wrong password: expected ErrUnauthorized, got %v", err)
	}
	if _, err := svc.Login("nobody@b.com", "password123"); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("unknown email: expected ErrUnauthorized, got %v", err)
	}
}

func TestAuth_RejectsForgedToken(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db, "test-secret")
	other := NewAuthService(db, "other-secret")

	reg, err := svc.Register("a@b.com", "password123", "", "+111")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := other.ValidateToken(reg.Token); !errors.Is(err, ErrUnauthorized) {
		t.Errorf("expected ErrUnauthorized for token signed with wrong secret, got %v", err)
	}
}
