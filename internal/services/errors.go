package services

import "errors"

// Sentinel errors classified by the HTTP layer. Services wrap these with
// fmt.Errorf("...: %w", Err...) so handlers can map via errors.Is.
var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)
