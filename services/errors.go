package services

import "errors"

// Business errors surfaced to the HTTP layer. Everything else coming
// out of a service is an unexpected database error and maps to an
// opaque 500.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("conflict")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrInsufficientStock = errors.New("insufficient stock")
	ErrAlreadySettled    = errors.New("already settled")
	ErrAlreadyClosed     = errors.New("already closed")
	ErrInvalidCode       = errors.New("invalid code")
	ErrEmptyCart         = errors.New("empty cart")
	ErrInvalidMethod     = errors.New("invalid payment method")
)
