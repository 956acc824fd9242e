package utils

import (
	"strings"

	"github.com/google/uuid"
)

// NewValidationCode returns an 8-character uppercase alphanumeric code
// derived from a fresh UUID. Uniqueness is guaranteed by the database
// constraint; callers retry on collision.
func NewValidationCode() string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return strings.ToUpper(raw[:8])
}

// NewQRToken returns the scannable token printed on a table's QR code.
func NewQRToken() string {
	return uuid.NewString()
}
