package entity

import (
	"gorm.io/gorm"
)

// Client is created when a session opens (full name only, no login)
// and is never mutated afterwards.
type Client struct {
	gorm.Model
	NomComplet string `gorm:"size:150;not null" json:"nomComplet"`

	Sessions []Session `json:"-"`
}
