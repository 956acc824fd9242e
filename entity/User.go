package entity

import (
	"gorm.io/gorm"
)

// Staff roles checked by the auth middleware.
const (
	RoleCaissier = "caissier"
	RoleCuisine  = "cuisine"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

type User struct {
	gorm.Model
	Email    string `gorm:"size:150;uniqueIndex;not null" json:"email"`
	Password string `gorm:"not null" json:"-"`
	Nom      string `gorm:"size:150" json:"nom"`
	Role     string `gorm:"size:30;not null" json:"role"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
