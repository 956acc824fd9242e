package entity

import (
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	NomTable string `gorm:"size:100;not null" json:"nomTable"`
	Capacite int    `gorm:"default:4" json:"capacite"`
	// QR token is generated once at creation and never regenerated.
	QRCode string `gorm:"column:qr_code;size:64;uniqueIndex;not null" json:"qrCode"`
	Active bool   `gorm:"default:true" json:"active"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`

	Sessions []Session `json:"-"`
}
