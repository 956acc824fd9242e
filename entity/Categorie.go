package entity

import (
	"gorm.io/gorm"
)

// Active is a soft-delete flag: listing queries filter on it explicitly.
type Categorie struct {
	gorm.Model
	Nom    string `gorm:"size:100;not null" json:"nom"`
	Active bool   `gorm:"default:true" json:"active"`

	Produits []Produit `json:"-"`
}
