package entity

import (
	"gorm.io/gorm"
)

type Produit struct {
	gorm.Model
	Nom         string `gorm:"size:150;not null" json:"nom"`
	Description string `json:"description"`
	// Prix in minor currency units, snapshotted into cart and order lines.
	Prix   int64 `gorm:"not null" json:"prix"`
	Stock  int   `gorm:"default:0" json:"stock"`
	Active bool  `gorm:"default:true" json:"active"`

	CategorieID *uint      `json:"categorieId,omitempty"`
	Categorie   *Categorie `json:"-"`

	RestaurantID uint       `json:"restaurantId"`
	Restaurant   Restaurant `json:"-"`
}
