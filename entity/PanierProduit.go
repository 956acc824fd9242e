package entity

import (
	"gorm.io/gorm"
)

// PanierProduit is a cart line. Quantite is always >= 1: removing the
// last unit deletes the line instead of storing zero.
type PanierProduit struct {
	gorm.Model
	Quantite     int   `gorm:"not null" json:"quantite"`
	PrixUnitaire int64 `gorm:"not null" json:"prixUnitaire"`

	PanierID uint   `gorm:"index" json:"panierId"`
	Panier   Panier `json:"-"`

	ProduitID uint    `json:"produitId"`
	Produit   Produit `json:"-"`
}
