package entity

import (
	"gorm.io/gorm"
)

// CommandeProduit is an order line. PrixUnitaire is the price captured
// at order time, independent of later product price changes.
type CommandeProduit struct {
	gorm.Model
	Quantite     int   `gorm:"not null" json:"quantite"`
	PrixUnitaire int64 `gorm:"not null" json:"prixUnitaire"`

	CommandeID uint     `gorm:"index" json:"commandeId"`
	Commande   Commande `json:"-"`

	ProduitID uint    `json:"produitId"`
	Produit   Produit `json:"-"`
}
