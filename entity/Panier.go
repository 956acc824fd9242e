package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	PanierActif = "ACTIF"
	PanierFerme = "FERMÉ"
)

// Panier stages product lines before they are submitted as a commande.
// At most one ACTIF panier per (session, identity).
type Panier struct {
	gorm.Model
	NomUtilisateur string     `gorm:"size:150;not null" json:"nomUtilisateur"`
	StatutPanier   string     `gorm:"size:20;not null;default:'ACTIF';index" json:"statutPanier"`
	DateFermeture  *time.Time `json:"dateFermeture,omitempty"`

	SessionID uint    `gorm:"index" json:"sessionId"`
	Session   Session `json:"-"`

	Lignes []PanierProduit `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"lignes"`
}
