package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	SessionOuverte = "OUVERTE"
	SessionFermee  = "FERMÉE"
)

// Session binds one table to one client for one dining visit.
// At most one OUVERTE session per table at a time.
type Session struct {
	gorm.Model
	StatutSession string     `gorm:"size:20;not null;default:'OUVERTE';index" json:"statutSession"`
	DateOuverture time.Time  `json:"dateOuverture"`
	DateFermeture *time.Time `json:"dateFermeture,omitempty"`

	TableID uint  `gorm:"index" json:"tableId"`
	Table   Table `json:"-"`

	ClientID uint   `json:"clientId"`
	Client   Client `json:"-"`

	Paniers   []Panier   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
	Commandes []Commande `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`
}
