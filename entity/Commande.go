package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	CommandeEnAttente = "EN_ATTENTE"
	CommandeEnvoyee   = "ENVOYÉ"
	CommandeServie    = "SERVI"
	CommandeAnnulee   = "ANNULÉ"
)

// Commande is a submitted order. Lines are immutable once created;
// only the status progresses (EN_ATTENTE -> ENVOYÉ -> SERVI, with
// ANNULÉ reachable from the two non-terminal states).
type Commande struct {
	gorm.Model
	StatutCommande string    `gorm:"size:20;not null;default:'EN_ATTENTE';index" json:"statutCommande"`
	DateCommande   time.Time `json:"dateCommande"`

	SessionID uint    `gorm:"index" json:"sessionId"`
	Session   Session `json:"-"`

	Lignes    []CommandeProduit `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"lignes"`
	Paiements []Paiement        `json:"-"`
}
