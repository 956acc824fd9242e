package entity

import (
	"time"

	"gorm.io/gorm"
)

// FactureArchivee is an immutable snapshot taken when an order and its
// payment are finalized. Product lines, totals and restaurant identity
// are stored as serialized blobs; the scalar columns exist to support
// filtered search without deserializing anything.
type FactureArchivee struct {
	gorm.Model
	NumeroFacture string    `gorm:"size:50;uniqueIndex;not null" json:"numeroFacture"`
	DateFacture   time.Time `gorm:"index" json:"dateFacture"`
	DateCommande  time.Time `json:"dateCommande"`

	CommandeID uint `json:"commandeId"`
	SessionID  uint `json:"sessionId"`
	ClientID   uint `json:"clientId"`

	NomClient string `gorm:"size:150;index" json:"nomClient"`
	NomTable  string `gorm:"size:100" json:"nomTable"`

	MontantTotal    int64      `gorm:"index" json:"montantTotal"`
	MethodePaiement string     `gorm:"size:30;index" json:"methodePaiement"`
	StatutPaiement  string     `gorm:"size:20" json:"statutPaiement"`
	CodeValidation  string     `gorm:"size:8" json:"codeValidation"`
	DatePaiement    *time.Time `json:"datePaiement,omitempty"`

	ProduitsJSON   string `gorm:"type:text" json:"produitsJson"`
	TotauxJSON     string `gorm:"type:text" json:"totauxJson"`
	RestaurantInfo string `gorm:"type:text" json:"restaurantInfo"`
}
