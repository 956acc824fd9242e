package entity

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaiementEnCours  = "EN_COURS"
	PaiementEffectue = "EFFECTUÉ"
	PaiementAnnule   = "ANNULÉ"
	PaiementArchive  = "ARCHIVÉ"
)

const (
	MethodeEspeces     = "ESPECES"
	MethodeMobileMoney = "MOBILE_MONEY"
	MethodeCarte       = "CARTE"
	MethodeALaCaisse   = "A_LA_CAISSE"
)

// Paiement is one attempt to settle one commande's total. The
// validation code lets counter staff confirm a pay-at-counter payment
// without looking up an internal id; it is unique and immutable.
type Paiement struct {
	gorm.Model
	MethodePaiement string `gorm:"size:30;not null" json:"methodePaiement"`
	MontantTotal    int64  `gorm:"not null" json:"montantTotal"`
	StatutPaiement  string `gorm:"size:20;not null;default:'EN_COURS';index" json:"statutPaiement"`
	CodeValidation  string `gorm:"size:8;uniqueIndex;not null" json:"codeValidation"`
	// DatePaiement is set when the payment settles, nil while EN_COURS.
	DatePaiement *time.Time `json:"datePaiement,omitempty"`

	CommandeID uint     `gorm:"index" json:"commandeId"`
	Commande   Commande `json:"-"`
}
