package entity

import (
	"gorm.io/gorm"
)

type Restaurant struct {
	gorm.Model
	Nom       string `gorm:"size:150;not null" json:"nom"`
	Adresse   string `json:"adresse"`
	Telephone string `gorm:"size:30" json:"telephone"`
	Active    bool   `gorm:"default:true" json:"active"`

	Tables []Table `json:"-"`
	Users  []User  `json:"-"`
}

// RestaurantInfo is the snapshot serialized into archived invoices.
type RestaurantInfo struct {
	Nom       string `json:"nom"`
	Adresse   string `json:"adresse"`
	Telephone string `json:"telephone"`
}

func (r *Restaurant) Info() RestaurantInfo {
	return RestaurantInfo{Nom: r.Nom, Adresse: r.Adresse, Telephone: r.Telephone}
}
