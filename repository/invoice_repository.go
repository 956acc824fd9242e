package repository

import (
	"time"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"

	"gorm.io/gorm"
)

type InvoiceRepository struct {
	DB *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{DB: db}
}

func (r *InvoiceRepository) Create(tx *gorm.DB, f *entity.FactureArchivee) error {
	return tx.Create(f).Error
}

func (r *InvoiceRepository) GetByNumber(numero string) (*entity.FactureArchivee, error) {
	var f entity.FactureArchivee
	if err := r.DB.Where("numero_facture = ?", numero).First(&f).Error; err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *InvoiceRepository) ExistsForCommande(commandeID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.FactureArchivee{}).
		Where("commande_id = ?", commandeID).Count(&cnt).Error
	return cnt > 0, err
}

// InvoiceFilter holds the independent, combinable search predicates.
// Nil / empty fields are skipped; the rest combine with AND.
type InvoiceFilter struct {
	DateDebut       *time.Time
	DateFin         *time.Time
	NomClient       string
	NomTable        string
	MontantMin      *int64
	MontantMax      *int64
	MethodePaiement string
	NumeroFacture   string
	Limit           int
	Offset          int
}

// Search applies the filter with parameterized clauses only; caller
// input never reaches SQL text.
func (r *InvoiceRepository) Search(f InvoiceFilter) ([]entity.FactureArchivee, int64, error) {
	q := r.DB.Model(&entity.FactureArchivee{})

	if f.DateDebut != nil {
		q = q.Where("date_facture >= ?", *f.DateDebut)
	}
	if f.DateFin != nil {
		q = q.Where("date_facture <= ?", *f.DateFin)
	}
	if f.NomClient != "" {
		q = q.Where("nom_client LIKE ?", "%"+f.NomClient+"%")
	}
	if f.NomTable != "" {
		q = q.Where("nom_table LIKE ?", "%"+f.NomTable+"%")
	}
	if f.MontantMin != nil {
		q = q.Where("montant_total >= ?", *f.MontantMin)
	}
	if f.MontantMax != nil {
		q = q.Where("montant_total <= ?", *f.MontantMax)
	}
	if f.MethodePaiement != "" {
		q = q.Where("methode_paiement = ?", f.MethodePaiement)
	}
	if f.NumeroFacture != "" {
		q = q.Where("numero_facture LIKE ?", "%"+f.NumeroFacture+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := f.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := f.Offset
	if offset < 0 {
		offset = 0
	}

	var out []entity.FactureArchivee
	err := q.Order("date_facture DESC").Limit(limit).Offset(offset).Find(&out).Error
	return out, total, err
}

// Delete is the administrative escape hatch; archived invoices are
// never removed as part of normal flow.
func (r *InvoiceRepository) Delete(id uint) (int64, error) {
	res := r.DB.Delete(&entity.FactureArchivee{}, id)
	return res.RowsAffected, res.Error
}
