package repository

import (
	"time"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"

	"gorm.io/gorm"
)

type PaymentRepository struct {
	DB *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{DB: db}
}

func (r *PaymentRepository) Create(tx *gorm.DB, p *entity.Paiement) error {
	return tx.Create(p).Error
}

func (r *PaymentRepository) Get(id uint) (*entity.Paiement, error) {
	var p entity.Paiement
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) GetByCode(code string) (*entity.Paiement, error) {
	var p entity.Paiement
	if err := r.DB.Where("code_validation = ?", code).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepository) GetSettledForCommande(commandeID uint) (*entity.Paiement, error) {
	var p entity.Paiement
	err := r.DB.Where("commande_id = ? AND statut_paiement = ?", commandeID, entity.PaiementEffectue).
		First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SettleGuard flips the payment to EFFECTUÉ only while it is still
// EN_COURS. Concurrent duplicate submissions race on this update; the
// loser sees zero affected rows and never double-credits.
func (r *PaymentRepository) SettleGuard(tx *gorm.DB, paymentID uint, at time.Time) (int64, error) {
	res := tx.Model(&entity.Paiement{}).
		Where("id = ? AND statut_paiement = ?", paymentID, entity.PaiementEnCours).
		Updates(map[string]any{
			"statut_paiement": entity.PaiementEffectue,
			"date_paiement":   at,
		})
	return res.RowsAffected, res.Error
}

func (r *PaymentRepository) UpdateStatusGuard(tx *gorm.DB, paymentID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Paiement{}).
		Where("id = ? AND statut_paiement = ?", paymentID, from).
		Update("statut_paiement", to)
	return res.RowsAffected, res.Error
}

// CountInFlightForSession counts EN_COURS payments across all of the
// session's commandes.
func (r *PaymentRepository) CountInFlightForSession(sessionID uint) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Paiement{}).
		Joins("JOIN commandes ON commandes.id = paiements.commande_id").
		Where("commandes.session_id = ? AND paiements.statut_paiement = ?",
			sessionID, entity.PaiementEnCours).
		Count(&cnt).Error
	return cnt, err
}

type MethodStats struct {
	Methode       string `json:"methode"`
	Count         int64  `json:"count"`
	TotalAmount   int64  `json:"totalAmount"`
	SettledCount  int64  `json:"settledCount"`
	SettledAmount int64  `json:"settledAmount"`
}

// StatsByMethod aggregates payments created in [from, to] per method.
func (r *PaymentRepository) StatsByMethod(from, to time.Time) ([]MethodStats, error) {
	var out []MethodStats
	err := r.DB.Model(&entity.Paiement{}).
		Select(`methode_paiement AS methode,
			COUNT(*) AS count,
			COALESCE(SUM(montant_total), 0) AS total_amount,
			SUM(CASE WHEN statut_paiement = ? THEN 1 ELSE 0 END) AS settled_count,
			COALESCE(SUM(CASE WHEN statut_paiement = ? THEN montant_total ELSE 0 END), 0) AS settled_amount`,
			entity.PaiementEffectue, entity.PaiementEffectue).
		Where("paiements.created_at >= ? AND paiements.created_at <= ?", from, to).
		Group("methode_paiement").
		Scan(&out).Error
	return out, err
}
