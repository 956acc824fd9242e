package repository

import (
	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) CreateCommande(tx *gorm.DB, o *entity.Commande) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) CreateLigne(tx *gorm.DB, l *entity.CommandeProduit) error {
	return tx.Create(l).Error
}

func (r *OrderRepository) GetCommande(id uint) (*entity.Commande, error) {
	var o entity.Commande
	if err := r.DB.First(&o, id).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepository) GetLignes(commandeID uint) ([]entity.CommandeProduit, error) {
	var out []entity.CommandeProduit
	err := r.DB.Where("commande_id = ?", commandeID).Find(&out).Error
	return out, err
}

func (r *OrderRepository) Total(commandeID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&entity.CommandeProduit{}).
		Select("COALESCE(SUM(quantite * prix_unitaire), 0)").
		Where("commande_id = ?", commandeID).
		Scan(&total).Error
	return total, err
}

// UpdateStatusGuard moves the commande from one status to another in a
// single conditional update; zero affected rows means the commande was
// not in the expected state.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, commandeID uint, from, to string) (int64, error) {
	res := tx.Model(&entity.Commande{}).
		Where("id = ? AND statut_commande = ?", commandeID, from).
		Update("statut_commande", to)
	return res.RowsAffected, res.Error
}

// ListPending returns EN_ATTENTE commandes oldest first (kitchen FIFO).
func (r *OrderRepository) ListPending() ([]entity.Commande, error) {
	var out []entity.Commande
	err := r.DB.Where("statut_commande = ?", entity.CommandeEnAttente).
		Order("date_commande ASC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) ListForSession(sessionID uint) ([]entity.Commande, error) {
	var out []entity.Commande
	err := r.DB.Where("session_id = ?", sessionID).Order("date_commande ASC").Find(&out).Error
	return out, err
}

func (r *OrderRepository) CountForSessionByStatus(sessionID uint, statuses []string) (int64, error) {
	var cnt int64
	err := r.DB.Model(&entity.Commande{}).
		Where("session_id = ? AND statut_commande IN ?", sessionID, statuses).
		Count(&cnt).Error
	return cnt, err
}
