package repository

import (
	"errors"
	"time"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"

	"gorm.io/gorm"
)

type CartRepository struct {
	DB *gorm.DB
}

func NewCartRepository(db *gorm.DB) *CartRepository {
	return &CartRepository{DB: db}
}

// GetOrCreateActive returns the caller's ACTIF panier for the session,
// creating it on first use.
func (r *CartRepository) GetOrCreateActive(sessionID uint, identity string) (*entity.Panier, error) {
	var p entity.Panier
	err := r.DB.Where("session_id = ? AND nom_utilisateur = ? AND statut_panier = ?",
		sessionID, identity, entity.PanierActif).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		p = entity.Panier{SessionID: sessionID, NomUtilisateur: identity, StatutPanier: entity.PanierActif}
		if err := r.DB.Create(&p).Error; err != nil {
			// a concurrent create won the unique index on active
			// paniers; return the winner instead
			var winner entity.Panier
			if err2 := r.DB.Where("session_id = ? AND nom_utilisateur = ? AND statut_panier = ?",
				sessionID, identity, entity.PanierActif).First(&winner).Error; err2 == nil {
				return &winner, nil
			}
			return nil, err
		}
		return &p, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CartRepository) GetPanier(id uint) (*entity.Panier, error) {
	var p entity.Panier
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CartRepository) GetPanierWithLines(id uint) (*entity.Panier, error) {
	var p entity.Panier
	if err := r.DB.Preload("Lignes").First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *CartRepository) GetLine(id uint) (*entity.PanierProduit, error) {
	var l entity.PanierProduit
	if err := r.DB.First(&l, id).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

// UpsertLine merges into an existing line for the same product instead
// of duplicating it; quantities add up, the unit price keeps its
// add-time snapshot.
func (r *CartRepository) UpsertLine(tx *gorm.DB, panierID uint, row *entity.PanierProduit) error {
	var exist entity.PanierProduit
	err := tx.Where("panier_id = ? AND produit_id = ?", panierID, row.ProduitID).First(&exist).Error
	if err == nil {
		exist.Quantite += row.Quantite
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.PanierID = panierID
	return tx.Create(row).Error
}

func (r *CartRepository) UpdateLineQty(tx *gorm.DB, lineID uint, qty int) error {
	return tx.Model(&entity.PanierProduit{}).Where("id = ?", lineID).
		Update("quantite", qty).Error
}

func (r *CartRepository) DeleteLine(tx *gorm.DB, lineID uint) error {
	return tx.Delete(&entity.PanierProduit{}, lineID).Error
}

func (r *CartRepository) ClearLines(tx *gorm.DB, panierID uint) error {
	return tx.Where("panier_id = ?", panierID).Delete(&entity.PanierProduit{}).Error
}

func (r *CartRepository) Total(panierID uint) (int64, error) {
	var total int64
	err := r.DB.Model(&entity.PanierProduit{}).
		Select("COALESCE(SUM(quantite * prix_unitaire), 0)").
		Where("panier_id = ?", panierID).
		Scan(&total).Error
	return total, err
}

// CloseGuard marks the panier FERMÉ only while it is still ACTIF.
func (r *CartRepository) CloseGuard(tx *gorm.DB, panierID uint, at time.Time) (int64, error) {
	res := tx.Model(&entity.Panier{}).
		Where("id = ? AND statut_panier = ?", panierID, entity.PanierActif).
		Updates(map[string]any{
			"statut_panier":  entity.PanierFerme,
			"date_fermeture": at,
		})
	return res.RowsAffected, res.Error
}
