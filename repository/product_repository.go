package repository

import (
	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"

	"gorm.io/gorm"
)

type ProductRepository struct {
	DB *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{DB: db}
}

// GetActive returns the product only when its active flag is set.
func (r *ProductRepository) GetActive(id uint) (*entity.Produit, error) {
	var p entity.Produit
	if err := r.DB.Where("id = ? AND active = ?", id, true).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) Get(id uint) (*entity.Produit, error) {
	var p entity.Produit
	if err := r.DB.First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) ListActive(categorieID *uint) ([]entity.Produit, error) {
	q := r.DB.Where("active = ?", true)
	if categorieID != nil && *categorieID != 0 {
		q = q.Where("categorie_id = ?", *categorieID)
	}
	var out []entity.Produit
	err := q.Order("nom").Find(&out).Error
	return out, err
}

func (r *ProductRepository) ListActiveCategories() ([]entity.Categorie, error) {
	var out []entity.Categorie
	err := r.DB.Where("active = ?", true).Order("nom").Find(&out).Error
	return out, err
}

func (r *ProductRepository) Create(p *entity.Produit) error {
	return r.DB.Create(p).Error
}

func (r *ProductRepository) Updates(id uint, fields map[string]any) error {
	return r.DB.Model(&entity.Produit{}).Where("id = ?", id).Updates(fields).Error
}

// DecrementStockGuard takes qty units of stock only when enough remain.
// A zero affected-row count means insufficient stock.
func (r *ProductRepository) DecrementStockGuard(tx *gorm.DB, produitID uint, qty int) (int64, error) {
	res := tx.Model(&entity.Produit{}).
		Where("id = ? AND stock >= ?", produitID, qty).
		Update("stock", gorm.Expr("stock - ?", qty))
	return res.RowsAffected, res.Error
}

// Restock returns units to stock, used when an order is cancelled.
func (r *ProductRepository) Restock(tx *gorm.DB, produitID uint, qty int) error {
	return tx.Model(&entity.Produit{}).
		Where("id = ?", produitID).
		Update("stock", gorm.Expr("stock + ?", qty)).Error
}
