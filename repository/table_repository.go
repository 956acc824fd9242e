package repository

import (
	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"

	"gorm.io/gorm"
)

type TableRepository struct {
	DB *gorm.DB
}

func NewTableRepository(db *gorm.DB) *TableRepository {
	return &TableRepository{DB: db}
}

func (r *TableRepository) Create(t *entity.Table) error {
	return r.DB.Create(t).Error
}

func (r *TableRepository) Get(id uint) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.First(&t, id).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *TableRepository) List(restaurantID uint) ([]entity.Table, error) {
	var out []entity.Table
	err := r.DB.Where("restaurant_id = ?", restaurantID).Order("id").Find(&out).Error
	return out, err
}

// Update changes name and capacity only. The QR token is immutable.
func (r *TableRepository) Update(id uint, nom string, capacite int) error {
	return r.DB.Model(&entity.Table{}).Where("id = ?", id).
		Updates(map[string]any{"nom_table": nom, "capacite": capacite}).Error
}

// SetActive hides (or restores) a table from scanning.
func (r *TableRepository) SetActive(id uint, active bool) error {
	return r.DB.Model(&entity.Table{}).Where("id = ?", id).
		Update("active", active).Error
}

func (r *TableRepository) GetRestaurant(id uint) (*entity.Restaurant, error) {
	var resto entity.Restaurant
	if err := r.DB.First(&resto, id).Error; err != nil {
		return nil, err
	}
	return &resto, nil
}
