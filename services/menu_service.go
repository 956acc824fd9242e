package services

import (
	"errors"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/repository"

	"gorm.io/gorm"
)

type MenuService struct {
	Repo *repository.ProductRepository
}

func NewMenuService(repo *repository.ProductRepository) *MenuService {
	return &MenuService{Repo: repo}
}

func (s *MenuService) ListProducts(categorieID *uint) ([]entity.Produit, error) {
	return s.Repo.ListActive(categorieID)
}

func (s *MenuService) ListCategories() ([]entity.Categorie, error) {
	return s.Repo.ListActiveCategories()
}

type CreateProductIn struct {
	Nom          string `json:"nom" binding:"required"`
	Description  string `json:"description"`
	Prix         int64  `json:"prix" binding:"required,min=1"`
	Stock        int    `json:"stock" binding:"min=0"`
	CategorieID  *uint  `json:"categorieId"`
	RestaurantID uint   `json:"restaurantId"`
}

func (s *MenuService) CreateProduct(in *CreateProductIn) (*entity.Produit, error) {
	p := entity.Produit{
		Nom:          in.Nom,
		Description:  in.Description,
		Prix:         in.Prix,
		Stock:        in.Stock,
		Active:       true,
		CategorieID:  in.CategorieID,
		RestaurantID: in.RestaurantID,
	}
	if err := s.Repo.Create(&p); err != nil {
		return nil, err
	}
	return &p, nil
}

type UpdateProductIn struct {
	Nom         *string `json:"nom"`
	Description *string `json:"description"`
	Prix        *int64  `json:"prix"`
	Stock       *int    `json:"stock"`
	Active      *bool   `json:"active"`
}

func (s *MenuService) UpdateProduct(id uint, in *UpdateProductIn) error {
	if _, err := s.Repo.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	fields := map[string]any{}
	if in.Nom != nil {
		fields["nom"] = *in.Nom
	}
	if in.Description != nil {
		fields["description"] = *in.Description
	}
	if in.Prix != nil {
		fields["prix"] = *in.Prix
	}
	if in.Stock != nil {
		fields["stock"] = *in.Stock
	}
	if in.Active != nil {
		fields["active"] = *in.Active
	}
	if len(fields) == 0 {
		return nil
	}
	return s.Repo.Updates(id, fields)
}
