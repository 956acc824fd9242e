package services

import (
	"errors"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/repository"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/utils"

	"gorm.io/gorm"
)

type TableService struct {
	Repo *repository.TableRepository
}

func NewTableService(repo *repository.TableRepository) *TableService {
	return &TableService{Repo: repo}
}

type CreateTableIn struct {
	NomTable     string `json:"nomTable" binding:"required"`
	Capacite     int    `json:"capacite" binding:"min=1"`
	RestaurantID uint   `json:"restaurantId"`
}

// Create issues the table's QR token. It never changes afterwards.
func (s *TableService) Create(in *CreateTableIn) (*entity.Table, error) {
	t := entity.Table{
		NomTable:     in.NomTable,
		Capacite:     in.Capacite,
		QRCode:       utils.NewQRToken(),
		Active:       true,
		RestaurantID: in.RestaurantID,
	}
	if err := s.Repo.Create(&t); err != nil {
		return nil, err
	}
	return &t, nil
}

func (s *TableService) List(restaurantID uint) ([]entity.Table, error) {
	return s.Repo.List(restaurantID)
}

func (s *TableService) Update(id uint, nom string, capacite int) error {
	if _, err := s.Repo.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.Update(id, nom, capacite)
}

// SetActive hides a table from scanning without deleting it.
func (s *TableService) SetActive(id uint, active bool) error {
	if _, err := s.Repo.Get(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.Repo.SetActive(id, active)
}
