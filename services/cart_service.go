package services

import (
	"errors"
	"time"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB          *gorm.DB
	CartRepo    *repository.CartRepository
	ProductRepo *repository.ProductRepository
	OrderRepo   *repository.OrderRepository
	Notifier    OrderNotifier
}

func NewCartService(
	db *gorm.DB,
	cartRepo *repository.CartRepository,
	productRepo *repository.ProductRepository,
	orderRepo *repository.OrderRepository,
	notifier OrderNotifier,
) *CartService {
	return &CartService{DB: db, CartRepo: cartRepo, ProductRepo: productRepo, OrderRepo: orderRepo, Notifier: notifier}
}

func (s *CartService) GetOrCreate(sessionID uint, identity string) (*entity.Panier, error) {
	return s.CartRepo.GetOrCreateActive(sessionID, identity)
}

func (s *CartService) Get(panierID uint) (*entity.Panier, int64, error) {
	p, err := s.CartRepo.GetPanierWithLines(panierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, ErrNotFound
		}
		return nil, 0, err
	}
	var total int64
	for _, l := range p.Lignes {
		total += int64(l.Quantite) * l.PrixUnitaire
	}
	return p, total, nil
}

// Add puts qty units of a product into the panier, merging into an
// existing line for the same product. The unit price is captured now.
func (s *CartService) Add(panierID, produitID uint, qty int) error {
	if qty < 1 {
		return ErrInvalidQuantity
	}

	p, err := s.CartRepo.GetPanier(panierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if p.StatutPanier != entity.PanierActif {
		return ErrConflict
	}

	prod, err := s.ProductRepo.GetActive(produitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	line := &entity.PanierProduit{
		ProduitID:    prod.ID,
		Quantite:     qty,
		PrixUnitaire: prod.Prix,
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertLine(tx, p.ID, line)
	})
}

// UpdateQty sets a line's quantity; zero or negative removes the line,
// so no zero-quantity line ever persists.
func (s *CartService) UpdateQty(lineID uint, qty int) error {
	if _, err := s.CartRepo.GetLine(lineID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if qty <= 0 {
			return s.CartRepo.DeleteLine(tx, lineID)
		}
		return s.CartRepo.UpdateLineQty(tx, lineID, qty)
	})
}

func (s *CartService) Remove(lineID uint) error {
	if _, err := s.CartRepo.GetLine(lineID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.DeleteLine(tx, lineID)
	})
}

func (s *CartService) Clear(panierID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearLines(tx, panierID)
	})
}

func (s *CartService) Total(panierID uint) (int64, error) {
	return s.CartRepo.Total(panierID)
}

// CloseToOrder converts the panier's lines into a new commande in one
// transaction: stock is checked and decremented per line, the commande
// and its lines are created, the panier is closed and emptied. Any
// failure rolls the whole conversion back.
func (s *CartService) CloseToOrder(panierID uint) (*entity.Commande, error) {
	p, err := s.CartRepo.GetPanierWithLines(panierID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if p.StatutPanier != entity.PanierActif {
		return nil, ErrConflict
	}
	if len(p.Lignes) == 0 {
		return nil, ErrEmptyCart
	}

	commande := entity.Commande{
		SessionID:      p.SessionID,
		StatutCommande: entity.CommandeEnAttente,
		DateCommande:   time.Now(),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		for _, l := range p.Lignes {
			affected, err := s.ProductRepo.DecrementStockGuard(tx, l.ProduitID, l.Quantite)
			if err != nil {
				return err
			}
			if affected == 0 {
				return ErrInsufficientStock
			}
		}

		if err := s.OrderRepo.CreateCommande(tx, &commande); err != nil {
			return err
		}
		for _, l := range p.Lignes {
			ligne := entity.CommandeProduit{
				CommandeID:   commande.ID,
				ProduitID:    l.ProduitID,
				Quantite:     l.Quantite,
				PrixUnitaire: l.PrixUnitaire,
			}
			if err := s.OrderRepo.CreateLigne(tx, &ligne); err != nil {
				return err
			}
		}

		affected, err := s.CartRepo.CloseGuard(tx, p.ID, time.Now())
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrConflict
		}
		return s.CartRepo.ClearLines(tx, p.ID)
	})
	if err != nil {
		return nil, err
	}

	if s.Notifier != nil {
		s.Notifier.OrderCreated(&commande)
	}
	return &commande, nil
}
