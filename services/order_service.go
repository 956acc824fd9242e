package services

import (
	"errors"
	"time"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// OrderNotifier pushes order events to the kitchen live feed.
type OrderNotifier interface {
	OrderCreated(o *entity.Commande)
	OrderStatusChanged(o *entity.Commande)
}

type OrderService struct {
	DB          *gorm.DB
	Repo        *repository.OrderRepository
	ProductRepo *repository.ProductRepository
	SessionRepo *repository.SessionRepository
	Notifier    OrderNotifier
	Log         *zap.Logger
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	productRepo *repository.ProductRepository,
	sessionRepo *repository.SessionRepository,
	notifier OrderNotifier,
	log *zap.Logger,
) *OrderService {
	return &OrderService{DB: db, Repo: repo, ProductRepo: productRepo, SessionRepo: sessionRepo, Notifier: notifier, Log: log}
}

// transitions maps each status to the statuses reachable from it.
// SERVI and ANNULÉ are terminal.
var transitions = map[string][]string{
	entity.CommandeEnAttente: {entity.CommandeEnvoyee, entity.CommandeAnnulee},
	entity.CommandeEnvoyee:   {entity.CommandeServie, entity.CommandeAnnulee},
	entity.CommandeServie:    {},
	entity.CommandeAnnulee:   {},
}

func transitionAllowed(from, to string) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// Create opens an empty EN_ATTENTE commande on a session.
func (s *OrderService) Create(sessionID uint) (*entity.Commande, error) {
	sess, err := s.SessionRepo.GetSession(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if sess.StatutSession != entity.SessionOuverte {
		return nil, ErrConflict
	}

	o := entity.Commande{
		SessionID:      sessionID,
		StatutCommande: entity.CommandeEnAttente,
		DateCommande:   time.Now(),
	}
	if err := s.Repo.CreateCommande(s.DB, &o); err != nil {
		return nil, err
	}
	if s.Notifier != nil {
		s.Notifier.OrderCreated(&o)
	}
	return &o, nil
}

// UpdateStatus applies one step of the status progression. The write
// is a guarded conditional update, so a concurrent transition loses
// cleanly instead of overwriting.
func (s *OrderService) UpdateStatus(commandeID uint, to string) (*entity.Commande, error) {
	o, err := s.Repo.GetCommande(commandeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !transitionAllowed(o.StatutCommande, to) {
		return nil, ErrInvalidTransition
	}

	from := o.StatutCommande
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		affected, err := s.Repo.UpdateStatusGuard(tx, commandeID, from, to)
		if err != nil {
			return err
		}
		if affected == 0 {
			return ErrInvalidTransition
		}
		// cancelled lines go back to stock
		if to == entity.CommandeAnnulee {
			lignes, err := s.Repo.GetLignes(commandeID)
			if err != nil {
				return err
			}
			for _, l := range lignes {
				if err := s.ProductRepo.Restock(tx, l.ProduitID, l.Quantite); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	o.StatutCommande = to
	if s.Notifier != nil {
		s.Notifier.OrderStatusChanged(o)
	}
	return o, nil
}

type OrderDetail struct {
	Commande *entity.Commande         `json:"commande"`
	Lignes   []entity.CommandeProduit `json:"lignes"`
	Total    int64                    `json:"total"`
}

func (s *OrderService) Detail(commandeID uint) (*OrderDetail, error) {
	o, err := s.Repo.GetCommande(commandeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	lignes, err := s.Repo.GetLignes(o.ID)
	if err != nil {
		return nil, err
	}
	var total int64
	for _, l := range lignes {
		total += int64(l.Quantite) * l.PrixUnitaire
	}
	return &OrderDetail{Commande: o, Lignes: lignes, Total: total}, nil
}

// ListPending returns the kitchen queue, oldest first.
func (s *OrderService) ListPending() ([]entity.Commande, error) {
	return s.Repo.ListPending()
}

func (s *OrderService) ListForSession(sessionID uint) ([]entity.Commande, error) {
	return s.Repo.ListForSession(sessionID)
}
