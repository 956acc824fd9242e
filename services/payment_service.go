package services

import (
	"errors"
	"strings"
	"time"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/repository"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/utils"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const codeGenAttempts = 5

type PaymentService struct {
	DB        *gorm.DB
	Repo      *repository.PaymentRepository
	OrderRepo *repository.OrderRepository
	Log       *zap.Logger
}

func NewPaymentService(
	db *gorm.DB,
	repo *repository.PaymentRepository,
	orderRepo *repository.OrderRepository,
	log *zap.Logger,
) *PaymentService {
	return &PaymentService{DB: db, Repo: repo, OrderRepo: orderRepo, Log: log}
}

func validMethod(m string) bool {
	switch m {
	case entity.MethodeEspeces, entity.MethodeMobileMoney, entity.MethodeCarte, entity.MethodeALaCaisse:
		return true
	}
	return false
}

// Create records a payment attempt against a commande. The validation
// code is generated here and immutable afterwards; the unique index is
// the collision authority, generation just retries against it.
func (s *PaymentService) Create(commandeID uint, methode string, montant int64) (*entity.Paiement, error) {
	if !validMethod(methode) {
		return nil, ErrInvalidMethod
	}
	if _, err := s.OrderRepo.GetCommande(commandeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	var p entity.Paiement
	var lastErr error
	for i := 0; i < codeGenAttempts; i++ {
		p = entity.Paiement{
			CommandeID:      commandeID,
			MethodePaiement: methode,
			MontantTotal:    montant,
			StatutPaiement:  entity.PaiementEnCours,
			CodeValidation:  utils.NewValidationCode(),
		}
		lastErr = s.Repo.Create(s.DB, &p)
		if lastErr == nil {
			return &p, nil
		}
		if !isUniqueViolation(lastErr) {
			return nil, lastErr
		}
	}
	s.Log.Error("validation code collisions exhausted",
		zap.Uint("commandeId", commandeID), zap.Error(lastErr))
	return nil, ErrConflict
}

// isUniqueViolation matches unique-constraint errors from both sqlite
// and postgres drivers.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") || strings.Contains(msg, "duplicate key")
}

// ValidateByCode is the single authoritative settlement transition of
// the pay-at-counter flow. The guard update makes it safe under
// concurrent duplicate submission: exactly one caller settles, the
// rest observe AlreadySettled.
func (s *PaymentService) ValidateByCode(code string) (*entity.Paiement, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	p, err := s.Repo.GetByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCode
		}
		return nil, err
	}

	affected, err := s.Repo.SettleGuard(s.DB, p.ID, time.Now())
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// lost the race or payment left EN_COURS some other way
		current, err := s.Repo.Get(p.ID)
		if err != nil {
			return nil, err
		}
		if current.StatutPaiement == entity.PaiementEffectue {
			return nil, ErrAlreadySettled
		}
		return nil, ErrInvalidTransition
	}

	return s.Repo.Get(p.ID)
}

// Cancel is a side exit from EN_COURS, terminal for validation.
func (s *PaymentService) Cancel(paymentID uint) error {
	return s.exit(paymentID, []string{entity.PaiementEnCours}, entity.PaiementAnnule)
}

// Archive marks a finished payment ARCHIVÉ.
func (s *PaymentService) Archive(paymentID uint) error {
	return s.exit(paymentID, []string{entity.PaiementEffectue, entity.PaiementAnnule}, entity.PaiementArchive)
}

func (s *PaymentService) exit(paymentID uint, from []string, to string) error {
	p, err := s.Repo.Get(paymentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	allowed := false
	for _, f := range from {
		if p.StatutPaiement == f {
			allowed = true
			break
		}
	}
	if !allowed {
		return ErrInvalidTransition
	}

	affected, err := s.Repo.UpdateStatusGuard(s.DB, paymentID, p.StatutPaiement, to)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrInvalidTransition
	}
	return nil
}

func (s *PaymentService) Get(paymentID uint) (*entity.Paiement, error) {
	p, err := s.Repo.Get(paymentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return p, err
}

// StatsByMethod is a pure aggregation over [from, to].
func (s *PaymentService) StatsByMethod(from, to time.Time) ([]repository.MethodStats, error) {
	return s.Repo.StatsByMethod(from, to)
}
