package services

import (
	"errors"
	"time"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"

	"gorm.io/gorm"
)

// Close-decision policy for a session. Recomputed from scratch on every
// call: the inputs are the session's order states and payment states,
// nothing is maintained incrementally.

type CloseDecision struct {
	CanClose bool   `json:"canClose"`
	Reason   string `json:"reason"`
}

var nonTerminalOrderStatuses = []string{entity.CommandeEnAttente, entity.CommandeEnvoyee}

// CanClose reports whether the session may be closed and why.
func (s *SessionService) CanClose(sessionID uint) (*CloseDecision, error) {
	if _, err := s.Repo.GetSession(sessionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	total, err := s.OrderRepo.CountForSessionByStatus(sessionID, []string{
		entity.CommandeEnAttente, entity.CommandeEnvoyee, entity.CommandeServie, entity.CommandeAnnulee,
	})
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return &CloseDecision{CanClose: true, Reason: "aucune commande"}, nil
	}

	inProgress, err := s.OrderRepo.CountForSessionByStatus(sessionID, nonTerminalOrderStatuses)
	if err != nil {
		return nil, err
	}
	if inProgress > 0 {
		return &CloseDecision{CanClose: false, Reason: "commandes en cours"}, nil
	}

	pending, err := s.PaymentRepo.CountInFlightForSession(sessionID)
	if err != nil {
		return nil, err
	}
	if pending > 0 {
		return &CloseDecision{CanClose: false, Reason: "paiements en attente"}, nil
	}

	return &CloseDecision{CanClose: true, Reason: "commandes servies et paiements réglés"}, nil
}

type AutoCloseRes struct {
	Closed bool   `json:"closed"`
	Reason string `json:"reason"`
}

// AutoClose closes the session when the policy allows it, otherwise
// does nothing and reports why.
func (s *SessionService) AutoClose(sessionID uint) (*AutoCloseRes, error) {
	d, err := s.CanClose(sessionID)
	if err != nil {
		return nil, err
	}
	if !d.CanClose {
		return &AutoCloseRes{Closed: false, Reason: d.Reason}, nil
	}

	affected, err := s.Repo.CloseGuard(s.DB, sessionID, time.Now())
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return &AutoCloseRes{Closed: false, Reason: "session déjà fermée"}, nil
	}
	return &AutoCloseRes{Closed: true, Reason: d.Reason}, nil
}

// CloseAfterPayment is the narrower variant invoked right after a
// payment settles: close only with zero in-flight payments and zero
// non-terminal orders.
func (s *SessionService) CloseAfterPayment(sessionID uint) (*AutoCloseRes, error) {
	inProgress, err := s.OrderRepo.CountForSessionByStatus(sessionID, nonTerminalOrderStatuses)
	if err != nil {
		return nil, err
	}
	if inProgress > 0 {
		return &AutoCloseRes{Closed: false, Reason: "commandes en cours"}, nil
	}
	pending, err := s.PaymentRepo.CountInFlightForSession(sessionID)
	if err != nil {
		return nil, err
	}
	if pending > 0 {
		return &AutoCloseRes{Closed: false, Reason: "paiements en attente"}, nil
	}

	affected, err := s.Repo.CloseGuard(s.DB, sessionID, time.Now())
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return &AutoCloseRes{Closed: false, Reason: "session déjà fermée"}, nil
	}
	return &AutoCloseRes{Closed: true, Reason: "paiement réglé"}, nil
}
