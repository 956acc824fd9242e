package services

import (
	"errors"
	"strings"
	"time"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"
	"github.com/juxt-rts-design/Restaurant-backend-sub001/repository"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

type SessionService struct {
	DB          *gorm.DB
	Repo        *repository.SessionRepository
	OrderRepo   *repository.OrderRepository
	PaymentRepo *repository.PaymentRepository
	Log         *zap.Logger
}

func NewSessionService(
	db *gorm.DB,
	repo *repository.SessionRepository,
	orderRepo *repository.OrderRepository,
	paymentRepo *repository.PaymentRepository,
	log *zap.Logger,
) *SessionService {
	return &SessionService{DB: db, Repo: repo, OrderRepo: orderRepo, PaymentRepo: paymentRepo, Log: log}
}

type OpenSessionRes struct {
	Session *entity.Session `json:"session"`
	Client  *entity.Client  `json:"client"`
	Table   *entity.Table   `json:"table"`
}

// Open resolves a scanned QR token and opens a session for the named
// client. Client + session are created atomically.
func (s *SessionService) Open(qrCode, nomComplet string) (*OpenSessionRes, error) {
	nomComplet = strings.TrimSpace(nomComplet)

	table, err := s.Repo.GetTableByQRCode(qrCode)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	open, err := s.Repo.HasOpenSession(table.ID)
	if err != nil {
		return nil, err
	}
	if open {
		return nil, ErrConflict
	}

	client := entity.Client{NomComplet: nomComplet}
	session := entity.Session{
		TableID:       table.ID,
		StatutSession: entity.SessionOuverte,
		DateOuverture: time.Now(),
	}
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateClient(tx, &client); err != nil {
			return err
		}
		session.ClientID = client.ID
		return s.Repo.CreateSession(tx, &session)
	})
	if err != nil {
		// the unique index on open sessions catches the race the
		// HasOpenSession pre-check cannot
		if isUniqueViolation(err) {
			return nil, ErrConflict
		}
		s.Log.Error("open session", zap.String("qrCode", qrCode), zap.Error(err))
		return nil, err
	}
	return &OpenSessionRes{Session: &session, Client: &client, Table: table}, nil
}

// Close ends the session. Closing an already-closed session is
// reported as a conflict; a sweep may treat that as a no-op.
func (s *SessionService) Close(sessionID uint) error {
	sess, err := s.Repo.GetSession(sessionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if sess.StatutSession == entity.SessionFermee {
		return ErrAlreadyClosed
	}

	affected, err := s.Repo.CloseGuard(s.DB, sessionID, time.Now())
	if err != nil {
		return err
	}
	if affected == 0 {
		// someone closed it between the read and the update
		return ErrAlreadyClosed
	}
	return nil
}

func (s *SessionService) Get(sessionID uint) (*entity.Session, error) {
	sess, err := s.Repo.GetSession(sessionID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return sess, err
}

// SweepStale force-closes every open session older than maxAge and
// returns how many it closed. Best-effort batch, no ordering guarantee.
func (s *SessionService) SweepStale(maxAge time.Duration) (int64, error) {
	now := time.Now()
	closed, err := s.Repo.SweepStale(now.Add(-maxAge), now)
	if err != nil {
		s.Log.Error("sweep stale sessions", zap.Error(err))
		return 0, err
	}
	if closed > 0 {
		s.Log.Info("swept stale sessions", zap.Int64("closed", closed))
	}
	return closed, nil
}
