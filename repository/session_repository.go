package repository

import (
	"time"

	"github.com/juxt-rts-design/Restaurant-backend-sub001/entity"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(db *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: db}
}

// GetTableByQRCode resolves a scanned token to an active table.
func (r *SessionRepository) GetTableByQRCode(code string) (*entity.Table, error) {
	var t entity.Table
	if err := r.DB.Where("qr_code = ? AND active = ?", code, true).First(&t).Error; err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SessionRepository) HasOpenSession(tableID uint) (bool, error) {
	var cnt int64
	err := r.DB.Model(&entity.Session{}).
		Where("table_id = ? AND statut_session = ?", tableID, entity.SessionOuverte).
		Count(&cnt).Error
	return cnt > 0, err
}

func (r *SessionRepository) CreateClient(tx *gorm.DB, c *entity.Client) error {
	return tx.Create(c).Error
}

func (r *SessionRepository) CreateSession(tx *gorm.DB, s *entity.Session) error {
	return tx.Create(s).Error
}

func (r *SessionRepository) GetSession(id uint) (*entity.Session, error) {
	var s entity.Session
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SessionRepository) GetSessionWithRefs(id uint) (*entity.Session, error) {
	var s entity.Session
	if err := r.DB.Preload("Table").Preload("Client").First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// CloseGuard closes a session only if it is still open. The affected
// row count tells the caller whether someone else got there first.
func (r *SessionRepository) CloseGuard(tx *gorm.DB, sessionID uint, at time.Time) (int64, error) {
	res := tx.Model(&entity.Session{}).
		Where("id = ? AND statut_session = ?", sessionID, entity.SessionOuverte).
		Updates(map[string]any{
			"statut_session": entity.SessionFermee,
			"date_fermeture": at,
		})
	return res.RowsAffected, res.Error
}

// SweepStale force-closes every open session older than the cutoff in
// one conditional update, so it is idempotent and safe to run from
// several instances at once.
func (r *SessionRepository) SweepStale(cutoff, at time.Time) (int64, error) {
	res := r.DB.Model(&entity.Session{}).
		Where("statut_session = ? AND date_ouverture < ?", entity.SessionOuverte, cutoff).
		Updates(map[string]any{
			"statut_session": entity.SessionFermee,
			"date_fermeture": at,
		})
	return res.RowsAffected, res.Error
}
