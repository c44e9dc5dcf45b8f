package store

import (
	"time"

	"learnhub/models"

	"gorm.io/gorm"
)

// CheckoutSessions tracks hosted payment sessions from creation to
// consumption so abandoned ones can be swept.
type CheckoutSessions struct {
	db *gorm.DB
}

func NewCheckoutSessions(db *gorm.DB) *CheckoutSessions {
	return &CheckoutSessions{db: db}
}

// Track records a freshly created hosted session as PENDING.
func (s *CheckoutSessions) Track(sessionID string, courseID uint, amount int64) error {
	session := models.CheckoutSession{
		SessionID: sessionID,
		CourseID:  courseID,
		Amount:    amount,
		Status:    models.CheckoutSessionPending,
	}
	return s.db.Create(&session).Error
}

// MarkCompleted flips a session to COMPLETED once the return callback has
// been reconciled. Unknown session ids are ignored: the ledger row is the
// durability boundary, this table is bookkeeping.
func (s *CheckoutSessions) MarkCompleted(sessionID string) error {
	return s.db.Model(&models.CheckoutSession{}).
		Where("session_id = ? AND status = ?", sessionID, models.CheckoutSessionPending).
		Update("status", models.CheckoutSessionCompleted).Error
}

// ExpireStale marks PENDING sessions older than maxAge as EXPIRED and
// returns how many rows changed.
func (s *CheckoutSessions) ExpireStale(maxAge time.Duration) (int64, error) {
	cutoff := time.Now().Add(-maxAge)
	result := s.db.Model(&models.CheckoutSession{}).
		Where("status = ? AND created_at < ?", models.CheckoutSessionPending, cutoff).
		Update("status", models.CheckoutSessionExpired)
	return result.RowsAffected, result.Error
}
