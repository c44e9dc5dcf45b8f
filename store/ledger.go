package store

import (
	"errors"
	"time"

	"learnhub/models"

	"gorm.io/gorm"
)

// PurchaseLedger is the append-only record of confirmed enrollments.
// No update or delete is exposed: once a purchase row exists, access to the
// course is permanent.
type PurchaseLedger struct {
	db *gorm.DB
}

func NewPurchaseLedger(db *gorm.DB) *PurchaseLedger {
	return &PurchaseLedger{db: db}
}

// Record appends a purchase for the given payment session. The session id is
// the idempotency key: a callback that was already recorded, or a second
// session for a course the user already owns, is a no-op success and returns
// alreadyRecorded=true.
func (l *PurchaseLedger) Record(userID, courseID uint, sessionID string) (alreadyRecorded bool, err error) {
	var existing models.Purchase
	err = l.db.Where("session_id = ?", sessionID).First(&existing).Error
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	purchase := models.Purchase{
		UserID:       userID,
		CourseID:     courseID,
		SessionID:    sessionID,
		PurchaseDate: time.Now(),
		Status:       models.PurchaseStatusCompleted,
	}

	if err := l.db.Create(&purchase).Error; err != nil {
		// A concurrent duplicate callback, or a second session for an
		// already-owned course, trips one of the unique indexes.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return true, nil
		}
		return false, err
	}

	return false, nil
}

// HasPurchased reports whether at least one purchase row exists for the pair.
// The read-error policy (fail open or closed) is the access layer's concern,
// so errors are returned as-is here.
func (l *PurchaseLedger) HasPurchased(userID, courseID uint) (bool, error) {
	var count int64
	err := l.db.Model(&models.Purchase{}).
		Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByUser returns the user's purchases, newest first. Backs the
// "my courses" listing.
func (l *PurchaseLedger) ListByUser(userID uint) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := l.db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("purchase_date desc").
		Find(&purchases).Error
	return purchases, err
}
