package models

import (
	"time"

	"gorm.io/gorm"
)

const PurchaseStatusCompleted = "COMPLETED"

// Purchase records one confirmed enrollment. The ledger is append-only:
// rows are never updated or deleted in normal operation. The composite
// unique index keeps one row per (user, course) even when the payment
// provider delivers the success callback more than once, and SessionID
// doubles as the idempotency key for the callback itself.
type Purchase struct {
	gorm.Model
	UserID       uint      `json:"user_id" gorm:"uniqueIndex:idx_purchase_user_course;not null"`
	CourseID     uint      `json:"course_id" gorm:"uniqueIndex:idx_purchase_user_course;not null"`
	SessionID    string    `json:"session_id" gorm:"uniqueIndex;not null"`
	PurchaseDate time.Time `json:"purchase_date"`
	Status       string    `json:"status" gorm:"default:'COMPLETED'"`
	IsDeleted    bool      `json:"-" gorm:"default:false"`
}
