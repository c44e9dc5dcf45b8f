package models

import "gorm.io/gorm"

const (
	CheckoutSessionPending   = "PENDING"
	CheckoutSessionCompleted = "COMPLETED"
	CheckoutSessionExpired   = "EXPIRED"
)

// CheckoutSession tracks a hosted payment session from creation until the
// return callback consumes it. Sessions the buyer abandons stay PENDING and
// are expired by the sweeper.
type CheckoutSession struct {
	gorm.Model
	SessionID string `json:"session_id" gorm:"uniqueIndex;not null"`
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Amount    int64  `json:"amount"` // minor currency units
	Status    string `json:"status" gorm:"default:'PENDING'"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
