package models

import (
	"time"

	"gorm.io/gorm"
)

// CourseProgress tracks a user's playback position in a course as a
// percentage. One row per (user, course); the unique index backs the
// atomic upsert in the progress store.
type CourseProgress struct {
	gorm.Model
	UserID      uint      `json:"user_id" gorm:"uniqueIndex:idx_progress_user_course;not null"`
	CourseID    uint      `json:"course_id" gorm:"uniqueIndex:idx_progress_user_course;not null"`
	Progress    int       `json:"progress" gorm:"default:0"` // percent, 0-100
	Completed   bool      `json:"completed" gorm:"default:false"`
	LastUpdated time.Time `json:"last_updated"`
}
