package store

import (
	"time"

	"learnhub/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ProgressTracker stores the consumption percentage per (user, course). The
// video player reports coarse milestones (multiples of 25 and exactly 100);
// the tracker itself accepts any value and clamps it to [0,100].
type ProgressTracker struct {
	db *gorm.DB
}

func NewProgressTracker(db *gorm.DB) *ProgressTracker {
	return &ProgressTracker{db: db}
}

// Get returns the stored percentage, or 0 when no record exists. Read errors
// map to 0 as well: progress is consumption telemetry, not an access gate,
// and must never take a content page down.
func (t *ProgressTracker) Get(userID, courseID uint) int {
	var record models.CourseProgress
	if err := t.db.Where("user_id = ? AND course_id = ?", userID, courseID).First(&record).Error; err != nil {
		return 0
	}
	return record.Progress
}

// Save upserts the percentage for the pair in a single conditional write
// keyed on the (user_id, course_id) unique index, so concurrent saves from
// two tabs cannot insert duplicate rows. Saving 100 again is a legal
// idempotent write.
func (t *ProgressTracker) Save(userID, courseID uint, percent int) (models.CourseProgress, error) {
	percent = clampPercent(percent)
	now := time.Now()

	record := models.CourseProgress{
		UserID:      userID,
		CourseID:    courseID,
		Progress:    percent,
		Completed:   percent == 100,
		LastUpdated: now,
	}

	err := t.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "course_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"progress":     percent,
			"completed":    percent == 100,
			"last_updated": now,
			"updated_at":   now,
		}),
	}).Create(&record).Error

	return record, err
}

func clampPercent(percent int) int {
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}
