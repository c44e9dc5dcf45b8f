package store

import (
	"testing"
	"time"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
)

func TestSessionLifecycle(t *testing.T) {
	db := setupTestDB(t)
	sessions := NewCheckoutSessions(db)

	assert.NoError(t, sessions.Track("cs_life_1", 1, 1999))

	var session models.CheckoutSession
	assert.NoError(t, db.Where("session_id = ?", "cs_life_1").First(&session).Error)
	assert.Equal(t, models.CheckoutSessionPending, session.Status)
	assert.Equal(t, int64(1999), session.Amount)

	assert.NoError(t, sessions.MarkCompleted("cs_life_1"))
	assert.NoError(t, db.Where("session_id = ?", "cs_life_1").First(&session).Error)
	assert.Equal(t, models.CheckoutSessionCompleted, session.Status)

	// Completing an unknown session is not an error
	assert.NoError(t, sessions.MarkCompleted("cs_unknown"))
}

func TestExpireStale(t *testing.T) {
	db := setupTestDB(t)
	sessions := NewCheckoutSessions(db)

	assert.NoError(t, sessions.Track("cs_old", 1, 1999))
	assert.NoError(t, sessions.Track("cs_fresh", 2, 2999))
	assert.NoError(t, sessions.Track("cs_done", 3, 3999))
	assert.NoError(t, sessions.MarkCompleted("cs_done"))

	// Age the first session past the cutoff
	db.Model(&models.CheckoutSession{}).
		Where("session_id = ?", "cs_old").
		Update("created_at", time.Now().Add(-48*time.Hour))

	expired, err := sessions.ExpireStale(24 * time.Hour)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), expired)

	var session models.CheckoutSession
	assert.NoError(t, db.Where("session_id = ?", "cs_old").First(&session).Error)
	assert.Equal(t, models.CheckoutSessionExpired, session.Status)

	session = models.CheckoutSession{}
	assert.NoError(t, db.Where("session_id = ?", "cs_fresh").First(&session).Error)
	assert.Equal(t, models.CheckoutSessionPending, session.Status)

	session = models.CheckoutSession{}
	assert.NoError(t, db.Where("session_id = ?", "cs_done").First(&session).Error)
	assert.Equal(t, models.CheckoutSessionCompleted, session.Status)
}
