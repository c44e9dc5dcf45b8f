package store

import (
	"testing"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
)

func TestHasPurchasedBeforeAndAfterRecord(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewPurchaseLedger(db)

	purchased, err := ledger.HasPurchased(1, 1)
	assert.NoError(t, err)
	assert.False(t, purchased)

	already, err := ledger.Record(1, 1, "cs_test_1")
	assert.NoError(t, err)
	assert.False(t, already)

	purchased, err = ledger.HasPurchased(1, 1)
	assert.NoError(t, err)
	assert.True(t, purchased)

	// No expiry or revocation path exists; the check stays true
	purchased, err = ledger.HasPurchased(1, 1)
	assert.NoError(t, err)
	assert.True(t, purchased)

	// Other pairs are unaffected
	purchased, err = ledger.HasPurchased(1, 2)
	assert.NoError(t, err)
	assert.False(t, purchased)

	purchased, err = ledger.HasPurchased(2, 1)
	assert.NoError(t, err)
	assert.False(t, purchased)
}

func TestRecordDuplicateSessionIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewPurchaseLedger(db)

	already, err := ledger.Record(1, 1, "cs_test_dup")
	assert.NoError(t, err)
	assert.False(t, already)

	// The provider delivered the callback twice
	already, err = ledger.Record(1, 1, "cs_test_dup")
	assert.NoError(t, err)
	assert.True(t, already)

	var count int64
	db.Model(&models.Purchase{}).Where("user_id = ? AND course_id = ?", 1, 1).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRecordSecondSessionForOwnedCourse(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewPurchaseLedger(db)

	already, err := ledger.Record(1, 1, "cs_test_a")
	assert.NoError(t, err)
	assert.False(t, already)

	// The user somehow paid twice; the unique index keeps one logical row
	already, err = ledger.Record(1, 1, "cs_test_b")
	assert.NoError(t, err)
	assert.True(t, already)

	var count int64
	db.Model(&models.Purchase{}).Where("user_id = ? AND course_id = ?", 1, 1).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestRecordSetsCompletedStatus(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewPurchaseLedger(db)

	_, err := ledger.Record(7, 3, "cs_test_status")
	assert.NoError(t, err)

	var purchase models.Purchase
	assert.NoError(t, db.Where("session_id = ?", "cs_test_status").First(&purchase).Error)
	assert.Equal(t, models.PurchaseStatusCompleted, purchase.Status)
	assert.False(t, purchase.PurchaseDate.IsZero())
}

func TestListByUser(t *testing.T) {
	db := setupTestDB(t)
	ledger := NewPurchaseLedger(db)

	_, err := ledger.Record(1, 10, "cs_list_1")
	assert.NoError(t, err)
	_, err = ledger.Record(1, 20, "cs_list_2")
	assert.NoError(t, err)
	_, err = ledger.Record(2, 10, "cs_list_3")
	assert.NoError(t, err)

	purchases, err := ledger.ListByUser(1)
	assert.NoError(t, err)
	assert.Len(t, purchases, 2)
	for _, p := range purchases {
		assert.Equal(t, uint(1), p.UserID)
	}
}
