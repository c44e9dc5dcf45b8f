package store

import (
	"fmt"
	"testing"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	assert.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.Purchase{},
		&models.CourseProgress{},
		&models.CheckoutSession{},
	)
	assert.NoError(t, err)

	db.Exec("DELETE FROM purchases")
	db.Exec("DELETE FROM course_progresses")
	db.Exec("DELETE FROM checkout_sessions")

	return db
}
