package services

import (
	"fmt"
	"testing"

	"castlink_backend/internal/database"
	"castlink_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB поднимает изолированную in-memory базу с полной схемой
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))

	return db
}

// mustCreateUser кладёт пользователя прямо в базу, минуя API
func mustCreateUser(t *testing.T, db *gorm.DB, user *models.User) *models.User {
	t.Helper()
	require.NoError(t, db.Create(user).Error)
	return user
}
