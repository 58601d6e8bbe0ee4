package workers

import (
	"fmt"
	"testing"
	"time"

	"castlink_backend/internal/database"
	"castlink_backend/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupWorkerDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

func TestSweep_ClearsOnlyExpiredSuspensions(t *testing.T) {
	t.Parallel()

	db := setupWorkerDB(t)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(24 * time.Hour)

	expired := &models.User{
		Name: "Expired", Email: "expired@test.com", Mobile: "+77010000001", PasswordHash: "d",
		AccountStatus: models.AccountStatus{Suspended: true, SuspendedTo: &past},
	}
	active := &models.User{
		Name: "Active", Email: "active@test.com", Mobile: "+77010000002", PasswordHash: "d",
		AccountStatus: models.AccountStatus{Suspended: true, SuspendedTo: &future},
	}
	openEnded := &models.User{
		Name: "OpenEnded", Email: "open@test.com", Mobile: "+77010000003", PasswordHash: "d",
		AccountStatus: models.AccountStatus{Suspended: true},
	}
	require.NoError(t, db.Create(expired).Error)
	require.NoError(t, db.Create(active).Error)
	require.NoError(t, db.Create(openEnded).Error)

	w := NewSuspensionWorker(db, time.Hour)
	w.sweep(&models.User{}, "users")

	var stored models.User
	require.NoError(t, db.First(&stored, expired.ID).Error)
	assert.False(t, stored.AccountStatus.Suspended)
	assert.Nil(t, stored.AccountStatus.SuspendedTo)

	stored = models.User{}
	require.NoError(t, db.First(&stored, active.ID).Error)
	assert.True(t, stored.AccountStatus.Suspended)

	// Без даты окончания приостановка бессрочная, воркер её не трогает
	stored = models.User{}
	require.NoError(t, db.First(&stored, openEnded.ID).Error)
	assert.True(t, stored.AccountStatus.Suspended)
}

func TestSweep_CoversProductionCompanies(t *testing.T) {
	t.Parallel()

	db := setupWorkerDB(t)

	past := time.Now().Add(-time.Hour)
	company := &models.ProductionCompany{
		FullName: "Director", CompanyName: "Films", City: "Almaty", TypeOfWork: "Film",
		Email: "studio@test.com", PhoneNumber: "+77020000001", PasswordHash: "d",
		AccountStatus: models.AccountStatus{Suspended: true, SuspendedTo: &past},
	}
	require.NoError(t, db.Create(company).Error)

	w := NewSuspensionWorker(db, time.Hour)
	w.sweep(&models.ProductionCompany{}, "production companies")

	var stored models.ProductionCompany
	require.NoError(t, db.First(&stored, company.ID).Error)
	assert.False(t, stored.AccountStatus.Suspended)
}
