package services

import (
	"testing"
	"time"

	"castlink_backend/internal/auth"
	"castlink_backend/internal/models"
	"castlink_backend/internal/repositories"
	"castlink_backend/internal/services/dto"
	"castlink_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedAdminTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()

	hash, err := auth.HashPassword("super_password123")
	require.NoError(t, err)

	return mustCreateUser(t, db, &models.User{
		Name:         "Test Model",
		Email:        "model@test.com",
		Mobile:       "+77010000001",
		PasswordHash: hash,
		Plan:         models.PlanFree,
	})
}

func TestBlockAndUnblockUser(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewAdminService(repositories.NewUserRepository())

	user := seedAdminTestUser(t, db)

	require.NoError(t, svc.BlockUser(db, user.ID))

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.True(t, stored.AccountStatus.Blocked)

	require.NoError(t, svc.UnblockUser(db, user.ID))
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.False(t, stored.AccountStatus.Blocked)

	assert.Equal(t, apperrors.ErrAccountNotFound, svc.BlockUser(db, 9999))
}

func TestSuspendUser(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewAdminService(repositories.NewUserRepository())

	user := seedAdminTestUser(t, db)

	err := svc.SuspendUser(db, user.ID, &dto.SuspendUserRequest{From: "2026-09-01", To: "2026-09-10"})
	require.NoError(t, err)

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.True(t, stored.AccountStatus.Suspended)
	require.NotNil(t, stored.AccountStatus.SuspendedTo)
	assert.Equal(t, "2026-09-10", stored.AccountStatus.SuspendedTo.Format("2006-01-02"))

	require.NoError(t, svc.UnsuspendUser(db, user.ID))
	stored = models.User{}
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.False(t, stored.AccountStatus.Suspended)
	assert.Nil(t, stored.AccountStatus.SuspendedTo)
}

func TestSuspendUser_InvalidWindow(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewAdminService(repositories.NewUserRepository())

	user := seedAdminTestUser(t, db)

	// from после to
	err := svc.SuspendUser(db, user.ID, &dto.SuspendUserRequest{From: "2026-09-10", To: "2026-09-01"})
	assert.Equal(t, apperrors.ErrInvalidSuspensionWindow, err)

	// from равен to
	err = svc.SuspendUser(db, user.ID, &dto.SuspendUserRequest{From: "2026-09-01", To: "2026-09-01"})
	assert.Equal(t, apperrors.ErrInvalidSuspensionWindow, err)

	// мусор вместо даты
	err = svc.SuspendUser(db, user.ID, &dto.SuspendUserRequest{From: "garbage", To: "2026-09-01"})
	assert.Equal(t, apperrors.ErrInvalidSuspensionWindow, err)
}

func TestChangePlan(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewAdminService(repositories.NewUserRepository())

	user := seedAdminTestUser(t, db)

	require.NoError(t, svc.ChangePlan(db, user.ID, &dto.ChangePlanRequest{Plan: "premium"}))

	var stored models.User
	require.NoError(t, db.First(&stored, user.ID).Error)
	assert.Equal(t, models.PlanPremium, stored.Plan)

	assert.Equal(t, apperrors.ErrInvalidPlan, svc.ChangePlan(db, user.ID, &dto.ChangePlanRequest{Plan: "gold"}))
	assert.Equal(t, apperrors.ErrAccountNotFound, svc.ChangePlan(db, 9999, &dto.ChangePlanRequest{Plan: "free"}))
}

func TestListUsers_OmitsDigest(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	svc := NewAdminService(repositories.NewUserRepository())

	seedAdminTestUser(t, db)

	until := time.Now().Add(24 * time.Hour)
	mustCreateUser(t, db, &models.User{
		Name:         "Suspended Model",
		Email:        "paused@test.com",
		Mobile:       "+77010000002",
		PasswordHash: "digest",
		Plan:         models.PlanPremium,
		AccountStatus: models.AccountStatus{
			Suspended:   true,
			SuspendedTo: &until,
		},
	})

	users, err := svc.ListUsers(db)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "model@test.com", users[0].Email)
	assert.True(t, users[1].Suspended)
	assert.NotNil(t, users[1].SuspendedTo)
}
