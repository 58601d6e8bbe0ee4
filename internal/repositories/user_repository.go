package repositories

import (
	"errors"
	"time"

	"castlink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository persists talent accounts. All lookups are exact-match on the
// unique columns. The *gorm.DB handle is passed per call so handlers can run
// a whole request on one request-scoped handle (pool or test transaction).
type UserRepository interface {
	FindByID(db *gorm.DB, id uint) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	FindByEmailOrMobile(db *gorm.DB, email, mobile string) (*models.User, error)
	Create(db *gorm.DB, user *models.User) error
	FindAll(db *gorm.DB) ([]models.User, error)

	// Status transitions
	SetBlocked(db *gorm.DB, id uint, blocked bool) error
	Suspend(db *gorm.DB, id uint, from, to time.Time) error
	ClearSuspension(db *gorm.DB, id uint) error
	UpdatePlan(db *gorm.DB, id uint, plan models.Plan) error

	// ReplaceProfile overwrites the whole profile attribute bag; values must
	// contain every profile column (nil for absent fields).
	ReplaceProfile(db *gorm.DB, id uint, values map[string]interface{}) error

	// SetMediaRef stores the blob URL for one media column. The caller is
	// responsible for only passing media columns.
	SetMediaRef(db *gorm.DB, id uint, column, ref string) error
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmailOrMobile(db *gorm.DB, email, mobile string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ? OR mobile = ?", email, mobile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	if err := db.Create(user).Error; err != nil {
		// Two concurrent registrations can pass the lookup; the unique
		// constraint is the tie-breaker and the loser maps to a conflict.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindAll(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	if err := db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepositoryImpl) SetBlocked(db *gorm.DB, id uint, blocked bool) error {
	return r.updateStatus(db, id, map[string]interface{}{
		"blocked": blocked,
	})
}

func (r *UserRepositoryImpl) Suspend(db *gorm.DB, id uint, from, to time.Time) error {
	return r.updateStatus(db, id, map[string]interface{}{
		"suspended":      true,
		"suspended_from": from,
		"suspended_to":   to,
	})
}

func (r *UserRepositoryImpl) ClearSuspension(db *gorm.DB, id uint) error {
	// No RowsAffected check: a concurrent request or admin unsuspend may have
	// cleared the flags already, and that is not a failure here.
	return db.Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"suspended":      false,
		"suspended_from": nil,
		"suspended_to":   nil,
		"updated_at":     time.Now(),
	}).Error
}

func (r *UserRepositoryImpl) UpdatePlan(db *gorm.DB, id uint, plan models.Plan) error {
	return r.updateStatus(db, id, map[string]interface{}{
		"plan": plan,
	})
}

func (r *UserRepositoryImpl) ReplaceProfile(db *gorm.DB, id uint, values map[string]interface{}) error {
	values["updated_at"] = time.Now()
	result := db.Model(&models.User{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetMediaRef(db *gorm.DB, id uint, column, ref string) error {
	return r.updateStatus(db, id, map[string]interface{}{
		column: ref,
	})
}

func (r *UserRepositoryImpl) updateStatus(db *gorm.DB, id uint, values map[string]interface{}) error {
	values["updated_at"] = time.Now()
	result := db.Model(&models.User{}).Where("id = ?", id).Updates(values)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}
