package repositories

import (
	"errors"
	"time"

	"castlink_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrProductionNotFound      = errors.New("production company not found")
	ErrProductionAlreadyExists = errors.New("production company already exists")
)

// ProductionRepository persists production-company accounts.
type ProductionRepository interface {
	FindByID(db *gorm.DB, id uint) (*models.ProductionCompany, error)
	FindByEmail(db *gorm.DB, email string) (*models.ProductionCompany, error)
	FindByEmailOrPhone(db *gorm.DB, email, phone string) (*models.ProductionCompany, error)
	Create(db *gorm.DB, company *models.ProductionCompany) error
	ClearSuspension(db *gorm.DB, id uint) error
}

type ProductionRepositoryImpl struct{}

func NewProductionRepository() ProductionRepository {
	return &ProductionRepositoryImpl{}
}

func (r *ProductionRepositoryImpl) FindByID(db *gorm.DB, id uint) (*models.ProductionCompany, error) {
	var company models.ProductionCompany
	err := db.First(&company, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductionNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *ProductionRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.ProductionCompany, error) {
	var company models.ProductionCompany
	err := db.First(&company, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductionNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *ProductionRepositoryImpl) FindByEmailOrPhone(db *gorm.DB, email, phone string) (*models.ProductionCompany, error) {
	var company models.ProductionCompany
	err := db.First(&company, "email = ? OR phone_number = ?", email, phone).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductionNotFound
		}
		return nil, err
	}
	return &company, nil
}

func (r *ProductionRepositoryImpl) Create(db *gorm.DB, company *models.ProductionCompany) error {
	if err := db.Create(company).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrProductionAlreadyExists
		}
		return err
	}
	return nil
}

func (r *ProductionRepositoryImpl) ClearSuspension(db *gorm.DB, id uint) error {
	return db.Model(&models.ProductionCompany{}).Where("id = ?", id).Updates(map[string]interface{}{
		"suspended":      false,
		"suspended_from": nil,
		"suspended_to":   nil,
		"updated_at":     time.Now(),
	}).Error
}
