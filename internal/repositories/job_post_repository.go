package repositories

import (
	"castlink_backend/internal/models"

	"gorm.io/gorm"
)

// JobPostRepository stores casting calls. Posts are append-only in this core;
// they disappear only via cascade delete with their owning company.
type JobPostRepository interface {
	Create(db *gorm.DB, post *models.JobPost) error
	FindByCompany(db *gorm.DB, companyID uint) ([]models.JobPost, error)
}

type JobPostRepositoryImpl struct{}

func NewJobPostRepository() JobPostRepository {
	return &JobPostRepositoryImpl{}
}

func (r *JobPostRepositoryImpl) Create(db *gorm.DB, post *models.JobPost) error {
	return db.Create(post).Error
}

func (r *JobPostRepositoryImpl) FindByCompany(db *gorm.DB, companyID uint) ([]models.JobPost, error) {
	var posts []models.JobPost
	if err := db.Where("company_id = ?", companyID).Order("id ASC").Find(&posts).Error; err != nil {
		return nil, err
	}
	return posts, nil
}
