package services

import (
	"time"

	"castlink_backend/internal/models"
	"castlink_backend/internal/repositories"
	"castlink_backend/internal/services/dto"
	"castlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobPostService interface {
	CreateJobPost(db *gorm.DB, company *models.ProductionCompany, req *dto.CreateJobPostRequest) (uint, error)
	ListCompanyPosts(db *gorm.DB, companyID uint) ([]models.JobPost, error)
}

type JobPostServiceImpl struct {
	jobPostRepo repositories.JobPostRepository
}

func NewJobPostService(jobPostRepo repositories.JobPostRepository) JobPostService {
	return &JobPostServiceImpl{jobPostRepo: jobPostRepo}
}

// CreateJobPost создаёт кастинг от имени прошедшей авторизацию компании
func (s *JobPostServiceImpl) CreateJobPost(db *gorm.DB, company *models.ProductionCompany, req *dto.CreateJobPostRequest) (uint, error) {
	deadline, err := time.Parse("2006-01-02", req.ApplicationDeadline)
	if err != nil {
		return 0, apperrors.NewBadRequestError("application_deadline must be a YYYY-MM-DD date")
	}

	auditionDates, appErr := parseOptionalDate(req.AuditionDates, "audition_dates")
	if appErr != nil {
		return 0, appErr
	}
	shootDates, appErr := parseOptionalDate(req.ShootDates, "shoot_dates")
	if appErr != nil {
		return 0, appErr
	}

	post := &models.JobPost{
		CompanyID:           company.ID,
		ProjectType:         req.ProjectType,
		ShootingLocation:    req.ShootingLocation,
		RoleTitle:           req.RoleTitle,
		Gender:              req.Gender,
		ApplicationDeadline: deadline,

		ProjectDescription:   req.ProjectDescription,
		AuditionType:         req.AuditionType,
		LanguageRequired:     req.LanguageRequired,
		AuditionDates:        auditionDates,
		ShootDates:           shootDates,
		ShootDuration:        req.ShootDuration,
		AgeRange:             req.AgeRange,
		AvailabilityRequired: req.AvailabilityRequired,
		Height:               req.Height,
		BodyType:             req.BodyType,
		PaymentType:          req.PaymentType,
		SkillsNeeded:         req.SkillsNeeded,
		AdditionalPerks:      req.AdditionalPerks,
		RoleDescription:      req.RoleDescription,

		PostedBy: company.CompanyName,
	}
	if err := s.jobPostRepo.Create(db, post); err != nil {
		return 0, apperrors.InternalError(err)
	}
	return post.ID, nil
}

func (s *JobPostServiceImpl) ListCompanyPosts(db *gorm.DB, companyID uint) ([]models.JobPost, error) {
	posts, err := s.jobPostRepo.FindByCompany(db, companyID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return posts, nil
}

func parseOptionalDate(value *string, field string) (*time.Time, *apperrors.AppError) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *value)
	if err != nil {
		return nil, apperrors.NewBadRequestError(field + " must be a YYYY-MM-DD date")
	}
	return &parsed, nil
}
