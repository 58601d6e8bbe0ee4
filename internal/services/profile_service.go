package services

import (
	"errors"
	"time"

	"castlink_backend/internal/models"
	"castlink_backend/internal/repositories"
	"castlink_backend/internal/services/dto"
	"castlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(db *gorm.DB, userID uint) (*models.User, error)
	UpdateProfile(db *gorm.DB, userID uint, req *dto.UpdateProfileRequest) error
}

type ProfileServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewProfileService(userRepo repositories.UserRepository) ProfileService {
	return &ProfileServiceImpl{userRepo: userRepo}
}

func (s *ProfileServiceImpl) GetProfile(db *gorm.DB, userID uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return user, nil
}

// UpdateProfile - полная замена анкеты: каждая колонка профиля получает
// значение из запроса, отсутствующие поля становятся NULL.
func (s *ProfileServiceImpl) UpdateProfile(db *gorm.DB, userID uint, req *dto.UpdateProfileRequest) error {
	var availableFrom interface{}
	if req.AvailableFrom != nil {
		parsed, err := time.Parse("2006-01-02", *req.AvailableFrom)
		if err != nil {
			return apperrors.NewBadRequestError("available_from must be a YYYY-MM-DD date")
		}
		availableFrom = parsed
	}

	values := map[string]interface{}{
		"gender":                          req.Gender,
		"weight":                          req.Weight,
		"facebook_link":                   req.FacebookLink,
		"city":                            req.City,
		"hair_color":                      req.HairColor,
		"state":                           req.State,
		"available_from":                  availableFrom,
		"body_type":                       req.BodyType,
		"willing_to_travel":               req.WillingToTravel,
		"skin_tone":                       req.SkinTone,
		"preferred_locations":             req.PreferredLocations,
		"languages_known":                 req.LanguagesKnown,
		"past_projects":                   req.PastProjects,
		"dialects_accents":                req.DialectsAccents,
		"special_appearances_or_training": req.SpecialTraining,
		"skills":                          req.Skills,
		"profile_photo":                   req.ProfilePhoto,
		"headshot_photo":                  req.HeadshotPhoto,
		"full_body_photo":                 req.FullBodyPhoto,
		"intro_video":                     req.IntroVideo,
	}

	if err := s.userRepo.ReplaceProfile(db, userID, values); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
