package services

import (
	"errors"
	"time"

	"castlink_backend/internal/logger"
	"castlink_backend/internal/models"
	"castlink_backend/internal/repositories"
	"castlink_backend/internal/services/dto"
	"castlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// AdminService covers the moderation surface: account status transitions,
// plan changes and the read-only listings the admin panel shows.
type AdminService interface {
	ListUsers(db *gorm.DB) ([]models.PublicProfile, error)
	BlockUser(db *gorm.DB, userID uint) error
	UnblockUser(db *gorm.DB, userID uint) error
	SuspendUser(db *gorm.DB, userID uint, req *dto.SuspendUserRequest) error
	UnsuspendUser(db *gorm.DB, userID uint) error
	ChangePlan(db *gorm.DB, userID uint, req *dto.ChangePlanRequest) error
}

type AdminServiceImpl struct {
	userRepo repositories.UserRepository
}

func NewAdminService(userRepo repositories.UserRepository) AdminService {
	return &AdminServiceImpl{userRepo: userRepo}
}

func (s *AdminServiceImpl) ListUsers(db *gorm.DB) ([]models.PublicProfile, error) {
	users, err := s.userRepo.FindAll(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	profiles := make([]models.PublicProfile, 0, len(users))
	for i := range users {
		profiles = append(profiles, users[i].Public())
	}
	return profiles, nil
}

func (s *AdminServiceImpl) BlockUser(db *gorm.DB, userID uint) error {
	if err := s.setBlocked(db, userID, true); err != nil {
		return err
	}
	logger.Info("user blocked", "user_id", userID)
	return nil
}

func (s *AdminServiceImpl) UnblockUser(db *gorm.DB, userID uint) error {
	if err := s.setBlocked(db, userID, false); err != nil {
		return err
	}
	logger.Info("user unblocked", "user_id", userID)
	return nil
}

// SuspendUser ставит аккаунт на паузу в заданном окне. Окно должно быть
// корректным: from строго раньше to.
func (s *AdminServiceImpl) SuspendUser(db *gorm.DB, userID uint, req *dto.SuspendUserRequest) error {
	from, err := time.Parse("2006-01-02", req.From)
	if err != nil {
		return apperrors.ErrInvalidSuspensionWindow
	}
	to, err := time.Parse("2006-01-02", req.To)
	if err != nil {
		return apperrors.ErrInvalidSuspensionWindow
	}
	if !from.Before(to) {
		return apperrors.ErrInvalidSuspensionWindow
	}

	if err := s.userRepo.Suspend(db, userID, from, to); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return apperrors.InternalError(err)
	}
	logger.Info("user suspended", "user_id", userID, "from", req.From, "to", req.To)
	return nil
}

func (s *AdminServiceImpl) UnsuspendUser(db *gorm.DB, userID uint) error {
	// Проверяем существование: ClearSuspension намеренно терпит 0 строк
	if _, err := s.userRepo.FindByID(db, userID); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return apperrors.InternalError(err)
	}
	if err := s.userRepo.ClearSuspension(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	logger.Info("user unsuspended", "user_id", userID)
	return nil
}

func (s *AdminServiceImpl) ChangePlan(db *gorm.DB, userID uint, req *dto.ChangePlanRequest) error {
	plan := models.Plan(req.Plan)
	if plan != models.PlanFree && plan != models.PlanPremium {
		return apperrors.ErrInvalidPlan
	}

	if err := s.userRepo.UpdatePlan(db, userID, plan); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return apperrors.InternalError(err)
	}
	logger.Info("user plan changed", "user_id", userID, "plan", plan)
	return nil
}

func (s *AdminServiceImpl) setBlocked(db *gorm.DB, userID uint, blocked bool) error {
	if err := s.userRepo.SetBlocked(db, userID, blocked); err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return apperrors.InternalError(err)
	}
	return nil
}
