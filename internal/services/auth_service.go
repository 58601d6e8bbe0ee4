package services

import (
	"errors"

	"castlink_backend/internal/auth"
	"castlink_backend/internal/config"
	"castlink_backend/internal/logger"
	"castlink_backend/internal/models"
	"castlink_backend/internal/repositories"
	"castlink_backend/internal/services/dto"
	"castlink_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AuthService interface {
	RegisterUser(db *gorm.DB, req *dto.RegisterUserRequest) (uint, error)
	LoginUser(db *gorm.DB, req *dto.LoginRequest) (*dto.UserLoginResponse, error)
	RegisterProduction(db *gorm.DB, req *dto.RegisterProductionRequest) (uint, error)
	LoginProduction(db *gorm.DB, req *dto.LoginRequest) (*dto.ProductionLoginResponse, error)
	LoginAdmin(req *dto.LoginRequest) (*dto.AdminLoginResponse, error)

	// AuthorizeUser and AuthorizeProduction re-check the stored account on
	// every authenticated request: tokens are stateless, so a block or
	// suspension applied after issuance is enforced here.
	AuthorizeUser(db *gorm.DB, id uint) (*models.User, error)
	AuthorizeProduction(db *gorm.DB, id uint) (*models.ProductionCompany, error)
}

type AuthServiceImpl struct {
	userRepo       repositories.UserRepository
	productionRepo repositories.ProductionRepository
	tokens         *auth.TokenManager
	cfg            *config.Config
}

func NewAuthService(
	userRepo repositories.UserRepository,
	productionRepo repositories.ProductionRepository,
	tokens *auth.TokenManager,
	cfg *config.Config,
) AuthService {
	return &AuthServiceImpl{
		userRepo:       userRepo,
		productionRepo: productionRepo,
		tokens:         tokens,
		cfg:            cfg,
	}
}

// RegisterUser - регистрация нового пользователя-таланта
func (s *AuthServiceImpl) RegisterUser(db *gorm.DB, req *dto.RegisterUserRequest) (uint, error) {
	// Проверка уникальности по email и телефону
	if _, err := s.userRepo.FindByEmailOrMobile(db, req.Email, req.Mobile); err == nil {
		return 0, apperrors.ErrDuplicateAccount
	} else if !errors.Is(err, repositories.ErrUserNotFound) {
		return 0, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}

	user := &models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hash,
		Mobile:       req.Mobile,
		Plan:         models.PlanFree,
	}
	if err := s.userRepo.Create(db, user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return 0, apperrors.ErrDuplicateAccount
		}
		return 0, apperrors.InternalError(err)
	}

	logger.Info("user registered", "user_id", user.ID)
	return user.ID, nil
}

// LoginUser - вход пользователя: пароль, затем статус аккаунта, затем токен
func (s *AuthServiceImpl) LoginUser(db *gorm.DB, req *dto.LoginRequest) (*dto.UserLoginResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if appErr := gateAccount(db, &user.AccountStatus, func(tx *gorm.DB) error {
		return s.userRepo.ClearSuspension(tx, user.ID)
	}); appErr != nil {
		return nil, appErr
	}

	token, err := s.tokens.Issue(user.ID, user.Email, models.RoleUser, auth.UserTokenTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.UserLoginResponse{
		Token: token,
		User:  user.Public(),
	}, nil
}

// RegisterProduction - регистрация продакшн-компании
func (s *AuthServiceImpl) RegisterProduction(db *gorm.DB, req *dto.RegisterProductionRequest) (uint, error) {
	if _, err := s.productionRepo.FindByEmailOrPhone(db, req.Email, req.PhoneNumber); err == nil {
		return 0, apperrors.ErrDuplicateAccount
	} else if !errors.Is(err, repositories.ErrProductionNotFound) {
		return 0, apperrors.InternalError(err)
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}

	company := &models.ProductionCompany{
		FullName:     req.FullName,
		CompanyName:  req.CompanyName,
		City:         req.City,
		TypeOfWork:   req.TypeOfWork,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: hash,
	}
	if err := s.productionRepo.Create(db, company); err != nil {
		if errors.Is(err, repositories.ErrProductionAlreadyExists) {
			return 0, apperrors.ErrDuplicateAccount
		}
		return 0, apperrors.InternalError(err)
	}

	logger.Info("production company registered", "company_id", company.ID)
	return company.ID, nil
}

// LoginProduction - вход продакшн-компании
func (s *AuthServiceImpl) LoginProduction(db *gorm.DB, req *dto.LoginRequest) (*dto.ProductionLoginResponse, error) {
	company, err := s.productionRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrProductionNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, company.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	if appErr := gateAccount(db, &company.AccountStatus, func(tx *gorm.DB) error {
		return s.productionRepo.ClearSuspension(tx, company.ID)
	}); appErr != nil {
		return nil, appErr
	}

	token, err := s.tokens.Issue(company.ID, company.Email, models.RoleProduction, auth.ProductionTokenTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProductionLoginResponse{
		Token: token,
		User: dto.ProductionPublicInfo{
			ID:          company.ID,
			FullName:    company.FullName,
			Email:       company.Email,
			CompanyName: company.CompanyName,
		},
	}, nil
}

// LoginAdmin - вход администратора по статической паре из конфигурации.
// Админ не хранится в базе: совпадение пары даёт токен с ролью admin.
func (s *AuthServiceImpl) LoginAdmin(req *dto.LoginRequest) (*dto.AdminLoginResponse, error) {
	if s.cfg.Admin.Email == "" || s.cfg.Admin.Password == "" {
		return nil, apperrors.InternalError(errors.New("admin credentials are not configured"))
	}

	if req.Email != s.cfg.Admin.Email || req.Password != s.cfg.Admin.Password {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(0, req.Email, models.RoleAdmin, auth.AdminTokenTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AdminLoginResponse{Token: token}, nil
}

// AuthorizeUser - проверка статуса аккаунта при каждом запросе
func (s *AuthServiceImpl) AuthorizeUser(db *gorm.DB, id uint) (*models.User, error) {
	user, err := s.userRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			// Токен подлинный, но запись исчезла
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if appErr := gateAccount(db, &user.AccountStatus, func(tx *gorm.DB) error {
		return s.userRepo.ClearSuspension(tx, user.ID)
	}); appErr != nil {
		return nil, appErr
	}

	return user, nil
}

// AuthorizeProduction - проверка статуса продакшн-аккаунта при каждом запросе
func (s *AuthServiceImpl) AuthorizeProduction(db *gorm.DB, id uint) (*models.ProductionCompany, error) {
	company, err := s.productionRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrProductionNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if appErr := gateAccount(db, &company.AccountStatus, func(tx *gorm.DB) error {
		return s.productionRepo.ClearSuspension(tx, company.ID)
	}); appErr != nil {
		return nil, appErr
	}

	return company, nil
}
