package middleware

import (
	"errors"
	"strings"

	"castlink_backend/internal/auth"
	"castlink_backend/internal/logger"
	"castlink_backend/internal/models"
	"castlink_backend/internal/services"
	"castlink_backend/pkg/apperrors"
	"castlink_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Context keys under which the authenticated principal is stored.
const (
	CurrentUserKey    = "currentUser"
	CurrentCompanyKey = "currentCompany"
	AuthClaimsKey     = "authClaims"
)

// UserAuthMiddleware - проверка JWT и статуса аккаунта таланта.
// Токен stateless, поэтому блокировка и приостановка проверяются по базе
// на каждом запросе, а не при выдаче токена.
func UserAuthMiddleware(tokens *auth.TokenManager, authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, appErr := parseBearer(tokens, c)
		if appErr != nil {
			abortWithError(c, appErr)
			return
		}
		if claims.Role != models.RoleUser {
			abortWithError(c, apperrors.ErrInvalidToken)
			return
		}

		user, err := authService.AuthorizeUser(dbFromContext(c), claims.AccountID)
		if err != nil {
			abortWithError(c, asAppError(err))
			return
		}

		ctx := logger.WithAccountID(c.Request.Context(), claims.Subject)
		c.Request = c.Request.WithContext(ctx)
		c.Set(AuthClaimsKey, claims)
		c.Set(CurrentUserKey, user)
		c.Next()
	}
}

// ProductionAuthMiddleware - проверка JWT и статуса продакшн-аккаунта
func ProductionAuthMiddleware(tokens *auth.TokenManager, authService services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, appErr := parseBearer(tokens, c)
		if appErr != nil {
			abortWithError(c, appErr)
			return
		}
		if claims.Role != models.RoleProduction {
			abortWithError(c, apperrors.ErrInvalidToken)
			return
		}

		company, err := authService.AuthorizeProduction(dbFromContext(c), claims.AccountID)
		if err != nil {
			abortWithError(c, asAppError(err))
			return
		}

		ctx := logger.WithAccountID(c.Request.Context(), claims.Subject)
		c.Request = c.Request.WithContext(ctx)
		c.Set(AuthClaimsKey, claims)
		c.Set(CurrentCompanyKey, company)
		c.Next()
	}
}

// AdminAuthMiddleware - проверка админского JWT. Админ не хранится в базе,
// поэтому проверяется только подпись, срок и роль.
func AdminAuthMiddleware(tokens *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, appErr := parseBearer(tokens, c)
		if appErr != nil {
			abortWithError(c, appErr)
			return
		}
		if claims.Role != models.RoleAdmin {
			abortWithError(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(AuthClaimsKey, claims)
		c.Next()
	}
}

// CurrentUser извлекает авторизованного пользователя из контекста
func CurrentUser(c *gin.Context) (*models.User, bool) {
	val, ok := c.Get(CurrentUserKey)
	if !ok {
		return nil, false
	}
	user, ok := val.(*models.User)
	return user, ok
}

// CurrentCompany извлекает авторизованную компанию из контекста
func CurrentCompany(c *gin.Context) (*models.ProductionCompany, bool) {
	val, ok := c.Get(CurrentCompanyKey)
	if !ok {
		return nil, false
	}
	company, ok := val.(*models.ProductionCompany)
	return company, ok
}

func parseBearer(tokens *auth.TokenManager, c *gin.Context) (*auth.Claims, *apperrors.AppError) {
	header := c.GetHeader("Authorization")
	if header == "" {
		return nil, apperrors.ErrTokenRequired
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return nil, apperrors.ErrInvalidToken
	}

	claims, err := tokens.Parse(strings.TrimSpace(parts[1]))
	if err != nil {
		if errors.Is(err, auth.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}
	return claims, nil
}

func dbFromContext(c *gin.Context) *gorm.DB {
	val, ok := c.Get(string(contextkeys.DBContextKey))
	if !ok {
		logger.CtxError(c.Request.Context(), "critical error: db key not found in context")
		panic("critical error: DBMiddleware did not set the db key")
	}
	db, ok := val.(*gorm.DB)
	if !ok {
		panic("critical error: db in context has incorrect type")
	}
	return db
}

func abortWithError(c *gin.Context, appErr *apperrors.AppError) {
	apperrors.HandleError(c, appErr)
	c.Abort()
}

func asAppError(err error) *apperrors.AppError {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return apperrors.InternalError(err)
}
