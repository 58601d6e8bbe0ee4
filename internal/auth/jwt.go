package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"castlink_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
)

// Token lifetimes per account variant.
const (
	UserTokenTTL       = 5 * time.Hour
	ProductionTokenTTL = 8 * time.Hour
	AdminTokenTTL      = 24 * time.Hour
)

var (
	// ErrTokenExpired marks a structurally valid token past its expiry.
	ErrTokenExpired = errors.New("token has expired")
	// ErrTokenInvalid covers malformed tokens and bad signatures.
	ErrTokenInvalid = errors.New("invalid token")
)

// Claims is the self-contained session claim set. AccountID is zero for the
// admin variant, which is a configuration credential rather than a stored row.
type Claims struct {
	AccountID uint        `json:"uid,omitempty"`
	Email     string      `json:"email"`
	Role      models.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies session tokens with a process-wide shared
// secret. Tokens are stateless: validity is determined entirely by signature
// and expiry, so account blocking is enforced by the per-request status gate,
// not by revocation.
type TokenManager struct {
	secret []byte
}

// NewTokenManager creates a manager for the given signing secret.
func NewTokenManager(secret string) (*TokenManager, error) {
	trimmed := strings.TrimSpace(secret)
	if trimmed == "" {
		return nil, errors.New("jwt secret must not be empty")
	}
	return &TokenManager{secret: []byte(trimmed)}, nil
}

// Issue mints a signed HS256 token embedding the claims with an absolute
// expiry ttl from now.
func (m *TokenManager) Issue(accountID uint, email string, role models.Role, ttl time.Duration) (string, error) {
	now := time.Now().UTC()

	claims := Claims{
		AccountID: accountID,
		Email:     email,
		Role:      role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", accountID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Parse validates a token and returns its claims. Expired tokens yield
// ErrTokenExpired; anything else non-authentic yields ErrTokenInvalid.
func (m *TokenManager) Parse(tokenString string) (*Claims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	token, err := parser.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		return m.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	return claims, nil
}
