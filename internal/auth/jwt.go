package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"inforreel_backend/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySecret  = errors.New("jwt secret is empty")
)

// Claims - утверждения токена сессии
type Claims struct {
	jwt.RegisteredClaims
	UserID   string          `json:"uid"`
	UserType models.UserType `json:"userType"`
}

// IssuedToken - подписанный токен и его метаданные
type IssuedToken struct {
	Token     string
	ID        string // jti
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenManager подписывает и проверяет токены одним ключом,
// который задается один раз при старте.
type TokenManager struct {
	secret []byte
	issuer string
	now    func() time.Time
}

func NewTokenManager(secret, issuer string) (*TokenManager, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	return &TokenManager{secret: []byte(secret), issuer: issuer, now: time.Now}, nil
}

// WithClock подменяет часы (для тестов)
func (m *TokenManager) WithClock(now func() time.Time) *TokenManager {
	m.now = now
	return m
}

// GenerateToken выдает токен для аккаунта со сроком ttl
func (m *TokenManager) GenerateToken(userID string, userType models.UserType, ttl time.Duration) (*IssuedToken, error) {
	now := m.now().Truncate(time.Second)
	expiresAt := now.Add(ttl)
	jti := uuid.NewString()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Issuer:    m.issuer,
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:   userID,
		UserType: userType,
	})

	signed, err := token.SignedString(m.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}

	return &IssuedToken{Token: signed, ID: jti, IssuedAt: now, ExpiresAt: expiresAt}, nil
}

// ParseToken проверяет подпись и срок действия
func (m *TokenManager) ParseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if !token.Valid || claims.UserID == "" || claims.ID == "" {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// HashToken - SHA-256 от токена; по нему ищется сессия, сам токен не хранится
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
