package dto

import (
	"encoding/json"
	"time"

	"inforreel_backend/internal/models"
)

// RegisterRequest - запрос регистрации
type RegisterRequest struct {
	Name     string          `json:"name" validate:"required,max=255"`
	Username *string         `json:"username,omitempty" validate:"omitempty,min=2,max=50"`
	Email    string          `json:"email" validate:"required,email,max=255"`
	Password string          `json:"password" validate:"required,max-bytes=72"`
	UserType models.UserType `json:"userType" validate:"required,is-user-type"`
	// Ролевой профиль: JSON-объект или строка с JSON
	Profile json.RawMessage `json:"profile,omitempty"`
}

// LoginRequest - вход по email или username
type LoginRequest struct {
	Email    string `json:"email" validate:"required_without=Username,omitempty,email"`
	Username string `json:"username" validate:"required_without=Email"`
	Password string `json:"password" validate:"required"`
}

// VerifyOTPRequest - подтверждение email кодом
type VerifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,is-otp"`
}

// EmailRequest - resend-otp и request-password-reset
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest - смена пароля по коду сброса
type ResetPasswordRequest struct {
	Email       string `json:"email" validate:"required,email"`
	OTP         string `json:"otp" validate:"required,is-otp"`
	NewPassword string `json:"newPassword" validate:"required,max-bytes=72"`
}

// AuthResponse - аккаунт + токен (login, verify-otp)
type AuthResponse struct {
	*models.Account
	Token          string    `json:"token"`
	TokenExpiresAt time.Time `json:"tokenExpiresAt"`
}

// IssuedSession - результат выдачи сессии
type IssuedSession struct {
	Token   string
	Session *models.Session
}

// SessionInfo - публичная часть сессии (без хеша токена)
type SessionInfo struct {
	ID          string             `json:"id"`
	DeviceClass models.DeviceClass `json:"deviceClass"`
	CreatedAt   time.Time          `json:"createdAt"`
	ExpiresAt   time.Time          `json:"expiresAt"`
}

func NewSessionInfo(s *models.Session) SessionInfo {
	return SessionInfo{
		ID:          s.ID,
		DeviceClass: s.DeviceClass,
		CreatedAt:   s.CreatedAt,
		ExpiresAt:   s.ExpiresAt,
	}
}
