package dto

import (
	"encoding/json"

	"inforreel_backend/internal/models"
)

// UpdateProfileRequest - профиль для роли текущего пользователя
type UpdateProfileRequest struct {
	Profile json.RawMessage `json:"profile" validate:"required"`
}

// ProfileResponse - GET /profile: аккаунт и текущая сессия
type ProfileResponse struct {
	*models.Account
	Session SessionInfo `json:"session"`
}
