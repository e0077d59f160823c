package dto

import "inforreel_backend/internal/models"

// DeletedUserResponse - результат административного удаления
type DeletedUserResponse struct {
	*models.Account
	RevokedSessions int `json:"revokedSessions"`
}
