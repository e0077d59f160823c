package handlers

import (
	"net/http"

	"inforreel_backend/internal/middleware"
	"inforreel_backend/internal/services"
	"inforreel_backend/internal/services/dto"
	"inforreel_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type ProfileHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewProfileHandler(base *BaseHandler, profileService services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

// RegisterRoutes - /users/profile, только через AuthMiddleware
func (h *ProfileHandler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	profile := rg.Group("/users/profile")
	profile.Use(authMW)
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
	}
}

// GetProfile godoc
// @Summary Текущий пользователь
// @Description Аккаунт владельца токена и данные текущей сессии
// @Tags profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} apperrors.Envelope
// @Failure 401 {object} apperrors.Envelope "missing token or revoked session"
// @Failure 403 {object} apperrors.Envelope "invalid token"
// @Failure 404 {object} apperrors.Envelope "user not found"
// @Router /api/users/profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	account, ok := h.GetCurrentAccount(c)
	if !ok {
		return
	}
	session, ok := middleware.CurrentSession(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrSessionRevoked)
		return
	}

	h.Respond(c, http.StatusOK, "Profile fetched successfully", &dto.ProfileResponse{
		Account: account,
		Session: dto.NewSessionInfo(session),
	})
}

// UpdateProfile godoc
// @Summary Обновить ролевой профиль
// @Description Профиль проверяется по схеме роли пользователя, isProfileSetup выставляется в true
// @Tags profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateProfileRequest true "Профиль"
// @Success 200 {object} apperrors.Envelope
// @Failure 400 {object} apperrors.Envelope "invalid profile"
// @Failure 401 {object} apperrors.Envelope "missing token or revoked session"
// @Router /api/users/profile [put]
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	account, ok := h.GetCurrentAccount(c)
	if !ok {
		return
	}

	var req dto.UpdateProfileRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	updated, err := h.profileService.UpdateProfile(c.Request.Context(), account, req.Profile)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Profile updated successfully", updated)
}
