package handlers

import (
	"net/http"

	"inforreel_backend/internal/middleware"
	"inforreel_backend/internal/services"
	"inforreel_backend/internal/services/dto"
	"inforreel_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

// RegisterRoutes регистрирует публичные маршруты аутентификации под /users
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	users := rg.Group("/users")
	{
		users.POST("/register", h.Register)
		users.POST("/login", h.Login)
		users.POST("/verify-otp", h.VerifyOTP)
		users.POST("/resend-otp", h.ResendOTP)
		users.POST("/request-password-reset", h.RequestPasswordReset)
		users.POST("/reset-password", h.ResetPassword)
		// Без AuthMiddleware: отзыв уже недействительного токена тоже успешен
		users.POST("/logout", h.Logout)
	}
}

// Register godoc
// @Summary Регистрация пользователя
// @Description Создает неподтвержденный аккаунт и отправляет OTP на email
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Данные регистрации"
// @Success 201 {object} apperrors.Envelope
// @Failure 400 {object} apperrors.Envelope
// @Failure 500 {object} apperrors.Envelope "email service error"
// @Router /api/users/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	account, err := h.authService.Register(c.Request.Context(), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusCreated, "OTP sent to your email for verification", account)
}

// Login godoc
// @Summary Вход
// @Description Вход по email или username. X-Client-Type: mobile выдает долгоживущий токен
// @Tags users
// @Accept json
// @Produce json
// @Param X-Client-Type header string false "web | mobile"
// @Param request body dto.LoginRequest true "Учетные данные"
// @Success 200 {object} apperrors.Envelope
// @Failure 400 {object} apperrors.Envelope "invalid credentials"
// @Failure 403 {object} apperrors.Envelope "account not verified"
// @Router /api/users/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.authService.Login(c.Request.Context(), &req, middleware.DeviceClass(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Login successful", response)
}

// VerifyOTP godoc
// @Summary Подтверждение email
// @Tags users
// @Accept json
// @Produce json
// @Param X-Client-Type header string false "web | mobile"
// @Param request body dto.VerifyOTPRequest true "Email и код"
// @Success 200 {object} apperrors.Envelope
// @Failure 400 {object} apperrors.Envelope "otp expired or invalid"
// @Router /api/users/verify-otp [post]
func (h *AuthHandler) VerifyOTP(c *gin.Context) {
	var req dto.VerifyOTPRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	response, err := h.authService.VerifyOTP(c.Request.Context(), &req, middleware.DeviceClass(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Email verified successfully", response)
}

// ResendOTP godoc
// @Summary Повторная отправка кода подтверждения
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.EmailRequest true "Email"
// @Success 200 {object} apperrors.Envelope
// @Failure 400 {object} apperrors.Envelope "already verified"
// @Failure 404 {object} apperrors.Envelope "user not found"
// @Router /api/users/resend-otp [post]
func (h *AuthHandler) ResendOTP(c *gin.Context) {
	var req dto.EmailRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ResendOTP(c.Request.Context(), req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "OTP resent successfully", nil)
}

// RequestPasswordReset godoc
// @Summary Запрос кода сброса пароля
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.EmailRequest true "Email"
// @Success 200 {object} apperrors.Envelope
// @Failure 404 {object} apperrors.Envelope "user not found"
// @Router /api/users/request-password-reset [post]
func (h *AuthHandler) RequestPasswordReset(c *gin.Context) {
	var req dto.EmailRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "OTP sent to your email", nil)
}

// ResetPassword godoc
// @Summary Смена пароля по коду
// @Description Все активные сессии аккаунта отзываются
// @Tags users
// @Accept json
// @Produce json
// @Param request body dto.ResetPasswordRequest true "Email, код и новый пароль"
// @Success 200 {object} apperrors.Envelope
// @Failure 400 {object} apperrors.Envelope "otp expired or invalid"
// @Failure 404 {object} apperrors.Envelope "user not found"
// @Router /api/users/reset-password [post]
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Password reset successfully", nil)
}

// Logout godoc
// @Summary Выход
// @Description Отзывает сессию, привязанную к bearer-токену
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} apperrors.Envelope
// @Failure 400 {object} apperrors.Envelope "no token"
// @Router /api/users/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token, ok := middleware.BearerToken(c)
	if !ok {
		apperrors.HandleError(c, apperrors.ErrNoTokenOnLogout)
		return
	}

	if err := h.authService.Logout(c.Request.Context(), token); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "Logout successful", nil)
}
