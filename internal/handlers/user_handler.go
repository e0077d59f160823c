package handlers

import (
	"net/http"
	"strings"

	"inforreel_backend/internal/services"
	"inforreel_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// UserHandler - административные операции над аккаунтами
type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

func (h *UserHandler) RegisterRoutes(rg *gin.RouterGroup, adminMW gin.HandlerFunc) {
	admin := rg.Group("/admin/users")
	admin.Use(adminMW)
	{
		admin.DELETE("/:email", h.DeleteUser)
	}
}

// DeleteUser godoc
// @Summary Удалить пользователя по email
// @Description Удаляет аккаунт и отзывает все его сессии
// @Tags admin
// @Produce json
// @Param X-API-Key header string true "Административный ключ"
// @Param email path string true "Email пользователя"
// @Success 200 {object} apperrors.Envelope
// @Failure 403 {object} apperrors.Envelope "invalid api key"
// @Failure 404 {object} apperrors.Envelope "user not found"
// @Router /api/admin/users/{email} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	email := strings.TrimSpace(c.Param("email"))
	if email == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Missing email"))
		return
	}

	deleted, err := h.userService.DeleteByEmail(c.Request.Context(), email)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Respond(c, http.StatusOK, "User deleted successfully", deleted)
}
