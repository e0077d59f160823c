package middleware

import (
	"crypto/subtle"
	"strings"

	"inforreel_backend/internal/logger"
	"inforreel_backend/internal/models"
	"inforreel_backend/internal/services"
	"inforreel_backend/pkg/apperrors"
	"inforreel_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
)

const (
	authorizationHeader = "Authorization"
	apiKeyHeader        = "X-API-Key"
	clientTypeHeader    = "X-Client-Type"
	bearerScheme        = "Bearer"
)

// AuthMiddleware - подпись токена, запись сессии, затем аккаунт.
// В контекст кладутся аккаунт и сессия, сам токен не сохраняется.
func AuthMiddleware(sessions services.SessionService, users services.UserService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c)
		if !ok {
			apperrors.HandleError(c, apperrors.ErrMissingToken)
			return
		}

		ctx := c.Request.Context()
		claims, session, err := sessions.Validate(ctx, token)
		if err != nil {
			logger.CtxWarn(ctx, "auth rejected", "reason", err.Error(), "path", c.Request.URL.Path)
			apperrors.HandleError(c, err)
			return
		}

		account, err := users.FindByID(ctx, claims.UserID)
		if err != nil {
			apperrors.HandleError(c, err)
			return
		}

		ctx = logger.WithUserID(ctx, account.ID)
		ctx = logger.WithDevice(ctx, string(session.DeviceClass))
		c.Request = c.Request.WithContext(ctx)

		c.Set(contextkeys.AccountKey, account)
		c.Set(contextkeys.SessionKey, session)
		c.Next()
	}
}

// APIKeyMiddleware - доступ к административным маршрутам.
// Пустой ключ в конфиге закрывает маршруты полностью.
func APIKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader(apiKeyHeader)
		if apiKey == "" || subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			logger.CtxWarn(c.Request.Context(), "admin access denied", "path", c.Request.URL.Path, "ip", c.ClientIP())
			apperrors.HandleError(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}

// BearerToken разбирает заголовок строго в форме "Bearer <token>"
func BearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader(authorizationHeader)
	scheme, token, found := strings.Cut(header, " ")
	if !found || scheme != bearerScheme || token == "" || strings.ContainsAny(token, " \t") {
		return "", false
	}
	return token, true
}

// DeviceClass - класс клиента из X-Client-Type, по умолчанию web
func DeviceClass(c *gin.Context) models.DeviceClass {
	return models.ParseDeviceClass(c.GetHeader(clientTypeHeader))
}

// CurrentAccount извлекает аккаунт, выставленный AuthMiddleware
func CurrentAccount(c *gin.Context) (*models.Account, bool) {
	val, exists := c.Get(contextkeys.AccountKey)
	if !exists {
		return nil, false
	}
	account, ok := val.(*models.Account)
	return account, ok && account != nil
}

// CurrentSession извлекает сессию, выставленную AuthMiddleware
func CurrentSession(c *gin.Context) (*models.Session, bool) {
	val, exists := c.Get(contextkeys.SessionKey)
	if !exists {
		return nil, false
	}
	session, ok := val.(*models.Session)
	return session, ok && session != nil
}
