package apperrors

import (
	"fmt"
	"sort"
	"strings"

	"inforreel_backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Envelope - единый формат ответа API
type Envelope struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Error   *string     `json:"error"`
	Data    interface{} `json:"data"`
}

// Success собирает успешный ответ: error = null
func Success(code int, message string, data interface{}) Envelope {
	return Envelope{Code: code, Message: message, Data: data}
}

// Failure собирает ответ об ошибке: data = null
func Failure(appErr *AppError) Envelope {
	text := appErr.Message
	if fields, ok := appErr.Details.(map[string]string); ok && len(fields) > 0 {
		text = text + ": " + joinFields(fields)
	}
	return Envelope{
		Code:    appErr.HTTPCode,
		Message: string(appErr.Code),
		Error:   &text,
	}
}

func joinFields(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k, fields[k]))
	}
	return strings.Join(parts, "; ")
}

// GinErrorHandler - обработчик ошибок для Gin
type GinErrorHandler struct {
	Debug bool
}

// HandleGinError - основная логика обработки ошибок для Gin
func (h *GinErrorHandler) HandleGinError(c *gin.Context, err error) {
	appErr, ok := AsAppError(err)
	if !ok {
		// Если это не AppError, оборачиваем в InternalError
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(c.Request.Context(), "server error", err,
			"code", appErr.Code,
			"path", c.Request.URL.Path,
		)
	}

	resp := Failure(appErr)
	if h.Debug && appErr.HTTPCode >= 500 && appErr.Err != nil {
		// В dev показываем причину
		text := fmt.Sprintf("%s: %v", appErr.Message, appErr.Err)
		resp.Error = &text
	}
	c.AbortWithStatusJSON(appErr.HTTPCode, resp)
}

var defaultHandler = &GinErrorHandler{}

// SetDebug переключает вывод причин 5xx (выставляется из конфига)
func SetDebug(debug bool) {
	defaultHandler = &GinErrorHandler{Debug: debug}
}

// HandleError - быстрая функция-помощник для Gin
func HandleError(c *gin.Context, err error) {
	defaultHandler.HandleGinError(c, err)
}

// AsAppError - пытается преобразовать error в *AppError
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
