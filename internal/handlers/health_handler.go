package handlers

import (
	"context"
	"net/http"
	"sort"
	"strings"
	"time"

	"inforreel_backend/internal/logger"
	"inforreel_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// Pinger - зависимость, доступность которой проверяет /healthz
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingerFunc адаптирует функцию к Pinger
type PingerFunc func(ctx context.Context) error

func (f PingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	*BaseHandler
	checks map[string]Pinger
}

func NewHealthHandler(base *BaseHandler, checks map[string]Pinger) *HealthHandler {
	return &HealthHandler{BaseHandler: base, checks: checks}
}

func (h *HealthHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/healthz", h.Health)
}

// Health godoc
// @Summary Проверка состояния
// @Tags health
// @Produce json
// @Success 200 {object} apperrors.Envelope
// @Failure 503 {object} apperrors.Envelope
// @Router /healthz [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	var down []string
	report := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			logger.CtxWithError(ctx, "health check failed", err, "dependency", name)
			report[name] = "down"
			down = append(down, name)
			continue
		}
		report[name] = "up"
	}

	if len(down) == 0 {
		h.Respond(c, http.StatusOK, "ok", report)
		return
	}

	// Отказ: error заполнен, data несет отчет по зависимостям
	sort.Strings(down)
	text := "dependencies down: " + strings.Join(down, ", ")
	c.JSON(http.StatusServiceUnavailable, apperrors.Envelope{
		Code:    http.StatusServiceUnavailable,
		Message: "degraded",
		Error:   &text,
		Data:    report,
	})
}
