package repositories

import (
	"context"
	"errors"

	"inforreel_backend/internal/models"
)

var (
	// ErrSessionNotFound - записи нет: отозвана или удалена хранилищем по TTL
	ErrSessionNotFound = errors.New("session not found")
	// ErrSessionStoreUnavailable - хранилище сессий не ответило
	ErrSessionStoreUnavailable = errors.New("session store unavailable")
)

// SessionRepository хранит серверные записи сессий.
// Истекшие записи удаляет само хранилище (PX в Redis, TTL-индекс в Mongo).
type SessionRepository interface {
	Save(ctx context.Context, session *models.Session) error
	FindByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error)
	// DeleteByTokenHash идемпотентен: false, если записи уже не было
	DeleteByTokenHash(ctx context.Context, tokenHash string) (bool, error)
	DeleteByAccount(ctx context.Context, accountID string) (int, error)
}
