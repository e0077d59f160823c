package services

import (
	"context"
	"errors"
	"time"

	"inforreel_backend/internal/auth"
	"inforreel_backend/internal/logger"
	"inforreel_backend/internal/models"
	"inforreel_backend/internal/repositories"
	"inforreel_backend/internal/services/dto"
	"inforreel_backend/pkg/apperrors"
)

type SessionService interface {
	Issue(ctx context.Context, account *models.Account, device models.DeviceClass) (*dto.IssuedSession, error)
	Validate(ctx context.Context, token string) (*auth.Claims, *models.Session, error)
	Revoke(ctx context.Context, token string) error
	RevokeAll(ctx context.Context, accountID string) (int, error)
}

// SessionTTL - срок жизни сессии по классу устройства
type SessionTTL struct {
	Web    time.Duration
	Mobile time.Duration
}

func (t SessionTTL) For(device models.DeviceClass) time.Duration {
	if device == models.DeviceMobile {
		return t.Mobile
	}
	return t.Web
}

type SessionServiceImpl struct {
	tokens   *auth.TokenManager
	sessions repositories.SessionRepository
	ttl      SessionTTL
	now      func() time.Time
}

func NewSessionService(tokens *auth.TokenManager, sessions repositories.SessionRepository, ttl SessionTTL) *SessionServiceImpl {
	return &SessionServiceImpl{
		tokens:   tokens,
		sessions: sessions,
		ttl:      ttl,
		now:      time.Now,
	}
}

// WithClock подменяет часы (для тестов)
func (s *SessionServiceImpl) WithClock(now func() time.Time) *SessionServiceImpl {
	s.now = now
	return s
}

// Issue подписывает токен и сохраняет запись сессии с тем же сроком
func (s *SessionServiceImpl) Issue(ctx context.Context, account *models.Account, device models.DeviceClass) (*dto.IssuedSession, error) {
	if !device.IsValid() {
		device = models.DeviceWeb
	}

	issued, err := s.tokens.GenerateToken(account.ID, account.UserType, s.ttl.For(device))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	session := &models.Session{
		ID:          issued.ID,
		AccountID:   account.ID,
		TokenHash:   auth.HashToken(issued.Token),
		DeviceClass: device,
		CreatedAt:   issued.IssuedAt,
		ExpiresAt:   issued.ExpiresAt,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "session issued",
		"account_id", account.ID,
		"session_id", session.ID,
		"device", device,
	)
	return &dto.IssuedSession{Token: issued.Token, Session: session}, nil
}

// Validate: подпись и срок токена, затем запись в хранилище.
// Отсутствующая и истекшая запись обрабатываются одинаково.
func (s *SessionServiceImpl) Validate(ctx context.Context, token string) (*auth.Claims, *models.Session, error) {
	claims, err := s.tokens.ParseToken(token)
	if err != nil {
		return nil, nil, apperrors.ErrInvalidToken.WithError(err)
	}

	session, err := s.sessions.FindByTokenHash(ctx, auth.HashToken(token))
	if err != nil {
		if errors.Is(err, repositories.ErrSessionNotFound) {
			return nil, nil, apperrors.ErrSessionRevoked
		}
		return nil, nil, apperrors.InternalError(err)
	}

	if session.IsExpiredAt(s.now()) || session.AccountID != claims.UserID {
		return nil, nil, apperrors.ErrSessionRevoked
	}

	return claims, session, nil
}

// Revoke удаляет запись сессии; повторный вызов не ошибка
func (s *SessionServiceImpl) Revoke(ctx context.Context, token string) error {
	deleted, err := s.sessions.DeleteByTokenHash(ctx, auth.HashToken(token))
	if err != nil {
		return apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "session revoked", "deleted", deleted)
	return nil
}

func (s *SessionServiceImpl) RevokeAll(ctx context.Context, accountID string) (int, error) {
	n, err := s.sessions.DeleteByAccount(ctx, accountID)
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	logger.CtxInfo(ctx, "account sessions revoked", "account_id", accountID, "count", n)
	return n, nil
}
