package services

import (
	"context"
	"errors"

	"inforreel_backend/internal/logger"
	"inforreel_backend/internal/models"
	"inforreel_backend/internal/repositories"
	"inforreel_backend/internal/services/dto"
	"inforreel_backend/pkg/apperrors"
)

type UserService interface {
	FindByID(ctx context.Context, id string) (*models.Account, error)
	DeleteByEmail(ctx context.Context, email string) (*dto.DeletedUserResponse, error)
}

type UserServiceImpl struct {
	accounts repositories.AccountRepository
	sessions SessionService
}

func NewUserService(accounts repositories.AccountRepository, sessions SessionService) *UserServiceImpl {
	return &UserServiceImpl{accounts: accounts, sessions: sessions}
}

func (s *UserServiceImpl) FindByID(ctx context.Context, id string) (*models.Account, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrTokenAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return account, nil
}

// DeleteByEmail - административное удаление; сессии удаленного аккаунта отзываются
func (s *UserServiceImpl) DeleteByEmail(ctx context.Context, email string) (*dto.DeletedUserResponse, error) {
	account, err := s.accounts.DeleteByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	revoked, err := s.sessions.RevokeAll(ctx, account.ID)
	if err != nil {
		logger.CtxWithError(ctx, "failed to revoke sessions of deleted account", err, "account_id", account.ID)
	}

	logger.CtxInfo(ctx, "account deleted by admin", "account_id", account.ID)
	return &dto.DeletedUserResponse{Account: account, RevokedSessions: revoked}, nil
}
