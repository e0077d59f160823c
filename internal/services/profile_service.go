package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"

	"inforreel_backend/internal/logger"
	"inforreel_backend/internal/models"
	"inforreel_backend/internal/repositories"
	"inforreel_backend/internal/validator"
	"inforreel_backend/pkg/apperrors"

	"gorm.io/datatypes"
)

type ProfileService interface {
	// BuildProfile разбирает и проверяет профиль для роли; пустой raw - профиль по умолчанию
	BuildProfile(userType models.UserType, raw json.RawMessage) (datatypes.JSON, error)
	UpdateProfile(ctx context.Context, account *models.Account, raw json.RawMessage) (*models.Account, error)
}

type ProfileServiceImpl struct {
	accounts  repositories.AccountRepository
	validator *validator.Validator
}

func NewProfileService(accounts repositories.AccountRepository, v *validator.Validator) *ProfileServiceImpl {
	return &ProfileServiceImpl{accounts: accounts, validator: v}
}

func (s *ProfileServiceImpl) BuildProfile(userType models.UserType, raw json.RawMessage) (datatypes.JSON, error) {
	payload, err := unwrapJSONString(raw)
	if err != nil {
		return nil, apperrors.NewBadRequestError("Invalid JSON in profile field")
	}

	profile, err := models.DecodeProfile(userType, payload)
	if err != nil {
		if errors.Is(err, models.ErrUnsupportedUserType) {
			return nil, apperrors.ErrInvalidUserType
		}
		return nil, apperrors.NewBadRequestError(err.Error())
	}

	if err := s.validator.Validate(profile); err != nil {
		var vErr *validator.ValidationError
		if errors.As(err, &vErr) {
			return nil, apperrors.ValidationError(vErr.Errors)
		}
		return nil, apperrors.InternalError(err)
	}

	encoded, err := json.Marshal(profile)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return datatypes.JSON(encoded), nil
}

// UpdateProfile сохраняет профиль и выставляет isProfileSetup
func (s *ProfileServiceImpl) UpdateProfile(ctx context.Context, account *models.Account, raw json.RawMessage) (*models.Account, error) {
	if len(bytes.TrimSpace(raw)) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil, apperrors.NewBadRequestError("Missing profile data")
	}

	profile, err := s.BuildProfile(account.UserType, raw)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.UpdateProfile(ctx, account.ID, profile); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrTokenAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	updated, err := s.accounts.FindByID(ctx, account.ID)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrTokenAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	logger.CtxInfo(ctx, "profile updated", "account_id", account.ID, "user_type", account.UserType)
	return updated, nil
}

// unwrapJSONString: клиенты из multipart-форм присылают профиль строкой с JSON
func unwrapJSONString(raw json.RawMessage) ([]byte, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] != '"' {
		return trimmed, nil
	}

	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return nil, err
	}
	if !json.Valid([]byte(s)) {
		return nil, errors.New("profile string is not valid JSON")
	}
	return []byte(s), nil
}
