package services

import (
	"context"
	"errors"
	"time"

	"inforreel_backend/internal/auth"
	"inforreel_backend/internal/email"
	"inforreel_backend/internal/logger"
	"inforreel_backend/internal/models"
	"inforreel_backend/internal/repositories"
	"inforreel_backend/internal/services/dto"
	"inforreel_backend/pkg/apperrors"
)

type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*models.Account, error)
	Login(ctx context.Context, req *dto.LoginRequest, device models.DeviceClass) (*dto.AuthResponse, error)
	VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest, device models.DeviceClass) (*dto.AuthResponse, error)
	ResendOTP(ctx context.Context, email string) error
	RequestPasswordReset(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error
	Logout(ctx context.Context, token string) error
}

// OTPSettings - сроки действия кодов и стоимость bcrypt
type OTPSettings struct {
	VerificationTTL time.Duration
	ResetTTL        time.Duration
	BcryptCost      int
}

type AuthServiceImpl struct {
	accounts  repositories.AccountRepository
	sessions  SessionService
	profiles  ProfileService
	otp       *auth.OTPIssuer
	sender    email.Sender
	settings  OTPSettings
	dummyHash string
}

func NewAuthService(
	accounts repositories.AccountRepository,
	sessions SessionService,
	profiles ProfileService,
	otp *auth.OTPIssuer,
	sender email.Sender,
	settings OTPSettings,
) *AuthServiceImpl {
	// Хеш для выравнивания времени ответа, когда аккаунт не найден
	dummy, _ := auth.HashWithCost("inforreel-login-timing", settings.BcryptCost)

	return &AuthServiceImpl{
		accounts:  accounts,
		sessions:  sessions,
		profiles:  profiles,
		otp:       otp,
		sender:    sender,
		settings:  settings,
		dummyHash: dummy,
	}
}

// Register - создает неподтвержденный аккаунт и отправляет код.
// Если письмо не ушло, аккаунт удаляется.
func (s *AuthServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*models.Account, error) {
	profile, err := s.profiles.BuildProfile(req.UserType, req.Profile)
	if err != nil {
		return nil, err
	}

	passwordHash, err := auth.HashWithCost(req.Password, s.settings.BcryptCost)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	challenge, err := s.otp.Issue(models.OTPPurposeVerification, s.settings.VerificationTTL)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	account := &models.Account{
		Name:         req.Name,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: passwordHash,
		UserType:     req.UserType,
		OTPHash:      challenge.Hash,
		OTPExpiresAt: &challenge.ExpiresAt,
		Profile:      profile,
	}

	if err := s.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, repositories.ErrAccountAlreadyExists) {
			return nil, apperrors.ErrAccountConflict
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.sendOTP(ctx, account, challenge); err != nil {
		// Компенсация: не оставляем аккаунт, на который не ушел код
		if delErr := s.accounts.DeleteByID(ctx, account.ID); delErr != nil {
			logger.CtxWithError(ctx, "failed to roll back account after email failure", delErr, "account_id", account.ID)
		}
		return nil, err
	}

	logger.CtxInfo(ctx, "account registered", "account_id", account.ID, "user_type", account.UserType)
	return account, nil
}

// Login - одинаковая ошибка для "нет аккаунта" и "неверный пароль".
// Неподтвержденный аккаунт получает отказ только после верного пароля.
func (s *AuthServiceImpl) Login(ctx context.Context, req *dto.LoginRequest, device models.DeviceClass) (*dto.AuthResponse, error) {
	account, err := s.accounts.FindByEmailOrUsername(ctx, repositories.AccountSelector{
		Email:    req.Email,
		Username: req.Username,
	})
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			auth.CheckPasswordHash(req.Password, s.dummyHash)
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, account.PasswordHash) {
		logger.CtxWarn(ctx, "login failed: wrong password", "account_id", account.ID)
		return nil, apperrors.ErrInvalidCredentials
	}

	if !account.IsVerified {
		return nil, apperrors.ErrAccountNotVerified
	}

	return s.startSession(ctx, account, device)
}

// VerifyOTP подтверждает email и сразу выдает сессию
func (s *AuthServiceImpl) VerifyOTP(ctx context.Context, req *dto.VerifyOTPRequest, device models.DeviceClass) (*dto.AuthResponse, error) {
	account, err := s.accounts.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrOTPAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}

	if err := s.checkOTP(req.OTP, account.OTPHash, account.OTPExpiresAt); err != nil {
		logger.CtxWarn(ctx, "otp verification failed", "account_id", account.ID, "reason", err.Error())
		return nil, err
	}

	if err := s.accounts.MarkVerified(ctx, account.ID, account.OTPHash); err != nil {
		if errors.Is(err, repositories.ErrOTPAlreadyConsumed) {
			return nil, apperrors.ErrOTPExpired
		}
		return nil, apperrors.InternalError(err)
	}

	account.IsVerified = true
	account.OTPHash = ""
	account.OTPExpiresAt = nil

	logger.CtxInfo(ctx, "email verified", "account_id", account.ID)
	return s.startSession(ctx, account, device)
}

func (s *AuthServiceImpl) ResendOTP(ctx context.Context, emailAddr string) error {
	account, err := s.findForOTP(ctx, emailAddr)
	if err != nil {
		return err
	}
	if account.IsVerified {
		return apperrors.ErrAlreadyVerified
	}

	return s.issueAndSend(ctx, account, models.OTPPurposeVerification, s.settings.VerificationTTL)
}

func (s *AuthServiceImpl) RequestPasswordReset(ctx context.Context, emailAddr string) error {
	account, err := s.findForOTP(ctx, emailAddr)
	if err != nil {
		return err
	}

	return s.issueAndSend(ctx, account, models.OTPPurposePasswordReset, s.settings.ResetTTL)
}

// ResetPassword меняет пароль по коду сброса и отзывает все сессии аккаунта
func (s *AuthServiceImpl) ResetPassword(ctx context.Context, req *dto.ResetPasswordRequest) error {
	account, err := s.findForOTP(ctx, req.Email)
	if err != nil {
		return err
	}

	if err := s.checkOTP(req.OTP, account.ResetOTPHash, account.ResetOTPExpiresAt); err != nil {
		logger.CtxWarn(ctx, "password reset otp rejected", "account_id", account.ID, "reason", err.Error())
		return err
	}

	passwordHash, err := auth.HashWithCost(req.NewPassword, s.settings.BcryptCost)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.accounts.UpdateSecret(ctx, account.ID, passwordHash, account.ResetOTPHash); err != nil {
		if errors.Is(err, repositories.ErrOTPAlreadyConsumed) {
			return apperrors.ErrOTPExpired
		}
		return apperrors.InternalError(err)
	}

	// Пароль уже сменен; ошибка отзыва сессий не откатывает смену
	if _, err := s.sessions.RevokeAll(ctx, account.ID); err != nil {
		logger.CtxWithError(ctx, "failed to revoke sessions after password reset", err, "account_id", account.ID)
	}

	logger.CtxInfo(ctx, "password reset", "account_id", account.ID)
	return nil
}

func (s *AuthServiceImpl) Logout(ctx context.Context, token string) error {
	if token == "" {
		return apperrors.ErrNoTokenOnLogout
	}
	return s.sessions.Revoke(ctx, token)
}

// --- helpers ---

func (s *AuthServiceImpl) findForOTP(ctx context.Context, emailAddr string) (*models.Account, error) {
	account, err := s.accounts.FindByEmail(ctx, emailAddr)
	if err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return nil, apperrors.ErrAccountNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return account, nil
}

func (s *AuthServiceImpl) checkOTP(code, hash string, expiresAt *time.Time) error {
	switch err := s.otp.Verify(code, hash, expiresAt); {
	case err == nil:
		return nil
	case errors.Is(err, auth.ErrOTPExpired):
		return apperrors.ErrOTPExpired
	case errors.Is(err, auth.ErrOTPMismatch):
		return apperrors.ErrOTPInvalid
	default:
		return apperrors.InternalError(err)
	}
}

// issueAndSend перезаписывает активный код цели и отправляет его
func (s *AuthServiceImpl) issueAndSend(ctx context.Context, account *models.Account, purpose models.OTPPurpose, ttl time.Duration) error {
	challenge, err := s.otp.Issue(purpose, ttl)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := s.accounts.SetOTP(ctx, account.ID, purpose, challenge.Hash, challenge.ExpiresAt); err != nil {
		if errors.Is(err, repositories.ErrAccountNotFound) {
			return apperrors.ErrAccountNotFound
		}
		return apperrors.InternalError(err)
	}

	return s.sendOTP(ctx, account, challenge)
}

func (s *AuthServiceImpl) sendOTP(ctx context.Context, account *models.Account, challenge *auth.Challenge) error {
	ttl := s.settings.VerificationTTL
	if challenge.Purpose == models.OTPPurposePasswordReset {
		ttl = s.settings.ResetTTL
	}

	err := s.sender.SendOTP(ctx, account.Email, email.OTPMessage{
		Purpose: challenge.Purpose,
		Name:    account.Name,
		Code:    challenge.Code,
		TTL:     ttl,
	})
	if err != nil {
		logger.CtxWithError(ctx, "failed to send otp email", err,
			"account_id", account.ID,
			"purpose", challenge.Purpose,
		)
		return apperrors.ErrNotificationFailed.WithError(err)
	}

	logger.CtxInfo(ctx, "otp sent", "account_id", account.ID, "purpose", challenge.Purpose)
	return nil
}

func (s *AuthServiceImpl) startSession(ctx context.Context, account *models.Account, device models.DeviceClass) (*dto.AuthResponse, error) {
	issued, err := s.sessions.Issue(ctx, account, device)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Account:        account,
		Token:          issued.Token,
		TokenExpiresAt: issued.Session.ExpiresAt,
	}, nil
}
