package auth

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"inforreel_backend/internal/models"
)

const otpDigits = 6

var (
	// ErrOTPExpired - кода нет (использован/не выдавался) или истек срок
	ErrOTPExpired = errors.New("otp expired or not issued")
	// ErrOTPMismatch - код не совпал с хешем
	ErrOTPMismatch = errors.New("otp mismatch")
)

var otpSpace = big.NewInt(1_000_000)

// Challenge - выданный одноразовый код.
// Code уходит пользователю по почте, Hash и ExpiresAt сохраняются в аккаунте.
type Challenge struct {
	Purpose   models.OTPPurpose
	Code      string
	Hash      string
	ExpiresAt time.Time
}

// OTPIssuer генерирует и проверяет шестизначные коды
type OTPIssuer struct {
	cost int
	now  func() time.Time
}

func NewOTPIssuer(bcryptCost int) *OTPIssuer {
	return &OTPIssuer{cost: bcryptCost, now: time.Now}
}

// WithClock подменяет часы (для тестов)
func (i *OTPIssuer) WithClock(now func() time.Time) *OTPIssuer {
	i.now = now
	return i
}

// Issue выдает новый код для цели purpose со сроком ttl
func (i *OTPIssuer) Issue(purpose models.OTPPurpose, ttl time.Duration) (*Challenge, error) {
	code, err := generateCode()
	if err != nil {
		return nil, fmt.Errorf("failed to generate otp: %w", err)
	}

	hash, err := HashWithCost(code, i.cost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash otp: %w", err)
	}

	return &Challenge{
		Purpose:   purpose,
		Code:      code,
		Hash:      hash,
		ExpiresAt: i.now().Add(ttl),
	}, nil
}

// Verify проверяет код. Срок проверяется до сравнения хеша.
func (i *OTPIssuer) Verify(code, hash string, expiresAt *time.Time) error {
	if hash == "" || expiresAt == nil || i.now().After(*expiresAt) {
		return ErrOTPExpired
	}
	if !CheckPasswordHash(code, hash) {
		return ErrOTPMismatch
	}
	return nil
}

func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, otpSpace)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", otpDigits, n.Int64()), nil
}
