package repositories

import (
	"context"
	"errors"
	"strings"
	"time"

	"inforreel_backend/internal/models"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrAccountAlreadyExists = errors.New("email or username already exists")
	// ErrOTPAlreadyConsumed - условное обновление не нашло ожидаемый хеш
	ErrOTPAlreadyConsumed = errors.New("otp already consumed")
)

const (
	pgUniqueViolation    = "23505"
	mysqlDuplicateEntry  = 1062
	sqliteUniqueViolated = "UNIQUE constraint failed"
)

// AccountSelector - поиск по email или username (для логина)
type AccountSelector struct {
	Email    string
	Username string
}

type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	FindByID(ctx context.Context, id string) (*models.Account, error)
	FindByEmail(ctx context.Context, email string) (*models.Account, error)
	FindByEmailOrUsername(ctx context.Context, selector AccountSelector) (*models.Account, error)

	SetOTP(ctx context.Context, id string, purpose models.OTPPurpose, hash string, expiresAt time.Time) error
	MarkVerified(ctx context.Context, id, otpHash string) error
	UpdateSecret(ctx context.Context, id, newPasswordHash, resetOTPHash string) error
	UpdateProfile(ctx context.Context, id string, profile datatypes.JSON) error
	ClearExpiredOTPs(ctx context.Context, now time.Time) (int64, error)

	DeleteByID(ctx context.Context, id string) error
	DeleteByEmail(ctx context.Context, email string) (*models.Account, error)
}

type AccountRepositoryImpl struct {
	db *gorm.DB
}

func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// NormalizeEmail - email хранится в нижнем регистре без пробелов
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Create полагается на уникальные индексы, а не на предварительный SELECT:
// две параллельные регистрации разрешаются самой БД.
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *models.Account) error {
	account.Email = NormalizeEmail(account.Email)
	if account.Username != nil {
		username := strings.TrimSpace(*account.Username)
		if username == "" {
			account.Username = nil
		} else {
			account.Username = &username
		}
	}

	if err := r.db.WithContext(ctx).Create(account).Error; err != nil {
		if IsDuplicateKey(err) {
			return ErrAccountAlreadyExists
		}
		return err
	}
	return nil
}

func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id string) (*models.Account, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *AccountRepositoryImpl) FindByEmail(ctx context.Context, email string) (*models.Account, error) {
	return r.findOne(ctx, "email = ?", NormalizeEmail(email))
}

func (r *AccountRepositoryImpl) FindByEmailOrUsername(ctx context.Context, selector AccountSelector) (*models.Account, error) {
	if selector.Email != "" {
		return r.FindByEmail(ctx, selector.Email)
	}
	if username := strings.TrimSpace(selector.Username); username != "" {
		return r.findOne(ctx, "username = ?", username)
	}
	return nil, ErrAccountNotFound
}

func (r *AccountRepositoryImpl) findOne(ctx context.Context, query string, args ...interface{}) (*models.Account, error) {
	var account models.Account
	err := r.db.WithContext(ctx).Where(query, args...).First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	return &account, nil
}

// SetOTP перезаписывает активный код для цели одним UPDATE
func (r *AccountRepositoryImpl) SetOTP(ctx context.Context, id string, purpose models.OTPPurpose, hash string, expiresAt time.Time) error {
	updates := map[string]interface{}{
		"otp_hash":       hash,
		"otp_expires_at": expiresAt,
	}
	if purpose == models.OTPPurposePasswordReset {
		updates = map[string]interface{}{
			"reset_otp_hash":       hash,
			"reset_otp_expires_at": expiresAt,
		}
	}

	result := r.db.WithContext(ctx).Model(&models.Account{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// MarkVerified подтверждает email и гасит код.
// Условие по otp_hash гарантирует однократное использование кода.
func (r *AccountRepositoryImpl) MarkVerified(ctx context.Context, id, otpHash string) error {
	result := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ? AND otp_hash = ?", id, otpHash).
		Updates(map[string]interface{}{
			"is_verified":    true,
			"otp_hash":       "",
			"otp_expires_at": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOTPAlreadyConsumed
	}
	return nil
}

// UpdateSecret меняет пароль и гасит код сброса
func (r *AccountRepositoryImpl) UpdateSecret(ctx context.Context, id, newPasswordHash, resetOTPHash string) error {
	result := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ? AND reset_otp_hash = ?", id, resetOTPHash).
		Updates(map[string]interface{}{
			"password_hash":        newPasswordHash,
			"reset_otp_hash":       "",
			"reset_otp_expires_at": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOTPAlreadyConsumed
	}
	return nil
}

func (r *AccountRepositoryImpl) UpdateProfile(ctx context.Context, id string, profile datatypes.JSON) error {
	result := r.db.WithContext(ctx).Model(&models.Account{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"profile":          profile,
			"is_profile_setup": true,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// ClearExpiredOTPs гасит коды (подтверждения и сброса), срок которых истек до now
func (r *AccountRepositoryImpl) ClearExpiredOTPs(ctx context.Context, now time.Time) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		verification := tx.Model(&models.Account{}).
			Where("otp_expires_at IS NOT NULL AND otp_expires_at < ?", now).
			Updates(map[string]interface{}{"otp_hash": "", "otp_expires_at": nil})
		if verification.Error != nil {
			return verification.Error
		}

		reset := tx.Model(&models.Account{}).
			Where("reset_otp_expires_at IS NOT NULL AND reset_otp_expires_at < ?", now).
			Updates(map[string]interface{}{"reset_otp_hash": "", "reset_otp_expires_at": nil})
		if reset.Error != nil {
			return reset.Error
		}

		total = verification.RowsAffected + reset.RowsAffected
		return nil
	})
	return total, err
}

// DeleteByID - компенсация при неудачной регистрации
func (r *AccountRepositoryImpl) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Account{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrAccountNotFound
	}
	return nil
}

// DeleteByEmail удаляет аккаунт и возвращает удаленную запись
func (r *AccountRepositoryImpl) DeleteByEmail(ctx context.Context, email string) (*models.Account, error) {
	var deleted models.Account
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("email = ?", NormalizeEmail(email)).First(&deleted).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAccountNotFound
			}
			return err
		}
		result := tx.Delete(&models.Account{}, "id = ?", deleted.ID)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrAccountNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &deleted, nil
}

// IsDuplicateKey распознает нарушение уникального индекса у всех поддерживаемых драйверов
func IsDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry {
		return true
	}

	return strings.Contains(err.Error(), sqliteUniqueViolated)
}
