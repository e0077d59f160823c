package models

import (
	"time"

	"gorm.io/datatypes"
)

// Account - учетная запись пользователя.
// Хеши пароля и OTP никогда не сериализуются в ответы.
type Account struct {
	BaseModel
	Name           string   `gorm:"type:varchar(255)" json:"name"`
	Email          string   `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	Username       *string  `gorm:"type:varchar(100);uniqueIndex" json:"username,omitempty"`
	PasswordHash   string   `gorm:"not null" json:"-"`
	UserType       UserType `gorm:"type:varchar(20);not null" json:"userType"`
	IsVerified     bool     `gorm:"not null;default:false" json:"isVerified"`
	IsProfileSetup bool     `gorm:"not null;default:false" json:"isProfileSetup"`

	// Подтверждение email
	OTPHash      string     `gorm:"type:varchar(255)" json:"-"`
	OTPExpiresAt *time.Time `json:"-"`

	// Сброс пароля
	ResetOTPHash      string     `gorm:"type:varchar(255)" json:"-"`
	ResetOTPExpiresAt *time.Time `json:"-"`

	Profile datatypes.JSON `json:"profile"`
}

func (Account) TableName() string {
	return "accounts"
}

// OTPFor возвращает хеш и срок действия кода для заданной цели
func (a *Account) OTPFor(purpose OTPPurpose) (string, *time.Time) {
	if purpose == OTPPurposePasswordReset {
		return a.ResetOTPHash, a.ResetOTPExpiresAt
	}
	return a.OTPHash, a.OTPExpiresAt
}
