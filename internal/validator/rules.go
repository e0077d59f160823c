package validator

import (
	"log"
	"regexp"
	"strconv"

	"inforreel_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var otpPattern = regexp.MustCompile(`^\d{6}$`)

// registerCustomRules регистрирует все кастомные функции валидации в
// переданном экземпляре валидатора.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			// Приложение не должно стартовать без правил
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	// 'is-user-type': general, influencer, vendor
	mustRegister("is-user-type", validateUserType)

	// 'is-device-class': web, mobile
	mustRegister("is-device-class", validateDeviceClass)

	// 'is-otp': ровно 6 цифр
	mustRegister("is-otp", validateOTP)

	// 'max-bytes=N': длина строки в байтах, а не в символах (лимит bcrypt)
	mustRegister("max-bytes", validateMaxBytes)
}

// --- Функции валидации ---

func validateUserType(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true // Не проверяем пустые значения, для этого есть 'required'
	}
	return models.UserType(value).IsValid()
}

func validateDeviceClass(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return models.DeviceClass(value).IsValid()
}

func validateOTP(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return otpPattern.MatchString(value)
}

func validateMaxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(fl.Field().String()) <= limit
}
