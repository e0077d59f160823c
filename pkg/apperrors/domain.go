package apperrors

import "net/http"

/*
Предопределенные ошибки домена аутентификации.
Коды HTTP соответствуют публичному контракту API:
400 для исправимых клиентом ошибок, 401/403 для авторизации,
404 для отсутствующих ресурсов, 500 для внешних сбоев.
*/

// --- Accounts ---

// ErrAccountConflict - email или username уже заняты.
var ErrAccountConflict = New(
	CodeConflict,
	"auth",
	"Email or username already exists",
	http.StatusBadRequest,
)

// ErrAccountNotFound - аккаунт не найден (reset, resend, admin delete).
var ErrAccountNotFound = New(
	CodeNotFound,
	"auth",
	"User not found",
	http.StatusNotFound,
)

// ErrOTPAccountNotFound - verify-otp для неизвестного email отвечает 400.
var ErrOTPAccountNotFound = New(
	CodeNotFound,
	"otp",
	"User not found",
	http.StatusBadRequest,
)

// ErrInvalidUserType - неизвестный userType.
var ErrInvalidUserType = New(
	CodeValidationFailed,
	"validation",
	"Unsupported user type",
	http.StatusBadRequest,
)

// ErrAlreadyVerified - повторная отправка OTP для подтвержденного аккаунта.
var ErrAlreadyVerified = New(
	CodeInvalidOperation,
	"otp",
	"Account is already verified",
	http.StatusBadRequest,
)

// --- Credentials ---

// ErrInvalidCredentials - одинаковый ответ для "нет аккаунта" и "неверный пароль".
var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email/username or password",
	http.StatusBadRequest,
)

// ErrAccountNotVerified - пароль верный, но email не подтвержден.
var ErrAccountNotVerified = New(
	CodeNotVerified,
	"auth",
	"Please verify your email address",
	http.StatusForbidden,
)

// --- OTP ---

// ErrOTPExpired - код истек, уже использован или не запрашивался.
var ErrOTPExpired = New(
	CodeOTPExpired,
	"otp",
	"OTP expired or not valid",
	http.StatusBadRequest,
)

// ErrOTPInvalid - код не совпал.
var ErrOTPInvalid = New(
	CodeOTPInvalid,
	"otp",
	"Invalid OTP",
	http.StatusBadRequest,
)

// --- Sessions ---

// ErrMissingToken - нет заголовка Authorization или он не в формате Bearer.
var ErrMissingToken = New(
	CodeUnauthorized,
	"auth",
	"No token provided",
	http.StatusUnauthorized,
)

// ErrNoTokenOnLogout - logout без токена.
var ErrNoTokenOnLogout = New(
	CodeValidationFailed,
	"auth",
	"No token provided",
	http.StatusBadRequest,
)

// ErrInvalidToken - подпись не сошлась или истек срок токена.
var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusForbidden,
)

// ErrSessionRevoked - сессия удалена (logout) или истекла в хранилище.
var ErrSessionRevoked = New(
	CodeSessionRevoked,
	"auth",
	"Session expired or revoked",
	http.StatusUnauthorized,
)

// ErrTokenAccountNotFound - аккаунт удален после выдачи токена.
var ErrTokenAccountNotFound = New(
	CodeNotFound,
	"auth",
	"User not found",
	http.StatusNotFound,
)

// ErrInvalidAPIKey - административный ключ не совпал.
var ErrInvalidAPIKey = New(
	CodeForbidden,
	"admin",
	"Invalid API key",
	http.StatusForbidden,
)

// --- Notifications ---

// ErrNotificationFailed - не удалось отправить письмо с кодом.
var ErrNotificationFailed = New(
	CodeExternalServiceError,
	"upstream",
	"Email service error",
	http.StatusInternalServerError,
)
