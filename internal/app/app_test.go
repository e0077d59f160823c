package app_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"inforreel_backend/internal/models"
	"inforreel_backend/test/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type accountData struct {
	ID             string         `json:"id"`
	Email          string         `json:"email"`
	UserType       string         `json:"userType"`
	IsVerified     bool           `json:"isVerified"`
	IsProfileSetup bool           `json:"isProfileSetup"`
	Token          string         `json:"token"`
	TokenExpiresAt time.Time      `json:"tokenExpiresAt"`
	Profile        map[string]any `json:"profile"`
	Session        *sessionData   `json:"session"`
}

type sessionData struct {
	ID          string `json:"id"`
	DeviceClass string `json:"deviceClass"`
}

func otherCode(code string) string {
	if code == "000000" {
		return "111111"
	}
	return "000000"
}

// TestAuthFlow - регистрация, подтверждение, профиль, выход и отказ по отозванному токену
func TestAuthFlow(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/register", "", map[string]any{
		"name":     "Alice",
		"email":    "a@x.com",
		"password": "pw1",
		"userType": "general",
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)
	assert.NotContains(t, body, "password")

	var registered accountData
	env := helpers.DecodeData(t, body, &registered)
	assert.Equal(t, http.StatusCreated, env.Code)
	assert.Nil(t, env.Error)
	assert.False(t, registered.IsVerified)
	assert.Equal(t, "a@x.com", registered.Email)

	code, ok := ts.Mail.LastCode("a@x.com", models.OTPPurposeVerification)
	require.True(t, ok)
	require.Len(t, code, 6)

	// Неверный код
	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/verify-otp", "", map[string]any{
		"email": "a@x.com",
		"otp":   otherCode(code),
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Equal(t, "OTP_INVALID", helpers.DecodeEnvelope(t, body).Message)

	// Верный код
	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/verify-otp", "", map[string]any{
		"email": "a@x.com",
		"otp":   code,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.NotContains(t, body, "password")

	var verified accountData
	helpers.DecodeData(t, body, &verified)
	assert.True(t, verified.IsVerified)
	require.NotEmpty(t, verified.Token)
	token := verified.Token

	res, body = ts.SendRequest(t, http.MethodGet, "/api/users/profile", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var profile accountData
	helpers.DecodeData(t, body, &profile)
	assert.Equal(t, "a@x.com", profile.Email)
	require.NotNil(t, profile.Session)
	assert.Equal(t, "web", profile.Session.DeviceClass)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/logout", token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, "Logout successful", helpers.DecodeEnvelope(t, body).Message)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/users/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
	assert.Equal(t, "SESSION_REVOKED", helpers.DecodeEnvelope(t, body).Message)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	ts := helpers.NewTestServer(t)

	ts.Register(t, map[string]any{
		"name":     "First",
		"email":    "dup@x.com",
		"username": "first",
		"password": "secret",
		"userType": "general",
	})

	// Другой username и регистр email не спасают
	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/register", "", map[string]any{
		"name":     "Second",
		"email":    "DUP@x.com",
		"username": "second",
		"password": "secret",
		"userType": "vendor",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	env := helpers.DecodeEnvelope(t, body)
	assert.Equal(t, "CONFLICT", env.Message)
	require.NotNil(t, env.Error)
	assert.Equal(t, "Email or username already exists", *env.Error)
	assert.Equal(t, "null", string(env.Data))
}

func TestRegister_DuplicateUsername(t *testing.T) {
	ts := helpers.NewTestServer(t)

	ts.Register(t, map[string]any{
		"name": "First", "email": "one@x.com", "username": "taken",
		"password": "secret", "userType": "general",
	})

	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/register", "", map[string]any{
		"name": "Second", "email": "two@x.com", "username": "taken",
		"password": "secret", "userType": "general",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Equal(t, "CONFLICT", helpers.DecodeEnvelope(t, body).Message)
}

func TestRegister_Validation(t *testing.T) {
	ts := helpers.NewTestServer(t)

	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing email", map[string]any{"name": "N", "password": "p", "userType": "general"}},
		{"bad email", map[string]any{"name": "N", "email": "nope", "password": "p", "userType": "general"}},
		{"unknown user type", map[string]any{"name": "N", "email": "n@x.com", "password": "p", "userType": "admin"}},
		{"unknown profile field", map[string]any{
			"name": "N", "email": "n@x.com", "password": "p", "userType": "influencer",
			"profile": map[string]any{"businessName": "Acme"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, body := ts.SendRequest(t, http.MethodPost, "/api/users/register", "", tt.body)
			assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
			assert.Empty(t, ts.Mail.Sent())
		})
	}
}

func TestRegister_WithRoleProfile(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/register", "", map[string]any{
		"name":     "Vera",
		"email":    "vendor@x.com",
		"password": "secret",
		"userType": "vendor",
		"profile":  `{"businessName":"Acme","categories":["shoes"]}`,
	})
	require.Equal(t, http.StatusCreated, res.StatusCode, body)

	var account accountData
	helpers.DecodeData(t, body, &account)
	assert.Equal(t, "vendor", account.UserType)
	assert.Equal(t, "Acme", account.Profile["businessName"])
	assert.Equal(t, "Pending", account.Profile["documentStatus"])
}

func TestRegister_EmailFailureRollsBack(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.Mail.FailWith(errors.New("smtp down"))

	body := map[string]any{
		"name": "Bob", "email": "bob@x.com", "password": "secret", "userType": "general",
	}
	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/users/register", "", body)
	assert.Equal(t, http.StatusInternalServerError, res.StatusCode, resBody)
	assert.Equal(t, "EXTERNAL_SERVICE_ERROR", helpers.DecodeEnvelope(t, resBody).Message)

	var count int64
	require.NoError(t, ts.DB.Model(&models.Account{}).Where("email = ?", "bob@x.com").Count(&count).Error)
	assert.Zero(t, count)

	// После восстановления почты тот же email снова свободен
	ts.Mail.FailWith(nil)
	ts.Register(t, body)
}

func TestVerifyOTP_SingleUse(t *testing.T) {
	ts := helpers.NewTestServer(t)
	code := ts.Register(t, map[string]any{
		"name": "C", "email": "c@x.com", "password": "secret", "userType": "general",
	})

	verify := map[string]any{"email": "c@x.com", "otp": code}

	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/verify-otp", "", verify)
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/verify-otp", "", verify)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Equal(t, "OTP_EXPIRED", helpers.DecodeEnvelope(t, body).Message)
}

func TestVerifyOTP_Expired(t *testing.T) {
	ts := helpers.NewTestServer(t)
	code := ts.Register(t, map[string]any{
		"name": "D", "email": "d@x.com", "password": "secret", "userType": "general",
	})
	ts.ExpireOTP(t, "d@x.com", models.OTPPurposeVerification)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/verify-otp", "", map[string]any{
		"email": "d@x.com", "otp": code,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Equal(t, "OTP_EXPIRED", helpers.DecodeEnvelope(t, body).Message)
	assert.False(t, ts.FindAccount(t, "d@x.com").IsVerified)
}

func TestVerifyOTP_UnknownEmail(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/verify-otp", "", map[string]any{
		"email": "ghost@x.com", "otp": "123456",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestResendOTP(t *testing.T) {
	ts := helpers.NewTestServer(t)
	first := ts.Register(t, map[string]any{
		"name": "E", "email": "e@x.com", "password": "secret", "userType": "general",
	})

	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/resend-otp", "", map[string]any{"email": "e@x.com"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, "OTP resent successfully", helpers.DecodeEnvelope(t, body).Message)

	second, ok := ts.Mail.LastCode("e@x.com", models.OTPPurposeVerification)
	require.True(t, ok)
	assert.Len(t, ts.Mail.Sent(), 2)

	// Новый код заменяет старый
	if first != second {
		res, body = ts.SendRequest(t, http.MethodPost, "/api/users/verify-otp", "", map[string]any{"email": "e@x.com", "otp": first})
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	}
	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/verify-otp", "", map[string]any{"email": "e@x.com", "otp": second})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/resend-otp", "", map[string]any{"email": "e@x.com"})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/resend-otp", "", map[string]any{"email": "ghost@x.com"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
}

func TestLogin_NoAccountEnumeration(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.RegisterAndVerify(t, "F", "f@x.com", "right-password", models.UserTypeGeneral)

	wrongRes, wrongBody := ts.SendRequest(t, http.MethodPost, "/api/users/login", "", map[string]any{
		"email": "f@x.com", "password": "wrong-password",
	})
	ghostRes, ghostBody := ts.SendRequest(t, http.MethodPost, "/api/users/login", "", map[string]any{
		"email": "ghost@x.com", "password": "wrong-password",
	})

	assert.Equal(t, http.StatusBadRequest, wrongRes.StatusCode)
	assert.Equal(t, wrongRes.StatusCode, ghostRes.StatusCode)
	assert.JSONEq(t, wrongBody, ghostBody)
	assert.Equal(t, "INVALID_CREDENTIALS", helpers.DecodeEnvelope(t, wrongBody).Message)
}

func TestLogin_UnverifiedAccount(t *testing.T) {
	ts := helpers.NewTestServer(t)
	ts.Register(t, map[string]any{
		"name": "G", "email": "g@x.com", "password": "secret", "userType": "general",
	})

	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/login", "", map[string]any{
		"email": "g@x.com", "password": "secret",
	})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
	assert.Equal(t, "ACCOUNT_NOT_VERIFIED", helpers.DecodeEnvelope(t, body).Message)

	// Без верного пароля статус подтверждения не раскрывается
	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/login", "", map[string]any{
		"email": "g@x.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestLogin_ByUsernameAndDevice(t *testing.T) {
	ts := helpers.NewTestServer(t)
	code := ts.Register(t, map[string]any{
		"name": "H", "email": "h@x.com", "username": "hank", "password": "secret", "userType": "influencer",
	})
	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/verify-otp", "", map[string]any{"email": "h@x.com", "otp": code})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/login", "", map[string]any{
		"username": "hank", "password": "secret",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var web accountData
	helpers.DecodeData(t, body, &web)
	assert.WithinDuration(t, time.Now().Add(time.Hour), web.TokenExpiresAt, time.Minute)

	res, body = ts.Do(t, http.MethodPost, "/api/users/login", map[string]any{
		"email": "h@x.com", "password": "secret",
	}, map[string]string{"X-Client-Type": "mobile"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var mobile accountData
	helpers.DecodeData(t, body, &mobile)
	assert.True(t, mobile.TokenExpiresAt.After(time.Now().AddDate(5, 0, 0)))

	res, body = ts.SendRequest(t, http.MethodGet, "/api/users/profile", mobile.Token, nil)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	var profile accountData
	helpers.DecodeData(t, body, &profile)
	require.NotNil(t, profile.Session)
	assert.Equal(t, "mobile", profile.Session.DeviceClass)
}

func TestPasswordReset(t *testing.T) {
	ts := helpers.NewTestServer(t)
	oldToken := ts.RegisterAndVerify(t, "R", "r@x.com", "old-password", models.UserTypeGeneral)

	// Неизвестный email
	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/request-password-reset", "", map[string]any{"email": "ghost@x.com"})
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)

	// Просроченный код
	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/request-password-reset", "", map[string]any{"email": "r@x.com"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	expired, ok := ts.Mail.LastCode("r@x.com", models.OTPPurposePasswordReset)
	require.True(t, ok)
	ts.ExpireOTP(t, "r@x.com", models.OTPPurposePasswordReset)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/reset-password", "", map[string]any{
		"email": "r@x.com", "otp": expired, "newPassword": "new-password",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Equal(t, "OTP_EXPIRED", helpers.DecodeEnvelope(t, body).Message)

	// Действующий код
	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/request-password-reset", "", map[string]any{"email": "r@x.com"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	valid, ok := ts.Mail.LastCode("r@x.com", models.OTPPurposePasswordReset)
	require.True(t, ok)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/reset-password", "", map[string]any{
		"email": "r@x.com", "otp": valid, "newPassword": "new-password",
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, "Password reset successfully", helpers.DecodeEnvelope(t, body).Message)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/login", "", map[string]any{
		"email": "r@x.com", "password": "old-password",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/login", "", map[string]any{
		"email": "r@x.com", "password": "new-password",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	// Сессии, выданные до смены пароля, отозваны
	res, body = ts.SendRequest(t, http.MethodGet, "/api/users/profile", oldToken, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)

	// Код сброса одноразовый
	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/reset-password", "", map[string]any{
		"email": "r@x.com", "otp": valid, "newPassword": "third-password",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestPasswordLimitCountsBytes(t *testing.T) {
	ts := helpers.NewTestServer(t)

	// 72 символа, но 144 байта
	tooLong := strings.Repeat("ж", 72)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/register", "", map[string]any{
		"name": "M", "email": "m@x.com", "password": tooLong, "userType": "general",
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Equal(t, "VALIDATION_FAILED", helpers.DecodeEnvelope(t, body).Message)
	assert.Empty(t, ts.Mail.Sent())

	ts.RegisterAndVerify(t, "M", "m@x.com", strings.Repeat("ж", 36), models.UserTypeGeneral)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/request-password-reset", "", map[string]any{"email": "m@x.com"})
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	code, ok := ts.Mail.LastCode("m@x.com", models.OTPPurposePasswordReset)
	require.True(t, ok)

	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/reset-password", "", map[string]any{
		"email": "m@x.com", "otp": code, "newPassword": tooLong,
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
	assert.Equal(t, "VALIDATION_FAILED", helpers.DecodeEnvelope(t, body).Message)

	// Код не потрачен на невалидный запрос
	res, body = ts.SendRequest(t, http.MethodPost, "/api/users/reset-password", "", map[string]any{
		"email": "m@x.com", "otp": code, "newPassword": strings.Repeat("ж", 36) + "!",
	})
	assert.Equal(t, http.StatusOK, res.StatusCode, body)
}

func TestAuthGate(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/api/users/profile", "", nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
	assert.Equal(t, "UNAUTHORIZED", helpers.DecodeEnvelope(t, body).Message)

	res, body = ts.Do(t, http.MethodGet, "/api/users/profile", nil, map[string]string{"Authorization": "Token abc"})
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/users/profile", "not-a-jwt", nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
	assert.Equal(t, "INVALID_TOKEN", helpers.DecodeEnvelope(t, body).Message)

	// Истекшая запись сессии в Redis
	token := ts.RegisterAndVerify(t, "S", "s@x.com", "secret", models.UserTypeGeneral)
	ts.Redis.FastForward(2 * time.Hour)
	res, body = ts.SendRequest(t, http.MethodGet, "/api/users/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)
}

func TestLogout(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodPost, "/api/users/logout", "", nil)
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	token := ts.RegisterAndVerify(t, "L", "l@x.com", "secret", models.UserTypeGeneral)
	for i := 0; i < 2; i++ {
		res, body = ts.SendRequest(t, http.MethodPost, "/api/users/logout", token, nil)
		assert.Equal(t, http.StatusOK, res.StatusCode, body)
	}
}

func TestUpdateProfile(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := ts.RegisterAndVerify(t, "I", "i@x.com", "secret", models.UserTypeInfluencer)

	res, body := ts.SendRequest(t, http.MethodPut, "/api/users/profile", token, map[string]any{
		"profile": map[string]any{
			"niche":       []string{"fashion"},
			"socialLinks": map[string]any{"instagram": "@ivy"},
		},
	})
	require.Equal(t, http.StatusOK, res.StatusCode, body)

	var updated accountData
	helpers.DecodeData(t, body, &updated)
	assert.True(t, updated.IsProfileSetup)
	assert.Equal(t, []any{"fashion"}, updated.Profile["niche"])

	// Поля чужой роли отклоняются
	res, body = ts.SendRequest(t, http.MethodPut, "/api/users/profile", token, map[string]any{
		"profile": map[string]any{"businessName": "Acme"},
	})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)

	res, body = ts.SendRequest(t, http.MethodPut, "/api/users/profile", token, map[string]any{})
	assert.Equal(t, http.StatusBadRequest, res.StatusCode, body)
}

func TestAdminDeleteUser(t *testing.T) {
	ts := helpers.NewTestServer(t)
	token := ts.RegisterAndVerify(t, "Z", "z@x.com", "secret", models.UserTypeGeneral)

	res, body := ts.SendRequest(t, http.MethodDelete, "/api/admin/users/z@x.com", "", nil)
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)

	adminKey := map[string]string{"X-API-Key": helpers.TestAdminAPIKey}
	res, body = ts.Do(t, http.MethodDelete, "/api/admin/users/z@x.com", nil, adminKey)
	require.Equal(t, http.StatusOK, res.StatusCode, body)
	assert.Equal(t, "User deleted successfully", helpers.DecodeEnvelope(t, body).Message)

	res, body = ts.SendRequest(t, http.MethodGet, "/api/users/profile", token, nil)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode, body)

	res, body = ts.Do(t, http.MethodDelete, "/api/admin/users/z@x.com", nil, adminKey)
	assert.Equal(t, http.StatusNotFound, res.StatusCode, body)
}

func TestAdminDisabledWithoutKey(t *testing.T) {
	cfg := helpers.TestConfig()
	cfg.Admin.APIKey = ""
	ts := helpers.NewTestServerWithConfig(t, cfg)

	res, body := ts.Do(t, http.MethodDelete, "/api/admin/users/z@x.com", nil, map[string]string{"X-API-Key": ""})
	assert.Equal(t, http.StatusForbidden, res.StatusCode, body)
}

func TestHealthz(t *testing.T) {
	ts := helpers.NewTestServer(t)

	res, body := ts.SendRequest(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, res.StatusCode, body)

	env := helpers.DecodeEnvelope(t, body)
	assert.Nil(t, env.Error)

	ts.Redis.SetError("ERR redis is down")
	res, body = ts.SendRequest(t, http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusServiceUnavailable, res.StatusCode, body)

	env = helpers.DecodeEnvelope(t, body)
	assert.Equal(t, "degraded", env.Message)
	require.NotNil(t, env.Error)
	assert.Equal(t, "dependencies down: redis", *env.Error)

	var report map[string]string
	require.NoError(t, json.Unmarshal(env.Data, &report))
	assert.Equal(t, "down", report["redis"])
}
