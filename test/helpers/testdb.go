package helpers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"inforreel_backend/database"
	"inforreel_backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// NewTestDB - sqlite в памяти с миграциями.
// Одно соединение: у каждого соединения к :memory: своя база.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), database.GormConfig(false))
	if err != nil {
		t.Fatalf("Не удалось открыть sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("Не удалось получить *sql.DB из GORM: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := database.AutoMigrate(db); err != nil {
		t.Fatalf("Не удалось выполнить AutoMigrate: %v", err)
	}
	return db
}

// Envelope - разобранный ответ API; data остается сырой
type Envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Error   *string         `json:"error"`
	Data    json.RawMessage `json:"data"`
}

func DecodeEnvelope(t *testing.T, body string) Envelope {
	t.Helper()
	var env Envelope
	require.NoError(t, json.Unmarshal([]byte(body), &env), "ответ не является конвертом: %s", body)
	return env
}

// DecodeData разбирает data конверта в out
func DecodeData(t *testing.T, body string, out interface{}) Envelope {
	t.Helper()
	env := DecodeEnvelope(t, body)
	require.NoError(t, json.Unmarshal(env.Data, out), "не удалось разобрать data: %s", body)
	return env
}

// Register регистрирует аккаунт и возвращает перехваченный код подтверждения
func (ts *TestServer) Register(t *testing.T, body map[string]interface{}) string {
	t.Helper()

	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/users/register", "", body)
	require.Equal(t, http.StatusCreated, res.StatusCode, "регистрация должна быть успешной: %s", resBody)

	code, ok := ts.Mail.LastCode(body["email"].(string), models.OTPPurposeVerification)
	require.True(t, ok, "код подтверждения не был отправлен")
	return code
}

// RegisterAndVerify - регистрация + verify-otp, возвращает токен сессии
func (ts *TestServer) RegisterAndVerify(t *testing.T, name, email, password string, userType models.UserType) string {
	t.Helper()

	code := ts.Register(t, map[string]interface{}{
		"name":     name,
		"email":    email,
		"password": password,
		"userType": userType,
	})

	res, resBody := ts.SendRequest(t, http.MethodPost, "/api/users/verify-otp", "", map[string]interface{}{
		"email": email,
		"otp":   code,
	})
	require.Equal(t, http.StatusOK, res.StatusCode, "verify-otp должен быть успешным: %s", resBody)

	var auth struct {
		Token string `json:"token"`
	}
	DecodeData(t, resBody, &auth)
	require.NotEmpty(t, auth.Token)
	return auth.Token
}

// ExpireOTP сдвигает срок действия кода цели в прошлое
func (ts *TestServer) ExpireOTP(t *testing.T, email string, purpose models.OTPPurpose) {
	t.Helper()

	column := "otp_expires_at"
	if purpose == models.OTPPurposePasswordReset {
		column = "reset_otp_expires_at"
	}
	result := ts.DB.Model(&models.Account{}).
		Where("email = ?", email).
		Update(column, time.Now().Add(-time.Minute))
	require.NoError(t, result.Error)
	require.EqualValues(t, 1, result.RowsAffected)
}

// FindAccount читает аккаунт напрямую из БД
func (ts *TestServer) FindAccount(t *testing.T, email string) *models.Account {
	t.Helper()
	var account models.Account
	require.NoError(t, ts.DB.Where("email = ?", email).First(&account).Error)
	return &account
}
