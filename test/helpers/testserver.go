package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"inforreel_backend/internal/app"
	"inforreel_backend/internal/config"
	"inforreel_backend/internal/handlers"
	"inforreel_backend/internal/repositories"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	TestJWTSecret   = "test-jwt-secret"
	TestAdminAPIKey = "test-admin-key"
)

// TestServer - приложение поверх sqlite в памяти, miniredis и перехватчика писем
type TestServer struct {
	Server *httptest.Server
	DB     *gorm.DB
	Redis  *miniredis.Miniredis
	Mail   *MailCatcher
	Config *config.Config
}

// TestConfig - конфиг по умолчанию с быстрым bcrypt и известными секретами
func TestConfig() *config.Config {
	cfg := config.Default()
	cfg.Server.Env = "test"
	cfg.JWT.Secret = TestJWTSecret
	cfg.Admin.APIKey = TestAdminAPIKey
	cfg.OTP.BcryptCost = bcrypt.MinCost
	return cfg
}

// NewTestServer создает и настраивает тестовый сервер и хранилища.
// Все ресурсы закрываются через t.Cleanup.
func NewTestServer(t *testing.T) *TestServer {
	t.Helper()
	return NewTestServerWithConfig(t, TestConfig())
}

func NewTestServerWithConfig(t *testing.T, cfg *config.Config) *TestServer {
	t.Helper()

	db := NewTestDB(t)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	mail := NewMailCatcher()

	router, err := app.SetupRouter(cfg, &app.Dependencies{
		DB:       db,
		Sessions: repositories.NewRedisSessionRepository(client),
		Sender:   mail,
		Checks: map[string]handlers.Pinger{
			"redis": handlers.PingerFunc(func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			}),
		},
	})
	if err != nil {
		t.Fatalf("Не удалось собрать роутер: %v", err)
	}

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return &TestServer{
		Server: server,
		DB:     db,
		Redis:  mr,
		Mail:   mail,
		Config: cfg,
	}
}

// SendRequest отправляет JSON-запрос; token кладется в Authorization как Bearer
func (ts *TestServer) SendRequest(t *testing.T, method, path, token string, body interface{}) (*http.Response, string) {
	t.Helper()
	headers := map[string]string{}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return ts.Do(t, method, path, body, headers)
}

// Do - SendRequest с произвольными заголовками
func (ts *TestServer) Do(t *testing.T, method, path string, body interface{}, headers map[string]string) (*http.Response, string) {
	t.Helper()
	url := ts.Server.URL + path

	var reqBody io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Ошибка кодирования JSON для запроса: %v", err)
		}
		reqBody = bytes.NewBuffer(jsonBody)
	}

	req, err := http.NewRequest(method, url, reqBody)
	if err != nil {
		t.Fatalf("Ошибка создания HTTP-запроса: %v", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	res, err := ts.Server.Client().Do(req)
	if err != nil {
		t.Fatalf("Ошибка отправки HTTP-запроса: %v", err)
	}
	defer res.Body.Close()

	resBodyBytes, err := io.ReadAll(res.Body)
	if err != nil {
		t.Fatalf("Ошибка чтения тела ответа: %v", err)
	}

	return res, string(resBodyBytes)
}
