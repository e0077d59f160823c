package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

const defaultConfigPath = "config/config.yaml"

type Config struct {
	Server struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
		Env  string `yaml:"env"`
	} `yaml:"server"`

	Database struct {
		Driver string `yaml:"driver"` // postgres, mysql
		DSN    string `yaml:"url"`
	} `yaml:"database"`

	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
	} `yaml:"redis"`

	Mongo struct {
		URI      string `yaml:"uri"`
		Database string `yaml:"database"`
	} `yaml:"mongo"`

	Sessions struct {
		Store     string        `yaml:"store"` // redis, mongo
		WebTTL    time.Duration `yaml:"web_ttl"`
		MobileTTL time.Duration `yaml:"mobile_ttl"`
	} `yaml:"sessions"`

	JWT struct {
		Secret string `yaml:"secret"`
		Issuer string `yaml:"issuer"`
	} `yaml:"jwt"`

	OTP struct {
		VerificationTTL time.Duration `yaml:"verification_ttl"`
		ResetTTL        time.Duration `yaml:"reset_ttl"`
		BcryptCost      int           `yaml:"bcrypt_cost"`
		// Период очистки истекших кодов; 0 отключает очистку
		CleanupInterval time.Duration `yaml:"cleanup_interval"`
	} `yaml:"otp"`

	Email struct {
		Provider     string `yaml:"provider"` // smtp, log
		SMTPHost     string `yaml:"smtp_host"`
		SMTPPort     int    `yaml:"smtp_port"`
		SMTPUsername string `yaml:"smtp_user"`
		SMTPPassword string `yaml:"smtp_password"`
		FromEmail    string `yaml:"from_email"`
		FromName     string `yaml:"from_name"`
		TemplatesDir string `yaml:"templates_dir"`
	} `yaml:"email"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	Admin struct {
		APIKey string `yaml:"api_key"`
	} `yaml:"admin"`

	Log struct {
		Level      string `yaml:"level"`
		File       string `yaml:"file"`
		MaxSizeMB  int    `yaml:"max_size_mb"`
		MaxBackups int    `yaml:"max_backups"`
		MaxAgeDays int    `yaml:"max_age_days"`
	} `yaml:"log"`
}

// Default возвращает конфиг со значениями по умолчанию
func Default() *Config {
	var cfg Config

	cfg.Server.Host = "0.0.0.0"
	cfg.Server.Port = 8080
	cfg.Server.Env = "development"

	cfg.Database.Driver = "postgres"

	cfg.Redis.Addr = "localhost:6379"

	cfg.Mongo.Database = "inforreel"

	cfg.Sessions.Store = "redis"
	cfg.Sessions.WebTTL = time.Hour
	cfg.Sessions.MobileTTL = 10 * 365 * 24 * time.Hour

	cfg.JWT.Issuer = "inforreel"

	cfg.OTP.VerificationTTL = 60 * time.Second
	cfg.OTP.ResetTTL = 60 * time.Second
	cfg.OTP.BcryptCost = 10
	cfg.OTP.CleanupInterval = 10 * time.Minute

	cfg.Email.Provider = "log"
	cfg.Email.SMTPPort = 587
	cfg.Email.FromName = "InforReel"

	cfg.Log.Level = "info"
	cfg.Log.MaxSizeMB = 100
	cfg.Log.MaxBackups = 5
	cfg.Log.MaxAgeDays = 30

	return &cfg
}

// LoadConfig читает .env, YAML-файл и переменные окружения (в этом порядке приоритета снизу вверх).
// Вызывается один раз при старте, результат передается в компоненты.
func LoadConfig() (*Config, error) {
	// .env не обязателен
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Default()

	configPath, explicit := os.LookupEnv("CONFIG_PATH")
	if !explicit || configPath == "" {
		configPath = defaultConfigPath
	}

	if err := cfg.loadFile(configPath); err != nil {
		if explicit || !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open config file at %s: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(c); err != nil {
		return fmt.Errorf("failed to parse config file at %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Server.Env, "SERVER_ENV")
	setString(&c.Database.Driver, "DATABASE_DRIVER")
	setString(&c.Database.DSN, "DATABASE_URL")
	setString(&c.Redis.Addr, "REDIS_ADDR")
	setString(&c.Redis.Password, "REDIS_PASSWORD")
	setString(&c.Mongo.URI, "MONGO_URI")
	setString(&c.Mongo.Database, "MONGO_DATABASE")
	setString(&c.Sessions.Store, "SESSION_STORE")
	setString(&c.JWT.Secret, "JWT_SECRET")
	setString(&c.Email.Provider, "EMAIL_PROVIDER")
	setString(&c.Email.SMTPHost, "SMTP_HOST")
	setString(&c.Email.SMTPUsername, "EMAIL_USER")
	setString(&c.Email.SMTPPassword, "EMAIL_PASS")
	setString(&c.Email.FromEmail, "EMAIL_FROM")
	setString(&c.Admin.APIKey, "ADMIN_API_KEY")
	setString(&c.Log.File, "LOG_FILE")
	setString(&c.Log.Level, "LOG_LEVEL")

	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		c.CORS.AllowedOrigins = splitList(v)
	}

	if err := setInt(&c.Server.Port, "SERVER_PORT"); err != nil {
		return err
	}
	if err := setInt(&c.Email.SMTPPort, "SMTP_PORT"); err != nil {
		return err
	}
	return nil
}

// Validate проверяет обязательные параметры
func (c *Config) Validate() error {
	if strings.TrimSpace(c.JWT.Secret) == "" {
		return errors.New("jwt secret is required (jwt.secret or JWT_SECRET)")
	}
	switch c.Sessions.Store {
	case "redis", "mongo":
	default:
		return fmt.Errorf("unsupported session store %q", c.Sessions.Store)
	}
	switch c.Database.Driver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("unsupported database driver %q", c.Database.Driver)
	}
	switch c.Email.Provider {
	case "smtp", "log":
	default:
		return fmt.Errorf("unsupported email provider %q", c.Email.Provider)
	}
	if c.Sessions.WebTTL <= 0 || c.Sessions.MobileTTL <= 0 {
		return errors.New("session ttl must be positive")
	}
	if c.OTP.VerificationTTL <= 0 || c.OTP.ResetTTL <= 0 {
		return errors.New("otp ttl must be positive")
	}
	return nil
}

// IsDevelopment - dev-режим (текстовые логи, причины 5xx в ответах)
func (c *Config) IsDevelopment() bool {
	return c.Server.Env == "development"
}

// Addr - адрес для http.Server
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func setString(dst *string, key string) {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
