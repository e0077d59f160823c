package logger

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"
)

var log *slog.Logger

// Options - параметры логгера, берутся из config.Log и config.Server.Env
type Options struct {
	Env        string // "development" или "production"
	Level      string // debug, info, warn, error
	File       string // пусто - только stdout
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// Init инициализирует глобальный логгер
func Init(opts Options) {
	handlerOpts := &slog.HandlerOptions{
		Level:     parseLevel(opts.Level),
		AddSource: true, // Добавляет файл и строку где вызван лог
	}

	var out io.Writer = os.Stdout
	if opts.File != "" {
		// Ротация файла, stdout сохраняем
		out = io.MultiWriter(os.Stdout, &lumberjack.Logger{
			Filename:   opts.File,
			MaxSize:    opts.MaxSizeMB,
			MaxBackups: opts.MaxBackups,
			MaxAge:     opts.MaxAgeDays,
			Compress:   true,
		})
	}

	var handler slog.Handler
	if opts.Env == "development" {
		// Development: читаемый текстовый формат
		handlerOpts.Level = slog.LevelDebug
		handler = slog.NewTextHandler(out, handlerOpts)
	} else {
		// Production: JSON формат для парсинга
		handler = slog.NewJSONHandler(out, handlerOpts)
	}

	log = slog.New(handler)
	slog.SetDefault(log) // Устанавливаем как default для всего приложения
}

// SetLogger подменяет глобальный логгер (используется в тестах)
func SetLogger(l *slog.Logger) {
	log = l
}

func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// GetLogger возвращает глобальный логгер
func GetLogger() *slog.Logger {
	if log == nil {
		// Fallback если Init не вызван
		Init(Options{Env: "development"})
	}
	return log
}

// ============================================
// Convenience функции для быстрого логирования
// ============================================

// Debug логирует debug сообщение
func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

// Info логирует info сообщение
func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

// Warn логирует warning сообщение
func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

// Error логирует error сообщение
func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}

// Fatal логирует fatal ошибку и завершает программу
func Fatal(msg string, args ...any) {
	GetLogger().Error(msg, args...)
	os.Exit(1)
}

// With создает новый логгер с дополнительными полями
func With(args ...any) *slog.Logger {
	return GetLogger().With(args...)
}

// HTTPLog логирует HTTP запрос; уровень зависит от статуса
func HTTPLog(l *slog.Logger, method, path string, status int, duration time.Duration, size int) {
	fields := []any{
		"method", method,
		"path", path,
		"status", status,
		"duration_ms", duration.Milliseconds(),
		"size_bytes", size,
	}

	switch {
	case status >= 500:
		l.Error("http request", fields...)
	case status >= 400:
		l.Warn("http request", fields...)
	default:
		l.Info("http request", fields...)
	}
}
