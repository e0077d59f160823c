package app

import (
	"context"
	"fmt"
	"time"

	"inforreel_backend/internal/config"
	"inforreel_backend/internal/email"
	"inforreel_backend/internal/handlers"
	"inforreel_backend/internal/repositories"

	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 5 * time.Second

// sessionStore - открытое хранилище сессий и его жизненный цикл
type sessionStore struct {
	repo  repositories.SessionRepository
	ping  handlers.Pinger
	close func(ctx context.Context) error
}

func openSessionStore(ctx context.Context, cfg *config.Config) (*sessionStore, error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	switch cfg.Sessions.Store {
	case "mongo":
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.Mongo.URI))
		if err != nil {
			return nil, fmt.Errorf("mongo connect: %w", err)
		}
		if err := client.Ping(ctx, readpref.Primary()); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, fmt.Errorf("mongo ping: %w", err)
		}

		repo := repositories.NewMongoSessionRepository(client.Database(cfg.Mongo.Database))
		if err := repo.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(context.Background())
			return nil, err
		}
		return &sessionStore{
			repo: repo,
			ping: handlers.PingerFunc(func(ctx context.Context) error {
				return client.Ping(ctx, readpref.Primary())
			}),
			close: client.Disconnect,
		}, nil

	default:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			_ = client.Close()
			return nil, fmt.Errorf("redis ping: %w", err)
		}
		return &sessionStore{
			repo: repositories.NewRedisSessionRepository(client),
			ping: handlers.PingerFunc(func(ctx context.Context) error {
				return client.Ping(ctx).Err()
			}),
			close: func(context.Context) error { return client.Close() },
		}, nil
	}
}

// newSender - транспорт из конфига поверх встроенных (или внешних) шаблонов
func newSender(cfg *config.Config) (email.Sender, error) {
	var provider email.Provider
	switch cfg.Email.Provider {
	case "smtp":
		provider = email.NewSMTPProvider(email.ConfigFromApp(cfg))
	default:
		provider = email.NewLogProvider(cfg.IsDevelopment())
	}
	if err := provider.Validate(); err != nil {
		return nil, err
	}

	templates, err := email.NewDefaultTemplateManager(cfg.Email.TemplatesDir)
	if err != nil {
		return nil, err
	}
	return email.NewNotifier(provider, templates), nil
}
