package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"inforreel_backend/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	sessionKeyPrefix        = "session:"
	accountSessionKeyPrefix = "session:account:"
)

type RedisSessionRepository struct {
	redis *redis.Client
	now   func() time.Time
}

func NewRedisSessionRepository(client *redis.Client) *RedisSessionRepository {
	return &RedisSessionRepository{redis: client, now: time.Now}
}

func (r *RedisSessionRepository) key(tokenHash string) string {
	return sessionKeyPrefix + tokenHash
}

func (r *RedisSessionRepository) accountKey(accountID string) string {
	return accountSessionKeyPrefix + accountID
}

// Save пишет запись с TTL до ExpiresAt и добавляет ее в индекс аккаунта.
// EXPIRE NX/GT требует Redis 7+.
func (r *RedisSessionRepository) Save(ctx context.Context, session *models.Session) error {
	ttl := session.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return fmt.Errorf("session %s already expired", session.ID)
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	_, err = r.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, r.key(session.TokenHash), data, ttl)
		accountKey := r.accountKey(session.AccountID)
		pipe.SAdd(ctx, accountKey, session.TokenHash)
		// Индекс живет до истечения самой долгой сессии аккаунта
		pipe.ExpireNX(ctx, accountKey, ttl)
		pipe.ExpireGT(ctx, accountKey, ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", ErrSessionStoreUnavailable, err)
	}
	return nil
}

func (r *RedisSessionRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*models.Session, error) {
	data, err := r.redis.Get(ctx, r.key(tokenHash)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrSessionStoreUnavailable, err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}
	return &session, nil
}

func (r *RedisSessionRepository) DeleteByTokenHash(ctx context.Context, tokenHash string) (bool, error) {
	session, err := r.FindByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}

	var deleted *redis.IntCmd
	_, err = r.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, r.key(tokenHash))
		pipe.SRem(ctx, r.accountKey(session.AccountID), tokenHash)
		return nil
	})
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrSessionStoreUnavailable, err)
	}
	return deleted.Val() > 0, nil
}

// DeleteByAccount удаляет все сессии аккаунта.
// Сессия, созданная между SMEMBERS и DEL, не попадет под удаление.
func (r *RedisSessionRepository) DeleteByAccount(ctx context.Context, accountID string) (int, error) {
	accountKey := r.accountKey(accountID)

	hashes, err := r.redis.SMembers(ctx, accountKey).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return 0, fmt.Errorf("%w: %v", ErrSessionStoreUnavailable, err)
	}

	keys := make([]string, 0, len(hashes))
	for _, h := range hashes {
		keys = append(keys, r.key(h))
	}

	var deleted *redis.IntCmd
	_, err = r.redis.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		if len(keys) > 0 {
			deleted = pipe.Del(ctx, keys...)
		}
		pipe.Del(ctx, accountKey)
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrSessionStoreUnavailable, err)
	}
	if deleted == nil {
		return 0, nil
	}
	return int(deleted.Val()), nil
}
