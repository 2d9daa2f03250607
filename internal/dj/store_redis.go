package dj

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/wavecrate/wavecrate/internal/platform/apperr"
	"github.com/wavecrate/wavecrate/internal/platform/constants"
)

// RedisSessionStore implements [SessionStore] on Redis. Sessions are the
// only thing Wavecrate keeps in Redis besides reset tokens; the catalog
// never lives here.
type RedisSessionStore struct {
	client *redis.Client
}

func NewRedisSessionStore(client *redis.Client) *RedisSessionStore {
	return &RedisSessionStore{client: client}
}

func (store *RedisSessionStore) Set(context context.Context, tokenHash, djID string, ttl time.Duration) error {
	return store.client.Set(context, constants.RedisPrefixSession+tokenHash, djID, ttl).Err()
}

func (store *RedisSessionStore) Get(context context.Context, tokenHash string) (string, error) {
	djID, err := store.client.Get(context, constants.RedisPrefixSession+tokenHash).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.Unauthorized("Invalid or expired refresh token")
		}
		return "", err
	}
	return djID, nil
}

func (store *RedisSessionStore) Delete(context context.Context, tokenHash string) error {
	return store.client.Del(context, constants.RedisPrefixSession+tokenHash).Err()
}

// RedisResetTokenStore implements [ResetTokenStore] on Redis.
type RedisResetTokenStore struct {
	client *redis.Client
}

func NewRedisResetTokenStore(client *redis.Client) *RedisResetTokenStore {
	return &RedisResetTokenStore{client: client}
}

func (store *RedisResetTokenStore) Set(context context.Context, token, djID string, ttl time.Duration) error {
	return store.client.Set(context, constants.RedisPrefixResetToken+token, djID, ttl).Err()
}

func (store *RedisResetTokenStore) Get(context context.Context, token string) (string, error) {
	djID, err := store.client.Get(context, constants.RedisPrefixResetToken+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("Reset token is invalid or expired")
		}
		return "", err
	}
	return djID, nil
}

func (store *RedisResetTokenStore) Delete(context context.Context, token string) error {
	return store.client.Del(context, constants.RedisPrefixResetToken+token).Err()
}
