package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skuznetsov2019/gw-auth-service/internal/logger"
	"github.com/skuznetsov2019/gw-auth-service/internal/models"
)

// UserCacheRepository caches user rows in Redis, keyed by username.
// It backs identity resolution on authenticated requests so a hot
// caller does not hit PostgreSQL on every call.
type UserCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewUserCacheRepository creates a cache repository with the given TTL.
func NewUserCacheRepository(client *redis.Client, expiration time.Duration) *UserCacheRepository {
	return &UserCacheRepository{
		client: client,
		exp:    expiration,
	}
}

func userCacheKey(username string) string {
	return fmt.Sprintf("user:%s", username)
}

// Get returns the cached user, or nil on a cache miss.
func (r *UserCacheRepository) Get(ctx context.Context, username string) (*models.UserDB, error) {
	key := userCacheKey(username)

	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		logger.Log.Warnw("user cache get failed", "key", key, "error", err)
		return nil, err
	}

	var user models.UserDB
	if err := json.Unmarshal(val, &user); err != nil {
		logger.Log.Warnw("user cache entry corrupted", "key", key, "error", err)
		return nil, err
	}

	return &user, nil
}

// Set stores the user under its username for the configured TTL.
func (r *UserCacheRepository) Set(ctx context.Context, user *models.UserDB) error {
	// json:"-" on PasswordHash keeps the bcrypt digest out of Redis;
	// cached entries carry profile fields only.
	val, err := json.Marshal(user)
	if err != nil {
		return err
	}

	key := userCacheKey(user.Username)
	if err := r.client.Set(ctx, key, val, r.exp).Err(); err != nil {
		logger.Log.Warnw("user cache set failed", "key", key, "error", err)
		return err
	}

	return nil
}
