package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"user-vault/internal/cache"
	"user-vault/internal/model"

	"github.com/redis/go-redis/v9"
)

const userCacheTTL = 15 * time.Minute

var (
	jsonMarshal   = json.Marshal
	jsonUnmarshal = json.Unmarshal
)

func userCacheKey(email string) string { return "user:" + email }

// CacheUser stores a JSON snapshot of u keyed by email. Credential
// fields carry `json:"-"` on the model, so they never reach Redis.
func CacheUser(ctx context.Context, c cache.Cache, u *model.User) error {
	data, err := jsonMarshal(u)
	if err != nil {
		return err
	}
	return c.Set(ctx, userCacheKey(u.Email), data, userCacheTTL).Err()
}

// CachedUser returns the cached snapshot for email, or nil on a miss.
func CachedUser(ctx context.Context, c cache.Cache, email string) (*model.User, error) {
	raw, err := c.Get(ctx, userCacheKey(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, err
	}
	u := &model.User{}
	if err := jsonUnmarshal([]byte(raw), u); err != nil {
		return nil, err
	}
	return u, nil
}

// DropCachedUser removes the snapshot for email.
func DropCachedUser(ctx context.Context, c cache.Cache, email string) error {
	return c.Del(ctx, userCacheKey(email)).Err()
}
