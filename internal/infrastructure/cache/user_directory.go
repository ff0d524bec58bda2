package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"billing_insurance/internal/usecase/interfaces"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const userTTL = 10 * time.Minute

// CachedUserDirectory keeps user lookups in Redis for a few minutes. Cache failures
// fall through to the wrapped directory.
type CachedUserDirectory struct {
	next interfaces.IUserDirectory
	rdb  Commands
	log  *zap.Logger
}

var _ interfaces.IUserDirectory = (*CachedUserDirectory)(nil)

func NewCachedUserDirectory(next interfaces.IUserDirectory, rdb Commands, log *zap.Logger) *CachedUserDirectory {
	return &CachedUserDirectory{next: next, rdb: rdb, log: log}
}

func (c *CachedUserDirectory) GetUser(ctx context.Context, userID string) (interfaces.UserDetails, error) {
	key := keyPrefix + "user:" + userID

	raw, err := c.rdb.Get(ctx, key).Bytes()
	switch {
	case err == nil:
		var u interfaces.UserDetails
		if jsonErr := json.Unmarshal(raw, &u); jsonErr == nil {
			return u, nil
		}
	case !errors.Is(err, redis.Nil):
		c.log.Warn("[user][redis] cache read failed", zap.String("user_id", userID), zap.Error(err))
	}

	u, err := c.next.GetUser(ctx, userID)
	if err != nil {
		return interfaces.UserDetails{}, err
	}

	if b, err := json.Marshal(u); err == nil {
		if err := c.rdb.Set(ctx, key, b, userTTL).Err(); err != nil {
			c.log.Warn("[user][redis] cache write failed", zap.String("user_id", userID), zap.Error(err))
		}
	}
	return u, nil
}
