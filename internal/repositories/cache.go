package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bitbucket.org/adsa/go-reservation-ledger/internal/common"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const prefixLock = "reservation-ledger:lock:"

// CacheRepository guards worker jobs so the same job does not run twice at the same time.
type CacheRepository interface {
	// AcquireLock returns a token when the lock was taken, common.ErrLockHeld when someone else
	// holds it.
	AcquireLock(ctx context.Context, name string, ttl time.Duration) (token string, err error)
	ReleaseLock(ctx context.Context, name, token string) error
}

type cacheClient struct {
	redis    redis.UniversalClient
	newToken func() string
}

func NewCacheRepository(redis redis.UniversalClient) CacheRepository {
	return &cacheClient{redis: redis, newToken: uuid.NewString}
}

func (cc *cacheClient) AcquireLock(ctx context.Context, name string, ttl time.Duration) (string, error) {
	token := cc.newToken()
	ok, err := cc.redis.SetNX(ctx, prefixLock+name, token, ttl).Result()
	if err != nil {
		return "", fmt.Errorf("acquire lock %s: %w", name, err)
	}
	if !ok {
		return "", common.ErrLockHeld
	}
	return token, nil
}

func (cc *cacheClient) ReleaseLock(ctx context.Context, name, token string) error {
	val, err := cc.redis.Get(ctx, prefixLock+name).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil
		}
		return err
	}

	// lock expired and was taken by another run
	if val != token {
		return nil
	}

	return cc.redis.Del(ctx, prefixLock+name).Err()
}
