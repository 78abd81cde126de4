package cartrecords

import (
	"context"
	"log/slog"
	"time"

	"storefront-cart/internal/domain/cart"
	"storefront-cart/internal/infra"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "cart:"

type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewRedisStore keeps cart records in Redis under "cart:<userKey>".
// A zero ttl means records never expire.
func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Load(ctx context.Context, userKey string) (cart.Cart, error) {
	data, err := s.rdb.Get(ctx, keyPrefix+userKey).Bytes()
	if err != nil {
		if err == redis.Nil {
			return cart.Cart{}, nil
		}
		return cart.Cart{}, infra.WrapRepoErr("failed to load cart record", err, infra.KindStoreFailure)
	}

	c, err := decode(data)
	if err != nil {
		// Corrupt record: fail open to an empty cart rather than surface it.
		slog.Warn("discarding malformed cart record", "user_key", userKey, "error", err.Error())
		return cart.Cart{}, nil
	}
	return c, nil
}

func (s *RedisStore) Save(ctx context.Context, userKey string, c cart.Cart) error {
	data, err := encode(c)
	if err != nil {
		return infra.WrapRepoErr("failed to encode cart record", err, infra.KindStoreFailure)
	}
	if err := s.rdb.Set(ctx, keyPrefix+userKey, data, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save cart record", err, infra.KindStoreFailure)
	}
	return nil
}

func (s *RedisStore) Delete(ctx context.Context, userKey string) error {
	if err := s.rdb.Del(ctx, keyPrefix+userKey).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete cart record", err, infra.KindStoreFailure)
	}
	return nil
}
