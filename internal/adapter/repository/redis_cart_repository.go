package repository

import (
	"context"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/burhansaar3-alt/app/internal/domain/entity"
	"github.com/burhansaar3-alt/app/internal/domain/repository"
	"github.com/burhansaar3-alt/app/pkg/errors"
)

// redisCartRepository keeps each user's cart in a Redis hash keyed by
// product ID, value quantity. The cart is ephemeral; the TTL resets on
// every write and checkout clears the key.
type redisCartRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCartRepository(rdb *redis.Client, ttl time.Duration) repository.CartRepository {
	return &redisCartRepository{
		rdb: rdb,
		ttl: ttl,
	}
}

func cartKey(userID string) string {
	return "cart:" + userID
}

func (r *redisCartRepository) Get(ctx context.Context, userID string) ([]entity.CartItem, error) {
	values, err := r.rdb.HGetAll(ctx, cartKey(userID)).Result()
	if err != nil {
		return nil, errors.Internal("Failed to read cart", err)
	}

	items := make([]entity.CartItem, 0, len(values))
	for productID, qty := range values {
		quantity, err := strconv.Atoi(qty)
		if err != nil || quantity <= 0 {
			continue
		}
		items = append(items, entity.CartItem{ProductID: productID, Quantity: quantity})
	}

	return items, nil
}

func (r *redisCartRepository) Add(ctx context.Context, userID string, item entity.CartItem) error {
	key := cartKey(userID)

	pipe := r.rdb.TxPipeline()
	pipe.HIncrBy(ctx, key, item.ProductID, int64(item.Quantity))
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return errors.Internal("Failed to add cart item", err)
	}

	return nil
}

func (r *redisCartRepository) Remove(ctx context.Context, userID, productID string) error {
	if err := r.rdb.HDel(ctx, cartKey(userID), productID).Err(); err != nil {
		return errors.Internal("Failed to remove cart item", err)
	}

	return nil
}

func (r *redisCartRepository) Clear(ctx context.Context, userID string) error {
	if err := r.rdb.Del(ctx, cartKey(userID)).Err(); err != nil {
		return errors.Internal("Failed to clear cart", err)
	}

	return nil
}
