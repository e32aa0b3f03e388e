// Copyright (c) 2026 Corporación Cultural Barco de Papel. All rights reserved.

package newsletter

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/barcodepapel/api/internal/platform/constants"
)

// SubscriptionTTL bounds how long a signup suppresses duplicates. After it
// lapses the subscriber simply receives a fresh confirmation.
const SubscriptionTTL = 30 * 24 * time.Hour

// RedisCache tracks subscribed addresses as volatile keys.
type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

func (cache *RedisCache) Register(context context.Context, email string) (bool, error) {
	key := constants.RedisPrefixNewsletter + email
	return cache.client.SetNX(context, key, time.Now().UTC().Format(time.RFC3339), SubscriptionTTL).Result()
}

func (cache *RedisCache) Forget(context context.Context, email string) error {
	key := constants.RedisPrefixNewsletter + email
	return cache.client.Del(context, key).Err()
}
