package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/andrenobre07/zentorno-sub000/internal/domain"
)

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{
		client:  client,
		baseTTL: 15 * time.Minute,
	}
}

type RedisCache struct {
	client  *redis.Client
	baseTTL time.Duration
}

func (r RedisCache) Get(ctx context.Context, carID string) (*domain.Car, error) {
	key := cacheKey(carID)

	data, err := r.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("redis get failed: %w", err)
	}

	var car domain.Car
	if err2 := json.Unmarshal(data, &car); err2 != nil {
		return nil, fmt.Errorf("unmarshal car failed: %w", err2)
	}

	return &car, nil
}

func (r RedisCache) Set(ctx context.Context, car *domain.Car) error {
	key := cacheKey(car.ID)
	jsonCar, err := json.Marshal(car)
	if err != nil {
		return fmt.Errorf("marshal car failed: %w", err)
	}

	jitter := time.Duration(rand.Intn(5)) * time.Minute
	ttl := r.baseTTL + jitter
	ret := r.client.Set(ctx, key, string(jsonCar), ttl)
	if ret.Err() != nil {
		return fmt.Errorf("redis set failed: %w", ret.Err())
	}
	return nil
}

func (r RedisCache) Delete(ctx context.Context, carID string) error {
	key := cacheKey(carID)
	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis delete failed: %w", err)
	}

	return nil
}

func cacheKey(carID string) string {
	return fmt.Sprintf("car:%s", carID)
}
