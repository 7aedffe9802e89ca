package cache

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrenobre07/zentorno-sub000/internal/domain"
)

// setupTestRedis creates a miniredis server and returns a RedisCache instance
func setupTestRedis(t *testing.T) (*RedisCache, *miniredis.Miniredis, func()) {
	mr := miniredis.RunT(t)

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	cache := NewRedisCache(client)

	cleanup := func() {
		client.Close()
		mr.Close()
	}

	return cache, mr, cleanup
}

func testCar() *domain.Car {
	return &domain.Car{
		ID:        "car-1",
		Name:      "Zentorno GT",
		BasePrice: domain.NewMoney(decimal.RequireFromString("85000")),
		Colors: []domain.ColorOption{
			{Name: "Midnight Blue", PriceDelta: domain.NewMoney(decimal.RequireFromString("1200"))},
		},
	}
}

func TestGet_Success(t *testing.T) {
	cache, mr, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	car := testCar()

	data, err := json.Marshal(car)
	require.NoError(t, err)
	require.NoError(t, mr.Set("car:car-1", string(data)))

	got, err := cache.Get(ctx, "car-1")
	require.NoError(t, err)
	assert.Equal(t, "Zentorno GT", got.Name)
	assert.True(t, got.BasePrice.Equal(car.BasePrice))
}

func TestGet_Miss(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	_, err := cache.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestSetThenGet(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	car := testCar()

	require.NoError(t, cache.Set(ctx, car))

	got, err := cache.Get(ctx, car.ID)
	require.NoError(t, err)
	assert.Equal(t, car.ID, got.ID)
	require.Len(t, got.Colors, 1)
	assert.True(t, got.Colors[0].PriceDelta.Equal(car.Colors[0].PriceDelta))
}

func TestDelete(t *testing.T) {
	cache, _, cleanup := setupTestRedis(t)
	defer cleanup()

	ctx := context.Background()
	require.NoError(t, cache.Set(ctx, testCar()))
	require.NoError(t, cache.Delete(ctx, "car-1"))

	_, err := cache.Get(ctx, "car-1")
	assert.ErrorIs(t, err, ErrCacheMiss)
}
