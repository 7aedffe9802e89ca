package cache

import (
	"context"
	"errors"

	"github.com/andrenobre07/zentorno-sub000/internal/domain"
)

type CarCache interface {
	Get(ctx context.Context, carID string) (*domain.Car, error)
	Set(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, carID string) error
}

var ErrCacheMiss = errors.New("cache miss")
