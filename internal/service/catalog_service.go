package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/andrenobre07/zentorno-sub000/internal/cache"
	"github.com/andrenobre07/zentorno-sub000/internal/domain"
	"github.com/andrenobre07/zentorno-sub000/internal/repository"
)

type CatalogService struct {
	repo  repository.CarRepository
	cache cache.CarCache
	sfg   singleflight.Group // Prevents cache stampede
	log   *slog.Logger
}

func NewCatalogService(repo repository.CarRepository, cache cache.CarCache, log *slog.Logger) *CatalogService {
	return &CatalogService{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

func (s *CatalogService) GetCar(ctx context.Context, carID string) (*domain.Car, error) {
	// Use singleflight to prevent multiple concurrent cache misses for same key
	v, err, _ := s.sfg.Do(carID, func() (interface{}, error) {

		car, err := s.cache.Get(ctx, carID)
		if err == nil {
			return car, nil // car is in cache
		}

		if !errors.Is(err, cache.ErrCacheMiss) {
			s.log.WarnContext(ctx, "cache get error", "error", err) // log cache error but continue
		}

		car, errGet := s.repo.GetCar(ctx, carID)
		if errGet != nil {
			return nil, errGet
		}

		// set cache
		go func() {
			errSet := s.cache.Set(context.Background(), car)
			if errSet != nil {
				s.log.Warn("cache set error", "error", errSet)
			}
		}()

		return car, nil
	})

	if err != nil {
		return nil, err
	}

	return v.(*domain.Car), nil
}

func (s *CatalogService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.repo.ListCars(ctx)
}

func (s *CatalogService) FeaturedCars(ctx context.Context) ([]domain.Car, error) {
	return s.repo.FeaturedCars(ctx)
}

func (s *CatalogService) CreateCar(ctx context.Context, car *domain.Car) error {
	if err := car.Validate(); err != nil {
		return err
	}
	return s.repo.CreateCar(ctx, car)
}

func (s *CatalogService) UpdateCar(ctx context.Context, car *domain.Car) error {
	if err := car.Validate(); err != nil {
		return err
	}
	if err := s.repo.UpdateCar(ctx, car); err != nil {
		return err
	}

	s.invalidateCache(car.ID)
	return nil
}

func (s *CatalogService) DeleteCar(ctx context.Context, carID string) error {
	if err := s.repo.DeleteCar(ctx, carID); err != nil {
		return err
	}

	s.invalidateCache(carID)
	return nil
}

func (s *CatalogService) invalidateCache(carID string) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.cache.Delete(ctx, carID); err != nil {
		s.log.Warn("cache invalidate error", "error", err)
	}
}
