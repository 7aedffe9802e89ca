package repository

import (
	"context"
	"errors"

	"github.com/andrenobre07/zentorno-sub000/internal/domain"
)

var (
	ErrCarNotFound       = errors.New("car not found")
	ErrPurchaseNotFound  = errors.New("purchase not found")
	ErrProfileNotFound   = errors.New("profile not found")
	ErrDuplicatePurchase = errors.New("purchase already recorded for this session")
)

// CarRepository defines the interface for catalog data operations
// Consumers define this interface, not the MongoDB implementation
type CarRepository interface {
	GetCar(ctx context.Context, id string) (*domain.Car, error)
	ListCars(ctx context.Context) ([]domain.Car, error)
	FeaturedCars(ctx context.Context) ([]domain.Car, error)
	CreateCar(ctx context.Context, car *domain.Car) error
	UpdateCar(ctx context.Context, car *domain.Car) error
	DeleteCar(ctx context.Context, id string) error
}

type PurchaseRepository interface {
	// CreatePurchase fails with ErrDuplicatePurchase when a record with the
	// same session id already exists.
	CreatePurchase(ctx context.Context, p *domain.Purchase) error
	GetPurchase(ctx context.Context, id string) (*domain.Purchase, error)
	ListPurchases(ctx context.Context) ([]domain.Purchase, error)
	DeletePurchase(ctx context.Context, id string) error
}

type ProfileRepository interface {
	GetProfile(ctx context.Context, userID string) (*domain.Profile, error)
	UpsertProfile(ctx context.Context, p *domain.Profile) error
	ListProfiles(ctx context.Context) ([]domain.Profile, error)
	DeleteProfile(ctx context.Context, userID string) error
	UpdateProfileName(ctx context.Context, userID, name string) error
	UpdateProfilePhoto(ctx context.Context, userID, photoURL string) error

	IsAdmin(ctx context.Context, userID string) (bool, error)
	GrantAdmin(ctx context.Context, userID, grantedBy string) error
	RevokeAdmin(ctx context.Context, userID string) error
}
