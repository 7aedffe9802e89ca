package http

import (
	"context"
	"errors"

	"github.com/andrenobre07/zentorno-sub000/internal/cache"
	"github.com/andrenobre07/zentorno-sub000/internal/domain"
	"github.com/andrenobre07/zentorno-sub000/internal/identity"
	"github.com/andrenobre07/zentorno-sub000/internal/mailer"
	"github.com/andrenobre07/zentorno-sub000/internal/payment"
	"github.com/andrenobre07/zentorno-sub000/internal/repository"
)

// VerifierMock implements identity.Verifier
type VerifierMock struct {
	Identity *identity.Identity
	Err      error
}

func (v VerifierMock) Verify(_ context.Context, token string) (*identity.Identity, error) {
	if v.Err != nil {
		return nil, v.Err
	}
	if token == "" {
		return nil, identity.ErrInvalidToken
	}
	return v.Identity, nil
}

// ProfileRepoMock implements repository.ProfileRepository
type ProfileRepoMock struct {
	Admins   map[string]bool
	AdminErr error
}

func (m ProfileRepoMock) GetProfile(context.Context, string) (*domain.Profile, error) {
	return nil, repository.ErrProfileNotFound
}
func (m ProfileRepoMock) UpsertProfile(context.Context, *domain.Profile) error { return nil }
func (m ProfileRepoMock) ListProfiles(context.Context) ([]domain.Profile, error) {
	return nil, nil
}
func (m ProfileRepoMock) DeleteProfile(context.Context, string) error             { return nil }
func (m ProfileRepoMock) UpdateProfileName(context.Context, string, string) error { return nil }
func (m ProfileRepoMock) UpdateProfilePhoto(context.Context, string, string) error {
	return nil
}
func (m ProfileRepoMock) IsAdmin(_ context.Context, userID string) (bool, error) {
	if m.AdminErr != nil {
		return false, m.AdminErr
	}
	return m.Admins[userID], nil
}
func (m ProfileRepoMock) GrantAdmin(context.Context, string, string) error { return nil }
func (m ProfileRepoMock) RevokeAdmin(context.Context, string) error        { return nil }

// PurchaseRepoMock implements repository.PurchaseRepository
type PurchaseRepoMock struct {
	Created []*domain.Purchase
}

func (m *PurchaseRepoMock) CreatePurchase(_ context.Context, p *domain.Purchase) error {
	for _, existing := range m.Created {
		if existing.SessionID == p.SessionID {
			return repository.ErrDuplicatePurchase
		}
	}
	m.Created = append(m.Created, p)
	return nil
}

func (m *PurchaseRepoMock) GetPurchase(context.Context, string) (*domain.Purchase, error) {
	return nil, repository.ErrPurchaseNotFound
}

func (m *PurchaseRepoMock) ListPurchases(context.Context) ([]domain.Purchase, error) {
	return nil, nil
}

func (m *PurchaseRepoMock) DeletePurchase(context.Context, string) error {
	return errors.New("not implemented")
}

// CarRepoMock implements repository.CarRepository
type CarRepoMock struct {
	Cars map[string]*domain.Car
}

func (m CarRepoMock) GetCar(_ context.Context, id string) (*domain.Car, error) {
	car, ok := m.Cars[id]
	if !ok {
		return nil, repository.ErrCarNotFound
	}
	return car, nil
}
func (m CarRepoMock) ListCars(context.Context) ([]domain.Car, error)     { return nil, nil }
func (m CarRepoMock) FeaturedCars(context.Context) ([]domain.Car, error) { return nil, nil }
func (m CarRepoMock) CreateCar(context.Context, *domain.Car) error       { return nil }
func (m CarRepoMock) UpdateCar(context.Context, *domain.Car) error       { return nil }
func (m CarRepoMock) DeleteCar(context.Context, string) error            { return nil }

// CarCacheMock implements cache.CarCache and always misses.
type CarCacheMock struct{}

func (CarCacheMock) Get(context.Context, string) (*domain.Car, error) {
	return nil, cache.ErrCacheMiss
}
func (CarCacheMock) Set(context.Context, *domain.Car) error { return nil }
func (CarCacheMock) Delete(context.Context, string) error   { return nil }

// GatewayMock implements payment.Gateway
type GatewayMock struct {
	Session     *payment.Session
	LineItems   []payment.LineItem
	LastRequest *payment.SessionRequest
	Err         error
}

func (g *GatewayMock) CreateSession(_ context.Context, req *payment.SessionRequest) (*payment.Session, error) {
	g.LastRequest = req
	return g.Session, g.Err
}

func (g *GatewayMock) SessionLineItems(context.Context, string) ([]payment.LineItem, error) {
	return g.LineItems, g.Err
}

func (g *GatewayMock) Customer(context.Context, string) (*payment.Customer, error) {
	return &payment.Customer{Email: "buyer@example.com"}, g.Err
}

// MailerMock implements mailer.Mailer
type MailerMock struct {
	Sent []*mailer.Message
}

func (m *MailerMock) Send(_ context.Context, msg *mailer.Message) error {
	m.Sent = append(m.Sent, msg)
	return nil
}

// PublisherMock implements publisher.Publisher
type PublisherMock struct {
	Published []*domain.Purchase
}

func (p *PublisherMock) PublishPurchase(_ context.Context, purchase *domain.Purchase) error {
	p.Published = append(p.Published, purchase)
	return nil
}
