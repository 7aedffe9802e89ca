package service

import (
	"context"
	"sync"

	"github.com/andrenobre07/zentorno-sub000/internal/cache"
	"github.com/andrenobre07/zentorno-sub000/internal/domain"
	"github.com/andrenobre07/zentorno-sub000/internal/mailer"
	"github.com/andrenobre07/zentorno-sub000/internal/payment"
	"github.com/andrenobre07/zentorno-sub000/internal/repository"
)

// MockPurchaseRepository implements repository.PurchaseRepository; it mimics
// the unique session_id index so dedup behavior is observable in tests.
type MockPurchaseRepository struct {
	mu        sync.Mutex
	Purchases []*domain.Purchase
	CreateErr error
	DeleteErr error
}

func (m *MockPurchaseRepository) CreatePurchase(_ context.Context, p *domain.Purchase) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CreateErr != nil {
		return m.CreateErr
	}
	for _, existing := range m.Purchases {
		if existing.SessionID == p.SessionID {
			return repository.ErrDuplicatePurchase
		}
	}
	if p.ID == "" {
		p.ID = "purchase-" + p.SessionID
	}
	m.Purchases = append(m.Purchases, p)
	return nil
}

func (m *MockPurchaseRepository) GetPurchase(_ context.Context, id string) (*domain.Purchase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.Purchases {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, repository.ErrPurchaseNotFound
}

func (m *MockPurchaseRepository) ListPurchases(_ context.Context) ([]domain.Purchase, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.Purchase, len(m.Purchases))
	for i, p := range m.Purchases {
		out[i] = *p
	}
	return out, nil
}

func (m *MockPurchaseRepository) DeletePurchase(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	for i, p := range m.Purchases {
		if p.ID == id {
			m.Purchases = append(m.Purchases[:i], m.Purchases[i+1:]...)
			return nil
		}
	}
	return repository.ErrPurchaseNotFound
}

// MockGateway implements payment.Gateway
type MockGateway struct {
	Session      *payment.Session
	SessionErr   error
	LastRequest  *payment.SessionRequest
	LineItems    []payment.LineItem
	LineItemsErr error
	CustomerRec  *payment.Customer
	CustomerErr  error
}

func (m *MockGateway) CreateSession(_ context.Context, req *payment.SessionRequest) (*payment.Session, error) {
	m.LastRequest = req
	if m.SessionErr != nil {
		return nil, m.SessionErr
	}
	return m.Session, nil
}

func (m *MockGateway) SessionLineItems(_ context.Context, _ string) ([]payment.LineItem, error) {
	if m.LineItemsErr != nil {
		return nil, m.LineItemsErr
	}
	return m.LineItems, nil
}

func (m *MockGateway) Customer(_ context.Context, _ string) (*payment.Customer, error) {
	if m.CustomerErr != nil {
		return nil, m.CustomerErr
	}
	return m.CustomerRec, nil
}

// MockMailer implements mailer.Mailer
type MockMailer struct {
	Sent    []*mailer.Message
	SendErr error
}

func (m *MockMailer) Send(_ context.Context, msg *mailer.Message) error {
	if m.SendErr != nil {
		return m.SendErr
	}
	m.Sent = append(m.Sent, msg)
	return nil
}

// MockPublisher implements publisher.Publisher
type MockPublisher struct {
	Published  []*domain.Purchase
	PublishErr error
}

func (m *MockPublisher) PublishPurchase(_ context.Context, p *domain.Purchase) error {
	if m.PublishErr != nil {
		return m.PublishErr
	}
	m.Published = append(m.Published, p)
	return nil
}

// MockCarRepository implements repository.CarRepository
type MockCarRepository struct {
	Cars map[string]*domain.Car
	Err  error
}

func (m *MockCarRepository) GetCar(_ context.Context, id string) (*domain.Car, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	car, ok := m.Cars[id]
	if !ok {
		return nil, repository.ErrCarNotFound
	}
	return car, nil
}

func (m *MockCarRepository) ListCars(_ context.Context) ([]domain.Car, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var cars []domain.Car
	for _, c := range m.Cars {
		cars = append(cars, *c)
	}
	return cars, nil
}

func (m *MockCarRepository) FeaturedCars(_ context.Context) ([]domain.Car, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var cars []domain.Car
	for _, c := range m.Cars {
		if c.Featured {
			cars = append(cars, *c)
		}
	}
	return cars, nil
}

func (m *MockCarRepository) CreateCar(_ context.Context, car *domain.Car) error {
	if m.Err != nil {
		return m.Err
	}
	if car.ID == "" {
		car.ID = "car-" + car.Name
	}
	m.Cars[car.ID] = car
	return nil
}

func (m *MockCarRepository) UpdateCar(_ context.Context, car *domain.Car) error {
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Cars[car.ID]; !ok {
		return repository.ErrCarNotFound
	}
	m.Cars[car.ID] = car
	return nil
}

func (m *MockCarRepository) DeleteCar(_ context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	if _, ok := m.Cars[id]; !ok {
		return repository.ErrCarNotFound
	}
	delete(m.Cars, id)
	return nil
}

// MockCarCache implements cache.CarCache
type MockCarCache struct {
	mu   sync.Mutex
	cars map[string]*domain.Car
	Err  error
}

func (m *MockCarCache) Get(_ context.Context, carID string) (*domain.Car, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return nil, m.Err
	}
	car, ok := m.cars[carID]
	if !ok {
		return nil, cache.ErrCacheMiss
	}
	return car, nil
}

func (m *MockCarCache) Set(_ context.Context, car *domain.Car) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.cars == nil {
		m.cars = map[string]*domain.Car{}
	}
	m.cars[car.ID] = car
	return m.Err
}

func (m *MockCarCache) Delete(_ context.Context, carID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.cars, carID)
	return m.Err
}

// MockAccounts implements identity.Accounts
type MockAccounts struct {
	DeleteErr    error
	NameErr      error
	PhotoErr     error
	Deleted      []string
	RenamedTo    string
	PhotoSetTo   string
	UpdatedUsers []string
}

func (m *MockAccounts) DeleteAccount(_ context.Context, userID string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	m.Deleted = append(m.Deleted, userID)
	return nil
}

func (m *MockAccounts) UpdateName(_ context.Context, userID, name string) error {
	if m.NameErr != nil {
		return m.NameErr
	}
	m.RenamedTo = name
	m.UpdatedUsers = append(m.UpdatedUsers, userID)
	return nil
}

func (m *MockAccounts) UpdatePhoto(_ context.Context, userID, photoURL string) error {
	if m.PhotoErr != nil {
		return m.PhotoErr
	}
	m.PhotoSetTo = photoURL
	m.UpdatedUsers = append(m.UpdatedUsers, userID)
	return nil
}

// MockProfileRepository implements repository.ProfileRepository
type MockProfileRepository struct {
	mu         sync.Mutex
	Profiles   map[string]*domain.Profile
	Admins     map[string]bool
	UpsertErr  error
	DeleteErr  error
	AdminErr   error
	RevokeErr  error
	RevokedIDs []string
}

func (m *MockProfileRepository) GetProfile(_ context.Context, userID string) (*domain.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.Profiles[userID]
	if !ok {
		return nil, repository.ErrProfileNotFound
	}
	return p, nil
}

func (m *MockProfileRepository) UpsertProfile(_ context.Context, p *domain.Profile) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.UpsertErr != nil {
		return m.UpsertErr
	}
	if m.Profiles == nil {
		m.Profiles = map[string]*domain.Profile{}
	}
	m.Profiles[p.UserID] = p
	return nil
}

func (m *MockProfileRepository) ListProfiles(_ context.Context) ([]domain.Profile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.Profile
	for _, p := range m.Profiles {
		out = append(out, *p)
	}
	return out, nil
}

func (m *MockProfileRepository) DeleteProfile(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if _, ok := m.Profiles[userID]; !ok {
		return repository.ErrProfileNotFound
	}
	delete(m.Profiles, userID)
	return nil
}

func (m *MockProfileRepository) UpdateProfileName(_ context.Context, userID, name string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.Profiles[userID]
	if !ok {
		return repository.ErrProfileNotFound
	}
	p.Name = name
	return nil
}

func (m *MockProfileRepository) UpdateProfilePhoto(_ context.Context, userID, photoURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.Profiles[userID]
	if !ok {
		return repository.ErrProfileNotFound
	}
	p.PhotoURL = photoURL
	return nil
}

func (m *MockProfileRepository) IsAdmin(_ context.Context, userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AdminErr != nil {
		return false, m.AdminErr
	}
	return m.Admins[userID], nil
}

func (m *MockProfileRepository) GrantAdmin(_ context.Context, userID, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Admins == nil {
		m.Admins = map[string]bool{}
	}
	m.Admins[userID] = true
	return nil
}

func (m *MockProfileRepository) RevokeAdmin(_ context.Context, userID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.RevokeErr != nil {
		return m.RevokeErr
	}
	delete(m.Admins, userID)
	m.RevokedIDs = append(m.RevokedIDs, userID)
	return nil
}
