package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/andrenobre07/zentorno-sub000/internal/identity"
	"github.com/andrenobre07/zentorno-sub000/internal/payment"
)

type CheckoutRequest struct {
	CarID    string   `json:"car_id"`
	Color    string   `json:"color,omitempty"`
	Interior string   `json:"interior,omitempty"`
	Packages []string `json:"packages,omitempty"`
}

type CheckoutResponse struct {
	SessionID   string `json:"session_id"`
	RedirectURL string `json:"redirect_url"`
}

type CheckoutService struct {
	catalog    *CatalogService
	gateway    payment.Gateway
	currency   string
	successURL string
	cancelURL  string
	log        *slog.Logger
}

func NewCheckoutService(catalog *CatalogService, gateway payment.Gateway, currency, successURL, cancelURL string, log *slog.Logger) *CheckoutService {
	return &CheckoutService{
		catalog:    catalog,
		gateway:    gateway,
		currency:   currency,
		successURL: successURL,
		cancelURL:  cancelURL,
		log:        log,
	}
}

// InitiateCheckout prices the configuration server-side and requests a hosted
// payment session. Nothing is written locally; the completion webhook is what
// creates the purchase record.
func (s *CheckoutService) InitiateCheckout(ctx context.Context, caller *identity.Identity, req *CheckoutRequest) (*CheckoutResponse, error) {
	if caller == nil {
		return nil, ErrUnauthenticated
	}
	if req == nil || req.CarID == "" {
		return nil, fmt.Errorf("%w: car_id is required", ErrInvalidRequest)
	}

	car, err := s.catalog.GetCar(ctx, req.CarID)
	if err != nil {
		return nil, err
	}

	cfg, err := car.Resolve(req.Color, req.Interior, req.Packages)
	if err != nil {
		return nil, err
	}

	total := cfg.Total(car)
	amountMinor := total.MinorUnits()
	if amountMinor < payment.MinimumAmountMinor {
		return nil, fmt.Errorf("%w: %s %s", ErrAmountBelowMinimum, total, s.currency)
	}

	// One line item carrying the aggregated total; the gateway never sees a
	// per-option breakdown.
	session, err := s.gateway.CreateSession(ctx, &payment.SessionRequest{
		ProductName:     car.Name,
		Description:     cfg.Summary(),
		ImageURL:        car.ImageURL,
		AmountMinor:     amountMinor,
		Currency:        s.currency,
		Quantity:        1,
		ClientReference: caller.UserID,
		CustomerEmail:   caller.Email,
		SuccessURL:      s.successURL,
		CancelURL:       s.cancelURL,
		CollectShipping: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create payment session: %w", err)
	}

	s.log.InfoContext(ctx, "checkout session created",
		"session_id", session.ID,
		"car_id", car.ID,
		"user_id", caller.UserID,
		"amount_minor", amountMinor,
	)

	return &CheckoutResponse{
		SessionID:   session.ID,
		RedirectURL: session.URL,
	}, nil
}
