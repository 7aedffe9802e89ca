// Package payment wraps the hosted payment gateway. Amounts cross this
// boundary in integer minor units; conversion to major units happens in the
// service layer and only ever on gateway-supplied values.
package payment

import (
	"context"
	"errors"
)

// MinimumAmountMinor is the smallest chargeable amount the gateway accepts
// (roughly €0.50 in minor units).
const MinimumAmountMinor int64 = 50

var ErrSessionNotFound = errors.New("payment session not found")

// SessionRequest describes a hosted checkout session with a single aggregated
// line item. ClientReference carries the purchaser id so the completion
// webhook can attribute the purchase.
type SessionRequest struct {
	ProductName     string `json:"product_name"`
	Description     string `json:"description"`
	ImageURL        string `json:"image_url,omitempty"`
	AmountMinor     int64  `json:"amount"`
	Currency        string `json:"currency"`
	Quantity        int64  `json:"quantity"`
	ClientReference string `json:"client_reference_id"`
	CustomerEmail   string `json:"customer_email,omitempty"`
	SuccessURL      string `json:"success_url"`
	CancelURL       string `json:"cancel_url"`
	CollectShipping bool   `json:"collect_shipping_address"`
}

type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

type LineItem struct {
	Name        string `json:"name"`
	AmountMinor int64  `json:"amount_total"`
	Currency    string `json:"currency"`
	Quantity    int64  `json:"quantity"`
}

type Address struct {
	Line1      string `json:"line1"`
	Line2      string `json:"line2"`
	City       string `json:"city"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

type Customer struct {
	ID      string   `json:"id"`
	Email   string   `json:"email"`
	Name    string   `json:"name"`
	Address *Address `json:"address,omitempty"`
}

type Gateway interface {
	CreateSession(ctx context.Context, req *SessionRequest) (*Session, error)
	SessionLineItems(ctx context.Context, sessionID string) ([]LineItem, error)
	Customer(ctx context.Context, customerID string) (*Customer, error)
}
