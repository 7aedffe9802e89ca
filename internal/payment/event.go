package payment

import (
	"encoding/json"
	"fmt"
)

const EventCheckoutCompleted = "checkout.session.completed"

type CustomerDetails struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

type ShippingDetails struct {
	Name    string   `json:"name"`
	Address *Address `json:"address,omitempty"`
}

// CheckoutSession is the session object carried by completion events and
// returned by session lookups.
type CheckoutSession struct {
	ID              string           `json:"id"`
	ClientReference string           `json:"client_reference_id"`
	CustomerID      string           `json:"customer"`
	CustomerDetails *CustomerDetails `json:"customer_details,omitempty"`
	AmountTotal     int64            `json:"amount_total"`
	Currency        string           `json:"currency"`
	PaymentStatus   string           `json:"payment_status"`
	Shipping        *ShippingDetails `json:"shipping_details,omitempty"`
}

type Event struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Data struct {
		Object CheckoutSession `json:"object"`
	} `json:"data"`
}

func ParseEvent(body []byte) (*Event, error) {
	var ev Event
	if err := json.Unmarshal(body, &ev); err != nil {
		return nil, fmt.Errorf("failed to parse webhook event: %w", err)
	}
	if ev.Type == "" {
		return nil, fmt.Errorf("webhook event has no type")
	}
	return &ev, nil
}
