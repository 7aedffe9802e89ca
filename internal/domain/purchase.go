package domain

import "time"

type LineItem struct {
	Name     string `bson:"name" json:"name"`
	Amount   Money  `bson:"amount" json:"amount"`
	Currency string `bson:"currency" json:"currency"`
	Quantity int64  `bson:"quantity" json:"quantity"`
}

type Address struct {
	Line1      string `bson:"line1" json:"line1"`
	Line2      string `bson:"line2,omitempty" json:"line2,omitempty"`
	City       string `bson:"city" json:"city"`
	PostalCode string `bson:"postal_code" json:"postal_code"`
	Country    string `bson:"country" json:"country"`
}

// Purchase is immutable after creation. SessionID is the payment session id
// and doubles as the idempotency key: the store enforces a unique index on it.
type Purchase struct {
	ID            string     `bson:"_id" json:"id"`
	UserID        string     `bson:"user_id" json:"user_id"`
	Email         string     `bson:"email" json:"email"`
	SessionID     string     `bson:"session_id" json:"session_id"`
	Amount        Money      `bson:"amount" json:"amount"`
	Currency      string     `bson:"currency" json:"currency"`
	Items         []LineItem `bson:"items" json:"items"`
	PaymentStatus string     `bson:"payment_status" json:"payment_status"`
	Shipping      *Address   `bson:"shipping,omitempty" json:"shipping,omitempty"`
	CreatedAt     time.Time  `bson:"created_at" json:"created_at"`
}
