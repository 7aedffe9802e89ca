// Package mailer talks to the transactional-email provider. Delivery is
// best-effort: the provider accepts or rejects synchronously and callers are
// expected to log failures rather than propagate them.
package mailer

import "context"

type Message struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	HTML    string `json:"html"`
}

type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}
