package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/andrenobre07/zentorno-sub000/internal/domain"
	"github.com/andrenobre07/zentorno-sub000/internal/mailer"
	"github.com/andrenobre07/zentorno-sub000/internal/payment"
	"github.com/andrenobre07/zentorno-sub000/internal/publisher"
	"github.com/andrenobre07/zentorno-sub000/internal/repository"
)

// FinalizeService consumes payment-gateway completion events. Delivery is
// at-least-once; the unique index on session_id is what keeps redeliveries
// from producing duplicate purchase records.
type FinalizeService struct {
	purchases     repository.PurchaseRepository
	gateway       payment.Gateway
	mailer        mailer.Mailer
	publisher     publisher.Publisher
	webhookSecret string
	log           *slog.Logger
}

func NewFinalizeService(
	purchases repository.PurchaseRepository,
	gateway payment.Gateway,
	m mailer.Mailer,
	pub publisher.Publisher,
	webhookSecret string,
	log *slog.Logger,
) *FinalizeService {
	return &FinalizeService{
		purchases:     purchases,
		gateway:       gateway,
		mailer:        m,
		publisher:     pub,
		webhookSecret: webhookSecret,
		log:           log,
	}
}

// HandleEvent runs the finalization workflow over the raw webhook bytes.
// The returned status tells the HTTP layer how to answer the gateway:
// REJECTED and RECORD_FAILED map to non-2xx, everything else acknowledges.
func (s *FinalizeService) HandleEvent(ctx context.Context, body []byte, signatureHeader string) (domain.FinalizeStatus, error) {
	// The signature covers the exact byte sequence; body must arrive unparsed.
	if err := payment.VerifySignature(body, signatureHeader, s.webhookSecret); err != nil {
		return domain.FinalizeStatusRejected, err
	}

	event, err := payment.ParseEvent(body)
	if err != nil {
		return domain.FinalizeStatusRejected, err
	}

	if event.Type != payment.EventCheckoutCompleted {
		s.log.InfoContext(ctx, "ignoring webhook event", "event_id", event.ID, "type", event.Type)
		return domain.FinalizeStatusIgnored, nil
	}

	session := event.Data.Object

	if session.ClientReference == "" {
		// No way to attribute the purchase. Skip the record but acknowledge,
		// otherwise the gateway redelivers forever; the receipt still goes out
		// on whatever customer data the event carries.
		s.log.ErrorContext(ctx, "completed session has no client reference, purchase will not be recorded",
			"event_id", event.ID, "session_id", session.ID)
		s.sendReceipt(ctx, &session, nil)
		return domain.FinalizeStatusUnattributed, nil
	}

	purchase, err := s.recordPurchase(ctx, &session)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicatePurchase) {
			s.log.InfoContext(ctx, "duplicate delivery, purchase already recorded", "session_id", session.ID)
			return domain.FinalizeStatusAlreadyRecorded, nil
		}
		return domain.FinalizeStatusRecordFailed, err
	}

	s.log.InfoContext(ctx, "purchase recorded",
		"purchase_id", purchase.ID,
		"session_id", purchase.SessionID,
		"user_id", purchase.UserID,
		"amount", purchase.Amount.String(),
		"currency", purchase.Currency,
	)

	if err := s.publisher.PublishPurchase(ctx, purchase); err != nil {
		s.log.ErrorContext(ctx, "fulfillment publish failed", "purchase_id", purchase.ID, "error", err)
	}

	if ok := s.sendReceipt(ctx, &session, purchase); !ok {
		return domain.FinalizeStatusNotifyFailed, nil
	}
	return domain.FinalizeStatusRecorded, nil
}

// recordPurchase refetches the session's line items from the gateway rather
// than trusting anything client-side, then writes the record conditionally.
func (s *FinalizeService) recordPurchase(ctx context.Context, session *payment.CheckoutSession) (*domain.Purchase, error) {
	gatewayItems, err := s.gateway.SessionLineItems(ctx, session.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch line items for session %s: %w", session.ID, err)
	}

	items := make([]domain.LineItem, len(gatewayItems))
	for i, it := range gatewayItems {
		items[i] = domain.LineItem{
			Name:     it.Name,
			Amount:   domain.MoneyFromMinorUnits(it.AmountMinor),
			Currency: it.Currency,
			Quantity: it.Quantity,
		}
	}

	email := ""
	if session.CustomerDetails != nil {
		email = session.CustomerDetails.Email
	}

	purchase := &domain.Purchase{
		UserID:        session.ClientReference,
		Email:         email,
		SessionID:     session.ID,
		Amount:        domain.MoneyFromMinorUnits(session.AmountTotal),
		Currency:      session.Currency,
		Items:         items,
		PaymentStatus: session.PaymentStatus,
		Shipping:      shippingAddress(session.Shipping),
	}

	if err := s.purchases.CreatePurchase(ctx, purchase); err != nil {
		return nil, err
	}
	return purchase, nil
}

// sendReceipt is a best-effort side effect: failures are logged and reported
// through the returned flag, never through an error that could fail the
// webhook response.
func (s *FinalizeService) sendReceipt(ctx context.Context, session *payment.CheckoutSession, purchase *domain.Purchase) bool {
	email := ""
	if session.CustomerDetails != nil {
		email = session.CustomerDetails.Email
	}

	// The customer record may carry a fuller address than the event payload.
	var address *payment.Address
	if session.CustomerID != "" {
		customer, err := s.gateway.Customer(ctx, session.CustomerID)
		if err != nil {
			s.log.WarnContext(ctx, "failed to fetch customer for receipt", "session_id", session.ID, "error", err)
		} else {
			address = customer.Address
			if email == "" {
				email = customer.Email
			}
		}
	}
	if address == nil && session.Shipping != nil {
		address = session.Shipping.Address
	}

	if email == "" {
		s.log.ErrorContext(ctx, "no recipient email for receipt", "session_id", session.ID)
		return false
	}

	msg := &mailer.Message{
		To:      email,
		Subject: "Your order confirmation",
		HTML:    receiptHTML(session, purchase, address),
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		s.log.ErrorContext(ctx, "receipt dispatch failed", "session_id", session.ID, "error", err)
		return false
	}
	return true
}

func receiptHTML(session *payment.CheckoutSession, purchase *domain.Purchase, address *payment.Address) string {
	var b strings.Builder
	b.WriteString("<h1>Thank you for your order</h1>")

	total := domain.MoneyFromMinorUnits(session.AmountTotal)
	fmt.Fprintf(&b, "<p>Total: %s %s</p>", total, strings.ToUpper(session.Currency))

	if purchase != nil {
		b.WriteString("<ul>")
		for _, item := range purchase.Items {
			fmt.Fprintf(&b, "<li>%d x %s - %s %s</li>",
				item.Quantity, item.Name, item.Amount, strings.ToUpper(item.Currency))
		}
		b.WriteString("</ul>")
	}

	if address != nil {
		fmt.Fprintf(&b, "<p>Shipping to: %s, %s %s, %s</p>",
			address.Line1, address.PostalCode, address.City, address.Country)
	}
	return b.String()
}

func shippingAddress(shipping *payment.ShippingDetails) *domain.Address {
	if shipping == nil || shipping.Address == nil {
		return nil
	}
	return &domain.Address{
		Line1:      shipping.Address.Line1,
		Line2:      shipping.Address.Line2,
		City:       shipping.Address.City,
		PostalCode: shipping.Address.PostalCode,
		Country:    shipping.Address.Country,
	}
}
