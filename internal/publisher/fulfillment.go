// Package publisher hands recorded purchases to downstream fulfillment over
// Kafka. Publishing is best-effort; a recorded purchase is never rolled back
// because the handoff failed.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/andrenobre07/zentorno-sub000/internal/domain"
)

type Publisher interface {
	PublishPurchase(ctx context.Context, p *domain.Purchase) error
}

type FulfillmentPublisher struct {
	writer *kafka.Writer
}

func NewFulfillmentPublisher(brokers ...string) *FulfillmentPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  "fulfillment",
		Balancer:               &kafka.LeastBytes{},
		AllowAutoTopicCreation: true,
	}
	return &FulfillmentPublisher{writer: w}
}

func (p *FulfillmentPublisher) PublishPurchase(ctx context.Context, purchase *domain.Purchase) error {
	payload := map[string]interface{}{
		"purchase_id":  purchase.ID,
		"session_id":   purchase.SessionID,
		"user_id":      purchase.UserID,
		"email":        purchase.Email,
		"items":        purchase.Items,
		"total_amount": purchase.Amount,
		"currency":     purchase.Currency,
		"recorded_at":  time.Now(),
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal fulfillment payload: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(purchase.SessionID),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to publish fulfillment event: %w", err)
	}
	return nil
}

func (p *FulfillmentPublisher) Close() {
	err := p.writer.Close()
	if err != nil {
		fmt.Printf("error closing kafka writer: %v\n", err)
	}
}
