package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/polkiloo/freshcart/internal/domain/model"
)

// Publisher delivers committed order lifecycle events to downstream consumers.
type Publisher interface {
	Publish(ctx context.Context, event model.OrderEvent) error
	Close() error
}

const schemaVersion = "1"

// envelope is the wire form of an order event.
type envelope struct {
	EventID       string   `json:"event_id"`
	Type          string   `json:"type"`
	OrderID       int64    `json:"order_id"`
	PaymentID     int64    `json:"payment_id,omitempty"`
	From          string   `json:"from,omitempty"`
	To            string   `json:"to,omitempty"`
	PaymentStatus string   `json:"payment_status,omitempty"`
	SideEffects   []string `json:"side_effects"`
	OccurredAt    string   `json:"occurred_at"`
}

// Encode renders the event as JSON.
func Encode(event model.OrderEvent) ([]byte, error) {
	effects := make([]string, 0, len(event.SideEffects))
	for _, e := range event.SideEffects {
		effects = append(effects, string(e))
	}
	return json.Marshal(envelope{
		EventID:       event.ID,
		Type:          string(event.Type),
		OrderID:       event.OrderID,
		PaymentID:     event.PaymentID,
		From:          string(event.From),
		To:            string(event.To),
		PaymentStatus: string(event.PaymentStatus),
		SideEffects:   effects,
		OccurredAt:    event.OccurredAt.UTC().Format(time.RFC3339Nano),
	})
}
