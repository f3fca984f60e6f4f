package events

import (
	"context"

	"go.uber.org/zap"

	"github.com/polkiloo/freshcart/internal/domain/model"
)

// NoopPublisher discards events when no broker is configured.
type NoopPublisher struct {
	logger *zap.Logger
}

func NewNoopPublisher(logger *zap.Logger) *NoopPublisher {
	return &NoopPublisher{logger: logger}
}

func (p *NoopPublisher) Publish(_ context.Context, event model.OrderEvent) error {
	p.logger.Debug("order event discarded",
		zap.String("type", string(event.Type)),
		zap.Int64("order_id", event.OrderID),
	)
	return nil
}

func (p *NoopPublisher) Close() error { return nil }
