package events

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/freshcart/internal/config"
)

// Module exposes the order event publisher to the fx graph.
var Module = fx.Options(
	fx.Provide(newPublisher),
	fx.Invoke(registerLifecycle),
)

type publisherParams struct {
	fx.In

	Config *config.Config
	Logger *zap.Logger
}

func newPublisher(p publisherParams) Publisher {
	logger := p.Logger.Named("events")
	if len(p.Config.KafkaBrokers) == 0 {
		logger.Info("no kafka brokers configured, order events disabled")
		return NewNoopPublisher(logger)
	}
	logger.Info("publishing order events",
		zap.Strings("brokers", p.Config.KafkaBrokers),
		zap.String("topic", p.Config.EventsTopic),
	)
	return NewKafkaPublisher(p.Config.KafkaBrokers, p.Config.EventsTopic, logger)
}

func registerLifecycle(lc fx.Lifecycle, publisher Publisher) {
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return publisher.Close()
		},
	})
}
