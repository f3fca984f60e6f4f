package usecase

import (
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/freshcart/internal/config"
	"github.com/polkiloo/freshcart/internal/domain/repository"
	"github.com/polkiloo/freshcart/internal/metrics"
)

// Module provides core business use cases to the fx container.
var Module = fx.Provide(
	NewAuthUseCase,
	NewUserUseCase,
	NewCatalogUseCase,
	NewPaymentUseCase,
	newOrderUseCase,
	newLifecycleUseCase,
)

type orderParams struct {
	fx.In

	Orders repository.OrderRepository
	Events EventSink
	Logger *zap.Logger
}

func newOrderUseCase(p orderParams) *OrderUseCase {
	return NewOrderUseCase(p.Orders, p.Events, p.Logger.Named("orders"))
}

type lifecycleParams struct {
	fx.In

	Store   repository.LifecycleStore
	Events  EventSink
	Metrics *metrics.Metrics
	Config  *config.Config
	Logger  *zap.Logger
}

func newLifecycleUseCase(p lifecycleParams) *LifecycleUseCase {
	return NewLifecycleUseCase(p.Store, p.Events, p.Metrics, p.Config.Transitions, p.Logger.Named("lifecycle"))
}
