package di

import (
	"go.uber.org/fx"

	"github.com/polkiloo/freshcart/internal/adapter/events"
	"github.com/polkiloo/freshcart/internal/app"
	"github.com/polkiloo/freshcart/internal/config"
	"github.com/polkiloo/freshcart/internal/logger"
	"github.com/polkiloo/freshcart/internal/metrics"
	"github.com/polkiloo/freshcart/internal/pkg/auth"
	"github.com/polkiloo/freshcart/internal/server/http/handlers"
	"github.com/polkiloo/freshcart/internal/server/http/router"
	"github.com/polkiloo/freshcart/internal/storage/postgres"
	"github.com/polkiloo/freshcart/internal/usecase"
)

// Module assembles the service graph. Hooks stop in reverse order, so the
// HTTP server and event dispatcher drain before the publisher and the pool close.
func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		metrics.Module,
		auth.Module,
		postgres.Module,
		events.Module,
		usecase.Module,
		fx.Provide(func(f *app.ShopFacade) handlers.ShopFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
