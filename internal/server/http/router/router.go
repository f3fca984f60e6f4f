package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/polkiloo/freshcart/internal/config"
	"github.com/polkiloo/freshcart/internal/metrics"
	"github.com/polkiloo/freshcart/internal/server/http/handlers"
	"github.com/polkiloo/freshcart/internal/server/http/middleware"
)

const metricsPath = "/metrics"

type routerParams struct {
	fx.In

	Facade  handlers.ShopFacade
	Config  *config.Config
	Metrics *metrics.Metrics
	Logger  *zap.Logger
}

// Setup configures gin router with handlers and middleware.
func Setup(p routerParams) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	logger := p.Logger.Named("http")
	engine.Use(gin.Recovery())
	engine.Use(middleware.AssignRequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics(p.Metrics))
	if len(p.Config.AllowedOrigins) > 0 {
		engine.Use(cors.New(corsConfig(p.Config.AllowedOrigins)))
	}
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{metricsPath})))

	authHandler := handlers.NewAuthHandler(p.Facade, logger)
	userHandler := handlers.NewUserHandler(p.Facade, logger)
	catalogHandler := handlers.NewCatalogHandler(p.Facade, logger)
	orderHandler := handlers.NewOrderHandler(p.Facade, logger)
	paymentHandler := handlers.NewPaymentHandler(p.Facade, logger)
	lifecycleHandler := handlers.NewLifecycleHandler(p.Facade, logger)
	healthHandler := handlers.NewHealthHandler(p.Facade, logger)

	engine.GET("/", healthHandler.Root)
	engine.GET("/healthz", healthHandler.Ready)
	engine.GET(metricsPath, gin.WrapH(p.Metrics.Handler()))

	engine.POST("/register", authHandler.Register)
	engine.POST("/login", authHandler.Login)
	engine.GET("/catalog", catalogHandler.Catalog)
	engine.GET("/distributors", userHandler.Distributors)

	account := engine.Group("")
	if p.Config.RequireAuth {
		account.Use(middleware.AuthRequired(p.Facade))
	}
	account.GET("/user/:user_id", userHandler.Profile)
	account.PUT("/user/:user_id", userHandler.UpdateProfile)
	account.POST("/place_order", orderHandler.Place)
	account.GET("/orders/:user_id", orderHandler.ShopOrders)
	account.GET("/payments/:user_id", paymentHandler.ShopPayments)

	distributor := account.Group("/distributor")
	distributor.GET("/products/:distributor_id", catalogHandler.Products)
	distributor.POST("/add_product", catalogHandler.AddProduct)
	distributor.PUT("/update_product/:variant_id", catalogHandler.UpdateProduct)
	distributor.DELETE("/delete_product/:variant_id", catalogHandler.DeleteProduct)
	distributor.GET("/orders/:distributor_id", orderHandler.DistributorOrders)
	distributor.GET("/deleted_orders/:distributor_id", orderHandler.DeletedOrders)
	distributor.GET("/payments/:distributor_id", paymentHandler.DistributorPayments)
	distributor.PUT("/update_status/:order_id", lifecycleHandler.UpdateStatus)
	distributor.PUT("/delete_order/:order_id", lifecycleHandler.DeleteOrder)
	distributor.PUT("/restore_order/:order_id", lifecycleHandler.RestoreOrder)
	distributor.PUT("/update_payment/:payment_id", lifecycleHandler.UpdatePayment)

	return engine
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Content-Encoding"},
		ExposeHeaders:    []string{"Authorization", middleware.RequestIDHeader},
		AllowCredentials: true,
	}
	if len(origins) == 1 && origins[0] == "*" {
		// wildcard plus credentials: echo the request origin
		cfg.AllowOriginFunc = func(string) bool { return true }
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
