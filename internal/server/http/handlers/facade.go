package handlers

import (
	"context"

	"github.com/polkiloo/freshcart/internal/domain/model"
	pkgAuth "github.com/polkiloo/freshcart/internal/pkg/auth"
)

// AuthFacade describes authentication capabilities required by handlers.
type AuthFacade interface {
	Register(ctx context.Context, reg model.Registration) (*model.User, error)
	Authenticate(ctx context.Context, email, password string) (*model.User, string, error)
	ParseToken(token string) (pkgAuth.Claims, error)
}

// UserFacade exposes profiles and the distributor directory.
type UserFacade interface {
	Profile(ctx context.Context, userID int64) (*model.User, error)
	UpdateProfile(ctx context.Context, userID int64, update model.ProfileUpdate) error
	Distributors(ctx context.Context) ([]model.User, error)
}

// CatalogFacade exposes catalog browsing and distributor product management.
type CatalogFacade interface {
	Catalog(ctx context.Context) ([]model.CatalogEntry, error)
	DistributorProducts(ctx context.Context, distributorID int64) ([]model.DistributorProduct, error)
	AddProduct(ctx context.Context, product model.NewProduct) (int64, error)
	UpdateVariant(ctx context.Context, variantID int64, update model.VariantUpdate) error
	RetireVariant(ctx context.Context, variantID int64) error
}

// OrderFacade encapsulates order placement and listings.
type OrderFacade interface {
	PlaceOrder(ctx context.Context, order model.NewOrder) (*model.Order, error)
	ShopOrders(ctx context.Context, userID int64) ([]model.ShopOrder, error)
	DistributorOrders(ctx context.Context, distributorID int64) ([]model.DistributorOrder, error)
	DeletedOrders(ctx context.Context, distributorID int64) ([]model.DistributorOrder, error)
}

// PaymentFacade provides payment listings.
type PaymentFacade interface {
	ShopPayments(ctx context.Context, userID int64) ([]model.ShopPayment, error)
	DistributorPayments(ctx context.Context, distributorID int64) ([]model.DistributorPayment, error)
}

// LifecycleFacade drives order and payment status changes.
type LifecycleFacade interface {
	TransitionOrder(ctx context.Context, orderID int64, status string) (model.TransitionResult, error)
	DeleteOrder(ctx context.Context, orderID int64) error
	RestoreOrder(ctx context.Context, orderID int64) error
	UpdatePayment(ctx context.Context, paymentID int64, status string) (model.PaymentStatus, error)
}

// HealthFacade reports backend readiness.
type HealthFacade interface {
	Ping(ctx context.Context) error
}

// ShopFacade aggregates the full set of operations used across handlers.
type ShopFacade interface {
	AuthFacade
	UserFacade
	CatalogFacade
	OrderFacade
	PaymentFacade
	LifecycleFacade
	HealthFacade
}
