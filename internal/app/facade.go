package app

import (
	"context"

	"go.uber.org/fx"

	"github.com/polkiloo/freshcart/internal/domain/model"
	pkgAuth "github.com/polkiloo/freshcart/internal/pkg/auth"
	"github.com/polkiloo/freshcart/internal/usecase"
)

// HealthChecker reports whether the backing database is reachable.
type HealthChecker interface {
	HealthCheck(ctx context.Context) error
}

// ShopFacade is the single entry point the HTTP layer talks to.
type ShopFacade struct {
	auth      *usecase.AuthUseCase
	users     *usecase.UserUseCase
	catalog   *usecase.CatalogUseCase
	orders    *usecase.OrderUseCase
	payments  *usecase.PaymentUseCase
	lifecycle *usecase.LifecycleUseCase
	health    HealthChecker
}

type facadeParams struct {
	fx.In

	Auth      *usecase.AuthUseCase
	Users     *usecase.UserUseCase
	Catalog   *usecase.CatalogUseCase
	Orders    *usecase.OrderUseCase
	Payments  *usecase.PaymentUseCase
	Lifecycle *usecase.LifecycleUseCase
	Health    HealthChecker
}

func NewShopFacade(p facadeParams) *ShopFacade {
	return &ShopFacade{
		auth:      p.Auth,
		users:     p.Users,
		catalog:   p.Catalog,
		orders:    p.Orders,
		payments:  p.Payments,
		lifecycle: p.Lifecycle,
		health:    p.Health,
	}
}

func (f *ShopFacade) Register(ctx context.Context, reg model.Registration) (*model.User, error) {
	return f.auth.Register(ctx, reg)
}

func (f *ShopFacade) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	return f.auth.Authenticate(ctx, email, password)
}

func (f *ShopFacade) ParseToken(token string) (pkgAuth.Claims, error) {
	return f.auth.ParseToken(token)
}

func (f *ShopFacade) Profile(ctx context.Context, userID int64) (*model.User, error) {
	return f.users.Profile(ctx, userID)
}

func (f *ShopFacade) UpdateProfile(ctx context.Context, userID int64, update model.ProfileUpdate) error {
	return f.users.UpdateProfile(ctx, userID, update)
}

func (f *ShopFacade) Distributors(ctx context.Context) ([]model.User, error) {
	return f.users.Distributors(ctx)
}

func (f *ShopFacade) Catalog(ctx context.Context) ([]model.CatalogEntry, error) {
	return f.catalog.Catalog(ctx)
}

func (f *ShopFacade) DistributorProducts(ctx context.Context, distributorID int64) ([]model.DistributorProduct, error) {
	return f.catalog.DistributorProducts(ctx, distributorID)
}

func (f *ShopFacade) AddProduct(ctx context.Context, product model.NewProduct) (int64, error) {
	return f.catalog.AddProduct(ctx, product)
}

func (f *ShopFacade) UpdateVariant(ctx context.Context, variantID int64, update model.VariantUpdate) error {
	return f.catalog.UpdateVariant(ctx, variantID, update)
}

func (f *ShopFacade) RetireVariant(ctx context.Context, variantID int64) error {
	return f.catalog.RetireVariant(ctx, variantID)
}

func (f *ShopFacade) PlaceOrder(ctx context.Context, order model.NewOrder) (*model.Order, error) {
	return f.orders.Place(ctx, order)
}

func (f *ShopFacade) ShopOrders(ctx context.Context, userID int64) ([]model.ShopOrder, error) {
	return f.orders.ShopOrders(ctx, userID)
}

func (f *ShopFacade) DistributorOrders(ctx context.Context, distributorID int64) ([]model.DistributorOrder, error) {
	return f.orders.DistributorOrders(ctx, distributorID)
}

func (f *ShopFacade) DeletedOrders(ctx context.Context, distributorID int64) ([]model.DistributorOrder, error) {
	return f.orders.DeletedOrders(ctx, distributorID)
}

func (f *ShopFacade) ShopPayments(ctx context.Context, userID int64) ([]model.ShopPayment, error) {
	return f.payments.ShopPayments(ctx, userID)
}

func (f *ShopFacade) DistributorPayments(ctx context.Context, distributorID int64) ([]model.DistributorPayment, error) {
	return f.payments.DistributorPayments(ctx, distributorID)
}

func (f *ShopFacade) TransitionOrder(ctx context.Context, orderID int64, status string) (model.TransitionResult, error) {
	return f.lifecycle.Transition(ctx, orderID, status)
}

func (f *ShopFacade) DeleteOrder(ctx context.Context, orderID int64) error {
	return f.lifecycle.SoftDelete(ctx, orderID)
}

func (f *ShopFacade) RestoreOrder(ctx context.Context, orderID int64) error {
	return f.lifecycle.Restore(ctx, orderID)
}

func (f *ShopFacade) UpdatePayment(ctx context.Context, paymentID int64, status string) (model.PaymentStatus, error) {
	return f.lifecycle.UpdatePaymentStatus(ctx, paymentID, status)
}

func (f *ShopFacade) Ping(ctx context.Context) error {
	return f.health.HealthCheck(ctx)
}
