package test

import (
	"context"

	"github.com/polkiloo/freshcart/internal/domain/model"
	pkgAuth "github.com/polkiloo/freshcart/internal/pkg/auth"
)

// ShopFacadeStub provides controllable behaviour for every HTTP endpoint.
// Unset functions fall back to small canned responses.
type ShopFacadeStub struct {
	RegisterFn     func(context.Context, model.Registration) (*model.User, error)
	AuthenticateFn func(context.Context, string, string) (*model.User, string, error)
	ParseTokenFn   func(string) (pkgAuth.Claims, error)

	ProfileFn       func(context.Context, int64) (*model.User, error)
	UpdateProfileFn func(context.Context, int64, model.ProfileUpdate) error
	DistributorsFn  func(context.Context) ([]model.User, error)

	CatalogFn             func(context.Context) ([]model.CatalogEntry, error)
	DistributorProductsFn func(context.Context, int64) ([]model.DistributorProduct, error)
	AddProductFn          func(context.Context, model.NewProduct) (int64, error)
	UpdateVariantFn       func(context.Context, int64, model.VariantUpdate) error
	RetireVariantFn       func(context.Context, int64) error

	PlaceOrderFn        func(context.Context, model.NewOrder) (*model.Order, error)
	ShopOrdersFn        func(context.Context, int64) ([]model.ShopOrder, error)
	DistributorOrdersFn func(context.Context, int64) ([]model.DistributorOrder, error)
	DeletedOrdersFn     func(context.Context, int64) ([]model.DistributorOrder, error)

	ShopPaymentsFn        func(context.Context, int64) ([]model.ShopPayment, error)
	DistributorPaymentsFn func(context.Context, int64) ([]model.DistributorPayment, error)

	TransitionOrderFn func(context.Context, int64, string) (model.TransitionResult, error)
	DeleteOrderFn     func(context.Context, int64) error
	RestoreOrderFn    func(context.Context, int64) error
	UpdatePaymentFn   func(context.Context, int64, string) (model.PaymentStatus, error)

	PingFn func(context.Context) error
}

func (s ShopFacadeStub) Register(ctx context.Context, reg model.Registration) (*model.User, error) {
	if s.RegisterFn != nil {
		return s.RegisterFn(ctx, reg)
	}
	return &model.User{ID: 1, Name: reg.Name, Email: reg.Email, Role: reg.Role}, nil
}

func (s ShopFacadeStub) Authenticate(ctx context.Context, email, password string) (*model.User, string, error) {
	if s.AuthenticateFn != nil {
		return s.AuthenticateFn(ctx, email, password)
	}
	return &model.User{ID: 1, Email: email, Name: "user", Role: model.RoleShopOwner}, "token", nil
}

func (s ShopFacadeStub) ParseToken(token string) (pkgAuth.Claims, error) {
	if s.ParseTokenFn != nil {
		return s.ParseTokenFn(token)
	}
	return pkgAuth.Claims{UserID: 1, Role: model.RoleShopOwner}, nil
}

func (s ShopFacadeStub) Profile(ctx context.Context, userID int64) (*model.User, error) {
	if s.ProfileFn != nil {
		return s.ProfileFn(ctx, userID)
	}
	return &model.User{ID: userID, Name: "user"}, nil
}

func (s ShopFacadeStub) UpdateProfile(ctx context.Context, userID int64, update model.ProfileUpdate) error {
	if s.UpdateProfileFn != nil {
		return s.UpdateProfileFn(ctx, userID, update)
	}
	return nil
}

func (s ShopFacadeStub) Distributors(ctx context.Context) ([]model.User, error) {
	if s.DistributorsFn != nil {
		return s.DistributorsFn(ctx)
	}
	return []model.User{}, nil
}

func (s ShopFacadeStub) Catalog(ctx context.Context) ([]model.CatalogEntry, error) {
	if s.CatalogFn != nil {
		return s.CatalogFn(ctx)
	}
	return []model.CatalogEntry{}, nil
}

func (s ShopFacadeStub) DistributorProducts(ctx context.Context, distributorID int64) ([]model.DistributorProduct, error) {
	if s.DistributorProductsFn != nil {
		return s.DistributorProductsFn(ctx, distributorID)
	}
	return []model.DistributorProduct{}, nil
}

func (s ShopFacadeStub) AddProduct(ctx context.Context, product model.NewProduct) (int64, error) {
	if s.AddProductFn != nil {
		return s.AddProductFn(ctx, product)
	}
	return 1, nil
}

func (s ShopFacadeStub) UpdateVariant(ctx context.Context, variantID int64, update model.VariantUpdate) error {
	if s.UpdateVariantFn != nil {
		return s.UpdateVariantFn(ctx, variantID, update)
	}
	return nil
}

func (s ShopFacadeStub) RetireVariant(ctx context.Context, variantID int64) error {
	if s.RetireVariantFn != nil {
		return s.RetireVariantFn(ctx, variantID)
	}
	return nil
}

func (s ShopFacadeStub) PlaceOrder(ctx context.Context, order model.NewOrder) (*model.Order, error) {
	if s.PlaceOrderFn != nil {
		return s.PlaceOrderFn(ctx, order)
	}
	return &model.Order{ID: 1, UserID: order.UserID, Status: model.OrderStatusPending, TotalAmount: order.Amount()}, nil
}

func (s ShopFacadeStub) ShopOrders(ctx context.Context, userID int64) ([]model.ShopOrder, error) {
	if s.ShopOrdersFn != nil {
		return s.ShopOrdersFn(ctx, userID)
	}
	return []model.ShopOrder{}, nil
}

func (s ShopFacadeStub) DistributorOrders(ctx context.Context, distributorID int64) ([]model.DistributorOrder, error) {
	if s.DistributorOrdersFn != nil {
		return s.DistributorOrdersFn(ctx, distributorID)
	}
	return []model.DistributorOrder{}, nil
}

func (s ShopFacadeStub) DeletedOrders(ctx context.Context, distributorID int64) ([]model.DistributorOrder, error) {
	if s.DeletedOrdersFn != nil {
		return s.DeletedOrdersFn(ctx, distributorID)
	}
	return []model.DistributorOrder{}, nil
}

func (s ShopFacadeStub) ShopPayments(ctx context.Context, userID int64) ([]model.ShopPayment, error) {
	if s.ShopPaymentsFn != nil {
		return s.ShopPaymentsFn(ctx, userID)
	}
	return []model.ShopPayment{}, nil
}

func (s ShopFacadeStub) DistributorPayments(ctx context.Context, distributorID int64) ([]model.DistributorPayment, error) {
	if s.DistributorPaymentsFn != nil {
		return s.DistributorPaymentsFn(ctx, distributorID)
	}
	return []model.DistributorPayment{}, nil
}

func (s ShopFacadeStub) TransitionOrder(ctx context.Context, orderID int64, status string) (model.TransitionResult, error) {
	if s.TransitionOrderFn != nil {
		return s.TransitionOrderFn(ctx, orderID, status)
	}
	to, _ := model.ParseOrderStatus(status)
	return model.TransitionResult{OrderID: orderID, From: model.OrderStatusPending, To: to, SideEffects: []model.SideEffect{}}, nil
}

func (s ShopFacadeStub) DeleteOrder(ctx context.Context, orderID int64) error {
	if s.DeleteOrderFn != nil {
		return s.DeleteOrderFn(ctx, orderID)
	}
	return nil
}

func (s ShopFacadeStub) RestoreOrder(ctx context.Context, orderID int64) error {
	if s.RestoreOrderFn != nil {
		return s.RestoreOrderFn(ctx, orderID)
	}
	return nil
}

func (s ShopFacadeStub) UpdatePayment(ctx context.Context, paymentID int64, status string) (model.PaymentStatus, error) {
	if s.UpdatePaymentFn != nil {
		return s.UpdatePaymentFn(ctx, paymentID, status)
	}
	parsed, _ := model.ParsePaymentStatus(status)
	return parsed, nil
}

func (s ShopFacadeStub) Ping(ctx context.Context) error {
	if s.PingFn != nil {
		return s.PingFn(ctx)
	}
	return nil
}
