package usecase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	domainErrors "github.com/polkiloo/freshcart/internal/domain/errors"
	"github.com/polkiloo/freshcart/internal/domain/model"
	"github.com/polkiloo/freshcart/internal/domain/repository"
)

// OrderUseCase places orders and serves order listings.
type OrderUseCase struct {
	orders repository.OrderRepository
	events EventSink
	logger *zap.Logger
}

// NewOrderUseCase constructs OrderUseCase.
func NewOrderUseCase(orders repository.OrderRepository, events EventSink, logger *zap.Logger) *OrderUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderUseCase{orders: orders, events: events, logger: logger}
}

// Place validates the cart and stores the order with its items and pending payment.
func (u *OrderUseCase) Place(ctx context.Context, order model.NewOrder) (*model.Order, error) {
	if order.UserID <= 0 {
		return nil, fmt.Errorf("%w: user_id", domainErrors.ErrMissingField)
	}
	if len(order.Items) == 0 {
		return nil, fmt.Errorf("%w: cart", domainErrors.ErrMissingField)
	}
	for i, item := range order.Items {
		if item.VariantID <= 0 {
			return nil, fmt.Errorf("%w: cart[%d].variant_id", domainErrors.ErrMissingField, i)
		}
		if item.Quantity <= 0 {
			return nil, fmt.Errorf("%w: cart[%d].quantity must be positive", domainErrors.ErrInvalidInput, i)
		}
		if err := requireNonNegative(fmt.Sprintf("cart[%d].price", i), item.Price); err != nil {
			return nil, err
		}
	}
	if err := requireNonNegative("total", order.Total); err != nil {
		return nil, err
	}
	if err := requireNonNegative("delivery_fee", order.DeliveryFee); err != nil {
		return nil, err
	}

	placed, err := u.orders.Place(ctx, order)
	if err != nil {
		return nil, err
	}

	u.logger.Info("order placed",
		zap.Int64("order_id", placed.ID),
		zap.Int64("user_id", placed.UserID),
		zap.Int("items", len(order.Items)),
		zap.Float64("amount", placed.TotalAmount),
	)
	if u.events != nil {
		u.events.Dispatch(model.OrderEvent{
			Type:          model.OrderEventPlaced,
			OrderID:       placed.ID,
			To:            placed.Status,
			PaymentStatus: model.PaymentStatusPending,
		})
	}
	return placed, nil
}

// ShopOrders lists orders placed by the shop owner, newest first.
func (u *OrderUseCase) ShopOrders(ctx context.Context, userID int64) ([]model.ShopOrder, error) {
	return u.orders.ListByShopOwner(ctx, userID)
}

// DistributorOrders lists live orders containing the distributor's variants.
func (u *OrderUseCase) DistributorOrders(ctx context.Context, distributorID int64) ([]model.DistributorOrder, error) {
	return u.orders.ListByDistributor(ctx, distributorID, false)
}

// DeletedOrders lists soft-deleted orders containing the distributor's variants.
func (u *OrderUseCase) DeletedOrders(ctx context.Context, distributorID int64) ([]model.DistributorOrder, error) {
	return u.orders.ListByDistributor(ctx, distributorID, true)
}
