package repository

import (
	"context"

	"github.com/polkiloo/freshcart/internal/domain/model"
)

// LifecycleStore runs order lifecycle mutations as one unit of work.
// Returning an error from fn rolls back every write made through the LifecycleTx.
type LifecycleStore interface {
	WithinLifecycle(ctx context.Context, fn func(LifecycleTx) error) error
}

// LifecycleTx is the set of writes available inside a lifecycle unit of work.
type LifecycleTx interface {
	// LockOrder returns the current status and holds the row until the unit of work ends.
	LockOrder(ctx context.Context, orderID int64) (model.OrderStatus, error)
	SetOrderStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	OrderItems(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	// DecrementStock lowers stock by quantity, flooring at zero.
	DecrementStock(ctx context.Context, variantID int64, quantity int) error
	// SetOrderPayment updates the order's payment and mirrors it onto the order.
	SetOrderPayment(ctx context.Context, orderID int64, status model.PaymentStatus) error
	// SetPayment updates a payment by id, mirrors it onto its order and returns that order id.
	SetPayment(ctx context.Context, paymentID int64, status model.PaymentStatus) (int64, error)
}
