package model

import "time"

// SideEffect names a secondary mutation triggered by an order transition.
type SideEffect string

const (
	SideEffectStockDecrement  SideEffect = "stock_decrement"
	SideEffectPaymentComplete SideEffect = "payment_completed"
	SideEffectPaymentCancel   SideEffect = "payment_cancelled"
)

// TransitionResult reports the outcome of a committed status change.
type TransitionResult struct {
	OrderID     int64
	From        OrderStatus
	To          OrderStatus
	SideEffects []SideEffect
}

// OrderEventType enumerates lifecycle event kinds.
type OrderEventType string

const (
	OrderEventStatusChanged  OrderEventType = "order.status_changed"
	OrderEventDeleted        OrderEventType = "order.deleted"
	OrderEventRestored       OrderEventType = "order.restored"
	OrderEventPaymentUpdated OrderEventType = "order.payment_updated"
	OrderEventPlaced         OrderEventType = "order.placed"
)

// OrderEvent is published after a lifecycle operation commits.
type OrderEvent struct {
	ID            string
	Type          OrderEventType
	OrderID       int64
	PaymentID     int64
	From          OrderStatus
	To            OrderStatus
	PaymentStatus PaymentStatus
	SideEffects   []SideEffect
	OccurredAt    time.Time
}
