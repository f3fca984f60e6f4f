package model

import (
	"strings"
	"time"
)

// OrderStatus describes order lifecycle state as stored in the database.
type OrderStatus string

const (
	OrderStatusPending        OrderStatus = "Pending"
	OrderStatusAccepted       OrderStatus = "Accepted"
	OrderStatusShipped        OrderStatus = "Shipped"
	OrderStatusOutForDelivery OrderStatus = "Out for Delivery"
	OrderStatusDelivered      OrderStatus = "Delivered"
	OrderStatusDeclined       OrderStatus = "Declined"
	OrderStatusDeleted        OrderStatus = "Deleted"
)

var orderStatusByKey = map[string]OrderStatus{
	"pending":          OrderStatusPending,
	"accepted":         OrderStatusAccepted,
	"shipped":          OrderStatusShipped,
	"out for delivery": OrderStatusOutForDelivery,
	"delivered":        OrderStatusDelivered,
	"declined":         OrderStatusDeclined,
	"deleted":          OrderStatusDeleted,
}

// forwardTransitions is the graph enforced by the strict transition policy.
var forwardTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:        {OrderStatusAccepted, OrderStatusDeclined, OrderStatusDeleted},
	OrderStatusAccepted:       {OrderStatusShipped, OrderStatusDeclined, OrderStatusDeleted},
	OrderStatusShipped:        {OrderStatusOutForDelivery, OrderStatusDelivered},
	OrderStatusOutForDelivery: {OrderStatusDelivered},
	OrderStatusDelivered:      {},
	OrderStatusDeclined:       {OrderStatusDeleted},
	OrderStatusDeleted:        {},
}

// NormalizeStatusKey trims and case-folds free-form status input.
func NormalizeStatusKey(raw string) string {
	return strings.ToLower(strings.TrimSpace(raw))
}

// ParseOrderStatus maps free-form input onto its canonical status.
func ParseOrderStatus(raw string) (OrderStatus, bool) {
	status, ok := orderStatusByKey[NormalizeStatusKey(raw)]
	return status, ok
}

// Valid reports whether s is one of the canonical order statuses.
func (s OrderStatus) Valid() bool {
	_, ok := forwardTransitions[s]
	return ok
}

// CanAdvance reports whether the forward graph allows moving from s to next.
func (s OrderStatus) CanAdvance(next OrderStatus) bool {
	for _, allowed := range forwardTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Order describes a placed order.
type Order struct {
	ID            int64
	UserID        int64
	Status        OrderStatus
	PaymentStatus string
	TotalAmount   float64
	OrderDate     time.Time
}

// OrderItem is an immutable line snapshot captured at placement.
type OrderItem struct {
	ID        int64
	OrderID   int64
	VariantID int64
	Quantity  int
	Price     float64
}

// NewOrder carries everything needed to place an order.
type NewOrder struct {
	UserID      int64
	Items       []OrderItem
	Total       float64
	DeliveryFee float64
}

// Amount is the payable sum including delivery.
func (o NewOrder) Amount() float64 {
	return o.Total + o.DeliveryFee
}

// ShopOrder is an order as listed for the shop owner who placed it.
type ShopOrder struct {
	OrderID       int64
	Status        OrderStatus
	PaymentStatus string
	OrderDate     time.Time
	TotalAmount   float64
	PaymentState  PaymentStatus
	Distributors  string
}

// DistributorOrder is an order as listed for a distributor supplying it.
type DistributorOrder struct {
	OrderID       int64
	OrderDate     time.Time
	Status        OrderStatus
	PaymentStatus string
	ShopOwner     string
	Amount        float64
}
