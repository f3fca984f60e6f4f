package dto

import "time"

// CartItem is one line of a placed order.
type CartItem struct {
	VariantID int64   `json:"variant_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// PlaceOrderRequest describes the checkout payload.
type PlaceOrderRequest struct {
	UserID      int64      `json:"user_id"`
	Cart        []CartItem `json:"cart"`
	Total       float64    `json:"total"`
	DeliveryFee float64    `json:"delivery_fee"`
}

// PlaceOrderResponse confirms a placed order.
type PlaceOrderResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}

// ShopOrderResponse is an order as seen by the shop owner.
type ShopOrderResponse struct {
	OrderID         int64     `json:"order_id"`
	Status          string    `json:"status"`
	PaymentStatus   string    `json:"payment_status"`
	OrderDate       time.Time `json:"order_date"`
	TotalAmount     float64   `json:"total_amount"`
	PaymentState    string    `json:"payment_state"`
	DistributorName string    `json:"distributor_name"`
}

// DistributorOrderResponse is an order as seen by a supplying distributor.
type DistributorOrderResponse struct {
	OrderID       int64     `json:"order_id"`
	OrderDate     time.Time `json:"order_date"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	ShopOwner     string    `json:"shop_owner"`
	Amount        float64   `json:"amount"`
}

// TransitionResponse reports an applied order status change.
type TransitionResponse struct {
	Message     string   `json:"message"`
	OrderID     int64    `json:"order_id"`
	Status      string   `json:"status"`
	SideEffects []string `json:"side_effects"`
}
