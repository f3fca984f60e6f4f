package dto

import "time"

// ShopPaymentResponse is a payment as seen by the paying shop owner.
type ShopPaymentResponse struct {
	PaymentID       int64     `json:"payment_id"`
	OrderID         int64     `json:"order_id"`
	Amount          float64   `json:"amount"`
	PaymentStatus   string    `json:"payment_status"`
	PaymentMethod   *string   `json:"payment_method"`
	PaymentDate     time.Time `json:"payment_date"`
	OrderStatus     string    `json:"order_status"`
	DistributorName string    `json:"distributor_name"`
}

// DistributorPaymentResponse is a payment as seen by a supplying distributor.
type DistributorPaymentResponse struct {
	PaymentID     int64     `json:"payment_id"`
	OrderID       int64     `json:"order_id"`
	ShopName      string    `json:"shop_name"`
	Amount        float64   `json:"amount"`
	PaymentStatus string    `json:"payment_status"`
	PaymentMethod *string   `json:"payment_method"`
	PaymentDate   time.Time `json:"payment_date"`
}

// PaymentUpdateResponse reports an applied payment status change.
type PaymentUpdateResponse struct {
	Message   string `json:"message"`
	PaymentID int64  `json:"payment_id"`
	Status    string `json:"status"`
}
