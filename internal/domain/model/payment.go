package model

import (
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// PaymentStatus describes settlement state of an order payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusPaid      PaymentStatus = "Paid"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusRefunded  PaymentStatus = "Refunded"
	PaymentStatusCancelled PaymentStatus = "Cancelled"
)

var paymentStatuses = map[PaymentStatus]struct{}{
	PaymentStatusPending:   {},
	PaymentStatusPaid:      {},
	PaymentStatusCompleted: {},
	PaymentStatusRefunded:  {},
	PaymentStatusCancelled: {},
}

// Capitalize trims input and upper-cases the first letter, lower-casing the rest.
func Capitalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}

// ParsePaymentStatus maps free-form input onto a canonical payment status.
func ParsePaymentStatus(raw string) (PaymentStatus, bool) {
	status := PaymentStatus(Capitalize(raw))
	_, ok := paymentStatuses[status]
	return status, ok
}

// Payment is the single payment record attached to an order.
type Payment struct {
	ID      int64
	OrderID int64
	Amount  float64
	Status  PaymentStatus
	Method  *string
	Date    time.Time
}

// ShopPayment is a payment as listed for the paying shop owner.
type ShopPayment struct {
	PaymentID       int64
	OrderID         int64
	Amount          float64
	Status          PaymentStatus
	Method          *string
	Date            time.Time
	OrderStatus     OrderStatus
	DistributorName string
}

// DistributorPayment is a payment as listed for a supplying distributor.
type DistributorPayment struct {
	PaymentID int64
	OrderID   int64
	ShopName  string
	Amount    float64
	Status    PaymentStatus
	Method    *string
	Date      time.Time
}
