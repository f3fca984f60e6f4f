package model

import "testing"

func TestParseOrderStatusNormalizesInput(t *testing.T) {
	cases := []struct {
		input string
		want  OrderStatus
	}{
		{"pending", OrderStatusPending},
		{"  Accepted ", OrderStatusAccepted},
		{"ACCEPTED", OrderStatusAccepted},
		{"shipped", OrderStatusShipped},
		{"Out For Delivery", OrderStatusOutForDelivery},
		{"\tout for delivery\n", OrderStatusOutForDelivery},
		{"Delivered", OrderStatusDelivered},
		{"declined ", OrderStatusDeclined},
		{"DeLeTeD", OrderStatusDeleted},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, ok := ParseOrderStatus(tc.input)
			if !ok {
				t.Fatalf("expected %q to be recognized", tc.input)
			}
			if got != tc.want {
				t.Fatalf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestParseOrderStatusRejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "bogus", "out-for-delivery", "complete"} {
		if _, ok := ParseOrderStatus(input); ok {
			t.Fatalf("expected %q to be rejected", input)
		}
	}
}

func TestOrderStatusValid(t *testing.T) {
	if !OrderStatusOutForDelivery.Valid() {
		t.Fatal("expected canonical status to be valid")
	}
	if OrderStatus("accepted").Valid() {
		t.Fatal("expected non-canonical spelling to be invalid")
	}
}

func TestOrderStatusCanAdvance(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderStatusPending, OrderStatusAccepted, true},
		{OrderStatusAccepted, OrderStatusShipped, true},
		{OrderStatusShipped, OrderStatusDelivered, true},
		{OrderStatusPending, OrderStatusDelivered, false},
		{OrderStatusDelivered, OrderStatusPending, false},
		{OrderStatusAccepted, OrderStatusAccepted, false},
		{OrderStatus("unknown"), OrderStatusPending, false},
	}

	for _, tc := range cases {
		if got := tc.from.CanAdvance(tc.to); got != tc.want {
			t.Errorf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.want, got)
		}
	}
}

func TestParsePaymentStatus(t *testing.T) {
	cases := []struct {
		input string
		want  PaymentStatus
		ok    bool
	}{
		{"paid", PaymentStatusPaid, true},
		{" PAID ", PaymentStatusPaid, true},
		{"completed", PaymentStatusCompleted, true},
		{"Refunded", PaymentStatusRefunded, true},
		{"cancelled", PaymentStatusCancelled, true},
		{"pending", PaymentStatusPending, true},
		{"out for delivery", PaymentStatus("Out for delivery"), false},
		{"", PaymentStatus(""), false},
	}

	for _, tc := range cases {
		got, ok := ParsePaymentStatus(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Errorf("%q: expected (%q, %v), got (%q, %v)", tc.input, tc.want, tc.ok, got, ok)
		}
	}
}

func TestNewOrderAmount(t *testing.T) {
	o := NewOrder{Total: 100, DeliveryFee: 15.5}
	if o.Amount() != 115.5 {
		t.Fatalf("expected 115.5, got %v", o.Amount())
	}
}

func TestUserIsDistributor(t *testing.T) {
	if !(User{Role: "Distributor"}).IsDistributor() {
		t.Fatal("expected case-insensitive role match")
	}
	if (User{Role: RoleShopOwner}).IsDistributor() {
		t.Fatal("shop owner is not a distributor")
	}
}
