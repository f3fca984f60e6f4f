package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	domainErrors "github.com/polkiloo/freshcart/internal/domain/errors"
	"github.com/polkiloo/freshcart/internal/domain/model"
	testhelpers "github.com/polkiloo/freshcart/internal/test"
)

func validOrder() model.NewOrder {
	return model.NewOrder{
		UserID: 4,
		Items: []model.OrderItem{
			{VariantID: 10, Quantity: 2, Price: 1.5},
			{VariantID: 11, Quantity: 1, Price: 7},
		},
		Total:       10,
		DeliveryFee: 2.5,
	}
}

func TestOrderUseCasePlace(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{}
	sink := &testhelpers.EventSinkStub{}
	uc := NewOrderUseCase(repo, sink, zap.NewNop())

	order, err := uc.Place(context.Background(), validOrder())
	require.NoError(t, err)
	assert.Equal(t, int64(1), order.ID)
	assert.Equal(t, model.OrderStatusPending, order.Status)
	assert.Equal(t, 12.5, order.TotalAmount)
	require.Len(t, repo.Placed, 1)

	events := sink.Events()
	require.Len(t, events, 1)
	assert.Equal(t, model.OrderEventPlaced, events[0].Type)
	assert.Equal(t, int64(1), events[0].OrderID)
	assert.Equal(t, model.PaymentStatusPending, events[0].PaymentStatus)
}

func TestOrderUseCasePlaceValidation(t *testing.T) {
	cases := []struct {
		name string
		mut  func(*model.NewOrder)
		want error
	}{
		{"user", func(o *model.NewOrder) { o.UserID = 0 }, domainErrors.ErrMissingField},
		{"empty cart", func(o *model.NewOrder) { o.Items = nil }, domainErrors.ErrMissingField},
		{"variant", func(o *model.NewOrder) { o.Items[1].VariantID = 0 }, domainErrors.ErrMissingField},
		{"zero quantity", func(o *model.NewOrder) { o.Items[0].Quantity = 0 }, domainErrors.ErrInvalidInput},
		{"negative quantity", func(o *model.NewOrder) { o.Items[1].Quantity = -2 }, domainErrors.ErrInvalidInput},
		{"negative price", func(o *model.NewOrder) { o.Items[0].Price = -1 }, domainErrors.ErrInvalidInput},
		{"negative total", func(o *model.NewOrder) { o.Total = -10 }, domainErrors.ErrInvalidInput},
		{"negative fee", func(o *model.NewOrder) { o.DeliveryFee = -1 }, domainErrors.ErrInvalidInput},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &testhelpers.OrderRepositoryStub{}
			sink := &testhelpers.EventSinkStub{}
			order := validOrder()
			tc.mut(&order)

			_, err := NewOrderUseCase(repo, sink, nil).Place(context.Background(), order)
			require.ErrorIs(t, err, tc.want)
			assert.Empty(t, repo.Placed)
			assert.Empty(t, sink.Events())
		})
	}
}

func TestOrderUseCasePlaceRepositoryError(t *testing.T) {
	boom := errors.New("insert failed")
	repo := &testhelpers.OrderRepositoryStub{PlaceFn: func(context.Context, model.NewOrder) (*model.Order, error) {
		return nil, boom
	}}
	sink := &testhelpers.EventSinkStub{}

	_, err := NewOrderUseCase(repo, sink, zap.NewNop()).Place(context.Background(), validOrder())
	require.ErrorIs(t, err, boom)
	assert.Empty(t, sink.Events())
}

func TestOrderUseCaseListings(t *testing.T) {
	repo := &testhelpers.OrderRepositoryStub{
		ListByShopOwnerFn: func(_ context.Context, userID int64) ([]model.ShopOrder, error) {
			return []model.ShopOrder{{OrderID: userID}}, nil
		},
	}
	uc := NewOrderUseCase(repo, nil, nil)
	ctx := context.Background()

	shop, err := uc.ShopOrders(ctx, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(4), shop[0].OrderID)

	_, err = uc.DistributorOrders(ctx, 3)
	require.NoError(t, err)
	_, err = uc.DeletedOrders(ctx, 3)
	require.NoError(t, err)

	assert.Equal(t, []testhelpers.DistributorListCall{
		{DistributorID: 3, Deleted: false},
		{DistributorID: 3, Deleted: true},
	}, repo.DistributorCalls)
}
