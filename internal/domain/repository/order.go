package repository

import (
	"context"

	"github.com/polkiloo/freshcart/internal/domain/model"
)

// OrderRepository describes order placement and listings.
type OrderRepository interface {
	Place(ctx context.Context, order model.NewOrder) (*model.Order, error)
	ListByShopOwner(ctx context.Context, userID int64) ([]model.ShopOrder, error)
	ListByDistributor(ctx context.Context, distributorID int64, deleted bool) ([]model.DistributorOrder, error)
}
