package repository

import (
	"context"

	"github.com/polkiloo/freshcart/internal/domain/model"
)

// PaymentRepository provides payment listings.
type PaymentRepository interface {
	ListByShopOwner(ctx context.Context, userID int64) ([]model.ShopPayment, error)
	ListByDistributor(ctx context.Context, distributorID int64) ([]model.DistributorPayment, error)
}
