package repository

import (
	"context"

	"github.com/polkiloo/freshcart/internal/domain/model"
)

// CatalogRepository manages categories, products and distributor variants.
type CatalogRepository interface {
	ListCatalog(ctx context.Context) ([]model.CatalogEntry, error)
	ListByDistributor(ctx context.Context, distributorID int64) ([]model.DistributorProduct, error)
	AddProduct(ctx context.Context, product model.NewProduct) (int64, error)
	UpdateVariant(ctx context.Context, variantID int64, update model.VariantUpdate) error
	RetireVariant(ctx context.Context, variantID int64) error
}
