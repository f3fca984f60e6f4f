package usecase

import (
	"context"
	"fmt"
	"strings"

	domainErrors "github.com/polkiloo/freshcart/internal/domain/errors"
	"github.com/polkiloo/freshcart/internal/domain/model"
	"github.com/polkiloo/freshcart/internal/domain/repository"
)

// CatalogUseCase manages the product catalog and distributor variants.
type CatalogUseCase struct {
	catalog repository.CatalogRepository
}

// NewCatalogUseCase constructs CatalogUseCase.
func NewCatalogUseCase(catalog repository.CatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{catalog: catalog}
}

// Catalog lists every variant with its category path and distributor.
func (u *CatalogUseCase) Catalog(ctx context.Context) ([]model.CatalogEntry, error) {
	return u.catalog.ListCatalog(ctx)
}

// DistributorProducts lists variants owned by the distributor.
func (u *CatalogUseCase) DistributorProducts(ctx context.Context, distributorID int64) ([]model.DistributorProduct, error) {
	return u.catalog.ListByDistributor(ctx, distributorID)
}

// AddProduct validates the form and inserts a variant, creating its category path on demand.
func (u *CatalogUseCase) AddProduct(ctx context.Context, product model.NewProduct) (int64, error) {
	product.CategoryName = strings.TrimSpace(product.CategoryName)
	product.ProductName = strings.TrimSpace(product.ProductName)
	product.SubProductName = strings.TrimSpace(product.SubProductName)
	product.Brand = strings.TrimSpace(product.Brand)
	product.Unit = strings.TrimSpace(product.Unit)

	if product.DistributorID <= 0 {
		return 0, fmt.Errorf("%w: distributor_id", domainErrors.ErrMissingField)
	}
	if product.CategoryID <= 0 && product.CategoryName == "" {
		return 0, fmt.Errorf("%w: category_id or category_name", domainErrors.ErrMissingField)
	}
	if err := requireFields(map[string]string{
		"product_name":    product.ProductName,
		"subproduct_name": product.SubProductName,
		"brand":           product.Brand,
		"unit":            product.Unit,
	}); err != nil {
		return 0, err
	}
	if err := validatePriceStock(product.Price, product.Stock); err != nil {
		return 0, err
	}
	if product.ImageURL != nil && strings.TrimSpace(*product.ImageURL) == "" {
		product.ImageURL = nil
	}

	return u.catalog.AddProduct(ctx, product)
}

// UpdateVariant replaces price, stock, unit and brand of a variant.
func (u *CatalogUseCase) UpdateVariant(ctx context.Context, variantID int64, update model.VariantUpdate) error {
	update.Unit = strings.TrimSpace(update.Unit)
	update.Brand = strings.TrimSpace(update.Brand)
	if err := requireFields(map[string]string{"unit": update.Unit, "brand": update.Brand}); err != nil {
		return err
	}
	if err := validatePriceStock(update.Price, update.Stock); err != nil {
		return err
	}
	return u.catalog.UpdateVariant(ctx, variantID, update)
}

// RetireVariant takes a variant off sale.
func (u *CatalogUseCase) RetireVariant(ctx context.Context, variantID int64) error {
	return u.catalog.RetireVariant(ctx, variantID)
}

func validatePriceStock(price float64, stock int) error {
	if err := requireNonNegative("price", price); err != nil {
		return err
	}
	return requireNonNegative("stock", float64(stock))
}
