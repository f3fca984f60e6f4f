package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/freshcart/internal/domain/model"
)

type catalogRepository struct {
	storage *Storage
}

func (r *catalogRepository) ListCatalog(ctx context.Context) ([]model.CatalogEntry, error) {
	const query = `SELECT c.name, p.name, sp.id, sp.name, v.id, v.brand, v.price, v.stock, v.unit, u.name
                   FROM product_variants v
                   JOIN subproducts sp ON v.subproduct_id = sp.id
                   JOIN products p ON sp.product_id = p.id
                   JOIN categories c ON p.category_id = c.id
                   JOIN users u ON v.distributor_id = u.id
                   ORDER BY c.name, p.name, sp.name, v.brand`
	rows, err := r.storage.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.CatalogEntry{}
	for rows.Next() {
		var e model.CatalogEntry
		if err := rows.Scan(&e.Category, &e.Product, &e.SubProductID, &e.SubProduct, &e.VariantID, &e.Brand, &e.Price, &e.Stock, &e.Unit, &e.DistributorName); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *catalogRepository) ListByDistributor(ctx context.Context, distributorID int64) ([]model.DistributorProduct, error) {
	const query = `SELECT v.id, v.brand, v.price, v.stock, v.unit, sp.name, p.name, c.name
                   FROM product_variants v
                   JOIN subproducts sp ON v.subproduct_id = sp.id
                   JOIN products p ON sp.product_id = p.id
                   JOIN categories c ON p.category_id = c.id
                   WHERE v.distributor_id = $1
                   ORDER BY c.name, p.name, sp.name, v.brand`
	rows, err := r.storage.pool.Query(ctx, query, distributorID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := []model.DistributorProduct{}
	for rows.Next() {
		var p model.DistributorProduct
		if err := rows.Scan(&p.VariantID, &p.Brand, &p.Price, &p.Stock, &p.Unit, &p.SubProductName, &p.ProductName, &p.CategoryName); err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// AddProduct resolves or creates the category, product and subproduct path and inserts the variant.
func (r *catalogRepository) AddProduct(ctx context.Context, product model.NewProduct) (int64, error) {
	var variantID int64
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		categoryID, err := resolveCategory(ctx, tx, product)
		if err != nil {
			return err
		}
		productID, err := resolveProduct(ctx, tx, categoryID, product)
		if err != nil {
			return err
		}
		subProductID, err := resolveSubProduct(ctx, tx, productID, product.SubProductName)
		if err != nil {
			return err
		}

		const insertVariant = `INSERT INTO product_variants (subproduct_id, distributor_id, brand, unit, price, stock)
                               VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
		return tx.QueryRow(ctx, insertVariant, subProductID, product.DistributorID, product.Brand, product.Unit, product.Price, product.Stock).Scan(&variantID)
	})
	if err != nil {
		return 0, mapError(err)
	}
	return variantID, nil
}

func resolveCategory(ctx context.Context, tx pgx.Tx, product model.NewProduct) (int64, error) {
	if product.CategoryID > 0 {
		return product.CategoryID, nil
	}

	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM categories WHERE LOWER(name)=LOWER($1)`, product.CategoryName).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}
	err = tx.QueryRow(ctx, `INSERT INTO categories (name) VALUES ($1) RETURNING id`, model.Capitalize(product.CategoryName)).Scan(&id)
	return id, err
}

func resolveProduct(ctx context.Context, tx pgx.Tx, categoryID int64, product model.NewProduct) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM products WHERE name=$1 AND category_id=$2`, product.ProductName, categoryID).Scan(&id)
	switch {
	case err == nil:
		if product.ImageURL != nil {
			if _, err := tx.Exec(ctx, `UPDATE products SET image_url=$1 WHERE id=$2`, *product.ImageURL, id); err != nil {
				return 0, err
			}
		}
		return id, nil
	case errors.Is(err, pgx.ErrNoRows):
		err = tx.QueryRow(ctx, `INSERT INTO products (category_id, name, image_url) VALUES ($1, $2, $3) RETURNING id`,
			categoryID, product.ProductName, product.ImageURL).Scan(&id)
		return id, err
	default:
		return 0, err
	}
}

func resolveSubProduct(ctx context.Context, tx pgx.Tx, productID int64, name string) (int64, error) {
	var id int64
	err := tx.QueryRow(ctx, `SELECT id FROM subproducts WHERE name=$1 AND product_id=$2`, name, productID).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return 0, err
	}
	err = tx.QueryRow(ctx, `INSERT INTO subproducts (product_id, name) VALUES ($1, $2) RETURNING id`, productID, name).Scan(&id)
	return id, err
}

func (r *catalogRepository) UpdateVariant(ctx context.Context, variantID int64, update model.VariantUpdate) error {
	const query = `UPDATE product_variants SET price=$1, stock=$2, unit=$3, brand=$4 WHERE id=$5`
	tag, err := r.storage.pool.Exec(ctx, query, update.Price, update.Stock, update.Unit, update.Brand, variantID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(tag)
}

// RetireVariant zeroes stock. The row stays because order items reference it.
func (r *catalogRepository) RetireVariant(ctx context.Context, variantID int64) error {
	tag, err := r.storage.pool.Exec(ctx, `UPDATE product_variants SET stock=0 WHERE id=$1`, variantID)
	if err != nil {
		return mapError(err)
	}
	return requireRow(tag)
}
