package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/polkiloo/freshcart/internal/domain/errors"
	"github.com/polkiloo/freshcart/internal/domain/model"
)

func TestCatalogRepositoryListCatalog(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &catalogRepository{storage: storage}

	columns := []string{"category", "product", "subproduct_id", "subproduct", "variant_id", "brand", "price", "stock", "unit", "distributor_name"}
	mock.ExpectQuery("FROM product_variants v").WillReturnRows(
		pgxmockv3.NewRows(columns).
			AddRow("Fruits", "Apple", int64(1), "Fuji", int64(10), "Orchard", 120.0, 30, "kg", "Fresh Farms").
			AddRow("Vegetables", "Tomato", int64(2), "Cherry", int64(11), "Valley", 40.0, 0, "kg", "Green Valley"))
	entries, err := repo.ListCatalog(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 2 || entries[0].VariantID != 10 || entries[1].DistributorName != "Green Valley" {
		t.Fatalf("unexpected entries: %+v", entries)
	}

	mock.ExpectQuery("FROM product_variants v").WillReturnError(errors.New("boom"))
	if _, err := repo.ListCatalog(context.Background()); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCatalogRepositoryListByDistributor(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &catalogRepository{storage: storage}

	columns := []string{"variant_id", "brand", "price", "stock", "unit", "subproduct_name", "product_name", "category_name"}
	mock.ExpectQuery("WHERE v.distributor_id").WithArgs(int64(2)).WillReturnRows(
		pgxmockv3.NewRows(columns).AddRow(int64(10), "Orchard", 120.0, 30, "kg", "Fuji", "Apple", "Fruits"))
	products, err := repo.ListByDistributor(context.Background(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(products) != 1 || products[0].SubProductName != "Fuji" || products[0].Stock != 30 {
		t.Fatalf("unexpected products: %+v", products)
	}

	mock.ExpectQuery("WHERE v.distributor_id").WithArgs(int64(3)).WillReturnRows(pgxmockv3.NewRows(columns))
	products, err = repo.ListByDistributor(context.Background(), 3)
	if err != nil || products == nil || len(products) != 0 {
		t.Fatalf("expected empty list, got %v err=%v", products, err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCatalogRepositoryListRowsError(t *testing.T) {
	storage := &Storage{pool: &rowsErrorPool{rows: &errorRows{err: errors.New("rows err")}}}
	repo := &catalogRepository{storage: storage}
	if _, err := repo.ListCatalog(context.Background()); err == nil {
		t.Fatal("expected rows error")
	}
	if _, err := repo.ListByDistributor(context.Background(), 1); err == nil {
		t.Fatal("expected rows error")
	}
}

func TestCatalogRepositoryAddProductCreatesPath(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &catalogRepository{storage: storage}

	image := "https://img.example/tomato.png"
	product := model.NewProduct{
		DistributorID:  2,
		CategoryName:   "vegetables",
		ProductName:    "Tomato",
		SubProductName: "Cherry",
		Brand:          "Valley",
		Unit:           "kg",
		ImageURL:       &image,
		Price:          40.5,
		Stock:          10,
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM categories WHERE LOWER").WithArgs("vegetables").WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("INSERT INTO categories").WithArgs("Vegetables").WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(5)))
	mock.ExpectQuery("SELECT id FROM products WHERE name=").WithArgs("Tomato", int64(5)).WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(7)))
	mock.ExpectExec("UPDATE products SET image_url=").WithArgs(image, int64(7)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	mock.ExpectQuery("SELECT id FROM subproducts WHERE name=").WithArgs("Cherry", int64(7)).WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("INSERT INTO subproducts").WithArgs(int64(7), "Cherry").WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(9)))
	mock.ExpectQuery("INSERT INTO product_variants").WithArgs(int64(9), int64(2), "Valley", "kg", 40.5, 10).WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectCommit()

	variantID, err := repo.AddProduct(context.Background(), product)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if variantID != 11 {
		t.Fatalf("unexpected variant id: %d", variantID)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCatalogRepositoryAddProductReusesPathAndRollsBack(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &catalogRepository{storage: storage}

	product := model.NewProduct{
		DistributorID:  2,
		CategoryID:     3,
		ProductName:    "Apple",
		SubProductName: "Fuji",
		Brand:          "Orchard",
		Unit:           "kg",
		Price:          120,
		Stock:          5,
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM products WHERE name=").WithArgs("Apple", int64(3)).WillReturnError(pgx.ErrNoRows)
	mock.ExpectQuery("INSERT INTO products").WithArgs(int64(3), "Apple", (*string)(nil)).WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(4)))
	mock.ExpectQuery("SELECT id FROM subproducts WHERE name=").WithArgs("Fuji", int64(4)).WillReturnRows(pgxmockv3.NewRows([]string{"id"}).AddRow(int64(6)))
	mock.ExpectQuery("INSERT INTO product_variants").WithArgs(int64(6), int64(2), "Orchard", "kg", 120.0, 5).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "product_variants_distributor_id_fkey"})
	mock.ExpectRollback()

	if _, err := repo.AddProduct(context.Background(), product); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id FROM products WHERE name=").WithArgs("Apple", int64(3)).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()
	if _, err := repo.AddProduct(context.Background(), product); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestCatalogRepositoryUpdateAndRetire(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &catalogRepository{storage: storage}

	update := model.VariantUpdate{Price: 99.5, Stock: 12, Unit: "kg", Brand: "Orchard"}

	mock.ExpectExec("UPDATE product_variants SET price=").WithArgs(99.5, 12, "kg", "Orchard", int64(10)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.UpdateVariant(context.Background(), 10, update); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE product_variants SET price=").WithArgs(99.5, 12, "kg", "Orchard", int64(99)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if err := repo.UpdateVariant(context.Background(), 99, update); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectExec("UPDATE product_variants SET price=").WithArgs(99.5, 12, "kg", "Orchard", int64(10)).WillReturnError(&pgconn.PgError{Code: "23514"})
	if err := repo.UpdateVariant(context.Background(), 10, update); !errors.Is(err, domainErrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}

	mock.ExpectExec("UPDATE product_variants SET stock=0").WithArgs(int64(10)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 1))
	if err := repo.RetireVariant(context.Background(), 10); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mock.ExpectExec("UPDATE product_variants SET stock=0").WithArgs(int64(99)).WillReturnResult(pgxmockv3.NewResult("UPDATE", 0))
	if err := repo.RetireVariant(context.Background(), 99); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
