package dto

// CatalogEntryResponse is a catalog row.
type CatalogEntryResponse struct {
	Category        string  `json:"category"`
	Product         string  `json:"product"`
	SubProductID    int64   `json:"subproduct_id"`
	SubProduct      string  `json:"subproduct"`
	VariantID       int64   `json:"variant_id"`
	Brand           string  `json:"brand"`
	Price           float64 `json:"price"`
	Stock           int     `json:"stock"`
	Unit            string  `json:"unit"`
	DistributorName string  `json:"distributor_name"`
}

// DistributorProductResponse is a variant owned by the requesting distributor.
type DistributorProductResponse struct {
	VariantID      int64   `json:"variant_id"`
	Brand          string  `json:"brand"`
	Price          float64 `json:"price"`
	Stock          int     `json:"stock"`
	Unit           string  `json:"unit"`
	SubProductName string  `json:"subproduct_name"`
	ProductName    string  `json:"product_name"`
	CategoryName   string  `json:"category_name"`
}

// AddProductRequest describes a new variant. Category is an alias of CategoryName.
type AddProductRequest struct {
	DistributorID  int64    `json:"distributor_id"`
	CategoryID     int64    `json:"category_id"`
	CategoryName   string   `json:"category_name"`
	Category       string   `json:"category"`
	ProductName    string   `json:"product_name"`
	SubProductName string   `json:"subproduct_name"`
	Brand          string   `json:"brand"`
	Unit           string   `json:"unit"`
	Price          *float64 `json:"price"`
	Stock          *int     `json:"stock"`
	ImageURL       *string  `json:"image_url"`
}

// AddProductResponse confirms a created variant.
type AddProductResponse struct {
	Message   string `json:"message"`
	VariantID int64  `json:"variant_id"`
}

// UpdateProductRequest describes editable variant fields.
type UpdateProductRequest struct {
	Price *float64 `json:"price"`
	Stock *int     `json:"stock"`
	Unit  string   `json:"unit"`
	Brand string   `json:"brand"`
}
