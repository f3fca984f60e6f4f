package model

// Variant is a distributor's sellable unit of a subproduct.
type Variant struct {
	ID            int64
	SubProductID  int64
	DistributorID int64
	Brand         string
	Unit          string
	Price         float64
	Stock         int
}

// CatalogEntry is a flattened variant row with its category path.
type CatalogEntry struct {
	Category        string
	Product         string
	SubProductID    int64
	SubProduct      string
	VariantID       int64
	Brand           string
	Price           float64
	Stock           int
	Unit            string
	DistributorName string
}

// DistributorProduct is a variant as listed for its owning distributor.
type DistributorProduct struct {
	VariantID      int64
	Brand          string
	Price          float64
	Stock          int
	Unit           string
	SubProductName string
	ProductName    string
	CategoryName   string
}

// NewProduct describes a variant to add, creating its category path when missing.
type NewProduct struct {
	DistributorID  int64
	CategoryID     int64
	CategoryName   string
	ProductName    string
	SubProductName string
	Brand          string
	Unit           string
	ImageURL       *string
	Price          float64
	Stock          int
}

// VariantUpdate holds editable variant fields.
type VariantUpdate struct {
	Price float64
	Stock int
	Unit  string
	Brand string
}
