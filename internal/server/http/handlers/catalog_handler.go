package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domainErrors "github.com/polkiloo/freshcart/internal/domain/errors"
	"github.com/polkiloo/freshcart/internal/domain/model"
	"github.com/polkiloo/freshcart/internal/server/http/dto"
)

// CatalogHandler serves the catalog and distributor product management.
type CatalogHandler struct {
	facade CatalogFacade
	logger *zap.Logger
}

// NewCatalogHandler constructs CatalogHandler.
func NewCatalogHandler(facade CatalogFacade, logger *zap.Logger) *CatalogHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CatalogHandler{facade: facade, logger: logger}
}

// Catalog handles GET /catalog.
func (h *CatalogHandler) Catalog(c *gin.Context) {
	entries, err := h.facade.Catalog(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := make([]dto.CatalogEntryResponse, 0, len(entries))
	for _, e := range entries {
		response = append(response, dto.CatalogEntryResponse{
			Category:        e.Category,
			Product:         e.Product,
			SubProductID:    e.SubProductID,
			SubProduct:      e.SubProduct,
			VariantID:       e.VariantID,
			Brand:           e.Brand,
			Price:           e.Price,
			Stock:           e.Stock,
			Unit:            e.Unit,
			DistributorName: e.DistributorName,
		})
	}
	c.JSON(http.StatusOK, response)
}

// Products handles GET /distributor/products/:distributor_id.
func (h *CatalogHandler) Products(c *gin.Context) {
	distributorID, err := pathID(c, "distributor_id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	products, err := h.facade.DistributorProducts(c.Request.Context(), distributorID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := make([]dto.DistributorProductResponse, 0, len(products))
	for _, p := range products {
		response = append(response, dto.DistributorProductResponse{
			VariantID:      p.VariantID,
			Brand:          p.Brand,
			Price:          p.Price,
			Stock:          p.Stock,
			Unit:           p.Unit,
			SubProductName: p.SubProductName,
			ProductName:    p.ProductName,
			CategoryName:   p.CategoryName,
		})
	}
	c.JSON(http.StatusOK, response)
}

// AddProduct handles POST /distributor/add_product.
func (h *CatalogHandler) AddProduct(c *gin.Context) {
	var req dto.AddProductRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	if req.Price == nil || req.Stock == nil {
		respondError(c, h.logger, fmt.Errorf("%w: price, stock", domainErrors.ErrMissingField))
		return
	}

	categoryName := req.CategoryName
	if categoryName == "" {
		categoryName = req.Category
	}
	variantID, err := h.facade.AddProduct(c.Request.Context(), model.NewProduct{
		DistributorID:  req.DistributorID,
		CategoryID:     req.CategoryID,
		CategoryName:   categoryName,
		ProductName:    req.ProductName,
		SubProductName: req.SubProductName,
		Brand:          req.Brand,
		Unit:           req.Unit,
		ImageURL:       req.ImageURL,
		Price:          *req.Price,
		Stock:          *req.Stock,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.AddProductResponse{Message: "Product added successfully", VariantID: variantID})
}

// UpdateProduct handles PUT /distributor/update_product/:variant_id.
func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	variantID, err := pathID(c, "variant_id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	var req dto.UpdateProductRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, err)
		return
	}
	if req.Price == nil || req.Stock == nil {
		respondError(c, h.logger, fmt.Errorf("%w: price, stock", domainErrors.ErrMissingField))
		return
	}

	update := model.VariantUpdate{Price: *req.Price, Stock: *req.Stock, Unit: req.Unit, Brand: req.Brand}
	if err := h.facade.UpdateVariant(c.Request.Context(), variantID, update); err != nil {
		respondError(c, h.logger, err)
		return
	}

	message(c, http.StatusOK, "Variant %d updated", variantID)
}

// DeleteProduct handles DELETE /distributor/delete_product/:variant_id.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	variantID, err := pathID(c, "variant_id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.facade.RetireVariant(c.Request.Context(), variantID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	message(c, http.StatusOK, "Variant %d marked as deleted (stock=0).", variantID)
}
