package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/polkiloo/freshcart/internal/domain/model"
	"github.com/polkiloo/freshcart/internal/server/http/dto"
)

// OrderHandler processes order placement and listings.
type OrderHandler struct {
	facade OrderFacade
	logger *zap.Logger
}

// NewOrderHandler creates OrderHandler instance.
func NewOrderHandler(facade OrderFacade, logger *zap.Logger) *OrderHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrderHandler{facade: facade, logger: logger}
}

// Place handles POST /place_order.
func (h *OrderHandler) Place(c *gin.Context) {
	var req dto.PlaceOrderRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, err)
		return
	}

	items := make([]model.OrderItem, 0, len(req.Cart))
	for _, item := range req.Cart {
		items = append(items, model.OrderItem{
			VariantID: item.VariantID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order, err := h.facade.PlaceOrder(c.Request.Context(), model.NewOrder{
		UserID:      req.UserID,
		Items:       items,
		Total:       req.Total,
		DeliveryFee: req.DeliveryFee,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.PlaceOrderResponse{Message: "Order placed successfully", OrderID: order.ID})
}

// ShopOrders handles GET /orders/:user_id.
func (h *OrderHandler) ShopOrders(c *gin.Context) {
	userID, err := pathID(c, "user_id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	orders, err := h.facade.ShopOrders(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := make([]dto.ShopOrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.ShopOrderResponse{
			OrderID:         o.OrderID,
			Status:          string(o.Status),
			PaymentStatus:   o.PaymentStatus,
			OrderDate:       o.OrderDate,
			TotalAmount:     o.TotalAmount,
			PaymentState:    string(o.PaymentState),
			DistributorName: o.Distributors,
		})
	}
	c.JSON(http.StatusOK, response)
}

// DistributorOrders handles GET /distributor/orders/:distributor_id.
func (h *OrderHandler) DistributorOrders(c *gin.Context) {
	h.distributorOrders(c, h.facade.DistributorOrders)
}

// DeletedOrders handles GET /distributor/deleted_orders/:distributor_id.
func (h *OrderHandler) DeletedOrders(c *gin.Context) {
	h.distributorOrders(c, h.facade.DeletedOrders)
}

func (h *OrderHandler) distributorOrders(c *gin.Context, list func(ctx context.Context, distributorID int64) ([]model.DistributorOrder, error)) {
	distributorID, err := pathID(c, "distributor_id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	orders, err := list(c.Request.Context(), distributorID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := make([]dto.DistributorOrderResponse, 0, len(orders))
	for _, o := range orders {
		response = append(response, dto.DistributorOrderResponse{
			OrderID:       o.OrderID,
			OrderDate:     o.OrderDate,
			Status:        string(o.Status),
			PaymentStatus: o.PaymentStatus,
			ShopOwner:     o.ShopOwner,
			Amount:        o.Amount,
		})
	}
	c.JSON(http.StatusOK, response)
}
