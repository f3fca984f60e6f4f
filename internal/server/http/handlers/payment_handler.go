package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/polkiloo/freshcart/internal/server/http/dto"
)

// PaymentHandler lists payments for both sides of an order.
type PaymentHandler struct {
	facade PaymentFacade
	logger *zap.Logger
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(facade PaymentFacade, logger *zap.Logger) *PaymentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PaymentHandler{facade: facade, logger: logger}
}

// ShopPayments handles GET /payments/:user_id.
func (h *PaymentHandler) ShopPayments(c *gin.Context) {
	userID, err := pathID(c, "user_id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	payments, err := h.facade.ShopPayments(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := make([]dto.ShopPaymentResponse, 0, len(payments))
	for _, p := range payments {
		response = append(response, dto.ShopPaymentResponse{
			PaymentID:       p.PaymentID,
			OrderID:         p.OrderID,
			Amount:          p.Amount,
			PaymentStatus:   string(p.Status),
			PaymentMethod:   p.Method,
			PaymentDate:     p.Date,
			OrderStatus:     string(p.OrderStatus),
			DistributorName: p.DistributorName,
		})
	}
	c.JSON(http.StatusOK, response)
}

// DistributorPayments handles GET /distributor/payments/:distributor_id.
func (h *PaymentHandler) DistributorPayments(c *gin.Context) {
	distributorID, err := pathID(c, "distributor_id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	payments, err := h.facade.DistributorPayments(c.Request.Context(), distributorID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := make([]dto.DistributorPaymentResponse, 0, len(payments))
	for _, p := range payments {
		response = append(response, dto.DistributorPaymentResponse{
			PaymentID:     p.PaymentID,
			OrderID:       p.OrderID,
			ShopName:      p.ShopName,
			Amount:        p.Amount,
			PaymentStatus: string(p.Status),
			PaymentMethod: p.Method,
			PaymentDate:   p.Date,
		})
	}
	c.JSON(http.StatusOK, response)
}
