package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/polkiloo/freshcart/internal/server/http/dto"
)

// LifecycleHandler exposes distributor-driven order and payment status changes.
type LifecycleHandler struct {
	facade LifecycleFacade
	logger *zap.Logger
}

// NewLifecycleHandler constructs LifecycleHandler.
func NewLifecycleHandler(facade LifecycleFacade, logger *zap.Logger) *LifecycleHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LifecycleHandler{facade: facade, logger: logger}
}

// UpdateStatus handles PUT /distributor/update_status/:order_id.
func (h *LifecycleHandler) UpdateStatus(c *gin.Context) {
	orderID, err := pathID(c, "order_id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	var req dto.StatusRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, err)
		return
	}

	result, err := h.facade.TransitionOrder(c.Request.Context(), orderID, req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	effects := make([]string, 0, len(result.SideEffects))
	for _, e := range result.SideEffects {
		effects = append(effects, string(e))
	}
	c.JSON(http.StatusOK, dto.TransitionResponse{
		Message:     fmt.Sprintf("Order #%d updated to %s.", orderID, result.To),
		OrderID:     result.OrderID,
		Status:      string(result.To),
		SideEffects: effects,
	})
}

// DeleteOrder handles PUT /distributor/delete_order/:order_id.
func (h *LifecycleHandler) DeleteOrder(c *gin.Context) {
	orderID, err := pathID(c, "order_id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.facade.DeleteOrder(c.Request.Context(), orderID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	message(c, http.StatusOK, "Order %d marked as deleted.", orderID)
}

// RestoreOrder handles PUT /distributor/restore_order/:order_id.
func (h *LifecycleHandler) RestoreOrder(c *gin.Context) {
	orderID, err := pathID(c, "order_id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	if err := h.facade.RestoreOrder(c.Request.Context(), orderID); err != nil {
		respondError(c, h.logger, err)
		return
	}

	message(c, http.StatusOK, "Order %d restored successfully.", orderID)
}

// UpdatePayment handles PUT /distributor/update_payment/:payment_id.
func (h *LifecycleHandler) UpdatePayment(c *gin.Context) {
	paymentID, err := pathID(c, "payment_id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	var req dto.StatusRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, err)
		return
	}

	status, err := h.facade.UpdatePayment(c.Request.Context(), paymentID, req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.PaymentUpdateResponse{
		Message:   fmt.Sprintf("Payment #%d updated to %s successfully.", paymentID, status),
		PaymentID: paymentID,
		Status:    string(status),
	})
}
