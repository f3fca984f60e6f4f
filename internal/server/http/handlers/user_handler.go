package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/polkiloo/freshcart/internal/domain/model"
	"github.com/polkiloo/freshcart/internal/server/http/dto"
)

// UserHandler serves profiles and the distributor directory.
type UserHandler struct {
	facade UserFacade
	logger *zap.Logger
}

// NewUserHandler constructs UserHandler.
func NewUserHandler(facade UserFacade, logger *zap.Logger) *UserHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserHandler{facade: facade, logger: logger}
}

// Profile handles GET /user/:user_id.
func (h *UserHandler) Profile(c *gin.Context) {
	userID, err := pathID(c, "user_id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	user, err := h.facade.Profile(c.Request.Context(), userID)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ProfileResponse{
		UserID:    user.ID,
		Name:      user.Name,
		Email:     user.Email,
		ContactNo: user.ContactNo,
		Address:   user.Address,
		Role:      user.Role,
	})
}

// UpdateProfile handles PUT /user/:user_id.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, err := pathID(c, "user_id")
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	var req dto.ProfileUpdateRequest
	if err := bindJSON(c, &req); err != nil {
		respondError(c, h.logger, err)
		return
	}

	update := model.ProfileUpdate{Name: req.Name, ContactNo: req.ContactNo, Address: req.Address}
	if err := h.facade.UpdateProfile(c.Request.Context(), userID, update); err != nil {
		respondError(c, h.logger, err)
		return
	}

	message(c, http.StatusOK, "Profile updated successfully")
}

// Distributors handles GET /distributors.
func (h *UserHandler) Distributors(c *gin.Context) {
	users, err := h.facade.Distributors(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	response := make([]dto.DistributorResponse, 0, len(users))
	for _, u := range users {
		response = append(response, dto.DistributorResponse{
			UserID:    u.ID,
			Name:      u.Name,
			ContactNo: u.ContactNo,
			Address:   u.Address,
		})
	}
	c.JSON(http.StatusOK, response)
}
