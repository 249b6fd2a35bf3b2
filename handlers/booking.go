// File: handlers/booking.go
package handlers

import (
	"net/http"

	"voyago/middleware"
	"voyago/models"
	"voyago/services/booking"
	"voyago/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler handles POST /bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	logger := utils.GetLogger()
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var input models.BookingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		logger.Error("Invalid booking payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create booking", "details": err.Error()})
		return
	}

	created, err := h.Service.Create(c.Request.Context(), identity, input)
	if err != nil {
		logger.Error("Failed to create booking", zap.String("userID", identity.ID), zap.Error(err))
		serviceError(c, "Failed to create booking", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "booking": created})
}

// MyBookingsHandler handles GET /my-bookings.
func (h *BookingHandler) MyBookingsHandler(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	bookings, err := h.Service.ListMine(c.Request.Context(), identity)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch user bookings", zap.String("userID", identity.ID), zap.Error(err))
		serviceError(c, "Failed to fetch bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// AllBookingsHandler handles GET /admin/bookings.
func (h *BookingHandler) AllBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListAll(c.Request.Context())
	if err != nil {
		zap.L().Error("Failed to fetch all bookings", zap.Error(err))
		serviceError(c, "Failed to fetch bookings", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}
