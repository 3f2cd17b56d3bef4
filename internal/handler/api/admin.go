package api

import (
	"errors"
	"net/http"

	reqdto "fieldbook/internal/handler/dto/request"
	resdto "fieldbook/internal/handler/dto/response"
	"fieldbook/internal/handler/httperr"
	"fieldbook/internal/usecase/commands"
	"fieldbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AdminHandler struct {
	bookingQueries  queries.BookingQueries
	bookingCommands commands.BookingCommands
}

func NewAdminHandler(bookingQueries queries.BookingQueries, bookingCommands commands.BookingCommands) *AdminHandler {
	return &AdminHandler{
		bookingQueries:  bookingQueries,
		bookingCommands: bookingCommands,
	}
}

// @Summary List all bookings
// @Description List bookings across all users, optionally filtered by status
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Booking status filter"
// @Success 200 {array} resdto.BookingResponse
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/bookings [get]
func (h *AdminHandler) ListBookings(c *gin.Context) {
	views, err := h.bookingQueries.ListAll(c.Request.Context(), c.Query("status"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.BookingResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromBookingView(v)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Update booking status
// @Description Transition a booking to pending, active, cancelled or completed
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdateBookingStatusRequest true "New status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/bookings/{id}/status [patch]
func (h *AdminHandler) UpdateBookingStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.bookingCommands.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		h.handleUpdateError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Update payment status
// @Description Mark a booking's payment as pending, paid or failed
// @Tags admin
// @Accept json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.UpdatePaymentStatusRequest true "New payment status"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /admin/bookings/{id}/payment-status [patch]
func (h *AdminHandler) UpdatePaymentStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	var req reqdto.UpdatePaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	if err := h.bookingCommands.UpdatePaymentStatus(c.Request.Context(), id, req.Status); err != nil {
		h.handleUpdateError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) handleUpdateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid status value",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
