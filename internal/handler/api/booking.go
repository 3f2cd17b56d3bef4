package api

import (
	"errors"
	"net/http"

	reqdto "fieldbook/internal/handler/dto/request"
	resdto "fieldbook/internal/handler/dto/response"
	"fieldbook/internal/handler/httperr"
	"fieldbook/internal/handler/middleware"
	"fieldbook/internal/usecase/commands"
	"fieldbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	bookingQueries  queries.BookingQueries
	bookingCommands commands.BookingCommands
}

func NewBookingHandler(bookingQueries queries.BookingQueries, bookingCommands commands.BookingCommands) *BookingHandler {
	return &BookingHandler{
		bookingQueries:  bookingQueries,
		bookingCommands: bookingCommands,
	}
}

// @Summary Create booking
// @Description Submit a booking directly, without the wizard
// @Tags bookings
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var form reqdto.CreateBookingForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	fieldID, err := uuid.Parse(form.FieldID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid field ID format",
		})
		return
	}
	date, err := reqdto.ParseDate(form.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	params := commands.CreateBookingParams{
		UserID:        userID,
		FieldID:       fieldID,
		Date:          date,
		StartTime:     form.StartTime,
		DurationHours: form.DurationHours,
		CustomerName:  form.CustomerName,
		CustomerPhone: form.CustomerPhone,
		CustomerEmail: form.CustomerEmail,
		PaymentMethod: form.PaymentMethod,
		Note:          form.Note,
	}

	if fileHeader, err := c.FormFile("proof"); err == nil {
		file, openErr := fileHeader.Open()
		if openErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Failed to read payment proof",
			})
			return
		}
		defer file.Close()

		params.Proof = &commands.ProofUpload{
			Filename: fileHeader.Filename,
			Size:     fileHeader.Size,
			Content:  file,
		}
	}

	view, err := h.bookingCommands.CreateBooking(c.Request.Context(), params)
	if err != nil {
		h.handleCreateError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

func (h *BookingHandler) handleCreateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrFieldNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Field not found",
		})
	case errors.Is(err, commands.ErrFieldUnavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Field is not open for booking",
		})
	case errors.Is(err, commands.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Selected time slot is not available",
		})
	case errors.Is(err, commands.ErrBookingConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking conflicts with an existing reservation",
		})
	case errors.Is(err, commands.ErrProofTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{
			"error": "Payment proof exceeds size limit",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Domain validation failed",
		})
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// @Summary Get user bookings
// @Description List the current user's bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.BookingListResponse
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) GetUserBookings(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	items, err := h.bookingQueries.ListByUser(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.BookingListResponse, len(items))
	for i, item := range items {
		response[i] = resdto.FromBookingListItem(item)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get booking
// @Description Get booking by ID; customers may only see their own
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid booking ID format",
		})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.bookingQueries.GetByID(c.Request.Context(), userID, role, id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		case errors.Is(err, queries.ErrForbidden):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Not allowed to view this booking",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}
