package api

import (
	"errors"
	"net/http"

	reqdto "fieldbook/internal/handler/dto/request"
	resdto "fieldbook/internal/handler/dto/response"
	"fieldbook/internal/handler/httperr"
	"fieldbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type FieldHandler struct {
	fieldQueries        queries.FieldQueries
	availabilityQueries queries.AvailabilityQueries
}

func NewFieldHandler(fieldQueries queries.FieldQueries, availabilityQueries queries.AvailabilityQueries) *FieldHandler {
	return &FieldHandler{
		fieldQueries:        fieldQueries,
		availabilityQueries: availabilityQueries,
	}
}

// @Summary List fields
// @Description List all active fields with their weekly availability windows
// @Tags fields
// @Produce json
// @Success 200 {array} resdto.FieldResponse
// @Router /fields [get]
func (h *FieldHandler) ListFields(c *gin.Context) {
	fields, err := h.fieldQueries.List(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.FieldResponse, len(fields))
	for i, f := range fields {
		response[i] = resdto.FromFieldView(f)
	}

	c.JSON(http.StatusOK, response)
}

// @Summary Get field
// @Description Get one field by ID
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Success 200 {object} resdto.FieldResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /fields/{id} [get]
func (h *FieldHandler) GetField(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid field ID format",
		})
		return
	}

	fieldView, err := h.fieldQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrFieldNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Field not found",
			})
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromFieldView(fieldView))
}

// @Summary Get field availability
// @Description Derive the hourly slot list for a field on a date
// @Tags fields
// @Produce json
// @Param id path string true "Field ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.FieldAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Router /fields/{id}/availability [get]
func (h *FieldHandler) GetAvailability(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid field ID format",
		})
		return
	}

	date, err := reqdto.ParseDate(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	availability, err := h.availabilityQueries.ForDate(c.Request.Context(), id, date)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFieldAvailability(availability))
}
