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
	"fieldbook/internal/usecase/wizard"

	"github.com/gin-gonic/gin"
)

type WizardHandler struct {
	wizard wizard.Wizard
}

func NewWizardHandler(w wizard.Wizard) *WizardHandler {
	return &WizardHandler{wizard: w}
}

// @Summary Start booking wizard
// @Description Begin a fresh booking draft, replacing any existing one
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Success 201 {object} wizard.DraftView
// @Failure 401 {object} map[string]string
// @Router /wizard [post]
func (h *WizardHandler) Start(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusCreated, h.wizard.Start(userID))
}

// @Summary Get wizard state
// @Description Get the current booking draft
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} wizard.DraftView
// @Failure 404 {object} map[string]string
// @Router /wizard [get]
func (h *WizardHandler) State(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.wizard.State(userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No active booking session",
		})
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Select field
// @Description Choose a field for the booking draft
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SelectFieldRequest true "Field selection"
// @Success 200 {object} wizard.DraftView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /wizard/field [post]
func (h *WizardHandler) SelectField(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SelectFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.wizard.SelectField(c.Request.Context(), userID, req.FieldID)
	if err != nil {
		h.handleWizardError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Check schedule
// @Description Get the slot list for the draft's field on a date
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} resdto.FieldAvailabilityResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /wizard/schedule [get]
func (h *WizardHandler) CheckSchedule(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
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

	availability, err := h.wizard.CheckSchedule(c.Request.Context(), userID, date)
	if err != nil {
		h.handleWizardError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromFieldAvailability(availability))
}

// @Summary Select schedule
// @Description Choose a date, start slot and duration for the draft
// @Tags wizard
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.SelectScheduleRequest true "Schedule selection"
// @Success 200 {object} wizard.DraftView
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /wizard/schedule [post]
func (h *WizardHandler) SelectSchedule(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.SelectScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	date, err := req.ParseDate()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid date format, expected YYYY-MM-DD",
		})
		return
	}

	view, err := h.wizard.SelectSchedule(c.Request.Context(), userID, date, req.StartTime, req.DurationHours)
	if err != nil {
		h.handleWizardError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Go back one step
// @Description Return to the previous wizard step, keeping earlier selections
// @Tags wizard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} wizard.DraftView
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /wizard/back [post]
func (h *WizardHandler) Back(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.wizard.Back(userID)
	if err != nil {
		h.handleWizardError(c, err)
		return
	}

	c.JSON(http.StatusOK, view)
}

// @Summary Submit booking
// @Description Submit the completed draft with customer details and optional payment proof
// @Tags wizard
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 413 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /wizard/submit [post]
func (h *WizardHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var form reqdto.SubmitBookingForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	submitForm := wizard.SubmitForm{
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

		submitForm.Proof = &commands.ProofUpload{
			Filename: fileHeader.Filename,
			Size:     fileHeader.Size,
			Content:  file,
		}
	}

	view, err := h.wizard.Submit(c.Request.Context(), userID, submitForm)
	if err != nil {
		h.handleWizardError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Abandon wizard
// @Description Discard the current booking draft
// @Tags wizard
// @Security BearerAuth
// @Success 204 "No Content"
// @Router /wizard [delete]
func (h *WizardHandler) Abandon(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	h.wizard.Abandon(userID)
	c.Status(http.StatusNoContent)
}

func (h *WizardHandler) handleWizardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, wizard.ErrNoSession):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "No active booking session",
		})
	case errors.Is(err, wizard.ErrWrongStep):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Operation not allowed at this step",
		})
	case errors.Is(err, wizard.ErrDraftIncomplete):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking draft is incomplete",
		})
	case errors.Is(err, wizard.ErrSlotUnavailable),
		errors.Is(err, commands.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Selected time slot is not available",
		})
	case errors.Is(err, commands.ErrBookingConflict):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Booking conflicts with an existing reservation",
		})
	case errors.Is(err, queries.ErrFieldNotFound),
		errors.Is(err, commands.ErrFieldNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Field not found",
		})
	case errors.Is(err, commands.ErrFieldUnavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Field is not open for booking",
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
