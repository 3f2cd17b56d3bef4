//go:build unit

package api_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"testing"

	"fieldbook/internal/handler/api"
	"fieldbook/internal/usecase/commands"
	"fieldbook/internal/usecase/queries"
	"fieldbook/internal/usecase/wizard"
	"fieldbook/tests/common/builder"
	"fieldbook/tests/common/httptest"
	"fieldbook/tests/common/testutil"
	wizardmock "fieldbook/tests/mock/wizard"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WizardHandlerTestSuite struct {
	suite.Suite
	router     *gin.Engine
	mockCtrl   *gomock.Controller
	mockWizard *wizardmock.MockWizard
	handler    *api.WizardHandler
	userID     uuid.UUID
}

func (s *WizardHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockWizard = wizardmock.NewMockWizard(s.mockCtrl)
	s.handler = api.NewWizardHandler(s.mockWizard)
	s.userID = uuid.New()

	// Mock middleware behavior: authorized requests carry a user ID.
	s.router.Use(func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
		}
	})
	s.router.POST("/wizard", s.handler.Start)
	s.router.GET("/wizard", s.handler.State)
	s.router.DELETE("/wizard", s.handler.Abandon)
	s.router.POST("/wizard/field", s.handler.SelectField)
	s.router.GET("/wizard/schedule", s.handler.CheckSchedule)
	s.router.POST("/wizard/schedule", s.handler.SelectSchedule)
	s.router.POST("/wizard/back", s.handler.Back)
	s.router.POST("/wizard/submit", s.handler.Submit)
}

func (s *WizardHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWizardHandlerSuite(t *testing.T) {
	suite.Run(t, new(WizardHandlerTestSuite))
}

func draftView(state string) *wizard.DraftView {
	return &wizard.DraftView{State: state}
}

func saturdaySchedule() *queries.FieldAvailability {
	return &queries.FieldAvailability{
		Available: true,
		OpenTime:  "06:00",
		CloseTime: "23:00",
		Slots: []queries.TimeSlotView{
			{Time: "18:00", Available: true, PriceMultiplier: 1.2},
			{Time: "19:00", Available: false, PriceMultiplier: 1.2},
		},
	}
}

func (s *WizardHandlerTestSuite) TestStart() {
	s.Run("success: returns 201 with the fresh draft", func() {
		s.mockWizard.EXPECT().Start(s.userID).Return(draftView("selecting_field"))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/wizard", nil, "token")

		var response wizard.DraftView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("selecting_field", response.State)
	})

	s.Run("error: 500 when user_id missing in context", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/wizard", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusInternalServerError, "Internal server error")
	})
}

func (s *WizardHandlerTestSuite) TestState() {
	s.Run("success: returns the current draft", func() {
		s.mockWizard.EXPECT().State(s.userID).Return(draftView("selecting_schedule"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/wizard", nil, "token")

		var response wizard.DraftView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("selecting_schedule", response.State)
	})

	s.Run("error: 404 without a session", func() {
		s.mockWizard.EXPECT().State(s.userID).Return(nil, wizard.ErrNoSession)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/wizard", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "No active booking session")
	})
}

func (s *WizardHandlerTestSuite) TestSelectField() {
	fieldID := uuid.New()
	reqBody := map[string]any{"field_id": fieldID.String()}

	s.Run("success: returns the advanced draft", func() {
		view := draftView("selecting_schedule")
		view.FieldID = &fieldID
		s.mockWizard.EXPECT().SelectField(gomock.Any(), s.userID, fieldID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/wizard/field", reqBody, "token")

		var response wizard.DraftView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().NotNil(response.FieldID)
		s.Equal(fieldID, *response.FieldID)
	})

	s.Run("error: 400 on malformed body", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing field_id", mutate: testutil.Field("field_id", nil)},
			{name: "field_id not a uuid", mutate: testutil.Field("field_id", "not-a-uuid")},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := map[string]any{"field_id": fieldID.String()}
				tc.mutate(body)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/wizard/field", body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps wizard errors to proper statuses", func() {
		testCases := []struct {
			name           string
			wizardError    error
			expectedStatus int
		}{
			{name: "no session", wizardError: wizard.ErrNoSession, expectedStatus: http.StatusNotFound},
			{name: "wrong step", wizardError: wizard.ErrWrongStep, expectedStatus: http.StatusConflict},
			{name: "unknown field", wizardError: commands.ErrFieldNotFound, expectedStatus: http.StatusNotFound},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockWizard.EXPECT().SelectField(gomock.Any(), s.userID, fieldID).
					Return(nil, tc.wizardError)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/wizard/field", reqBody, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}

func (s *WizardHandlerTestSuite) TestCheckSchedule() {
	s.Run("success: returns the slot list", func() {
		s.mockWizard.EXPECT().CheckSchedule(gomock.Any(), s.userID, gomock.Any()).
			Return(saturdaySchedule(), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/wizard/schedule?date=2026-09-05", nil, "token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(true, response["available"])
	})

	s.Run("error: 400 on a malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/wizard/schedule?date=05-09-2026", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
	})

	s.Run("error: 409 before a field is chosen", func() {
		s.mockWizard.EXPECT().CheckSchedule(gomock.Any(), s.userID, gomock.Any()).
			Return(nil, wizard.ErrWrongStep)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/wizard/schedule?date=2026-09-05", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Operation not allowed at this step")
	})
}

func (s *WizardHandlerTestSuite) TestSelectSchedule() {
	reqBody := map[string]any{
		"date":           "2026-09-05",
		"start_time":     "18:00",
		"duration_hours": 2,
	}

	s.Run("success: returns the priced draft", func() {
		view := draftView("confirming_details")
		view.TotalPrice = 360000
		s.mockWizard.EXPECT().SelectSchedule(gomock.Any(), s.userID, gomock.Any(), "18:00", 2).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/wizard/schedule", reqBody, "token")

		var response wizard.DraftView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(360000), response.TotalPrice)
	})

	s.Run("error: 400 on validation errors", func() {
		cases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing date", mutate: testutil.Field("date", nil)},
			{name: "missing start_time", mutate: testutil.Field("start_time", nil)},
			{name: "duration below 1", mutate: testutil.Field("duration_hours", 0)},
			{name: "duration above 4", mutate: testutil.Field("duration_hours", 5)},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				body := map[string]any{
					"date":           "2026-09-05",
					"start_time":     "18:00",
					"duration_hours": 2,
				}
				tc.mutate(body)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/wizard/schedule", body, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 409 when the slot is taken", func() {
		s.mockWizard.EXPECT().SelectSchedule(gomock.Any(), s.userID, gomock.Any(), "18:00", 2).
			Return(nil, wizard.ErrSlotUnavailable)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/wizard/schedule", reqBody, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Selected time slot is not available")
	})
}

func (s *WizardHandlerTestSuite) TestBack() {
	s.Run("success: returns the previous step", func() {
		s.mockWizard.EXPECT().Back(s.userID).Return(draftView("selecting_schedule"), nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/wizard/back", nil, "token")

		var response wizard.DraftView
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal("selecting_schedule", response.State)
	})

	s.Run("error: 409 on the first step", func() {
		s.mockWizard.EXPECT().Back(s.userID).Return(nil, wizard.ErrWrongStep)
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/wizard/back", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "Operation not allowed at this step")
	})
}

func (s *WizardHandlerTestSuite) submitBody(withProof bool) (*bytes.Buffer, string) {
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	s.Require().NoError(mw.WriteField("customer_name", "Budi Santoso"))
	s.Require().NoError(mw.WriteField("customer_phone", "081234567890"))
	s.Require().NoError(mw.WriteField("customer_email", "budi@example.com"))
	s.Require().NoError(mw.WriteField("payment_method", "bank_transfer"))
	if withProof {
		fw, err := mw.CreateFormFile("proof", "transfer.jpg")
		s.Require().NoError(err)
		_, err = fw.Write([]byte("fake image bytes"))
		s.Require().NoError(err)
	}
	s.Require().NoError(mw.Close())
	return body, mw.FormDataContentType()
}

func (s *WizardHandlerTestSuite) TestSubmit() {
	s.Run("success: returns 201 with the created booking", func() {
		created := builder.NewBookingBuilder().WithUser(s.userID).BuildView()
		s.mockWizard.EXPECT().Submit(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, form wizard.SubmitForm) (*queries.BookingView, error) {
				s.Equal("Budi Santoso", form.CustomerName)
				s.Equal("bank_transfer", form.PaymentMethod)
				s.Nil(form.Proof)
				return created, nil
			})

		body, contentType := s.submitBody(false)
		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, "/wizard/submit", body, contentType, "token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(created.ID.String(), response["id"])
	})

	s.Run("success: forwards the payment proof", func() {
		created := builder.NewBookingBuilder().WithUser(s.userID).BuildView()
		s.mockWizard.EXPECT().Submit(gomock.Any(), s.userID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, form wizard.SubmitForm) (*queries.BookingView, error) {
				s.Require().NotNil(form.Proof)
				s.Equal("transfer.jpg", form.Proof.Filename)
				return created, nil
			})

		body, contentType := s.submitBody(true)
		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, "/wizard/submit", body, contentType, "token")
		s.Equal(http.StatusCreated, rec.Code)
	})

	s.Run("error: maps wizard errors to proper statuses", func() {
		testCases := []struct {
			name           string
			wizardError    error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "incomplete draft",
				wizardError:    wizard.ErrDraftIncomplete,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Booking draft is incomplete",
			},
			{
				name:           "conflicting reservation",
				wizardError:    commands.ErrBookingConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Booking conflicts with an existing reservation",
			},
			{
				name:           "proof too large",
				wizardError:    commands.ErrProofTooLarge,
				expectedStatus: http.StatusRequestEntityTooLarge,
				expectedMsg:    "Payment proof exceeds size limit",
			},
			{
				name:           "invalid customer details",
				wizardError:    commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockWizard.EXPECT().Submit(gomock.Any(), s.userID, gomock.Any()).
					Return(nil, tc.wizardError)

				body, contentType := s.submitBody(false)
				rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, "/wizard/submit", body, contentType, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *WizardHandlerTestSuite) TestAbandon() {
	s.Run("success: returns 204", func() {
		s.mockWizard.EXPECT().Abandon(s.userID)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/wizard", nil, "token")
		s.Equal(http.StatusNoContent, rec.Code)
	})
}
