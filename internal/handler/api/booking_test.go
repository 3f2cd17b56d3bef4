//go:build unit

package api_test

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"fieldbook/internal/domain/user"
	"fieldbook/internal/handler/api"
	"fieldbook/internal/usecase/commands"
	"fieldbook/internal/usecase/queries"
	"fieldbook/tests/common/builder"
	"fieldbook/tests/common/httptest"
	commandsmock "fieldbook/tests/mock/commands"
	queriesmock "fieldbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockQueries  *queriesmock.MockBookingQueries
	mockCommands *commandsmock.MockBookingCommands
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.userID = uuid.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockQueries, s.mockCommands)

	// Mock middleware behavior: any Authorization header authenticates as s.userID
	s.router.Use(func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("user_id", s.userID)
			c.Set("user_role", user.RoleCustomer)
		}
	})

	s.router.POST("/bookings", s.handler.CreateBooking)
	s.router.GET("/bookings", s.handler.GetUserBookings)
	s.router.GET("/bookings/:id", s.handler.GetBooking)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func createBookingForm(t *testing.T, mutate func(fields map[string]string)) (*bytes.Buffer, string) {
	t.Helper()

	fields := map[string]string{
		"field_id":       uuid.NewString(),
		"date":           "2026-09-05",
		"start_time":     "18:00",
		"duration_hours": "2",
		"customer_name":  "Budi Santoso",
		"customer_phone": "081234567890",
		"customer_email": "budi@example.com",
		"payment_method": "bank_transfer",
	}
	if mutate != nil {
		mutate(fields)
	}

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for key, value := range fields {
		if value == "" {
			continue
		}
		if err := mw.WriteField(key, value); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf, mw.FormDataContentType()
}

func (s *BookingHandlerTestSuite) TestCreateBooking() {
	url := "/bookings"

	s.Run("success: returns 201 with the booking", func() {
		fieldID := uuid.New()
		view := builder.NewBookingBuilder().WithField(fieldID).WithUser(s.userID).BuildView()

		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, params commands.CreateBookingParams) (*queries.BookingView, error) {
				s.Equal(s.userID, params.UserID)
				s.Equal(fieldID, params.FieldID)
				s.Equal("18:00", params.StartTime)
				s.Equal(2, params.DurationHours)
				return view, nil
			})

		body, contentType := createBookingForm(s.T(), func(fields map[string]string) {
			fields["field_id"] = fieldID.String()
		})
		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url, body, contentType, "token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.ID.String(), response["id"])
		s.Equal("20:00", response["endTime"])
	})

	s.Run("error: 400 on missing required fields", func() {
		cases := []string{"field_id", "date", "start_time", "customer_name", "customer_phone", "customer_email", "payment_method"}
		for _, missing := range cases {
			s.Run(missing, func() {
				body, contentType := createBookingForm(s.T(), func(fields map[string]string) {
					fields[missing] = ""
				})
				rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url, body, contentType, "token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: 400 on a malformed date", func() {
		body, contentType := createBookingForm(s.T(), func(fields map[string]string) {
			fields["date"] = "05-09-2026"
		})
		rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url, body, contentType, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid date format")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "unknown field",
				commandsError:  commands.ErrFieldNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Field not found",
			},
			{
				name:           "field closed",
				commandsError:  commands.ErrFieldUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Field is not open for booking",
			},
			{
				name:           "slot taken",
				commandsError:  commands.ErrSlotUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Selected time slot is not available",
			},
			{
				name:           "overlapping reservation",
				commandsError:  commands.ErrBookingConflict,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Booking conflicts with an existing reservation",
			},
			{
				name:           "oversized proof",
				commandsError:  commands.ErrProofTooLarge,
				expectedStatus: http.StatusRequestEntityTooLarge,
				expectedMsg:    "Payment proof exceeds size limit",
			},
			{
				name:           "invalid customer data",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Domain validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), gomock.Any()).
					Return(nil, tc.commandsError)

				body, contentType := createBookingForm(s.T(), nil)
				rec := httptest.PerformMultipartRequest(s.T(), s.router, http.MethodPost, url, body, contentType, "token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *BookingHandlerTestSuite) TestGetUserBookings() {
	s.Run("success: lists the user's bookings", func() {
		item := builder.NewBookingBuilder().WithUser(s.userID).BuildListItem()
		s.mockQueries.EXPECT().ListByUser(gomock.Any(), s.userID).
			Return([]*queries.BookingListItem{item}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "token")

		var response []map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 1)
		s.Equal(item.ID.String(), response[0]["id"])
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	s.Run("success: returns the booking", func() {
		view := builder.NewBookingBuilder().WithUser(s.userID).BuildView()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, user.RoleCustomer, view.ID).
			Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+view.ID.String(), nil, "token")

		var response map[string]any
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID.String(), response["id"])
	})

	s.Run("error: 404 on an unknown booking", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, user.RoleCustomer, id).
			Return(nil, queries.ErrBookingNotFound)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Booking not found")
	})

	s.Run("error: 403 on someone else's booking", func() {
		id := uuid.New()
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.userID, user.RoleCustomer, id).
			Return(nil, queries.ErrForbidden)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+id.String(), nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Not allowed to view this booking")
	})

	s.Run("error: 400 on a malformed ID", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid booking ID format")
	})
}
