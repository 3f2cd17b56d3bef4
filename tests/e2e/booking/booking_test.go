//go:build e2e

package booking_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"
	"time"

	"fieldbook/internal/domain/user"
	"fieldbook/tests/common/dbtest"
	"fieldbook/tests/common/httptest"
	"fieldbook/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL          = "/api/auth/login"
	fieldsURL         = "/api/fields"
	bookingsURL       = "/api/bookings"
	wizardURL         = "/api/wizard"
	wizardFieldURL    = "/api/wizard/field"
	wizardScheduleURL = "/api/wizard/schedule"
	wizardBackURL     = "/api/wizard/back"
	wizardSubmitURL   = "/api/wizard/submit"
	adminBookingsURL  = "/api/admin/bookings"
)

type bookingSuite struct {
	e2e.SharedSuite
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	dbtest.CreateTestUser(s.T(), s.DB, "customer@example.com", string(user.RoleCustomer))
	dbtest.CreateTestUser(s.T(), s.DB, "rival@example.com", string(user.RoleCustomer))
	dbtest.CreateTestUser(s.T(), s.DB, "admin@example.com", string(user.RoleAdmin))
}

func (s *bookingSuite) login(email string) string {
	t := s.T()

	body := map[string]any{"email": email, "password": "password123"}
	w := httptest.PerformRequest(t, s.Router, http.MethodPost, loginURL, body, "")

	var response map[string]any
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &response)
	token, ok := response["access_token"].(string)
	require.True(t, ok, "login response missing access_token")
	return token
}

// futsalFieldID looks up the seeded futsal field through the public listing.
func (s *bookingSuite) futsalFieldID(token string) uuid.UUID {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodGet, fieldsURL, nil, token)

	var fields []map[string]any
	httptest.AssertSuccessResponse(t, w, http.StatusOK, &fields)
	for _, f := range fields {
		if f["name"] == "Lapangan Futsal 1" {
			id, err := uuid.Parse(f["id"].(string))
			require.NoError(t, err)
			return id
		}
	}
	t.Fatal("seeded futsal field not found")
	return uuid.Nil
}

// bookingDate returns a date far enough ahead that it is always bookable.
func bookingDate() string {
	return time.Now().AddDate(0, 0, 7).Format("2006-01-02")
}

func submitForm(t *testing.T, withProof bool) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	require.NoError(t, mw.WriteField("customer_name", "Budi Santoso"))
	require.NoError(t, mw.WriteField("customer_phone", "081234567890"))
	require.NoError(t, mw.WriteField("customer_email", "budi@example.com"))
	require.NoError(t, mw.WriteField("payment_method", "bank_transfer"))
	if withProof {
		fw, err := mw.CreateFormFile("proof", "transfer.jpg")
		require.NoError(t, err)
		_, err = fw.Write([]byte("fake image bytes"))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

// bookSlot walks the whole wizard for the given user and returns the created booking.
func (s *bookingSuite) bookSlot(token string, fieldID uuid.UUID, date, startTime string, durationHours int) map[string]any {
	t := s.T()

	w := httptest.PerformRequest(t, s.Router, http.MethodPost, wizardURL, nil, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, wizardFieldURL,
		map[string]any{"field_id": fieldID}, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.PerformRequest(t, s.Router, http.MethodGet, wizardScheduleURL+"?date="+date, nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.PerformRequest(t, s.Router, http.MethodPost, wizardScheduleURL,
		map[string]any{"date": date, "start_time": startTime, "duration_hours": durationHours}, token)
	require.Equal(t, http.StatusOK, w.Code)

	body, contentType := submitForm(t, false)
	w = httptest.PerformMultipartRequest(t, s.Router, http.MethodPost, wizardSubmitURL, body, contentType, token)

	var booking map[string]any
	httptest.AssertSuccessResponse(t, w, http.StatusCreated, &booking)
	return booking
}

func (s *bookingSuite) TestWizardFlow() {
	s.Run("complete flow creates a booking", func() {
		t := s.T()
		token := s.login("customer@example.com")
		fieldID := s.futsalFieldID(token)
		date := bookingDate()

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, wizardURL, nil, token)
		var draft map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &draft)
		require.Equal(t, "selecting_field", draft["state"])

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, wizardFieldURL,
			map[string]any{"field_id": fieldID}, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &draft)
		require.Equal(t, "selecting_schedule", draft["state"])

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, wizardScheduleURL+"?date="+date, nil, token)
		var availability map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &availability)
		require.Equal(t, true, availability["available"])
		require.NotEmpty(t, availability["slots"])

		// 18:00 falls in the peak window: 150000 * 1.2 * 2h
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, wizardScheduleURL,
			map[string]any{"date": date, "start_time": "18:00", "duration_hours": 2}, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &draft)
		require.Equal(t, "confirming_details", draft["state"])
		require.EqualValues(t, 360000, draft["total_price"])

		body, contentType := submitForm(t, true)
		w = httptest.PerformMultipartRequest(t, s.Router, http.MethodPost, wizardSubmitURL, body, contentType, token)
		var booking map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &booking)
		require.Equal(t, date, booking["date"])
		require.Equal(t, "18:00", booking["startTime"])
		require.Equal(t, "20:00", booking["endTime"])
		require.EqualValues(t, 360000, booking["totalPrice"])
		require.Equal(t, "pending", booking["status"])

		// submit consumed the session
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, wizardURL, nil, token)
		require.Equal(t, http.StatusNotFound, w.Code)

		// booking shows up in the user's list
		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL, nil, token)
		var list []map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &list)
		require.Len(t, list, 1)
		require.Equal(t, booking["id"], list[0]["id"])
	})

	s.Run("back keeps the selected field", func() {
		t := s.T()
		token := s.login("customer@example.com")
		fieldID := s.futsalFieldID(token)
		date := bookingDate()

		httptest.PerformRequest(t, s.Router, http.MethodPost, wizardURL, nil, token)
		httptest.PerformRequest(t, s.Router, http.MethodPost, wizardFieldURL,
			map[string]any{"field_id": fieldID}, token)
		httptest.PerformRequest(t, s.Router, http.MethodGet, wizardScheduleURL+"?date="+date, nil, token)
		httptest.PerformRequest(t, s.Router, http.MethodPost, wizardScheduleURL,
			map[string]any{"date": date, "start_time": "10:00", "duration_hours": 1}, token)

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, wizardBackURL, nil, token)
		var draft map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &draft)
		require.Equal(t, "selecting_schedule", draft["state"])
		require.Equal(t, fieldID.String(), draft["field_id"])

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, wizardBackURL, nil, token)
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &draft)
		require.Equal(t, "selecting_field", draft["state"])
		require.Equal(t, fieldID.String(), draft["field_id"])
	})

	s.Run("submitting without a schedule conflicts", func() {
		t := s.T()
		token := s.login("customer@example.com")
		fieldID := s.futsalFieldID(token)

		httptest.PerformRequest(t, s.Router, http.MethodPost, wizardURL, nil, token)
		httptest.PerformRequest(t, s.Router, http.MethodPost, wizardFieldURL,
			map[string]any{"field_id": fieldID}, token)

		body, contentType := submitForm(t, false)
		w := httptest.PerformMultipartRequest(t, s.Router, http.MethodPost, wizardSubmitURL, body, contentType, token)
		require.Equal(t, http.StatusConflict, w.Code)
	})

	s.Run("wizard requires authentication", func() {
		t := s.T()
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, wizardURL, nil, "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *bookingSuite) TestDirectSubmission() {
	s.Run("POST /bookings skips the wizard", func() {
		t := s.T()
		token := s.login("customer@example.com")
		fieldID := s.futsalFieldID(token)
		date := bookingDate()

		buf := &bytes.Buffer{}
		mw := multipart.NewWriter(buf)
		require.NoError(t, mw.WriteField("field_id", fieldID.String()))
		require.NoError(t, mw.WriteField("date", date))
		require.NoError(t, mw.WriteField("start_time", "10:00"))
		require.NoError(t, mw.WriteField("duration_hours", "3"))
		require.NoError(t, mw.WriteField("customer_name", "Budi Santoso"))
		require.NoError(t, mw.WriteField("customer_phone", "081234567890"))
		require.NoError(t, mw.WriteField("customer_email", "budi@example.com"))
		require.NoError(t, mw.WriteField("payment_method", "cash"))
		require.NoError(t, mw.Close())

		w := httptest.PerformMultipartRequest(t, s.Router, http.MethodPost, bookingsURL, buf, mw.FormDataContentType(), token)

		var booking map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusCreated, &booking)
		require.Equal(t, "13:00", booking["endTime"])
		// 10:00-13:00 is off-peak for futsal: 150000 * 1.0 * 3h
		require.EqualValues(t, 450000, booking["totalPrice"])
	})
}

func (s *bookingSuite) TestDoubleBooking() {
	s.Run("a taken slot is rejected for the next customer", func() {
		t := s.T()
		date := bookingDate()

		token := s.login("customer@example.com")
		fieldID := s.futsalFieldID(token)
		s.bookSlot(token, fieldID, date, "18:00", 2)

		rivalToken := s.login("rival@example.com")
		httptest.PerformRequest(t, s.Router, http.MethodPost, wizardURL, nil, rivalToken)
		httptest.PerformRequest(t, s.Router, http.MethodPost, wizardFieldURL,
			map[string]any{"field_id": fieldID}, rivalToken)

		// the slot list reflects the existing reservation
		w := httptest.PerformRequest(t, s.Router, http.MethodGet, wizardScheduleURL+"?date="+date, nil, rivalToken)
		var availability map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &availability)
		for _, raw := range availability["slots"].([]any) {
			slot := raw.(map[string]any)
			if slot["time"] == "18:00" || slot["time"] == "19:00" {
				require.Equal(t, false, slot["available"], slot["time"])
			}
		}

		w = httptest.PerformRequest(t, s.Router, http.MethodPost, wizardScheduleURL,
			map[string]any{"date": date, "start_time": "18:00", "duration_hours": 1}, rivalToken)
		require.Equal(t, http.StatusConflict, w.Code)

		// an overlapping range is rejected even when its start slot is free
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, wizardScheduleURL,
			map[string]any{"date": date, "start_time": "17:00", "duration_hours": 2}, rivalToken)
		require.Equal(t, http.StatusConflict, w.Code)

		// a disjoint slot still works
		w = httptest.PerformRequest(t, s.Router, http.MethodPost, wizardScheduleURL,
			map[string]any{"date": date, "start_time": "20:00", "duration_hours": 1}, rivalToken)
		require.Equal(t, http.StatusOK, w.Code)
	})
}

func (s *bookingSuite) TestAdminBookingManagement() {
	s.Run("admin updates booking and payment status", func() {
		t := s.T()
		date := bookingDate()

		token := s.login("customer@example.com")
		fieldID := s.futsalFieldID(token)
		booking := s.bookSlot(token, fieldID, date, "18:00", 2)
		bookingID := booking["id"].(string)

		adminToken := s.login("admin@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminBookingsURL, nil, adminToken)
		var all []map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &all)
		require.Len(t, all, 1)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, adminBookingsURL+"/"+bookingID+"/status",
			map[string]any{"status": "active"}, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodPatch, adminBookingsURL+"/"+bookingID+"/payment-status",
			map[string]any{"status": "paid"}, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(t, s.Router, http.MethodGet, bookingsURL+"/"+bookingID, nil, token)
		var updated map[string]any
		httptest.AssertSuccessResponse(t, w, http.StatusOK, &updated)
		require.Equal(t, "active", updated["status"])
		require.Equal(t, "paid", updated["paymentStatus"])
	})

	s.Run("customer cannot reach admin endpoints", func() {
		t := s.T()
		token := s.login("customer@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodGet, adminBookingsURL, nil, token)
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	s.Run("unknown booking returns 404", func() {
		t := s.T()
		adminToken := s.login("admin@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			adminBookingsURL+"/"+uuid.NewString()+"/status",
			map[string]any{"status": "cancelled"}, adminToken)
		require.Equal(t, http.StatusNotFound, w.Code)
	})
}

func (s *bookingSuite) TestCancelledBookingFreesSlot() {
	s.Run("cancelling releases the slot for rebooking", func() {
		t := s.T()
		date := bookingDate()

		token := s.login("customer@example.com")
		fieldID := s.futsalFieldID(token)
		booking := s.bookSlot(token, fieldID, date, "18:00", 2)
		bookingID := booking["id"].(string)

		adminToken := s.login("admin@example.com")
		w := httptest.PerformRequest(t, s.Router, http.MethodPatch, adminBookingsURL+"/"+bookingID+"/status",
			map[string]any{"status": "cancelled"}, adminToken)
		require.Equal(t, http.StatusNoContent, w.Code)

		rivalToken := s.login("rival@example.com")
		rebooked := s.bookSlot(rivalToken, fieldID, date, "18:00", 2)
		require.Equal(t, "18:00", rebooked["startTime"])
	})
}
