//go:build unit

package booking_test

import (
	"testing"
	"time"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/domain/schedule"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validCustomer(t *testing.T) booking.Customer {
	t.Helper()
	c, err := booking.NewCustomer("Budi Santoso", "081234567890", "budi@example.com")
	require.NoError(t, err)
	return c
}

func newTestBooking(t *testing.T, mutate func(*bookingParams)) (*booking.Booking, error) {
	t.Helper()

	p := &bookingParams{
		fieldID:       uuid.New(),
		userID:        uuid.New(),
		date:          date(2026, time.September, 5),
		startTime:     "18:00",
		durationHours: 2,
		totalPrice:    360000,
		method:        booking.MethodBankTransfer,
	}
	if mutate != nil {
		mutate(p)
	}

	return booking.NewBooking(
		p.fieldID, p.userID, p.date, p.startTime, p.durationHours, p.totalPrice,
		validCustomer(t), p.method, booking.NewNote(""),
	)
}

type bookingParams struct {
	fieldID       uuid.UUID
	userID        uuid.UUID
	date          time.Time
	startTime     string
	durationHours int
	totalPrice    int64
	method        booking.PaymentMethod
}

func TestNewBooking(t *testing.T) {
	t.Run("derives end time and starts pending", func(t *testing.T) {
		b, err := newTestBooking(t, nil)
		require.NoError(t, err)

		assert.Equal(t, "20:00", b.EndTime())
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, booking.PaymentPending, b.PaymentStatus())
		assert.NotEqual(t, uuid.Nil, b.ID())
	})

	t.Run("end time past midnight is kept unwrapped", func(t *testing.T) {
		b, err := newTestBooking(t, func(p *bookingParams) {
			p.startTime = "22:00"
			p.durationHours = 4
		})
		require.NoError(t, err)
		assert.Equal(t, "26:00", b.EndTime())
	})

	t.Run("validation failures", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*bookingParams)
			errIs  error
		}{
			{
				name:   "zero date",
				mutate: func(p *bookingParams) { p.date = time.Time{} },
				errIs:  booking.ErrZeroDate,
			},
			{
				name:   "duration too short",
				mutate: func(p *bookingParams) { p.durationHours = 0 },
				errIs:  booking.ErrInvalidDuration,
			},
			{
				name:   "duration too long",
				mutate: func(p *bookingParams) { p.durationHours = 5 },
				errIs:  booking.ErrInvalidDuration,
			},
			{
				name:   "negative price",
				mutate: func(p *bookingParams) { p.totalPrice = -1 },
				errIs:  booking.ErrNegativePrice,
			},
			{
				name:   "invalid payment method",
				mutate: func(p *bookingParams) { p.method = booking.PaymentMethod("crypto") },
				errIs:  booking.ErrInvalidPaymentMethod,
			},
			{
				name:   "malformed start time",
				mutate: func(p *bookingParams) { p.startTime = "25:00" },
				errIs:  booking.ErrInvalidStartTime,
			},
		}

		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				b, err := newTestBooking(t, c.mutate)
				require.Nil(t, b)
				require.ErrorIs(t, err, c.errIs)
			})
		}
	})
}

func TestBookingInterval(t *testing.T) {
	b, err := newTestBooking(t, nil)
	require.NoError(t, err)

	iv, err := b.Interval()
	require.NoError(t, err)
	assert.Equal(t, schedule.Interval{Start: 1080, End: 1200}, iv)
}

func TestCustomerValidation(t *testing.T) {
	cases := []struct {
		name  string
		cname string
		phone string
		email string
		errIs error
	}{
		{name: "valid local prefix", cname: "Budi", phone: "081234567890", email: "b@example.com"},
		{name: "valid +62 prefix", cname: "Budi", phone: "+6281234567890", email: "b@example.com"},
		{name: "valid 62 prefix", cname: "Budi", phone: "6281234567890", email: "b@example.com"},
		{name: "formatting stripped", cname: "Budi", phone: "0812-3456-7890", email: "b@example.com"},
		{name: "empty name", cname: "  ", phone: "081234567890", email: "b@example.com", errIs: booking.ErrEmptyCustomerName},
		{name: "non-mobile number", cname: "Budi", phone: "0212345678", email: "b@example.com", errIs: booking.ErrInvalidCustomerPhone},
		{name: "too short", cname: "Budi", phone: "08123", email: "b@example.com", errIs: booking.ErrInvalidCustomerPhone},
		{name: "bad email", cname: "Budi", phone: "081234567890", email: "not-an-email", errIs: booking.ErrInvalidCustomerEmail},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cust, err := booking.NewCustomer(c.cname, c.phone, c.email)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.NotEmpty(t, cust.Phone())
		})
	}
}

func TestStatusBlocks(t *testing.T) {
	assert.True(t, booking.StatusPending.Blocks())
	assert.True(t, booking.StatusActive.Blocks())
	assert.True(t, booking.StatusCompleted.Blocks())
	assert.False(t, booking.StatusCancelled.Blocks())
}
