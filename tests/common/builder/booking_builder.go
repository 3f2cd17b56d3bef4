//go:build unit || e2e

package builder

import (
	"time"

	"fieldbook/internal/domain/booking"
	"fieldbook/internal/domain/schedule"
	"fieldbook/internal/usecase/commands"
	"fieldbook/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type BookingBuilder struct {
	ID            uuid.UUID
	FieldID       uuid.UUID
	FieldName     string
	Sport         string
	UserID        uuid.UUID
	Date          time.Time
	StartTime     string
	DurationHours int
	TotalPrice    int64
	CustomerName  string
	CustomerPhone string
	CustomerEmail string
	PaymentMethod string
	Note          *string
	Status        string
	PaymentStatus string
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		FieldID:       uuid.New(),
		FieldName:     "Lapangan Futsal 1",
		Sport:         "futsal",
		UserID:        uuid.New(),
		Date:          time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC),
		StartTime:     "18:00",
		DurationHours: 2,
		TotalPrice:    360000,
		CustomerName:  "Budi Santoso",
		CustomerPhone: "081234567890",
		CustomerEmail: "budi@example.com",
		PaymentMethod: "bank_transfer",
		Status:        "pending",
		PaymentStatus: "pending",
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildDomain() (*booking.Booking, error) {
	customer, err := booking.NewCustomer(b.CustomerName, b.CustomerPhone, b.CustomerEmail)
	if err != nil {
		return nil, err
	}
	method, err := booking.NewPaymentMethod(b.PaymentMethod)
	if err != nil {
		return nil, err
	}

	note := booking.NewNote("")
	if b.Note != nil {
		note = booking.NewNote(*b.Note)
	}

	return booking.NewBooking(
		b.FieldID, b.UserID, b.Date, b.StartTime, b.DurationHours, b.TotalPrice,
		customer, method, note,
	)
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	view := &queries.BookingView{}
	_ = copier.Copy(view, b)

	if endTime, err := schedule.EndTime(b.StartTime, b.DurationHours); err == nil {
		view.EndTime = endTime
	}

	now := time.Now()
	view.CreatedAt = now
	view.UpdatedAt = now
	return view
}

func (b *BookingBuilder) BuildListItem() *queries.BookingListItem {
	item := &queries.BookingListItem{}
	_ = copier.Copy(item, b)
	if endTime, err := schedule.EndTime(b.StartTime, b.DurationHours); err == nil {
		item.EndTime = endTime
	}
	item.CreatedAt = time.Now()
	return item
}

func (b *BookingBuilder) BuildCreateParams() commands.CreateBookingParams {
	params := commands.CreateBookingParams{}
	_ = copier.Copy(&params, b)
	return params
}

// Fluent builder methods
func (b *BookingBuilder) WithField(fieldID uuid.UUID) *BookingBuilder {
	b.FieldID = fieldID
	return b
}

func (b *BookingBuilder) WithUser(userID uuid.UUID) *BookingBuilder {
	b.UserID = userID
	return b
}

func (b *BookingBuilder) WithSchedule(date time.Time, startTime string, durationHours int) *BookingBuilder {
	b.Date = date
	b.StartTime = startTime
	b.DurationHours = durationHours
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.Status = status
	return b
}
