package booking

import (
	"errors"
	"time"

	"fieldbook/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidDuration      = errors.New("duration must be between 1 and 4 hours")
	ErrInvalidStartTime     = errors.New("invalid start time")
	ErrZeroDate             = errors.New("booking date is required")
	ErrNegativePrice        = errors.New("total price cannot be negative")
)

const (
	MinDurationHours = 1
	MaxDurationHours = 4
)

// Booking is a confirmed-or-pending reservation of one field for a
// contiguous range of hourly slots on a single date.
type Booking struct {
	id            uuid.UUID
	fieldID       uuid.UUID
	userID        uuid.UUID
	date          time.Time
	startTime     string
	endTime       string
	durationHours int
	totalPrice    int64
	customer      Customer
	paymentMethod PaymentMethod
	note          Note
	proofPath     string
	status        Status
	paymentStatus PaymentStatus
	createdAt     time.Time
	updatedAt     time.Time
}

// NewBooking validates the wizard's accumulated selections and derives the
// end time. New bookings always start pending with payment pending.
func NewBooking(
	fieldID, userID uuid.UUID,
	date time.Time,
	startTime string,
	durationHours int,
	totalPrice int64,
	customer Customer,
	paymentMethod PaymentMethod,
	note Note,
) (*Booking, error) {
	if date.IsZero() {
		return nil, ErrZeroDate
	}
	if durationHours < MinDurationHours || durationHours > MaxDurationHours {
		return nil, ErrInvalidDuration
	}
	if totalPrice < 0 {
		return nil, ErrNegativePrice
	}
	if !paymentMethod.IsValid() {
		return nil, ErrInvalidPaymentMethod
	}

	endTime, err := schedule.EndTime(startTime, durationHours)
	if err != nil {
		return nil, ErrInvalidStartTime
	}

	return &Booking{
		id:            uuid.New(),
		fieldID:       fieldID,
		userID:        userID,
		date:          date,
		startTime:     startTime,
		endTime:       endTime,
		durationHours: durationHours,
		totalPrice:    totalPrice,
		customer:      customer,
		paymentMethod: paymentMethod,
		note:          note,
		status:        StatusPending,
		paymentStatus: PaymentPending,
	}, nil
}

func ReconstructBooking(
	id, fieldID, userID uuid.UUID,
	date time.Time,
	startTime, endTime string,
	durationHours int,
	totalPrice int64,
	customer Customer,
	paymentMethod PaymentMethod,
	note Note,
	proofPath string,
	status Status,
	paymentStatus PaymentStatus,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:            id,
		fieldID:       fieldID,
		userID:        userID,
		date:          date,
		startTime:     startTime,
		endTime:       endTime,
		durationHours: durationHours,
		totalPrice:    totalPrice,
		customer:      customer,
		paymentMethod: paymentMethod,
		note:          note,
		proofPath:     proofPath,
		status:        status,
		paymentStatus: paymentStatus,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// Interval returns the booking's occupied minute range for overlap checks.
func (b *Booking) Interval() (schedule.Interval, error) {
	start, err := schedule.MinutesOfDay(b.startTime)
	if err != nil {
		return schedule.Interval{}, err
	}
	return schedule.Interval{Start: start, End: start + b.durationHours*schedule.SlotMinutes}, nil
}

func (b *Booking) AttachProof(path string) {
	b.proofPath = path
}

func (b *Booking) IsCancelled() bool {
	return b.status == StatusCancelled
}

func (b *Booking) ID() uuid.UUID                { return b.id }
func (b *Booking) FieldID() uuid.UUID           { return b.fieldID }
func (b *Booking) UserID() uuid.UUID            { return b.userID }
func (b *Booking) Date() time.Time              { return b.date }
func (b *Booking) StartTime() string            { return b.startTime }
func (b *Booking) EndTime() string              { return b.endTime }
func (b *Booking) DurationHours() int           { return b.durationHours }
func (b *Booking) TotalPrice() int64            { return b.totalPrice }
func (b *Booking) Customer() Customer           { return b.customer }
func (b *Booking) PaymentMethod() PaymentMethod { return b.paymentMethod }
func (b *Booking) Note() Note                   { return b.note }
func (b *Booking) ProofPath() string            { return b.proofPath }
func (b *Booking) Status() Status               { return b.status }
func (b *Booking) PaymentStatus() PaymentStatus { return b.paymentStatus }
func (b *Booking) CreatedAt() time.Time         { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time         { return b.updatedAt }
