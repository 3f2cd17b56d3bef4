package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)

type AvailabilityWindowView struct {
	Weekday   int    `json:"weekday"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
}

type FieldView struct {
	ID           uuid.UUID                `json:"id"`
	Name         string                   `json:"name"`
	Sport        string                   `json:"sport"`
	PricePerHour int64                    `json:"price_per_hour"`
	IsActive     bool                     `json:"is_active"`
	Availability []AvailabilityWindowView `json:"availability"`
	CreatedAt    time.Time                `json:"created_at"`
	UpdatedAt    time.Time                `json:"updated_at"`
}

type TimeSlotView struct {
	Time            string  `json:"time"`
	Available       bool    `json:"available"`
	PriceMultiplier float64 `json:"price_multiplier"`
}

// FieldAvailability is the derived per-date schedule for one field.
// Available false with no slots means "no schedule" for that date.
type FieldAvailability struct {
	Available bool           `json:"available"`
	OpenTime  string         `json:"open_time,omitempty"`
	CloseTime string         `json:"close_time,omitempty"`
	Slots     []TimeSlotView `json:"slots"`
}

type BookedIntervalView struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type BookingView struct {
	ID            uuid.UUID `json:"id"`
	FieldID       uuid.UUID `json:"field_id"`
	FieldName     string    `json:"field_name"`
	Sport         string    `json:"sport"`
	UserID        uuid.UUID `json:"user_id"`
	Date          time.Time `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	DurationHours int       `json:"duration_hours"`
	TotalPrice    int64     `json:"total_price"`
	CustomerName  string    `json:"customer_name"`
	CustomerPhone string    `json:"customer_phone"`
	CustomerEmail string    `json:"customer_email"`
	PaymentMethod string    `json:"payment_method"`
	Note          *string   `json:"note,omitempty"`
	ProofPath     *string   `json:"proof_path,omitempty"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookingListItem struct {
	ID         uuid.UUID `json:"id"`
	FieldID    uuid.UUID `json:"field_id"`
	FieldName  string    `json:"field_name"`
	Date       time.Time `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	TotalPrice int64     `json:"total_price"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

type AuthorizedUserView struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	IsActive bool      `json:"is_active"`
}
