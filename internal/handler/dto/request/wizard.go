package request

import (
	"time"

	"github.com/google/uuid"
)

const dateLayout = "2006-01-02"

type SelectFieldRequest struct {
	FieldID uuid.UUID `json:"field_id" binding:"required"`
}

type SelectScheduleRequest struct {
	Date          string `json:"date" binding:"required"`
	StartTime     string `json:"start_time" binding:"required"`
	DurationHours int    `json:"duration_hours" binding:"required,min=1,max=4"`
}

func (r *SelectScheduleRequest) ParseDate() (time.Time, error) {
	return time.Parse(dateLayout, r.Date)
}

// SubmitBookingForm is bound from the multipart confirmation form; the
// payment proof file rides alongside it under the "proof" key.
type SubmitBookingForm struct {
	CustomerName  string  `form:"customer_name" binding:"required"`
	CustomerPhone string  `form:"customer_phone" binding:"required"`
	CustomerEmail string  `form:"customer_email" binding:"required,email"`
	PaymentMethod string  `form:"payment_method" binding:"required"`
	Note          *string `form:"note"`
}

func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
