package request

// CreateBookingForm is the multipart direct-submission form; unlike the
// wizard it carries the schedule fields inline.
type CreateBookingForm struct {
	FieldID       string  `form:"field_id" binding:"required,uuid"`
	Date          string  `form:"date" binding:"required"`
	StartTime     string  `form:"start_time" binding:"required"`
	DurationHours int     `form:"duration_hours" binding:"required,min=1,max=4"`
	CustomerName  string  `form:"customer_name" binding:"required"`
	CustomerPhone string  `form:"customer_phone" binding:"required"`
	CustomerEmail string  `form:"customer_email" binding:"required,email"`
	PaymentMethod string  `form:"payment_method" binding:"required"`
	Note          *string `form:"note"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
