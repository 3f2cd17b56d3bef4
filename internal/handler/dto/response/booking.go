package response

import (
	"time"

	"fieldbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	FieldID       uuid.UUID `json:"fieldId"`
	FieldName     string    `json:"fieldName"`
	Sport         string    `json:"sport"`
	UserID        uuid.UUID `json:"userId"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	DurationHours int       `json:"durationHours"`
	TotalPrice    int64     `json:"totalPrice"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	CustomerEmail string    `json:"customerEmail"`
	PaymentMethod string    `json:"paymentMethod"`
	Note          *string   `json:"note,omitempty"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type BookingListResponse struct {
	ID         uuid.UUID `json:"id"`
	FieldID    uuid.UUID `json:"fieldId"`
	FieldName  string    `json:"fieldName"`
	Date       string    `json:"date"`
	StartTime  string    `json:"startTime"`
	EndTime    string    `json:"endTime"`
	TotalPrice int64     `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

func FromBookingView(v *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:            v.ID,
		FieldID:       v.FieldID,
		FieldName:     v.FieldName,
		Sport:         v.Sport,
		UserID:        v.UserID,
		Date:          v.Date.Format("2006-01-02"),
		StartTime:     v.StartTime,
		EndTime:       v.EndTime,
		DurationHours: v.DurationHours,
		TotalPrice:    v.TotalPrice,
		CustomerName:  v.CustomerName,
		CustomerPhone: v.CustomerPhone,
		CustomerEmail: v.CustomerEmail,
		PaymentMethod: v.PaymentMethod,
		Note:          v.Note,
		Status:        v.Status,
		PaymentStatus: v.PaymentStatus,
		CreatedAt:     v.CreatedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func FromBookingListItem(v *queries.BookingListItem) *BookingListResponse {
	return &BookingListResponse{
		ID:         v.ID,
		FieldID:    v.FieldID,
		FieldName:  v.FieldName,
		Date:       v.Date.Format("2006-01-02"),
		StartTime:  v.StartTime,
		EndTime:    v.EndTime,
		TotalPrice: v.TotalPrice,
		Status:     v.Status,
		CreatedAt:  v.CreatedAt,
	}
}
