package response

import (
	"time"

	"fieldbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type AvailabilityWindowResponse struct {
	Weekday   int    `json:"weekday"`
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}

type FieldResponse struct {
	ID           uuid.UUID                    `json:"id"`
	Name         string                       `json:"name"`
	Sport        string                       `json:"sport"`
	PricePerHour int64                        `json:"pricePerHour"`
	IsActive     bool                         `json:"isActive"`
	Availability []AvailabilityWindowResponse `json:"availability"`
	CreatedAt    time.Time                    `json:"createdAt"`
	UpdatedAt    time.Time                    `json:"updatedAt"`
}

type TimeSlotResponse struct {
	Time            string  `json:"time"`
	Available       bool    `json:"available"`
	PriceMultiplier float64 `json:"priceMultiplier"`
}

type FieldAvailabilityResponse struct {
	Available bool               `json:"available"`
	OpenTime  string             `json:"openTime,omitempty"`
	CloseTime string             `json:"closeTime,omitempty"`
	Slots     []TimeSlotResponse `json:"slots"`
}

func FromFieldView(v *queries.FieldView) *FieldResponse {
	windows := make([]AvailabilityWindowResponse, len(v.Availability))
	for i, w := range v.Availability {
		windows[i] = AvailabilityWindowResponse{
			Weekday:   w.Weekday,
			OpenTime:  w.OpenTime,
			CloseTime: w.CloseTime,
		}
	}
	return &FieldResponse{
		ID:           v.ID,
		Name:         v.Name,
		Sport:        v.Sport,
		PricePerHour: v.PricePerHour,
		IsActive:     v.IsActive,
		Availability: windows,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func FromFieldAvailability(v *queries.FieldAvailability) *FieldAvailabilityResponse {
	slots := make([]TimeSlotResponse, len(v.Slots))
	for i, s := range v.Slots {
		slots[i] = TimeSlotResponse{
			Time:            s.Time,
			Available:       s.Available,
			PriceMultiplier: s.PriceMultiplier,
		}
	}
	return &FieldAvailabilityResponse{
		Available: v.Available,
		OpenTime:  v.OpenTime,
		CloseTime: v.CloseTime,
		Slots:     slots,
	}
}
