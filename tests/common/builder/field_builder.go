//go:build unit || e2e

package builder

import (
	"time"

	"fieldbook/internal/domain/field"
	"fieldbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type FieldBuilder struct {
	ID           uuid.UUID
	Name         string
	Sport        string
	PricePerHour int64
	IsActive     bool
	Windows      []queries.AvailabilityWindowView
}

func NewFieldBuilder() *FieldBuilder {
	windows := make([]queries.AvailabilityWindowView, 0, 7)
	for weekday := 0; weekday <= 6; weekday++ {
		windows = append(windows, queries.AvailabilityWindowView{
			Weekday:   weekday,
			OpenTime:  "06:00",
			CloseTime: "23:00",
		})
	}

	return &FieldBuilder{
		ID:           uuid.New(),
		Name:         "Lapangan Futsal 1",
		Sport:        "futsal",
		PricePerHour: 150000,
		IsActive:     true,
		Windows:      windows,
	}
}

func (b *FieldBuilder) With(mutate func(*FieldBuilder)) *FieldBuilder {
	mutate(b)
	return b
}

func (b *FieldBuilder) BuildDomain() (*field.Field, error) {
	sport, err := field.NewSport(b.Sport)
	if err != nil {
		return nil, err
	}

	windows := make([]field.AvailabilityWindow, 0, len(b.Windows))
	for _, w := range b.Windows {
		window, werr := field.NewAvailabilityWindow(w.Weekday, w.OpenTime, w.CloseTime)
		if werr != nil {
			return nil, werr
		}
		windows = append(windows, window)
	}

	return field.NewField(b.Name, sport, b.PricePerHour, windows)
}

func (b *FieldBuilder) BuildView() *queries.FieldView {
	now := time.Now()
	return &queries.FieldView{
		ID:           b.ID,
		Name:         b.Name,
		Sport:        b.Sport,
		PricePerHour: b.PricePerHour,
		IsActive:     b.IsActive,
		Availability: b.Windows,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Fluent builder methods
func (b *FieldBuilder) WithSport(sport string) *FieldBuilder {
	b.Sport = sport
	return b
}

func (b *FieldBuilder) WithPricePerHour(price int64) *FieldBuilder {
	b.PricePerHour = price
	return b
}

func (b *FieldBuilder) WithWindow(weekday int, open, close string) *FieldBuilder {
	b.Windows = []queries.AvailabilityWindowView{{Weekday: weekday, OpenTime: open, CloseTime: close}}
	return b
}

func (b *FieldBuilder) WithoutWindows() *FieldBuilder {
	b.Windows = nil
	return b
}

func (b *FieldBuilder) AsInactive() *FieldBuilder {
	b.IsActive = false
	return b
}
