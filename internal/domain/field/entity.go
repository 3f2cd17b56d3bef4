package field

import (
	"errors"
	"strings"
	"time"

	"fieldbook/internal/domain/schedule"

	"github.com/google/uuid"
)

var (
	ErrInvalidSport    = errors.New("invalid sport category")
	ErrEmptyName       = errors.New("field name cannot be empty")
	ErrInvalidPrice    = errors.New("price per hour must be positive")
	ErrInvalidWindow   = errors.New("invalid availability window")
	ErrInvalidWeekday  = errors.New("weekday must be between 0 and 6")
	ErrFieldInactive   = errors.New("field is inactive")
	ErrClosedOnWeekday = errors.New("field is closed on this weekday")
)

// AvailabilityWindow is one entry of a field's weekly schedule.
type AvailabilityWindow struct {
	Weekday time.Weekday
	Open    string // "HH:MM"
	Close   string // "HH:MM"
}

func NewAvailabilityWindow(weekday int, open, close string) (AvailabilityWindow, error) {
	if weekday < 0 || weekday > 6 {
		return AvailabilityWindow{}, ErrInvalidWeekday
	}

	openMin, err := schedule.MinutesOfDay(open)
	if err != nil {
		return AvailabilityWindow{}, ErrInvalidWindow
	}
	closeMin, err := schedule.MinutesOfDay(close)
	if err != nil {
		return AvailabilityWindow{}, ErrInvalidWindow
	}
	if closeMin <= openMin {
		return AvailabilityWindow{}, ErrInvalidWindow
	}

	return AvailabilityWindow{
		Weekday: time.Weekday(weekday),
		Open:    open,
		Close:   close,
	}, nil
}

// Field is one bookable court, immutable from the booking core's view.
type Field struct {
	id           uuid.UUID
	name         string
	sport        Sport
	pricePerHour int64
	availability []AvailabilityWindow
	isActive     bool
	createdAt    time.Time
	updatedAt    time.Time
}

func NewField(name string, sport Sport, pricePerHour int64, availability []AvailabilityWindow) (*Field, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if !sport.IsValid() {
		return nil, ErrInvalidSport
	}
	if pricePerHour <= 0 {
		return nil, ErrInvalidPrice
	}

	return &Field{
		id:           uuid.New(),
		name:         name,
		sport:        sport,
		pricePerHour: pricePerHour,
		availability: availability,
		isActive:     true,
	}, nil
}

func ReconstructField(
	id uuid.UUID,
	name string,
	sport Sport,
	pricePerHour int64,
	availability []AvailabilityWindow,
	isActive bool,
	createdAt, updatedAt time.Time,
) *Field {
	return &Field{
		id:           id,
		name:         name,
		sport:        sport,
		pricePerHour: pricePerHour,
		availability: availability,
		isActive:     isActive,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

// WindowFor returns the availability entry matching the weekday of the
// given date. A missing entry means the field is closed that day.
func (f *Field) WindowFor(date time.Time) (AvailabilityWindow, bool) {
	for _, w := range f.availability {
		if w.Weekday == date.Weekday() {
			return w, true
		}
	}
	return AvailabilityWindow{}, false
}

func (f *Field) ID() uuid.UUID                       { return f.id }
func (f *Field) Name() string                        { return f.name }
func (f *Field) Sport() Sport                        { return f.sport }
func (f *Field) PricePerHour() int64                 { return f.pricePerHour }
func (f *Field) Availability() []AvailabilityWindow  { return f.availability }
func (f *Field) IsActive() bool                      { return f.isActive }
func (f *Field) CreatedAt() time.Time                { return f.createdAt }
func (f *Field) UpdatedAt() time.Time                { return f.updatedAt }
