package queries

import (
	"context"
	"log/slog"
	"time"

	"fieldbook/internal/domain/schedule"
	"fieldbook/internal/pkg/clock"

	"github.com/google/uuid"
)

type BookedIntervalReadStore interface {
	FindBookedIntervals(ctx context.Context, fieldID uuid.UUID, date time.Time) ([]BookedIntervalView, error)
}

type AvailabilityQueries interface {
	ForDate(ctx context.Context, fieldID uuid.UUID, date time.Time) (*FieldAvailability, error)
}

type availabilityQueriesImpl struct {
	fields FieldReadStore
	booked BookedIntervalReadStore
	clock  clock.Clock
}

func NewAvailabilityQueries(fields FieldReadStore, booked BookedIntervalReadStore, clk clock.Clock) AvailabilityQueries {
	return &availabilityQueriesImpl{fields: fields, booked: booked, clock: clk}
}

// noSchedule is the recovered "no schedule available" result: lookup
// failures and closed days degrade to it instead of erroring.
func noSchedule() *FieldAvailability {
	return &FieldAvailability{Available: false, Slots: []TimeSlotView{}}
}

func (q *availabilityQueriesImpl) ForDate(ctx context.Context, fieldID uuid.UUID, date time.Time) (*FieldAvailability, error) {
	// Bookings cannot be made for past dates.
	if beforeToday(date, q.clock.Now()) {
		return noSchedule(), nil
	}

	fieldView, err := q.fields.FindByID(ctx, fieldID)
	if err != nil {
		slog.Warn("availability lookup: field fetch failed", "field_id", fieldID, "error", err.Error())
		return noSchedule(), nil
	}
	if !fieldView.IsActive {
		return noSchedule(), nil
	}

	window, ok := windowForWeekday(fieldView.Availability, date.Weekday())
	if !ok {
		return noSchedule(), nil
	}

	openMin, err := schedule.MinutesOfDay(window.OpenTime)
	if err != nil {
		slog.Warn("availability lookup: malformed open time", "field_id", fieldID, "open", window.OpenTime)
		return noSchedule(), nil
	}
	closeMin, err := schedule.MinutesOfDay(window.CloseTime)
	if err != nil {
		slog.Warn("availability lookup: malformed close time", "field_id", fieldID, "close", window.CloseTime)
		return noSchedule(), nil
	}

	bookedViews, err := q.booked.FindBookedIntervals(ctx, fieldID, date)
	if err != nil {
		slog.Warn("availability lookup: booked intervals fetch failed", "field_id", fieldID, "error", err.Error())
		return noSchedule(), nil
	}

	booked := make([]schedule.Interval, 0, len(bookedViews))
	for _, v := range bookedViews {
		start, serr := schedule.MinutesOfDay(v.StartTime)
		if serr != nil {
			continue
		}
		end, eerr := schedule.MinutesOfDay(v.EndTime)
		if eerr != nil {
			// End times past midnight ("26:00") are not parseable as a
			// clock; treat them as blocking through close.
			end = closeMin
		}
		booked = append(booked, schedule.Interval{Start: start, End: end})
	}

	slots := schedule.GenerateSlots(openMin, closeMin, booked)

	views := make([]TimeSlotView, len(slots))
	for i, s := range slots {
		views[i] = TimeSlotView{
			Time:            s.Time,
			Available:       s.Available,
			PriceMultiplier: s.Multiplier,
		}
	}

	return &FieldAvailability{
		Available: true,
		OpenTime:  window.OpenTime,
		CloseTime: window.CloseTime,
		Slots:     views,
	}, nil
}

func beforeToday(date, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, date.Location())
	return date.Before(today)
}

func windowForWeekday(windows []AvailabilityWindowView, weekday time.Weekday) (AvailabilityWindowView, bool) {
	for _, w := range windows {
		if w.Weekday == int(weekday) {
			return w, true
		}
	}
	return AvailabilityWindowView{}, false
}
