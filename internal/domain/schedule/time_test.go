//go:build unit

package schedule_test

import (
	"testing"

	"fieldbook/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMinutesOfDay(t *testing.T) {
	cases := []struct {
		name  string
		clock string
		want  int
		errIs error
	}{
		{name: "midnight", clock: "00:00", want: 0},
		{name: "morning", clock: "06:30", want: 390},
		{name: "last minute of day", clock: "23:59", want: 1439},
		{name: "hour out of range", clock: "24:00", errIs: schedule.ErrInvalidClock},
		{name: "minute out of range", clock: "10:60", errIs: schedule.ErrInvalidClock},
		{name: "missing separator", clock: "1030", errIs: schedule.ErrInvalidClock},
		{name: "not numeric", clock: "ab:cd", errIs: schedule.ErrInvalidClock},
		{name: "single-digit parts", clock: "9:5", errIs: schedule.ErrInvalidClock},
		{name: "empty", clock: "", errIs: schedule.ErrInvalidClock},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := schedule.MinutesOfDay(c.clock)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestClockFromMinutes(t *testing.T) {
	cases := []struct {
		name   string
		offset int
		want   string
	}{
		{name: "midnight", offset: 0, want: "00:00"},
		{name: "zero padded", offset: 390, want: "06:30"},
		{name: "evening", offset: 1260, want: "21:00"},
		// Offsets past midnight format as-is, they are display values
		// for late closings, not clock times.
		{name: "past midnight", offset: 1560, want: "26:00"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, schedule.ClockFromMinutes(c.offset))
		})
	}
}

func TestMinutesOfDayRoundTrip(t *testing.T) {
	for offset := 0; offset < 24*60; offset += 30 {
		clock := schedule.ClockFromMinutes(offset)
		got, err := schedule.MinutesOfDay(clock)
		require.NoError(t, err, "clock %q", clock)
		require.Equal(t, offset, got, "clock %q", clock)
	}
}

func TestEndTime(t *testing.T) {
	cases := []struct {
		name     string
		start    string
		duration int
		want     string
		errIs    error
	}{
		{name: "two hours", start: "09:00", duration: 2, want: "11:00"},
		{name: "single hour", start: "06:00", duration: 1, want: "07:00"},
		// A late slot plus a long duration runs past midnight without
		// wrapping; 26:00 means 02:00 the next day.
		{name: "past midnight", start: "22:00", duration: 4, want: "26:00"},
		{name: "exactly midnight", start: "23:00", duration: 1, want: "24:00"},
		{name: "invalid start", start: "25:00", duration: 1, errIs: schedule.ErrInvalidClock},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := schedule.EndTime(c.start, c.duration)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
		})
	}
}
