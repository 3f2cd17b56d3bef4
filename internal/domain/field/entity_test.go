//go:build unit

package field_test

import (
	"testing"
	"time"

	"fieldbook/internal/domain/field"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAvailabilityWindow(t *testing.T) {
	cases := []struct {
		name    string
		weekday int
		open    string
		close   string
		errIs   error
	}{
		{name: "valid window", weekday: 1, open: "06:00", close: "23:00"},
		{name: "sunday", weekday: 0, open: "08:00", close: "22:00"},
		{name: "weekday too high", weekday: 7, open: "06:00", close: "23:00", errIs: field.ErrInvalidWeekday},
		{name: "negative weekday", weekday: -1, open: "06:00", close: "23:00", errIs: field.ErrInvalidWeekday},
		{name: "malformed open", weekday: 1, open: "6:00", close: "23:00", errIs: field.ErrInvalidWindow},
		{name: "malformed close", weekday: 1, open: "06:00", close: "24:30", errIs: field.ErrInvalidWindow},
		{name: "close before open", weekday: 1, open: "20:00", close: "08:00", errIs: field.ErrInvalidWindow},
		{name: "zero-length window", weekday: 1, open: "08:00", close: "08:00", errIs: field.ErrInvalidWindow},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w, err := field.NewAvailabilityWindow(c.weekday, c.open, c.close)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, time.Weekday(c.weekday), w.Weekday)
		})
	}
}

func TestNewField(t *testing.T) {
	window, err := field.NewAvailabilityWindow(1, "06:00", "23:00")
	require.NoError(t, err)
	windows := []field.AvailabilityWindow{window}

	t.Run("valid field", func(t *testing.T) {
		f, err := field.NewField("Lapangan Futsal 1", field.SportFutsal, 150000, windows)
		require.NoError(t, err)
		assert.True(t, f.IsActive())
		assert.Equal(t, int64(150000), f.PricePerHour())
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := field.NewField("   ", field.SportFutsal, 150000, windows)
		require.ErrorIs(t, err, field.ErrEmptyName)
	})

	t.Run("unknown sport", func(t *testing.T) {
		_, err := field.NewField("Court", field.Sport("tennis"), 150000, windows)
		require.ErrorIs(t, err, field.ErrInvalidSport)
	})

	t.Run("non-positive price", func(t *testing.T) {
		_, err := field.NewField("Court", field.SportPadel, 0, windows)
		require.ErrorIs(t, err, field.ErrInvalidPrice)
	})
}

func TestWindowFor(t *testing.T) {
	monday, err := field.NewAvailabilityWindow(1, "06:00", "23:00")
	require.NoError(t, err)
	saturday, err := field.NewAvailabilityWindow(6, "08:00", "22:00")
	require.NoError(t, err)

	f, err := field.NewField("Lapangan Futsal 1", field.SportFutsal, 150000,
		[]field.AvailabilityWindow{monday, saturday})
	require.NoError(t, err)

	// 2026-08-31 is a Monday, 2026-09-05 a Saturday, 2026-09-06 a Sunday.
	w, ok := f.WindowFor(time.Date(2026, time.August, 31, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "06:00", w.Open)

	w, ok = f.WindowFor(time.Date(2026, time.September, 5, 0, 0, 0, 0, time.UTC))
	require.True(t, ok)
	assert.Equal(t, "08:00", w.Open)

	_, ok = f.WindowFor(time.Date(2026, time.September, 6, 0, 0, 0, 0, time.UTC))
	assert.False(t, ok)
}
