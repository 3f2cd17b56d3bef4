//go:build unit

package booking_test

import (
	"testing"

	"fieldbook/internal/domain/booking"

	"github.com/stretchr/testify/assert"
)

func TestTotalPrice(t *testing.T) {
	cases := []struct {
		name     string
		base     int64
		mult     float64
		duration int
		want     int64
	}{
		{name: "peak futsal two hours", base: 150000, mult: 1.2, duration: 2, want: 360000},
		{name: "morning mini soccer three hours", base: 200000, mult: 0.8, duration: 3, want: 480000},
		{name: "base badminton one hour", base: 50000, mult: 1.0, duration: 1, want: 50000},
		{name: "zero duration", base: 150000, mult: 1.2, duration: 0, want: 0},
		{name: "zero base", base: 0, mult: 1.2, duration: 4, want: 0},
		{name: "rounds to nearest", base: 33333, mult: 0.8, duration: 1, want: 26666},
		{name: "padel peak four hours", base: 130000, mult: 1.2, duration: 4, want: 624000},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, booking.TotalPrice(c.base, c.mult, c.duration))
		})
	}
}
