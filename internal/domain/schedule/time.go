package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var ErrInvalidClock = errors.New("invalid clock format")

// MinutesOfDay parses a zero-padded 24-hour "HH:MM" string into its minute
// offset from midnight.
func MinutesOfDay(clock string) (int, error) {
	hh, mm, ok := strings.Cut(clock, ":")
	if !ok || len(hh) != 2 || len(mm) != 2 {
		return 0, ErrInvalidClock
	}

	hours, err := strconv.Atoi(hh)
	if err != nil || hours < 0 || hours > 23 {
		return 0, ErrInvalidClock
	}
	minutes, err := strconv.Atoi(mm)
	if err != nil || minutes < 0 || minutes > 59 {
		return 0, ErrInvalidClock
	}

	return hours*60 + minutes, nil
}

// ClockFromMinutes renders a minute offset as "HH:MM". Offsets outside
// [0,1440) are formatted as-is (1560 becomes "26:00"); EndTime relies on that.
func ClockFromMinutes(offset int) string {
	return fmt.Sprintf("%02d:%02d", offset/60, offset%60)
}

// EndTime adds whole hours to a start clock, minutes unchanged. The result
// does not wrap at midnight: "22:00" plus 4 hours is "26:00", which is how
// the booking range is displayed and submitted.
func EndTime(start string, durationHours int) (string, error) {
	offset, err := MinutesOfDay(start)
	if err != nil {
		return "", err
	}
	return ClockFromMinutes(offset + durationHours*60), nil
}
