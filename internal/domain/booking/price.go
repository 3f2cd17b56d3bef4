package booking

import "math"

// TotalPrice combines a field's base hourly price, the selected slot's
// multiplier, and the chosen whole-hour duration. Total for all
// non-negative finite inputs; a zero duration yields zero.
func TotalPrice(basePricePerHour int64, multiplier float64, durationHours int) int64 {
	return int64(math.Round(float64(basePricePerHour) * multiplier * float64(durationHours)))
}
