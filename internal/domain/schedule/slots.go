package schedule

// SlotMinutes is the fixed bookable slot granularity.
const SlotMinutes = 60

const (
	morningCutoffHour = 8
	peakStartHour     = 16
	peakEndHour       = 21
)

const (
	MorningMultiplier = 0.8
	BaseMultiplier    = 1.0
	PeakMultiplier    = 1.2
)

// Interval is a half-open [Start,End) range of minute offsets within a day.
type Interval struct {
	Start int
	End   int
}

func (iv Interval) Overlaps(other Interval) bool {
	return iv.Start < other.End && iv.End > other.Start
}

// Slot is one bookable hour of a field's day, tagged with availability and
// the price multiplier applied to the field's base hourly price.
type Slot struct {
	Time       string
	Available  bool
	Multiplier float64
}

// MultiplierForHour returns the pricing band for a slot starting at the
// given hour: morning discount before 08:00, peak between 16:00 and 21:00.
func MultiplierForHour(hour int) float64 {
	switch {
	case hour < morningCutoffHour:
		return MorningMultiplier
	case hour >= peakStartHour && hour < peakEndHour:
		return PeakMultiplier
	default:
		return BaseMultiplier
	}
}

// GenerateSlots walks the open window in SlotMinutes steps and produces the
// ordered slot list for one field and date. A slot is unavailable when its
// half-open range overlaps any booked interval. Returns nil when the window
// is empty or inverted (field closed that day).
func GenerateSlots(openMinutes, closeMinutes int, booked []Interval) []Slot {
	if closeMinutes <= openMinutes {
		return nil
	}

	slots := make([]Slot, 0, (closeMinutes-openMinutes)/SlotMinutes)
	for offset := openMinutes; offset < closeMinutes; offset += SlotMinutes {
		slot := Interval{Start: offset, End: offset + SlotMinutes}

		available := true
		for _, iv := range booked {
			if slot.Overlaps(iv) {
				available = false
				break
			}
		}

		slots = append(slots, Slot{
			Time:       ClockFromMinutes(offset),
			Available:  available,
			Multiplier: MultiplierForHour(offset / 60),
		})
	}

	return slots
}

// FindSlot returns the slot starting at the given clock time, if generated.
func FindSlot(slots []Slot, clock string) (Slot, bool) {
	for _, s := range slots {
		if s.Time == clock {
			return s, true
		}
	}
	return Slot{}, false
}
