package field

type Sport string

const (
	SportMiniSoccer Sport = "mini_soccer"
	SportFutsal     Sport = "futsal"
	SportBadminton  Sport = "badminton"
	SportPadel      Sport = "padel"
)

func (s Sport) String() string {
	return string(s)
}

func (s Sport) IsValid() bool {
	switch s {
	case SportMiniSoccer, SportFutsal, SportBadminton, SportPadel:
		return true
	default:
		return false
	}
}

func NewSport(s string) (Sport, error) {
	sport := Sport(s)
	if !sport.IsValid() {
		return "", ErrInvalidSport
	}
	return sport, nil
}
