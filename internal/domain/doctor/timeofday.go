package doctor

import (
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type TimeOfDay int

const (
	AnyTime TimeOfDay = iota
	Morning
	Afternoon
)

const noonHour = 12

// NoFilter is the sentinel older clients send for an absent filter value.
const NoFilter = "null"

func ParseTimeOfDay(raw string) (TimeOfDay, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", NoFilter:
		return AnyTime, nil
	case "am", "morning":
		return Morning, nil
	case "pm", "afternoon":
		return Afternoon, nil
	default:
		return AnyTime, ErrInvalidTimeOfDay
	}
}

func (t TimeOfDay) String() string {
	switch t {
	case Morning:
		return "morning"
	case Afternoon:
		return "afternoon"
	default:
		return "any"
	}
}

// MatchesTimeOfDay is true when any declared slot starts in the requested half
// of the day. Malformed slots never match.
func MatchesTimeOfDay(d *models.Doctor, t TimeOfDay) bool {
	if t == AnyTime {
		return true
	}

	for _, raw := range d.AvailableTimes {
		slot, err := appointment.ParseSlot(raw)
		if err != nil {
			continue
		}
		hour := slot.StartHour()
		if t == Morning && hour < noonHour {
			return true
		}
		if t == Afternoon && hour >= noonHour {
			return true
		}
	}
	return false
}
