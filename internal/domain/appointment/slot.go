package appointment

import (
	"regexp"
	"time"
)

const (
	SlotDuration = time.Hour
	clockLayout  = "15:04"
)

var slotPattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)-([01]\d|2[0-3]):([0-5]\d)$`)

// Slot is a one-hour, half-open window. Its canonical form is "HH:MM-HH:MM".
type Slot struct {
	Start time.Time
	End   time.Time
}

// SlotFor derives the slot consumed by an appointment starting at start.
// start must already be in the clinic location.
func SlotFor(start time.Time) Slot {
	return Slot{
		Start: start,
		End:   start.Add(SlotDuration),
	}
}

func (s Slot) String() string {
	return s.Start.Format(clockLayout) + "-" + s.End.Format(clockLayout)
}

func (s Slot) StartHour() int {
	return s.Start.Hour()
}

// ParseSlot decodes a declared availability string. The dates of the returned
// times are meaningless; only the clock fields are set.
func ParseSlot(raw string) (Slot, error) {
	if !slotPattern.MatchString(raw) {
		return Slot{}, ErrMalformedSlot
	}

	start, err := time.Parse(clockLayout, raw[:5])
	if err != nil {
		return Slot{}, ErrMalformedSlot
	}
	end, err := time.Parse(clockLayout, raw[6:])
	if err != nil {
		return Slot{}, ErrMalformedSlot
	}

	if !start.Before(end) {
		return Slot{}, ErrMalformedSlot
	}

	return Slot{Start: start, End: end}, nil
}

// ValidateSlots returns the first malformed entry of a declared list.
func ValidateSlots(declared []string) error {
	for _, raw := range declared {
		if _, err := ParseSlot(raw); err != nil {
			return err
		}
	}
	return nil
}
