package appointment

import "time"

// MatchPolicy decides, for a set of booked slots, whether a declared slot
// string is consumed.
type MatchPolicy func(booked []Slot) func(declared string) bool

// ExactSlotMatch consumes a declared slot only when a booked slot formats to
// exactly the same string. An appointment at 09:15 does not consume
// "09:00-10:00".
var ExactSlotMatch MatchPolicy = func(booked []Slot) func(string) bool {
	keys := make(map[string]struct{}, len(booked))
	for _, s := range booked {
		keys[s.String()] = struct{}{}
	}

	return func(declared string) bool {
		_, taken := keys[declared]
		return taken
	}
}

// FreeSlots filters the declared list, keeping order and duplicates, down to
// the entries the policy does not mark as consumed.
func FreeSlots(declared []string, booked []Slot, policy MatchPolicy) []string {
	if policy == nil {
		policy = ExactSlotMatch
	}
	taken := policy(booked)

	free := make([]string, 0, len(declared))
	for _, s := range declared {
		if !taken(s) {
			free = append(free, s)
		}
	}
	return free
}

// IsOffered reports whether slot is among the free entries of declared.
func IsOffered(slot Slot, declared []string, booked []Slot, policy MatchPolicy) bool {
	key := slot.String()
	for _, s := range FreeSlots(declared, booked, policy) {
		if s == key {
			return true
		}
	}
	return false
}

// BookedSlots converts appointment start times into slots in loc.
func BookedSlots(starts []time.Time, loc *time.Location) []Slot {
	out := make([]Slot, 0, len(starts))
	for _, t := range starts {
		out = append(out, SlotFor(t.In(loc)))
	}
	return out
}

// DayRange returns the inclusive bounds [00:00, 23:59:59.999999999] of the
// calendar day of date in loc.
func DayRange(date time.Time, loc *time.Location) (time.Time, time.Time) {
	d := date.In(loc)
	start := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)
	end := start.AddDate(0, 0, 1).Add(-time.Nanosecond)
	return start, end
}
