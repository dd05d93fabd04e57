package timezone

import (
	"sync"
	"time"
)

const DefaultTimezone = "UTC"

var (
	mu     sync.RWMutex
	clinic *time.Location = time.UTC
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

// SetClinic fixes the single zone every date and slot is interpreted in.
func SetClinic(tz string) {
	loc := Location(tz)
	mu.Lock()
	clinic = loc
	mu.Unlock()
}

func Clinic() *time.Location {
	mu.RLock()
	defer mu.RUnlock()
	return clinic
}

func Now() time.Time {
	return time.Now().In(Clinic())
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
