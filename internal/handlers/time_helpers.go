package handlers

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

const (
	dateLayout     = "2006-01-02"
	dateTimeLayout = "2006-01-02 15:04"
)

// Dates and wall-clock times on the API are read in the clinic zone.

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(dateLayout, dateStr, timezone.Clinic())
}

func parseDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation(dateTimeLayout, dateStr+" "+timeStr, timezone.Clinic())
}
