package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ensureSlotFree applies the booking availability rule for start against the
// doctor's day, ignoring the appointment excludeID (0 ignores nothing).
func ensureSlotFree(
	ctx context.Context,
	tx domain.Repository,
	doctor *models.Doctor,
	start time.Time,
	excludeID uint,
	policy domain.MatchPolicy,
	loc *time.Location,
) error {

	dayStart, dayEnd := domain.DayRange(start, loc)

	apps, err := tx.ListAppointmentsForDay(ctx, doctor.ID, dayStart, dayEnd)
	if err != nil {
		return translate("list appointments for day", err, domain.ErrUnknownDoctor)
	}

	starts := make([]time.Time, 0, len(apps))
	for _, ap := range apps {
		if ap.ID == excludeID {
			continue
		}
		starts = append(starts, ap.AppointmentTime)
	}

	booked := domain.BookedSlots(starts, loc)
	if !domain.IsOffered(domain.SlotFor(start.In(loc)), doctor.AvailableTimes, booked, policy) {
		return domain.ErrSlotUnavailable
	}
	return nil
}
