package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo   domain.Repository
	policy domain.MatchPolicy
}

func NewGetAvailability(repo domain.Repository) *GetAvailability {
	return &GetAvailability{
		repo:   repo,
		policy: domain.ExactSlotMatch,
	}
}

// Execute returns the doctor's declared slots for date minus the booked ones,
// in declared order.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	doctorID uint,
	date time.Time,
) ([]string, error) {

	loc := timezone.Clinic()

	doctor, err := uc.repo.GetDoctorByID(ctx, doctorID)
	if err != nil {
		return nil, translate("get doctor", err, domain.ErrUnknownDoctor)
	}

	dayStart, dayEnd := domain.DayRange(date, loc)

	apps, err := uc.repo.ListAppointmentsForDay(ctx, doctor.ID, dayStart, dayEnd)
	if err != nil {
		return nil, translate("list appointments for day", err, domain.ErrUnknownDoctor)
	}

	starts := make([]time.Time, 0, len(apps))
	for _, ap := range apps {
		starts = append(starts, ap.AppointmentTime)
	}

	return domain.FreeSlots(doctor.AvailableTimes, domain.BookedSlots(starts, loc), uc.policy), nil
}
