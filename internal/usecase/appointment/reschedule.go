package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/account"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type RescheduleAppointmentInput struct {
	AppointmentID uint
	PatientID     uint
	Start         time.Time
	Actor         string
}

// RescheduleAppointment moves an appointment to another slot of the same
// doctor. Patient and status never change.
type RescheduleAppointment struct {
	repo   domain.Repository
	locker lock.Locker
	audit  *audit.Dispatcher
	policy domain.MatchPolicy
	now    func() time.Time
}

func NewRescheduleAppointment(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
) *RescheduleAppointment {
	if locker == nil {
		locker = lock.Noop{}
	}
	return &RescheduleAppointment{
		repo:   repo,
		locker: locker,
		audit:  audit,
		policy: domain.ExactSlotMatch,
		now:    time.Now,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	loc := timezone.Clinic()

	ap, err := uc.repo.GetAppointment(ctx, in.AppointmentID)
	if err != nil {
		return nil, translate("get appointment", err, domain.ErrAppointmentNotFound)
	}

	if err := domain.AssertOwner(ap, in.PatientID); err != nil {
		return nil, err
	}

	start := in.Start.In(loc).Truncate(time.Minute)
	if !start.After(uc.now()) {
		return nil, domain.ErrSlotUnavailable
	}

	var updated *models.Appointment

	err = uc.locker.WithSlotLock(ctx, lock.SlotKey(ap.DoctorID, start), func(ctx context.Context) error {
		return uc.repo.Transaction(ctx, func(tx domain.Repository) error {
			doctor, err := tx.LockDoctor(ctx, ap.DoctorID)
			if err != nil {
				return translate("lock doctor", err, domain.ErrUnknownDoctor)
			}

			// re-read under the doctor lock
			current, err := tx.GetAppointment(ctx, ap.ID)
			if err != nil {
				return translate("get appointment", err, domain.ErrAppointmentNotFound)
			}
			if err := domain.AssertOwner(current, in.PatientID); err != nil {
				return err
			}

			if err := ensureSlotFree(ctx, tx, doctor, start, current.ID, uc.policy, loc); err != nil {
				return err
			}

			if err := domain.Reschedule(current, start); err != nil {
				return err
			}
			if err := tx.UpdateAppointment(ctx, current); err != nil {
				return translate("update appointment", err, domain.ErrAppointmentNotFound)
			}

			updated = current
			return nil
		})
	})

	if errors.Is(err, lock.ErrLockNotAcquired) {
		return nil, domain.ErrSlotUnavailable
	}
	if err != nil {
		return nil, translate("reschedule appointment", err, domain.ErrAppointmentNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    in.Actor,
		Role:     string(account.RolePatient),
		Action:   audit.ActionAppointmentRescheduled,
		Entity:   "appointment",
		EntityID: &updated.ID,
		Metadata: map[string]any{
			"from": ap.AppointmentTime,
			"to":   updated.AppointmentTime,
		},
	})

	return updated, nil
}
