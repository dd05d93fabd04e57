package appointment

import (
	"context"
	"errors"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/account"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/lock"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type BookAppointmentInput struct {
	DoctorID  uint
	PatientID uint
	Start     time.Time
}

// ======================================================
// USE CASE
// ======================================================

type BookAppointment struct {
	repo   domain.Repository
	locker lock.Locker
	audit  *audit.Dispatcher
	policy domain.MatchPolicy
	now    func() time.Time
}

func NewBookAppointment(
	repo domain.Repository,
	locker lock.Locker,
	audit *audit.Dispatcher,
) *BookAppointment {
	if locker == nil {
		locker = lock.Noop{}
	}
	return &BookAppointment{
		repo:   repo,
		locker: locker,
		audit:  audit,
		policy: domain.ExactSlotMatch,
		now:    time.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *BookAppointment) Execute(
	ctx context.Context,
	in BookAppointmentInput,
) (*models.Appointment, error) {

	loc := timezone.Clinic()

	// --------------------------------------------------
	// 1. Doctor and patient must exist
	// --------------------------------------------------
	doctor, err := uc.repo.GetDoctorByID(ctx, in.DoctorID)
	if err != nil {
		return nil, translate("get doctor", err, domain.ErrUnknownDoctor)
	}

	patient, err := uc.repo.GetPatientByID(ctx, in.PatientID)
	if err != nil {
		return nil, translate("get patient", err, domain.ErrUnknownPatient)
	}

	// --------------------------------------------------
	// 2. Strictly in the future
	// --------------------------------------------------
	start := in.Start.In(loc).Truncate(time.Minute)
	if !start.After(uc.now()) {
		return nil, domain.ErrSlotUnavailable
	}

	// --------------------------------------------------
	// 3. Check and insert atomically per doctor
	// --------------------------------------------------
	var created *models.Appointment

	err = uc.locker.WithSlotLock(ctx, lock.SlotKey(doctor.ID, start), func(ctx context.Context) error {
		return uc.repo.Transaction(ctx, func(tx domain.Repository) error {
			locked, err := tx.LockDoctor(ctx, doctor.ID)
			if err != nil {
				return translate("lock doctor", err, domain.ErrUnknownDoctor)
			}

			if err := ensureSlotFree(ctx, tx, locked, start, 0, uc.policy, loc); err != nil {
				return err
			}

			ap := &models.Appointment{
				DoctorID:        locked.ID,
				PatientID:       patient.ID,
				AppointmentTime: start,
				Status:          string(domain.InitialStatus()),
			}
			if err := tx.CreateAppointment(ctx, ap); err != nil {
				return translate("create appointment", err, domain.ErrUnknownDoctor)
			}

			created = ap
			return nil
		})
	})

	if errors.Is(err, lock.ErrLockNotAcquired) {
		err = domain.ErrSlotUnavailable
	}

	if err != nil {
		if httperr.IsBusiness(err, domain.CodeSlotUnavailable) {
			uc.audit.Dispatch(audit.Event{
				Actor:    patient.Email,
				Role:     string(account.RolePatient),
				Action:   audit.ActionAppointmentConflict,
				Entity:   "doctor",
				EntityID: &doctor.ID,
				Metadata: map[string]any{
					"slot": domain.SlotFor(start).String(),
					"date": start.Format("2006-01-02"),
				},
			})
		}
		return nil, translate("book appointment", err, domain.ErrUnknownDoctor)
	}

	// --------------------------------------------------
	// 4. Audit
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		Actor:    patient.Email,
		Role:     string(account.RolePatient),
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &created.ID,
		Metadata: map[string]any{
			"doctor_id": created.DoctorID,
			"slot":      domain.SlotFor(start).String(),
		},
	})

	return created, nil
}
