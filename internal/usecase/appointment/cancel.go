package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/account"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

// CancelAppointment permanently removes an appointment owned by the caller.
// The freed slot is bookable again immediately.
type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	callerEmail string,
) error {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return translate("get appointment", err, domain.ErrAppointmentNotFound)
	}

	caller, err := uc.repo.GetPatientByEmail(ctx, callerEmail)
	if err != nil {
		return translate("get patient by email", err, domain.ErrUnknownPatient)
	}

	if err := domain.AssertOwner(ap, caller.ID); err != nil {
		return err
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return translate("delete appointment", err, domain.ErrAppointmentNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    caller.Email,
		Role:     string(account.RolePatient),
		Action:   audit.ActionAppointmentCancelled,
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"doctor_id":        ap.DoctorID,
			"appointment_time": ap.AppointmentTime,
		},
	})

	return nil
}
