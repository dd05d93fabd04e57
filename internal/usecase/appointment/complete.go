package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/account"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// CompleteAppointment finalizes an appointment. Completing twice is a no-op.
type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actor string,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, appointmentID)
	if err != nil {
		return nil, translate("get appointment", err, domain.ErrAppointmentNotFound)
	}

	if !domain.Complete(ap) {
		return ap, nil
	}

	if err := uc.repo.UpdateAppointmentStatus(ctx, ap.ID, domain.StatusCompleted); err != nil {
		return nil, translate("update appointment status", err, domain.ErrAppointmentNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Role:     string(account.RoleDoctor),
		Action:   audit.ActionAppointmentCompleted,
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}
