package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// ListPatientAppointments is a patient's own history, ordered by time.
type ListPatientAppointments struct {
	repo domain.Repository
}

func NewListPatientAppointments(repo domain.Repository) *ListPatientAppointments {
	return &ListPatientAppointments{repo: repo}
}

func (uc *ListPatientAppointments) Execute(
	ctx context.Context,
	patientEmail string,
	condition patient.Condition,
	doctorName string,
) ([]dto.AppointmentListDTO, error) {

	p, err := uc.repo.GetPatientByEmail(ctx, patientEmail)
	if err != nil {
		return nil, translate("get patient by email", err, domain.ErrUnknownPatient)
	}

	appointments, err := uc.repo.ListByPatient(ctx, p.ID, condition.Status())
	if err != nil {
		return nil, translate("list patient appointments", err, domain.ErrUnknownPatient)
	}

	rows, err := assemble(ctx, uc.repo, appointments, timezone.Clinic())
	if err != nil {
		return nil, err
	}

	return filterByDoctorName(rows, doctorName), nil
}
