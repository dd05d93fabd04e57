package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type ListAppointmentsByDate struct {
	repo domain.Repository
}

func NewListAppointmentsByDate(
	repo domain.Repository,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo: repo,
	}
}

func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	doctorID uint,
	date time.Time,
	patientName string,
) ([]dto.AppointmentListDTO, error) {

	loc := timezone.Clinic()
	start, end := domain.DayRange(date, loc)

	appointments, err := uc.repo.ListAppointmentsForDay(ctx, doctorID, start, end)
	if err != nil {
		return nil, translate("list appointments for day", err, domain.ErrUnknownDoctor)
	}

	rows, err := assemble(ctx, uc.repo, appointments, loc)
	if err != nil {
		return nil, err
	}

	return filterByPatientName(rows, patientName), nil
}
