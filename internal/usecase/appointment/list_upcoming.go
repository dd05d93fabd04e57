package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// ListUpcoming is read only: appointments at or after now, ascending.
type ListUpcoming struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListUpcoming(repo domain.Repository) *ListUpcoming {
	return &ListUpcoming{
		repo: repo,
		now:  time.Now,
	}
}

func (uc *ListUpcoming) Execute(
	ctx context.Context,
	doctorID uint,
	patientName string,
) ([]dto.AppointmentListDTO, error) {

	appointments, err := uc.repo.ListUpcoming(ctx, doctorID, uc.now())
	if err != nil {
		return nil, translate("list upcoming appointments", err, domain.ErrUnknownDoctor)
	}

	rows, err := assemble(ctx, uc.repo, appointments, timezone.Clinic())
	if err != nil {
		return nil, err
	}

	return filterByPatientName(rows, patientName), nil
}
