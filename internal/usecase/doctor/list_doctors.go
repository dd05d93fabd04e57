package doctor

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/doctor"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ListDoctors struct {
	repo domain.Repository
}

func NewListDoctors(repo domain.Repository) *ListDoctors {
	return &ListDoctors{repo: repo}
}

// Execute returns every doctor matching the filter, ordered by id.
func (uc *ListDoctors) Execute(ctx context.Context, f domain.Filter) ([]models.Doctor, error) {
	doctors, err := uc.repo.ListDoctors(ctx)
	if err != nil {
		return nil, translate("list doctors", err, domain.ErrDoctorNotFound)
	}
	return f.Apply(doctors), nil
}

type GetDoctor struct {
	repo domain.Repository
}

func NewGetDoctor(repo domain.Repository) *GetDoctor {
	return &GetDoctor{repo: repo}
}

func (uc *GetDoctor) ByID(ctx context.Context, id uint) (*models.Doctor, error) {
	d, err := uc.repo.GetDoctorByID(ctx, id)
	if err != nil {
		return nil, translate("get doctor", err, domain.ErrDoctorNotFound)
	}
	return d, nil
}

func (uc *GetDoctor) ByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	d, err := uc.repo.GetDoctorByEmail(ctx, email)
	if err != nil {
		return nil, translate("get doctor by email", err, domain.ErrDoctorNotFound)
	}
	return d, nil
}
