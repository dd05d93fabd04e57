package doctor

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Repository interface {
	// ListDoctors orders by id.
	ListDoctors(ctx context.Context) ([]models.Doctor, error)

	GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error)
	GetDoctorByEmail(ctx context.Context, email string) (*models.Doctor, error)

	CreateDoctor(ctx context.Context, d *models.Doctor) error
	UpdateDoctor(ctx context.Context, d *models.Doctor) error

	// DeleteDoctor removes the doctor and all of their appointments atomically.
	DeleteDoctor(ctx context.Context, id uint) error
}
