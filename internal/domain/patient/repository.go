package patient

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Repository interface {
	GetPatientByID(ctx context.Context, id uint) (*models.Patient, error)
	GetPatientByEmail(ctx context.Context, email string) (*models.Patient, error)

	// ExistsByEmailOrPhone reports a clash on either unique contact field.
	ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error)

	CreatePatient(ctx context.Context, p *models.Patient) error
}
