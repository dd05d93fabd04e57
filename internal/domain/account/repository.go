package account

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

func ParseRole(raw string) (Role, bool) {
	switch r := Role(raw); r {
	case RoleAdmin, RoleDoctor, RolePatient:
		return r, true
	default:
		return "", false
	}
}

// Repository resolves login principals for every role.
type Repository interface {
	GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error)
	CreateAdmin(ctx context.Context, a *models.Admin) error

	GetDoctorByEmail(ctx context.Context, email string) (*models.Doctor, error)
	GetPatientByEmail(ctx context.Context, email string) (*models.Patient, error)
}
