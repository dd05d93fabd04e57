package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AccountGormRepository struct {
	db *gorm.DB
}

func NewAccountGormRepository(db *gorm.DB) *AccountGormRepository {
	return &AccountGormRepository{db: db}
}

func (r *AccountGormRepository) GetAdminByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var a models.Admin
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&a).Error; err != nil {
		return nil, mapErr("get admin", err)
	}
	return &a, nil
}

func (r *AccountGormRepository) CreateAdmin(ctx context.Context, a *models.Admin) error {
	return mapErr("create admin", r.db.WithContext(ctx).Create(a).Error)
}

func (r *AccountGormRepository) GetDoctorByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	var d models.Doctor
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&d).Error; err != nil {
		return nil, mapErr("get doctor by email", err)
	}
	return &d, nil
}

func (r *AccountGormRepository) GetPatientByEmail(ctx context.Context, email string) (*models.Patient, error) {
	var p models.Patient
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&p).Error; err != nil {
		return nil, mapErr("get patient by email", err)
	}
	return &p, nil
}

var _ account.Repository = (*AccountGormRepository)(nil)
