package repository

import (
	"context"

	"gorm.io/gorm"

	patientdomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type PatientGormRepository struct {
	db *gorm.DB
}

func NewPatientGormRepository(db *gorm.DB) *PatientGormRepository {
	return &PatientGormRepository{db: db}
}

func (r *PatientGormRepository) GetPatientByID(ctx context.Context, id uint) (*models.Patient, error) {
	var p models.Patient
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, mapErr("get patient", err)
	}
	return &p, nil
}

func (r *PatientGormRepository) GetPatientByEmail(ctx context.Context, email string) (*models.Patient, error) {
	var p models.Patient
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&p).Error; err != nil {
		return nil, mapErr("get patient by email", err)
	}
	return &p, nil
}

func (r *PatientGormRepository) ExistsByEmailOrPhone(ctx context.Context, email, phone string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.Patient{}).
		Where("email = ? OR phone = ?", email, phone).
		Count(&count).Error; err != nil {
		return false, mapErr("count patients", err)
	}
	return count > 0, nil
}

func (r *PatientGormRepository) CreatePatient(ctx context.Context, p *models.Patient) error {
	if err := r.db.WithContext(ctx).Create(p).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return patientdomain.ErrPatientExists
		}
		return mapErr("create patient", err)
	}
	return nil
}

var _ patientdomain.Repository = (*PatientGormRepository)(nil)
