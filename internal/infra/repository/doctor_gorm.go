package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	doctordomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/doctor"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type DoctorGormRepository struct {
	db *gorm.DB
}

func NewDoctorGormRepository(db *gorm.DB) *DoctorGormRepository {
	return &DoctorGormRepository{db: db}
}

func (r *DoctorGormRepository) ListDoctors(ctx context.Context) ([]models.Doctor, error) {
	var ds []models.Doctor
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&ds).Error; err != nil {
		return nil, mapErr("list doctors", err)
	}
	return ds, nil
}

func (r *DoctorGormRepository) GetDoctorByID(ctx context.Context, id uint) (*models.Doctor, error) {
	var d models.Doctor
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, mapErr("get doctor", err)
	}
	return &d, nil
}

func (r *DoctorGormRepository) GetDoctorByEmail(ctx context.Context, email string) (*models.Doctor, error) {
	var d models.Doctor
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&d).Error; err != nil {
		return nil, mapErr("get doctor by email", err)
	}
	return &d, nil
}

func (r *DoctorGormRepository) CreateDoctor(ctx context.Context, d *models.Doctor) error {
	if err := r.db.WithContext(ctx).Create(d).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return doctordomain.ErrDoctorExists
		}
		return mapErr("create doctor", err)
	}
	return nil
}

func (r *DoctorGormRepository) UpdateDoctor(ctx context.Context, d *models.Doctor) error {
	if err := r.db.WithContext(ctx).Save(d).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return doctordomain.ErrDoctorExists
		}
		return mapErr("update doctor", err)
	}
	return nil
}

func (r *DoctorGormRepository) DeleteDoctor(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("doctor_id = ?", id).Delete(&models.Appointment{}).Error; err != nil {
			return mapErr("delete doctor appointments", err)
		}

		res := tx.Delete(&models.Doctor{}, id)
		if res.Error != nil {
			return mapErr("delete doctor", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

var _ doctordomain.Repository = (*DoctorGormRepository)(nil)
