package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	apdomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Doctor
// --------------------------------------------------

func (r *AppointmentGormRepository) GetDoctorByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var d models.Doctor
	if err := r.db.WithContext(ctx).First(&d, id).Error; err != nil {
		return nil, mapErr("get doctor", err)
	}
	return &d, nil
}

func (r *AppointmentGormRepository) LockDoctor(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var d models.Doctor
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&d, id).Error; err != nil {
		return nil, mapErr("lock doctor", err)
	}
	return &d, nil
}

func (r *AppointmentGormRepository) ListDoctorsByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Doctor, error) {

	if len(ids) == 0 {
		return []models.Doctor{}, nil
	}

	var ds []models.Doctor
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&ds).Error; err != nil {
		return nil, mapErr("list doctors", err)
	}
	return ds, nil
}

// --------------------------------------------------
// Patient
// --------------------------------------------------

func (r *AppointmentGormRepository) GetPatientByID(
	ctx context.Context,
	id uint,
) (*models.Patient, error) {

	var p models.Patient
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, mapErr("get patient", err)
	}
	return &p, nil
}

func (r *AppointmentGormRepository) GetPatientByEmail(
	ctx context.Context,
	email string,
) (*models.Patient, error) {

	var p models.Patient
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&p).Error; err != nil {
		return nil, mapErr("get patient by email", err)
	}
	return &p, nil
}

func (r *AppointmentGormRepository) ListPatientsByIDs(
	ctx context.Context,
	ids []uint,
) ([]models.Patient, error) {

	if len(ids) == 0 {
		return []models.Patient{}, nil
	}

	var ps []models.Patient
	if err := r.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&ps).Error; err != nil {
		return nil, mapErr("list patients", err)
	}
	return ps, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).First(&ap, id).Error; err != nil {
		return nil, mapErr("get appointment", err)
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return apdomain.ErrSlotUnavailable
		}
		return mapErr("create appointment", err)
	}
	return nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	if err := r.db.WithContext(ctx).Save(ap).Error; err != nil {
		if httperr.IsUniqueViolation(err) {
			return apdomain.ErrSlotUnavailable
		}
		return mapErr("update appointment", err)
	}
	return nil
}

func (r *AppointmentGormRepository) UpdateAppointmentStatus(
	ctx context.Context,
	id uint,
	status apdomain.Status,
) error {
	res := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("id = ?", id).
		Update("status", string(status))
	if res.Error != nil {
		return mapErr("update appointment status", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {
	res := r.db.WithContext(ctx).Delete(&models.Appointment{}, id)
	if res.Error != nil {
		return mapErr("delete appointment", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	doctorID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"doctor_id = ? AND appointment_time >= ? AND appointment_time <= ?",
			doctorID, start, end,
		).
		Order("appointment_time ASC").
		Find(&apps).Error; err != nil {
		return nil, mapErr("list appointments for day", err)
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListUpcoming(
	ctx context.Context,
	doctorID uint,
	from time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("doctor_id = ? AND appointment_time >= ?", doctorID, from).
		Order("appointment_time ASC").
		Find(&apps).Error; err != nil {
		return nil, mapErr("list upcoming appointments", err)
	}

	return apps, nil
}

func (r *AppointmentGormRepository) ListByPatient(
	ctx context.Context,
	patientID uint,
	status apdomain.Status,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).Where("patient_id = ?", patientID)
	if status != "" {
		q = q.Where("status = ?", string(status))
	}

	var apps []models.Appointment
	if err := q.
		Order("appointment_time ASC").
		Find(&apps).Error; err != nil {
		return nil, mapErr("list patient appointments", err)
	}

	return apps, nil
}

// --------------------------------------------------
// Transaction
// --------------------------------------------------

func (r *AppointmentGormRepository) Transaction(
	ctx context.Context,
	fn func(tx apdomain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// Compile-time check
var _ apdomain.Repository = (*AppointmentGormRepository)(nil)
