package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// Repository returns domain.ErrNotFound for missing rows and
// ErrSlotUnavailable when a write collides with the (doctor, time) constraint.
// Any other failure is an httperr.StorageError.
type Repository interface {
	// -------- Doctor --------
	GetDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	// LockDoctor reads the doctor row and holds it until the surrounding
	// transaction ends, serializing bookings for that doctor.
	LockDoctor(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	ListDoctorsByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Doctor, error)

	// -------- Patient --------
	GetPatientByID(
		ctx context.Context,
		id uint,
	) (*models.Patient, error)

	GetPatientByEmail(
		ctx context.Context,
		email string,
	) (*models.Patient, error)

	ListPatientsByIDs(
		ctx context.Context,
		ids []uint,
	) ([]models.Patient, error)

	// -------- Appointment (write) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointmentStatus(
		ctx context.Context,
		id uint,
		status Status,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Appointment (read) --------

	// ListAppointmentsForDay matches start <= appointment_time <= end,
	// ordered by time.
	ListAppointmentsForDay(
		ctx context.Context,
		doctorID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListUpcoming(
		ctx context.Context,
		doctorID uint,
		from time.Time,
	) ([]models.Appointment, error)

	// ListByPatient orders by time. An empty status matches all.
	ListByPatient(
		ctx context.Context,
		patientID uint,
		status Status,
	) ([]models.Appointment, error)

	// -------- Transaction --------
	Transaction(
		ctx context.Context,
		fn func(tx Repository) error,
	) error
}
