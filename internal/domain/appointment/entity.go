package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Complete is idempotent. It reports whether the status changed.
func Complete(ap *models.Appointment) bool {
	if Status(ap.Status) == StatusCompleted {
		return false
	}
	ap.Status = string(StatusCompleted)
	return true
}

func Reschedule(ap *models.Appointment, start time.Time) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}
	ap.AppointmentTime = start
	return nil
}

// AssertOwner short-circuits before any write when patientID does not own ap.
func AssertOwner(ap *models.Appointment, patientID uint) error {
	if ap.PatientID != patientID {
		return ErrOwnershipMismatch
	}
	return nil
}
