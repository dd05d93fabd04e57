package dto

import (
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AppointmentDTO struct {
	ID              uint      `json:"id"`
	DoctorID        uint      `json:"doctorId"`
	PatientID       uint      `json:"patientId"`
	AppointmentTime time.Time `json:"appointmentTime"`
	Slot            string    `json:"slot"`
	Status          string    `json:"status"`
}

func NewAppointmentDTO(ap *models.Appointment, loc *time.Location) AppointmentDTO {
	start := ap.AppointmentTime.In(loc)
	return AppointmentDTO{
		ID:              ap.ID,
		DoctorID:        ap.DoctorID,
		PatientID:       ap.PatientID,
		AppointmentTime: start,
		Slot:            domain.SlotFor(start).String(),
		Status:          ap.Status,
	}
}
