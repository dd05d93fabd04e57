package models

import "time"

// Appointment occupies exactly one hour starting at AppointmentTime. The end
// is derived, never stored.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	DoctorID        uint      `gorm:"not null;uniqueIndex:idx_doctor_slot" json:"doctorId"`
	PatientID       uint      `gorm:"not null;index" json:"patientId"`
	AppointmentTime time.Time `gorm:"not null;uniqueIndex:idx_doctor_slot" json:"appointmentTime"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
