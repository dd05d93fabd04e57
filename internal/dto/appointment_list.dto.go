package dto

import "time"

// AppointmentListDTO is an appointment joined with the display fields of its
// doctor and patient.
type AppointmentListDTO struct {
	ID              uint      `json:"id"`
	AppointmentTime time.Time `json:"appointmentTime"`
	Slot            string    `json:"slot"`
	Status          string    `json:"status"`

	DoctorID        uint   `json:"doctorId"`
	DoctorName      string `json:"doctorName"`
	DoctorSpecialty string `json:"doctorSpecialty"`

	PatientID      uint   `json:"patientId"`
	PatientName    string `json:"patientName"`
	PatientEmail   string `json:"patientEmail"`
	PatientPhone   string `json:"patientPhone"`
	PatientAddress string `json:"patientAddress"`
}
