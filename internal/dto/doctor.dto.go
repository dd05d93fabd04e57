package dto

import "github.com/BruksfildServices01/clinic-scheduler/internal/models"

type DoctorDTO struct {
	ID             uint     `json:"id"`
	Name           string   `json:"name"`
	Specialty      string   `json:"specialty"`
	Email          string   `json:"email"`
	Phone          string   `json:"phone"`
	AvailableTimes []string `json:"availableTimes"`
}

type AvailabilityDTO struct {
	DoctorID  uint     `json:"doctorId"`
	Date      string   `json:"date"`
	FreeSlots []string `json:"freeSlots"`
}

func NewDoctorDTO(d *models.Doctor) DoctorDTO {
	times := d.AvailableTimes
	if times == nil {
		times = []string{}
	}
	return DoctorDTO{
		ID:             d.ID,
		Name:           d.Name,
		Specialty:      d.Specialty,
		Email:          d.Email,
		Phone:          d.Phone,
		AvailableTimes: times,
	}
}

func NewDoctorDTOs(doctors []models.Doctor) []DoctorDTO {
	out := make([]DoctorDTO, 0, len(doctors))
	for i := range doctors {
		out = append(out, NewDoctorDTO(&doctors[i]))
	}
	return out
}

type PatientDTO struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

func NewPatientDTO(p *models.Patient) PatientDTO {
	return PatientDTO{
		ID:      p.ID,
		Name:    p.Name,
		Email:   p.Email,
		Phone:   p.Phone,
		Address: p.Address,
	}
}
