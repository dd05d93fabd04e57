package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// assemble joins appointments with their doctor and patient in two batched
// reads. Rows whose doctor or patient vanished are dropped.
func assemble(
	ctx context.Context,
	repo domain.Repository,
	apps []models.Appointment,
	loc *time.Location,
) ([]dto.AppointmentListDTO, error) {

	out := make([]dto.AppointmentListDTO, 0, len(apps))
	if len(apps) == 0 {
		return out, nil
	}

	doctorIDs := make([]uint, 0, len(apps))
	patientIDs := make([]uint, 0, len(apps))
	seenD := map[uint]bool{}
	seenP := map[uint]bool{}
	for _, ap := range apps {
		if !seenD[ap.DoctorID] {
			seenD[ap.DoctorID] = true
			doctorIDs = append(doctorIDs, ap.DoctorID)
		}
		if !seenP[ap.PatientID] {
			seenP[ap.PatientID] = true
			patientIDs = append(patientIDs, ap.PatientID)
		}
	}

	doctors, err := repo.ListDoctorsByIDs(ctx, doctorIDs)
	if err != nil {
		return nil, translate("list doctors", err, domain.ErrUnknownDoctor)
	}
	patients, err := repo.ListPatientsByIDs(ctx, patientIDs)
	if err != nil {
		return nil, translate("list patients", err, domain.ErrUnknownPatient)
	}

	byDoctor := make(map[uint]models.Doctor, len(doctors))
	for _, d := range doctors {
		byDoctor[d.ID] = d
	}
	byPatient := make(map[uint]models.Patient, len(patients))
	for _, p := range patients {
		byPatient[p.ID] = p
	}

	for _, ap := range apps {
		d, okD := byDoctor[ap.DoctorID]
		p, okP := byPatient[ap.PatientID]
		if !okD || !okP {
			continue
		}

		local := ap.AppointmentTime.In(loc)
		out = append(out, dto.AppointmentListDTO{
			ID:              ap.ID,
			AppointmentTime: local,
			Slot:            domain.SlotFor(local).String(),
			Status:          ap.Status,
			DoctorID:        d.ID,
			DoctorName:      d.Name,
			DoctorSpecialty: d.Specialty,
			PatientID:       p.ID,
			PatientName:     p.Name,
			PatientEmail:    p.Email,
			PatientPhone:    p.Phone,
			PatientAddress:  p.Address,
		})
	}

	return out, nil
}

func filterByPatientName(rows []dto.AppointmentListDTO, name string) []dto.AppointmentListDTO {
	f := textFilter(name)
	if f == "" {
		return rows
	}
	out := make([]dto.AppointmentListDTO, 0, len(rows))
	for _, r := range rows {
		if containsFold(r.PatientName, f) {
			out = append(out, r)
		}
	}
	return out
}

func filterByDoctorName(rows []dto.AppointmentListDTO, name string) []dto.AppointmentListDTO {
	f := textFilter(name)
	if f == "" {
		return rows
	}
	out := make([]dto.AppointmentListDTO, 0, len(rows))
	for _, r := range rows {
		if containsFold(r.DoctorName, f) {
			out = append(out, r)
		}
	}
	return out
}
