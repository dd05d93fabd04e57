package report

import (
	"context"
	"time"
)

// DailyRow is one appointment of the daily sheet, already joined.
type DailyRow struct {
	AppointmentID   uint      `json:"appointmentId"`
	DoctorID        uint      `json:"doctorId"`
	DoctorName      string    `json:"doctorName"`
	AppointmentTime time.Time `json:"appointmentTime"`
	Status          string    `json:"status"`
	PatientName     string    `json:"patientName"`
	PatientPhone    string    `json:"patientPhone"`
}

// DoctorCount is the number of distinct patients a doctor saw in a period.
type DoctorCount struct {
	DoctorID   uint   `json:"doctorId"`
	DoctorName string `json:"doctorName"`
	Specialty  string `json:"specialty"`
	Patients   int64  `json:"patients"`
}

// Repository is read only. Ranges are half-open [from, to).
type Repository interface {
	DailyAppointments(ctx context.Context, from, to time.Time) ([]DailyRow, error)
	PatientCountsByDoctor(ctx context.Context, from, to time.Time) ([]DoctorCount, error)
}

// Top keeps every doctor tied for the highest count, in input order. Doctors
// with no patients never rank.
func Top(counts []DoctorCount) []DoctorCount {
	var best int64
	for _, c := range counts {
		if c.Patients > best {
			best = c.Patients
		}
	}
	if best == 0 {
		return []DoctorCount{}
	}

	out := make([]DoctorCount, 0, 1)
	for _, c := range counts {
		if c.Patients == best {
			out = append(out, c)
		}
	}
	return out
}

// DailySummary counts the rows of a daily sheet per doctor.
type DailySummary struct {
	DoctorID     uint   `json:"doctorId"`
	DoctorName   string `json:"doctorName"`
	Appointments int    `json:"appointments"`
}

// Summarize keeps the first-seen order of doctors.
func Summarize(rows []DailyRow) []DailySummary {
	idx := make(map[uint]int)
	out := make([]DailySummary, 0)
	for _, r := range rows {
		i, ok := idx[r.DoctorID]
		if !ok {
			idx[r.DoctorID] = len(out)
			out = append(out, DailySummary{DoctorID: r.DoctorID, DoctorName: r.DoctorName})
			i = len(out) - 1
		}
		out[i].Appointments++
	}
	return out
}

func MonthRange(year int, month time.Month, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 1, 0)
}

func YearRange(year int, loc *time.Location) (time.Time, time.Time) {
	start := time.Date(year, time.January, 1, 0, 0, 0, 0, loc)
	return start, start.AddDate(1, 0, 0)
}
