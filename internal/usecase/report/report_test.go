package report

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func seedReports(t *testing.T) *repository.MemoryStore {
	t.Helper()
	ctx := context.Background()
	s := repository.NewMemoryStore()

	doctors := []*models.Doctor{
		{Name: "Ana", Specialty: "Cardiology", Email: "ana@clinic.test"},
		{Name: "Bruno", Specialty: "Dermatology", Email: "bruno@clinic.test"},
	}
	for _, d := range doctors {
		if err := s.CreateDoctor(ctx, d); err != nil {
			t.Fatalf("create doctor: %v", err)
		}
	}
	patients := []*models.Patient{
		{Name: "Paulo", Email: "paulo@mail.test", Phone: "5511900000001"},
		{Name: "Rita", Email: "rita@mail.test", Phone: "5511900000002"},
	}
	for _, p := range patients {
		if err := s.CreatePatient(ctx, p); err != nil {
			t.Fatalf("create patient: %v", err)
		}
	}

	book := func(doctor, patient uint, at time.Time) {
		ap := &models.Appointment{DoctorID: doctor, PatientID: patient, AppointmentTime: at, Status: "scheduled"}
		if err := s.CreateAppointment(ctx, ap); err != nil {
			t.Fatalf("create appointment: %v", err)
		}
	}

	day := time.Date(2030, 5, 10, 9, 0, 0, 0, time.UTC)
	book(doctors[0].ID, patients[0].ID, day)
	book(doctors[0].ID, patients[0].ID, day.Add(time.Hour))
	book(doctors[1].ID, patients[1].ID, day.Add(2*time.Hour))
	book(doctors[1].ID, patients[0].ID, day.AddDate(0, 1, 0))

	return s
}

func TestDailyReport(t *testing.T) {
	uc := NewGetDailyReport(seedReports(t))

	got, err := uc.Execute(context.Background(), time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Date != "2030-05-10" || len(got.Appointments) != 3 {
		t.Fatalf("unexpected report %+v", got)
	}
	if len(got.PerDoctor) != 2 || got.PerDoctor[0].Appointments != 2 || got.PerDoctor[1].Appointments != 1 {
		t.Errorf("unexpected per-doctor summary %+v", got.PerDoctor)
	}
}

func TestTopDoctor_ByMonthTies(t *testing.T) {
	uc := NewGetTopDoctor(seedReports(t))

	got, err := uc.ByMonth(context.Background(), 2030, time.May)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// one distinct patient each, so both rank
	if len(got.Doctors) != 2 {
		t.Errorf("expected a tie between both doctors, got %+v", got.Doctors)
	}

	june, _ := uc.ByMonth(context.Background(), 2030, time.June)
	if len(june.Doctors) != 1 || june.Doctors[0].DoctorName != "Bruno" {
		t.Errorf("expected Bruno alone in June, got %+v", june.Doctors)
	}

	empty, _ := uc.ByMonth(context.Background(), 2031, time.January)
	if len(empty.Doctors) != 0 {
		t.Errorf("expected no ranking for an empty month, got %+v", empty.Doctors)
	}
}

func TestTopDoctor_ByYear(t *testing.T) {
	uc := NewGetTopDoctor(seedReports(t))

	got, err := uc.ByYear(context.Background(), 2030)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Doctors) != 1 || got.Doctors[0].DoctorName != "Bruno" || got.Doctors[0].Patients != 2 {
		t.Errorf("expected Bruno with 2 patients, got %+v", got.Doctors)
	}
}

func TestTopDoctor_InvalidPeriod(t *testing.T) {
	uc := NewGetTopDoctor(repository.NewMemoryStore())

	if _, err := uc.ByMonth(context.Background(), 2030, 13); err != ErrInvalidPeriod {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}
	if _, err := uc.ByYear(context.Background(), 0); err != ErrInvalidPeriod {
		t.Errorf("expected ErrInvalidPeriod, got %v", err)
	}
}
