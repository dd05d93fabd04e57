package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	apdomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	doctordomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/doctor"
	patientdomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var slotTime = time.Date(2030, 5, 10, 9, 0, 0, 0, time.UTC)

func seedStore(t *testing.T) (*MemoryStore, *models.Doctor, *models.Patient) {
	t.Helper()
	ctx := context.Background()
	s := NewMemoryStore()

	d := &models.Doctor{Name: "Ana", Specialty: "Cardiology", Email: "ana@clinic.test", AvailableTimes: []string{"09:00-10:00"}}
	if err := s.CreateDoctor(ctx, d); err != nil {
		t.Fatalf("create doctor: %v", err)
	}
	p := &models.Patient{Name: "Paulo", Email: "paulo@mail.test", Phone: "5551234"}
	if err := s.CreatePatient(ctx, p); err != nil {
		t.Fatalf("create patient: %v", err)
	}
	return s, d, p
}

func TestMemoryStore_UniqueDoctorSlot(t *testing.T) {
	s, d, p := seedStore(t)
	ctx := context.Background()

	first := &models.Appointment{DoctorID: d.ID, PatientID: p.ID, AppointmentTime: slotTime, Status: "scheduled"}
	if err := s.CreateAppointment(ctx, first); err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	dup := &models.Appointment{DoctorID: d.ID, PatientID: p.ID, AppointmentTime: slotTime, Status: "scheduled"}
	if err := s.CreateAppointment(ctx, dup); err != apdomain.ErrSlotUnavailable {
		t.Fatalf("expected ErrSlotUnavailable, got %v", err)
	}

	// rewriting the same row at its own time is not a collision
	if err := s.UpdateAppointment(ctx, first); err != nil {
		t.Fatalf("update own slot: %v", err)
	}
}

func TestMemoryStore_TransactionRollsBack(t *testing.T) {
	s, d, p := seedStore(t)
	ctx := context.Background()
	boom := errors.New("boom")

	err := s.Transaction(ctx, func(tx apdomain.Repository) error {
		ap := &models.Appointment{DoctorID: d.ID, PatientID: p.ID, AppointmentTime: slotTime}
		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	apps, _ := s.ListAppointmentsForDay(ctx, d.ID, slotTime.Add(-time.Hour), slotTime.Add(time.Hour))
	if len(apps) != 0 {
		t.Errorf("expected rollback to discard the insert, got %d rows", len(apps))
	}
}

func TestMemoryStore_DeleteDoctorCascades(t *testing.T) {
	s, d, p := seedStore(t)
	ctx := context.Background()

	ap := &models.Appointment{DoctorID: d.ID, PatientID: p.ID, AppointmentTime: slotTime}
	if err := s.CreateAppointment(ctx, ap); err != nil {
		t.Fatalf("create appointment: %v", err)
	}

	if err := s.DeleteDoctor(ctx, d.ID); err != nil {
		t.Fatalf("delete doctor: %v", err)
	}
	if _, err := s.GetAppointment(ctx, ap.ID); err != domain.ErrNotFound {
		t.Errorf("expected appointment to be deleted, got %v", err)
	}
	if err := s.DeleteDoctor(ctx, d.ID); err != domain.ErrNotFound {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestMemoryStore_DuplicateAccounts(t *testing.T) {
	s, _, _ := seedStore(t)
	ctx := context.Background()

	if err := s.CreateDoctor(ctx, &models.Doctor{Email: "ana@clinic.test"}); err != doctordomain.ErrDoctorExists {
		t.Errorf("expected ErrDoctorExists, got %v", err)
	}
	if err := s.CreatePatient(ctx, &models.Patient{Email: "other@mail.test", Phone: "5551234"}); err != patientdomain.ErrPatientExists {
		t.Errorf("expected ErrPatientExists on phone clash, got %v", err)
	}
	exists, err := s.ExistsByEmailOrPhone(ctx, "paulo@mail.test", "")
	if err != nil || !exists {
		t.Errorf("expected email clash to be reported, got %v %v", exists, err)
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	s, d, _ := seedStore(t)
	ctx := context.Background()

	got, err := s.GetDoctorByID(ctx, d.ID)
	if err != nil {
		t.Fatalf("get doctor: %v", err)
	}
	got.AvailableTimes[0] = "tampered"

	again, _ := s.GetDoctorByID(ctx, d.ID)
	if again.AvailableTimes[0] != "09:00-10:00" {
		t.Errorf("expected stored slots to be isolated, got %v", again.AvailableTimes)
	}
}

func TestMemoryStore_ListByPatientAndStatus(t *testing.T) {
	s, d, p := seedStore(t)
	ctx := context.Background()

	late := &models.Appointment{DoctorID: d.ID, PatientID: p.ID, AppointmentTime: slotTime.Add(2 * time.Hour), Status: "scheduled"}
	early := &models.Appointment{DoctorID: d.ID, PatientID: p.ID, AppointmentTime: slotTime, Status: "completed"}
	for _, ap := range []*models.Appointment{late, early} {
		if err := s.CreateAppointment(ctx, ap); err != nil {
			t.Fatalf("create appointment: %v", err)
		}
	}

	all, _ := s.ListByPatient(ctx, p.ID, "")
	if len(all) != 2 || all[0].ID != early.ID {
		t.Fatalf("expected both ordered by time, got %+v", all)
	}

	done, _ := s.ListByPatient(ctx, p.ID, apdomain.StatusCompleted)
	if len(done) != 1 || done[0].ID != early.ID {
		t.Errorf("expected only the completed one, got %+v", done)
	}
}

func TestMemoryStore_Reports(t *testing.T) {
	s, d, p := seedStore(t)
	ctx := context.Background()

	other := &models.Patient{Name: "Rita", Email: "rita@mail.test", Phone: "5559999"}
	if err := s.CreatePatient(ctx, other); err != nil {
		t.Fatalf("create patient: %v", err)
	}
	for i, pid := range []uint{p.ID, p.ID, other.ID} {
		ap := &models.Appointment{DoctorID: d.ID, PatientID: pid, AppointmentTime: slotTime.Add(time.Duration(i) * time.Hour), Status: "scheduled"}
		if err := s.CreateAppointment(ctx, ap); err != nil {
			t.Fatalf("create appointment: %v", err)
		}
	}

	from := time.Date(2030, 5, 10, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 1)

	rows, _ := s.DailyAppointments(ctx, from, to)
	if len(rows) != 3 || rows[0].PatientName != "Paulo" || rows[0].DoctorName != "Ana" {
		t.Errorf("unexpected daily rows %+v", rows)
	}

	counts, _ := s.PatientCountsByDoctor(ctx, from, to)
	if len(counts) != 1 || counts[0].Patients != 2 {
		t.Errorf("expected 2 distinct patients, got %+v", counts)
	}
}

func TestMemoryStore_AuditLogs(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	for _, action := range []string{audit.ActionAppointmentCreated, audit.ActionAppointmentCancelled, audit.ActionAppointmentCreated} {
		if err := s.CreateAuditLog(ctx, &models.AuditLog{Action: action}); err != nil {
			t.Fatalf("create audit log: %v", err)
		}
	}

	logs, total, _ := s.ListAuditLogs(ctx, audit.Query{Action: audit.ActionAppointmentCreated, Limit: 1})
	if total != 2 {
		t.Errorf("expected total 2, got %d", total)
	}
	if len(logs) != 1 || logs[0].ID != 3 {
		t.Errorf("expected newest first with limit 1, got %+v", logs)
	}
}
