package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestComplete_Idempotent(t *testing.T) {
	ap := &models.Appointment{Status: string(InitialStatus())}

	if !Complete(ap) {
		t.Error("expected first completion to change status")
	}
	if Complete(ap) {
		t.Error("expected second completion to be a no-op")
	}
	if ap.Status != string(StatusCompleted) {
		t.Errorf("expected completed, got %q", ap.Status)
	}
}

func TestReschedule(t *testing.T) {
	next := time.Date(2030, 5, 10, 11, 0, 0, 0, time.UTC)

	ap := &models.Appointment{Status: string(StatusScheduled)}
	if err := Reschedule(ap, next); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ap.AppointmentTime.Equal(next) {
		t.Errorf("expected time %s, got %s", next, ap.AppointmentTime)
	}
	if ap.Status != string(StatusScheduled) {
		t.Errorf("expected status unchanged, got %q", ap.Status)
	}

	done := &models.Appointment{Status: string(StatusCompleted)}
	if err := Reschedule(done, next); err != ErrInvalidState {
		t.Errorf("expected ErrInvalidState, got %v", err)
	}
}

func TestAssertOwner(t *testing.T) {
	ap := &models.Appointment{PatientID: 7}

	if err := AssertOwner(ap, 7); err != nil {
		t.Errorf("expected owner to pass, got %v", err)
	}
	if err := AssertOwner(ap, 8); err != ErrOwnershipMismatch {
		t.Errorf("expected ErrOwnershipMismatch, got %v", err)
	}
}

func TestStatusValid(t *testing.T) {
	if !StatusScheduled.Valid() || !StatusCompleted.Valid() {
		t.Error("expected known statuses to be valid")
	}
	if Status("cancelled").Valid() {
		t.Error("expected cancelled not to be a status")
	}
}
