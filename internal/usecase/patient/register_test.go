package patient

import (
	"context"
	"testing"

	"github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
	"github.com/BruksfildServices01/clinic-scheduler/internal/infra/repository"
)

func validPatient() RegisterPatientInput {
	return RegisterPatientInput{
		Name:     " Paulo Reis ",
		Email:    "Paulo@Mail.test",
		Password: "secret123",
		Phone:    "+55 (11) 98765-4321",
		Address:  "Rua A, 10",
	}
}

func TestRegisterPatient_Success(t *testing.T) {
	store := repository.NewMemoryStore()

	p, err := NewRegisterPatient(store, nil, false).Execute(context.Background(), validPatient())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Email != "paulo@mail.test" || p.Name != "Paulo Reis" || p.Phone != "5511987654321" {
		t.Errorf("expected normalized fields, got %+v", p)
	}
	if !auth.CheckPassword(p.PasswordHash, "secret123") {
		t.Error("expected bcrypt hash")
	}

	got, err := NewGetProfile(store).Execute(context.Background(), "paulo@mail.test")
	if err != nil || got.ID != p.ID {
		t.Errorf("expected profile lookup to find the patient, got %v %v", got, err)
	}
}

func TestRegisterPatient_Duplicates(t *testing.T) {
	store := repository.NewMemoryStore()
	uc := NewRegisterPatient(store, nil, false)

	if _, err := uc.Execute(context.Background(), validPatient()); err != nil {
		t.Fatalf("first register: %v", err)
	}

	sameEmail := validPatient()
	sameEmail.Phone = "11912345678"
	if _, err := uc.Execute(context.Background(), sameEmail); err != domain.ErrPatientExists {
		t.Errorf("expected ErrPatientExists for email, got %v", err)
	}

	samePhone := validPatient()
	samePhone.Email = "other@mail.test"
	if _, err := uc.Execute(context.Background(), samePhone); err != domain.ErrPatientExists {
		t.Errorf("expected ErrPatientExists for phone, got %v", err)
	}
}

func TestRegisterPatient_InvalidInput(t *testing.T) {
	uc := NewRegisterPatient(repository.NewMemoryStore(), nil, false)

	badEmail := validPatient()
	badEmail.Email = "paulo"
	if _, err := uc.Execute(context.Background(), badEmail); err != ErrInvalidEmail {
		t.Errorf("expected ErrInvalidEmail, got %v", err)
	}

	badPhone := validPatient()
	badPhone.Phone = "12"
	if _, err := uc.Execute(context.Background(), badPhone); err != ErrInvalidPhone {
		t.Errorf("expected ErrInvalidPhone, got %v", err)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	if _, err := NewGetProfile(repository.NewMemoryStore()).Execute(context.Background(), "ghost@mail.test"); err != domain.ErrPatientNotFound {
		t.Errorf("expected ErrPatientNotFound, got %v", err)
	}
}
