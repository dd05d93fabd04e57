package doctor

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	rootdomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/account"
	apdomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/doctor"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type SaveDoctorInput struct {
	Name           string
	Specialty      string
	Email          string
	Password       string
	Phone          string
	AvailableTimes []string
}

// SaveDoctor creates and updates doctor accounts on behalf of an admin.
type SaveDoctor struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSaveDoctor(repo domain.Repository, audit *audit.Dispatcher) *SaveDoctor {
	return &SaveDoctor{repo: repo, audit: audit}
}

func (uc *SaveDoctor) Create(ctx context.Context, actor string, in SaveDoctorInput) (*models.Doctor, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if err := apdomain.ValidateSlots(in.AvailableTimes); err != nil {
		return nil, err
	}

	switch _, err := uc.repo.GetDoctorByEmail(ctx, email); {
	case err == nil:
		return nil, domain.ErrDoctorExists
	case !errors.Is(err, rootdomain.ErrNotFound):
		return nil, translate("get doctor by email", err, domain.ErrDoctorNotFound)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, httperr.Storage("hash password", err)
	}

	d := &models.Doctor{
		Name:           strings.TrimSpace(in.Name),
		Specialty:      strings.TrimSpace(in.Specialty),
		Email:          email,
		PasswordHash:   hash,
		Phone:          in.Phone,
		AvailableTimes: nonNil(in.AvailableTimes),
	}
	if err := uc.repo.CreateDoctor(ctx, d); err != nil {
		return nil, translate("create doctor", err, domain.ErrDoctorNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Role:     string(account.RoleAdmin),
		Action:   audit.ActionDoctorCreated,
		Entity:   "doctor",
		EntityID: &d.ID,
	})

	return d, nil
}

// Update replaces profile fields. An empty password keeps the current one.
func (uc *SaveDoctor) Update(ctx context.Context, actor string, id uint, in SaveDoctorInput) (*models.Doctor, error) {
	if err := apdomain.ValidateSlots(in.AvailableTimes); err != nil {
		return nil, err
	}

	d, err := uc.repo.GetDoctorByID(ctx, id)
	if err != nil {
		return nil, translate("get doctor", err, domain.ErrDoctorNotFound)
	}

	d.Name = strings.TrimSpace(in.Name)
	d.Specialty = strings.TrimSpace(in.Specialty)
	d.Email = strings.ToLower(strings.TrimSpace(in.Email))
	d.Phone = in.Phone
	d.AvailableTimes = nonNil(in.AvailableTimes)

	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, httperr.Storage("hash password", err)
		}
		d.PasswordHash = hash
	}

	if err := uc.repo.UpdateDoctor(ctx, d); err != nil {
		return nil, translate("update doctor", err, domain.ErrDoctorNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Role:     string(account.RoleAdmin),
		Action:   audit.ActionDoctorUpdated,
		Entity:   "doctor",
		EntityID: &d.ID,
	})

	return d, nil
}

// UpdateAvailability lets a doctor replace their own declared slot list.
func (uc *SaveDoctor) UpdateAvailability(ctx context.Context, email string, slots []string) (*models.Doctor, error) {
	if err := apdomain.ValidateSlots(slots); err != nil {
		return nil, err
	}

	d, err := uc.repo.GetDoctorByEmail(ctx, email)
	if err != nil {
		return nil, translate("get doctor by email", err, domain.ErrDoctorNotFound)
	}

	d.AvailableTimes = nonNil(slots)
	if err := uc.repo.UpdateDoctor(ctx, d); err != nil {
		return nil, translate("update doctor", err, domain.ErrDoctorNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    email,
		Role:     string(account.RoleDoctor),
		Action:   audit.ActionAvailabilityUpdated,
		Entity:   "doctor",
		EntityID: &d.ID,
		Metadata: map[string]any{"slots": d.AvailableTimes},
	})

	return d, nil
}

func nonNil(slots []string) []string {
	if slots == nil {
		return []string{}
	}
	return append([]string(nil), slots...)
}
