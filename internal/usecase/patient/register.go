package patient

import (
	"context"
	"errors"
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	rootdomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/account"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

var (
	ErrInvalidEmail       = httperr.ErrBusiness("invalid_email")
	ErrInvalidEmailDomain = httperr.ErrBusiness("invalid_email_domain")
	ErrInvalidPhone       = httperr.ErrBusiness("invalid_phone")
)

type RegisterPatientInput struct {
	Name     string
	Email    string
	Password string
	Phone    string
	Address  string
}

type RegisterPatient struct {
	repo  domain.Repository
	audit *audit.Dispatcher

	// checkDomain enables the DNS lookup on the email domain.
	checkDomain bool
}

func NewRegisterPatient(repo domain.Repository, audit *audit.Dispatcher, checkDomain bool) *RegisterPatient {
	return &RegisterPatient{repo: repo, audit: audit, checkDomain: checkDomain}
}

func (uc *RegisterPatient) Execute(ctx context.Context, in RegisterPatientInput) (*models.Patient, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if !validators.IsEmailShapeValid(email) {
		return nil, ErrInvalidEmail
	}
	if uc.checkDomain && !validators.IsEmailDomainValid(email) {
		return nil, ErrInvalidEmailDomain
	}

	phone, ok := validators.NormalizePhone(in.Phone)
	if !ok {
		return nil, ErrInvalidPhone
	}

	exists, err := uc.repo.ExistsByEmailOrPhone(ctx, email, phone)
	if err != nil {
		return nil, translate("check patient", err)
	}
	if exists {
		return nil, domain.ErrPatientExists
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, httperr.Storage("hash password", err)
	}

	p := &models.Patient{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Phone:        phone,
		Address:      strings.TrimSpace(in.Address),
	}
	if err := uc.repo.CreatePatient(ctx, p); err != nil {
		return nil, translate("create patient", err)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    p.Email,
		Role:     string(account.RolePatient),
		Action:   audit.ActionPatientRegistered,
		Entity:   "patient",
		EntityID: &p.ID,
	})

	return p, nil
}

type GetProfile struct {
	repo domain.Repository
}

func NewGetProfile(repo domain.Repository) *GetProfile {
	return &GetProfile{repo: repo}
}

func (uc *GetProfile) Execute(ctx context.Context, email string) (*models.Patient, error) {
	p, err := uc.repo.GetPatientByEmail(ctx, email)
	if err != nil {
		return nil, translate("get patient by email", err)
	}
	return p, nil
}

func translate(op string, err error) error {
	if errors.Is(err, rootdomain.ErrNotFound) {
		return domain.ErrPatientNotFound
	}
	var be httperr.BusinessError
	if errors.As(err, &be) {
		return err
	}
	return httperr.Storage(op, err)
}
