package auth

import (
	"context"
	"errors"
	"strings"

	authpkg "github.com/BruksfildServices01/clinic-scheduler/internal/auth"
	rootdomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/account"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type LoginInput struct {
	Role       account.Role
	Identifier string
	Password   string
}

type LoginResult struct {
	Token   string       `json:"token"`
	Role    account.Role `json:"role"`
	Subject string       `json:"subject"`
}

type Login struct {
	repo   account.Repository
	tokens *authpkg.Tokens
}

func NewLogin(repo account.Repository, tokens *authpkg.Tokens) *Login {
	return &Login{repo: repo, tokens: tokens}
}

// Execute never tells the caller which half of the credentials was wrong.
func (uc *Login) Execute(ctx context.Context, in LoginInput) (*LoginResult, error) {
	subject := strings.TrimSpace(in.Identifier)
	if in.Role != account.RoleAdmin {
		subject = strings.ToLower(subject)
	}
	if subject == "" || in.Password == "" {
		return nil, account.ErrInvalidCredentials
	}

	hash, err := uc.lookupHash(ctx, in.Role, subject)
	if err != nil {
		return nil, err
	}
	if !authpkg.CheckPassword(hash, in.Password) {
		return nil, account.ErrInvalidCredentials
	}

	token, err := uc.tokens.Issue(subject, in.Role)
	if err != nil {
		return nil, httperr.Storage("issue token", err)
	}

	return &LoginResult{Token: token, Role: in.Role, Subject: subject}, nil
}

func (uc *Login) lookupHash(ctx context.Context, role account.Role, subject string) (string, error) {
	var (
		hash string
		err  error
	)

	switch role {
	case account.RoleAdmin:
		var a *models.Admin
		if a, err = uc.repo.GetAdminByUsername(ctx, subject); err == nil {
			hash = a.PasswordHash
		}
	case account.RoleDoctor:
		var d *models.Doctor
		if d, err = uc.repo.GetDoctorByEmail(ctx, subject); err == nil {
			hash = d.PasswordHash
		}
	case account.RolePatient:
		var p *models.Patient
		if p, err = uc.repo.GetPatientByEmail(ctx, subject); err == nil {
			hash = p.PasswordHash
		}
	default:
		return "", account.ErrInvalidCredentials
	}

	if errors.Is(err, rootdomain.ErrNotFound) {
		return "", account.ErrInvalidCredentials
	}
	if err != nil {
		return "", httperr.Storage("lookup credentials", err)
	}
	return hash, nil
}
