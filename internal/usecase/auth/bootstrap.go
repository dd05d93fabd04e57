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

type BootstrapAdmin struct {
	repo account.Repository
}

func NewBootstrapAdmin(repo account.Repository) *BootstrapAdmin {
	return &BootstrapAdmin{repo: repo}
}

// Execute creates the admin account once. It reports whether a new row was
// written; an existing admin is left untouched.
func (uc *BootstrapAdmin) Execute(ctx context.Context, username, password string) (bool, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return false, nil
	}

	_, err := uc.repo.GetAdminByUsername(ctx, username)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, rootdomain.ErrNotFound) {
		return false, httperr.Storage("get admin", err)
	}

	hash, err := authpkg.HashPassword(password)
	if err != nil {
		return false, httperr.Storage("hash password", err)
	}

	if err := uc.repo.CreateAdmin(ctx, &models.Admin{Username: username, PasswordHash: hash}); err != nil {
		return false, httperr.Storage("create admin", err)
	}
	return true, nil
}
