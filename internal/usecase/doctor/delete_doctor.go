package doctor

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/account"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/doctor"
)

// DeleteDoctor removes a doctor together with every appointment they hold.
type DeleteDoctor struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteDoctor(repo domain.Repository, audit *audit.Dispatcher) *DeleteDoctor {
	return &DeleteDoctor{repo: repo, audit: audit}
}

func (uc *DeleteDoctor) Execute(ctx context.Context, actor string, id uint) error {
	if err := uc.repo.DeleteDoctor(ctx, id); err != nil {
		return translate("delete doctor", err, domain.ErrDoctorNotFound)
	}

	uc.audit.Dispatch(audit.Event{
		Actor:    actor,
		Role:     string(account.RoleAdmin),
		Action:   audit.ActionDoctorDeleted,
		Entity:   "doctor",
		EntityID: &id,
	})
	return nil
}
