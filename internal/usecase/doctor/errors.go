package doctor

import (
	"errors"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

func translate(op string, err error, notFound error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, domain.ErrNotFound) {
		return notFound
	}
	var be httperr.BusinessError
	if errors.As(err, &be) {
		return err
	}
	return httperr.Storage(op, err)
}
