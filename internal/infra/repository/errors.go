package repository

import (
	"errors"

	"gorm.io/gorm"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// mapErr normalizes gorm failures into domain.ErrNotFound or a StorageError.
// Business errors pass through untouched.
func mapErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	var be httperr.BusinessError
	if errors.As(err, &be) {
		return err
	}
	if errors.Is(err, domain.ErrNotFound) {
		return err
	}
	return httperr.Storage(op, err)
}
