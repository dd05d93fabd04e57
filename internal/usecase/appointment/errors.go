package appointment

import (
	"errors"
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// translate maps a repository miss to notFound and wraps anything that is not
// already a business error as a StorageError.
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

// textFilter normalizes optional substring filters. "null" is what older
// clients send for "no filter".
func textFilter(raw string) string {
	v := strings.TrimSpace(raw)
	if strings.EqualFold(v, "null") {
		return ""
	}
	return strings.ToLower(v)
}

func containsFold(s, lowered string) bool {
	return lowered == "" || strings.Contains(strings.ToLower(s), lowered)
}
