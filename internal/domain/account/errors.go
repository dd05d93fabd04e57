package account

import "github.com/BruksfildServices01/clinic-scheduler/internal/httperr"

var ErrInvalidCredentials = httperr.ErrBusiness("invalid_credentials")
