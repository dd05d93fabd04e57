package doctor

import "github.com/BruksfildServices01/clinic-scheduler/internal/httperr"

var (
	ErrDoctorNotFound   = httperr.ErrBusiness("unknown_doctor")
	ErrDoctorExists     = httperr.ErrBusiness("doctor_exists")
	ErrInvalidTimeOfDay = httperr.ErrBusiness("invalid_time_of_day")
)
