package patient

import "github.com/BruksfildServices01/clinic-scheduler/internal/httperr"

var (
	ErrPatientExists   = httperr.ErrBusiness("patient_exists")
	ErrPatientNotFound = httperr.ErrBusiness("unknown_patient")
	ErrInvalidHistory  = httperr.ErrBusiness("invalid_condition")
)
