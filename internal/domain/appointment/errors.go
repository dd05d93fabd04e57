package appointment

import "github.com/BruksfildServices01/clinic-scheduler/internal/httperr"

const (
	CodeUnknownDoctor       = "unknown_doctor"
	CodeUnknownPatient      = "unknown_patient"
	CodeAppointmentNotFound = "appointment_not_found"
	CodeOwnershipMismatch   = "patient_id_mismatch"
	CodeSlotUnavailable     = "slot_unavailable"
	CodeMalformedSlot       = "malformed_slot"
	CodeInvalidState        = "invalid_state"
)

var (
	ErrUnknownDoctor       = httperr.ErrBusiness(CodeUnknownDoctor)
	ErrUnknownPatient      = httperr.ErrBusiness(CodeUnknownPatient)
	ErrAppointmentNotFound = httperr.ErrBusiness(CodeAppointmentNotFound)
	ErrOwnershipMismatch   = httperr.ErrBusiness(CodeOwnershipMismatch)
	ErrSlotUnavailable     = httperr.ErrBusiness(CodeSlotUnavailable)
	ErrMalformedSlot       = httperr.ErrBusiness(CodeMalformedSlot)
	ErrInvalidState        = httperr.ErrBusiness(CodeInvalidState)
)
