package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

var statusByCode = map[string]int{
	"unknown_doctor":        http.StatusNotFound,
	"unknown_patient":       http.StatusNotFound,
	"appointment_not_found": http.StatusNotFound,
	"patient_id_mismatch":   http.StatusBadRequest,
	"slot_unavailable":      http.StatusConflict,
	"malformed_slot":        http.StatusBadRequest,
	"invalid_state":         http.StatusConflict,
	"doctor_exists":         http.StatusConflict,
	"patient_exists":        http.StatusConflict,
	"invalid_credentials":   http.StatusUnauthorized,
	"invalid_time_of_day":   http.StatusBadRequest,
	"invalid_condition":     http.StatusBadRequest,
	"invalid_period":        http.StatusBadRequest,
	"invalid_email":         http.StatusBadRequest,
	"invalid_email_domain":  http.StatusBadRequest,
	"invalid_phone":         http.StatusBadRequest,
}

var messageByCode = map[string]string{
	"unknown_doctor":        "Doctor not found.",
	"unknown_patient":       "Patient not found.",
	"appointment_not_found": "Appointment not found.",
	"patient_id_mismatch":   "Appointment belongs to another patient.",
	"slot_unavailable":      "Slot is not available.",
	"malformed_slot":        "Slots must look like HH:MM-HH:MM.",
	"invalid_state":         "Appointment can no longer change.",
	"doctor_exists":         "A doctor with this email already exists.",
	"patient_exists":        "A patient with this email or phone already exists.",
	"invalid_credentials":   "Invalid credentials.",
	"invalid_time_of_day":   "time must be am, pm or null.",
	"invalid_condition":     "condition must be past, future or null.",
	"invalid_period":        "Invalid month or year.",
	"invalid_email":         "Invalid email.",
	"invalid_email_domain":  "The email domain does not look valid.",
	"invalid_phone":         "Invalid phone number.",
}

// writeError renders a use case error. overrides replaces the default status
// of a business code for one endpoint.
func writeError(c *gin.Context, err error, overrides map[string]int) {
	var be httperr.BusinessError
	if errors.As(err, &be) {
		status, ok := overrides[be.Code]
		if !ok {
			status, ok = statusByCode[be.Code]
		}
		if !ok {
			status = http.StatusBadRequest
		}

		msg := messageByCode[be.Code]
		if msg == "" {
			msg = be.Code
		}

		httperr.Write(c, status, be.Code, msg)
		return
	}

	_ = c.Error(err)
	httperr.Internal(c, "storage_failure", "Internal error.")
}
