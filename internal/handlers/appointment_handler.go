package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	ucDoctor "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/doctor"
	ucPatient "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/patient"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book       *ucAppointment.BookAppointment
	reschedule *ucAppointment.RescheduleAppointment
	cancel     *ucAppointment.CancelAppointment
	complete   *ucAppointment.CompleteAppointment
	listByDate *ucAppointment.ListAppointmentsByDate
	upcoming   *ucAppointment.ListUpcoming

	doctors  *ucDoctor.GetDoctor
	patients *ucPatient.GetProfile
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	reschedule *ucAppointment.RescheduleAppointment,
	cancel *ucAppointment.CancelAppointment,
	complete *ucAppointment.CompleteAppointment,
	listByDate *ucAppointment.ListAppointmentsByDate,
	upcoming *ucAppointment.ListUpcoming,
	doctors *ucDoctor.GetDoctor,
	patients *ucPatient.GetProfile,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:       book,
		reschedule: reschedule,
		cancel:     cancel,
		complete:   complete,
		listByDate: listByDate,
		upcoming:   upcoming,
		doctors:    doctors,
		patients:   patients,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	DoctorID uint   `json:"doctorId" binding:"required"`
	Date     string `json:"date" binding:"required"` // YYYY-MM-DD
	Time     string `json:"time" binding:"required"` // HH:MM
}

type RescheduleAppointmentRequest struct {
	Date string `json:"date" binding:"required"`
	Time string `json:"time" binding:"required"`
}

// booking an unknown doctor is a bad request, not a missing resource
var bookingStatus = map[string]int{"unknown_doctor": http.StatusBadRequest}

// ======================================================
// BOOK (patient)
// ======================================================

func (h *AppointmentHandler) Book(c *gin.Context) {
	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	start, err := parseDateTime(req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	caller, err := h.patients.Execute(c.Request.Context(), callerEmail(c))
	if err != nil {
		writeError(c, err, nil)
		return
	}

	ap, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		DoctorID:  req.DoctorID,
		PatientID: caller.ID,
		Start:     start,
	})
	if err != nil {
		writeError(c, err, bookingStatus)
		return
	}

	c.JSON(http.StatusCreated, dto.NewAppointmentDTO(ap, timezone.Clinic()))
}

// ======================================================
// RESCHEDULE (patient)
// ======================================================

func (h *AppointmentHandler) Reschedule(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req RescheduleAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	start, err := parseDateTime(req.Date, req.Time)
	if err != nil {
		httperr.BadRequest(c, "invalid_date_or_time", "Invalid date or time.")
		return
	}

	caller, err := h.patients.Execute(c.Request.Context(), callerEmail(c))
	if err != nil {
		writeError(c, err, nil)
		return
	}

	ap, err := h.reschedule.Execute(c.Request.Context(), ucAppointment.RescheduleAppointmentInput{
		AppointmentID: id,
		PatientID:     caller.ID,
		Start:         start,
		Actor:         caller.Email,
	})
	if err != nil {
		writeError(c, err, nil)
		return
	}

	httpresp.OK(c, dto.NewAppointmentDTO(ap, timezone.Clinic()))
}

// ======================================================
// CANCEL (patient)
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.cancel.Execute(c.Request.Context(), id, callerEmail(c)); err != nil {
		writeError(c, err, nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// COMPLETE (doctor)
// ======================================================

func (h *AppointmentHandler) Complete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	ap, err := h.complete.Execute(c.Request.Context(), id, callerEmail(c))
	if err != nil {
		writeError(c, err, nil)
		return
	}

	httpresp.OK(c, dto.NewAppointmentDTO(ap, timezone.Clinic()))
}

// ======================================================
// LIST (doctor)
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "date is required.")
		return
	}

	date, err := parseDate(dateStr)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	doctor, err := h.doctors.ByEmail(c.Request.Context(), callerEmail(c))
	if err != nil {
		writeError(c, err, nil)
		return
	}

	rows, err := h.listByDate.Execute(c.Request.Context(), doctor.ID, date, c.Query("patient_name"))
	if err != nil {
		writeError(c, err, nil)
		return
	}

	httpresp.List(c, rows)
}

func (h *AppointmentHandler) Upcoming(c *gin.Context) {
	doctor, err := h.doctors.ByEmail(c.Request.Context(), callerEmail(c))
	if err != nil {
		writeError(c, err, nil)
		return
	}

	rows, err := h.upcoming.Execute(c.Request.Context(), doctor.ID, c.Query("patient_name"))
	if err != nil {
		writeError(c, err, nil)
		return
	}

	httpresp.List(c, rows)
}
