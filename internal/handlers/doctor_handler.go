package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apdomain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/doctor"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	ucDoctor "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/doctor"
)

type DoctorHandler struct {
	list         *ucDoctor.ListDoctors
	save         *ucDoctor.SaveDoctor
	remove       *ucDoctor.DeleteDoctor
	availability *ucAppointment.GetAvailability
}

func NewDoctorHandler(
	list *ucDoctor.ListDoctors,
	save *ucDoctor.SaveDoctor,
	remove *ucDoctor.DeleteDoctor,
	availability *ucAppointment.GetAvailability,
) *DoctorHandler {
	return &DoctorHandler{
		list:         list,
		save:         save,
		remove:       remove,
		availability: availability,
	}
}

type SaveDoctorRequest struct {
	Name           string   `json:"name" binding:"required"`
	Specialty      string   `json:"specialty" binding:"required"`
	Email          string   `json:"email" binding:"required,email"`
	Password       string   `json:"password"`
	Phone          string   `json:"phone"`
	AvailableTimes []string `json:"availableTimes"`
}

func (r SaveDoctorRequest) input() ucDoctor.SaveDoctorInput {
	return ucDoctor.SaveDoctorInput{
		Name:           r.Name,
		Specialty:      r.Specialty,
		Email:          r.Email,
		Password:       r.Password,
		Phone:          r.Phone,
		AvailableTimes: r.AvailableTimes,
	}
}

type UpdateAvailabilityRequest struct {
	AvailableTimes []string `json:"availableTimes" binding:"required"`
}

// ======================================================
// PUBLIC
// ======================================================

func (h *DoctorHandler) List(c *gin.Context) {
	doctors, err := h.list.Execute(c.Request.Context(), domain.Filter{})
	if err != nil {
		writeError(c, err, nil)
		return
	}
	httpresp.List(c, dto.NewDoctorDTOs(doctors))
}

// Filter accepts name, specialty and time (am, pm or null).
func (h *DoctorHandler) Filter(c *gin.Context) {
	f, err := domain.NewFilter(c.Query("name"), c.Query("specialty"), c.Query("time"))
	if err != nil {
		writeError(c, err, nil)
		return
	}

	doctors, err := h.list.Execute(c.Request.Context(), f)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	httpresp.List(c, dto.NewDoctorDTOs(doctors))
}

func (h *DoctorHandler) Availability(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

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

	free, err := h.availability.Execute(c.Request.Context(), id, date)
	if err != nil {
		if httperr.IsBusiness(err, apdomain.CodeUnknownDoctor) {
			httperr.NotFound(c, apdomain.CodeUnknownDoctor, fmt.Sprintf("Doctor not found with ID: %d", id))
			return
		}
		writeError(c, err, nil)
		return
	}

	httpresp.OK(c, dto.AvailabilityDTO{
		DoctorID:  id,
		Date:      date.Format(dateLayout),
		FreeSlots: free,
	})
}

// ======================================================
// ADMIN
// ======================================================

func (h *DoctorHandler) Create(c *gin.Context) {
	var req SaveDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}
	if req.Password == "" {
		httperr.BadRequest(c, "missing_password", "password is required.")
		return
	}

	d, err := h.save.Create(c.Request.Context(), callerEmail(c), req.input())
	if err != nil {
		writeError(c, err, nil)
		return
	}

	c.JSON(http.StatusCreated, dto.NewDoctorDTO(d))
}

func (h *DoctorHandler) Update(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	var req SaveDoctorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	d, err := h.save.Update(c.Request.Context(), callerEmail(c), id, req.input())
	if err != nil {
		writeError(c, err, nil)
		return
	}

	httpresp.OK(c, dto.NewDoctorDTO(d))
}

func (h *DoctorHandler) Delete(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), callerEmail(c), id); err != nil {
		writeError(c, err, nil)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// DOCTOR SELF-SERVICE
// ======================================================

func (h *DoctorHandler) UpdateMyAvailability(c *gin.Context) {
	var req UpdateAvailabilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	d, err := h.save.UpdateAvailability(c.Request.Context(), callerEmail(c), req.AvailableTimes)
	if err != nil {
		writeError(c, err, nil)
		return
	}

	httpresp.OK(c, dto.NewDoctorDTO(d))
}
