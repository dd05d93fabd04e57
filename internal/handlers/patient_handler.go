package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/patient"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	ucPatient "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/patient"
)

type PatientHandler struct {
	register *ucPatient.RegisterPatient
	profile  *ucPatient.GetProfile
	history  *ucAppointment.ListPatientAppointments
}

func NewPatientHandler(
	register *ucPatient.RegisterPatient,
	profile *ucPatient.GetProfile,
	history *ucAppointment.ListPatientAppointments,
) *PatientHandler {
	return &PatientHandler{register: register, profile: profile, history: history}
}

type RegisterPatientRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone" binding:"required"`
	Address  string `json:"address"`
}

func (h *PatientHandler) Register(c *gin.Context) {
	var req RegisterPatientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	p, err := h.register.Execute(c.Request.Context(), ucPatient.RegisterPatientInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    req.Phone,
		Address:  req.Address,
	})
	if err != nil {
		writeError(c, err, nil)
		return
	}

	c.JSON(http.StatusCreated, dto.NewPatientDTO(p))
}

func (h *PatientHandler) Me(c *gin.Context) {
	p, err := h.profile.Execute(c.Request.Context(), callerEmail(c))
	if err != nil {
		writeError(c, err, nil)
		return
	}
	httpresp.OK(c, dto.NewPatientDTO(p))
}

// History accepts condition (past, future or null) and doctor_name.
func (h *PatientHandler) History(c *gin.Context) {
	cond, err := domain.ParseCondition(c.Query("condition"))
	if err != nil {
		writeError(c, err, nil)
		return
	}

	rows, err := h.history.Execute(c.Request.Context(), callerEmail(c), cond, c.Query("doctor_name"))
	if err != nil {
		writeError(c, err, nil)
		return
	}

	httpresp.List(c, rows)
}
