package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	ucReport "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/report"
)

type ReportHandler struct {
	daily *ucReport.GetDailyReport
	top   *ucReport.GetTopDoctor
}

func NewReportHandler(daily *ucReport.GetDailyReport, top *ucReport.GetTopDoctor) *ReportHandler {
	return &ReportHandler{daily: daily, top: top}
}

func (h *ReportHandler) Daily(c *gin.Context) {
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

	rep, err := h.daily.Execute(c.Request.Context(), date)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	httpresp.OK(c, rep)
}

func (h *ReportHandler) TopDoctorByMonth(c *gin.Context) {
	year, err1 := strconv.Atoi(c.Query("year"))
	month, err2 := strconv.Atoi(c.Query("month"))
	if err1 != nil || err2 != nil {
		httperr.BadRequest(c, "missing_year_or_month", "year and month are required.")
		return
	}

	top, err := h.top.ByMonth(c.Request.Context(), year, time.Month(month))
	if err != nil {
		writeError(c, err, nil)
		return
	}
	httpresp.OK(c, top)
}

func (h *ReportHandler) TopDoctorByYear(c *gin.Context) {
	year, err := strconv.Atoi(c.Query("year"))
	if err != nil {
		httperr.BadRequest(c, "missing_year", "year is required.")
		return
	}

	top, err := h.top.ByYear(c.Request.Context(), year)
	if err != nil {
		writeError(c, err, nil)
		return
	}
	httpresp.OK(c, top)
}
