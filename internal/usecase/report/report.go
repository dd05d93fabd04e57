package report

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/report"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

var ErrInvalidPeriod = httperr.ErrBusiness("invalid_period")

type DailyReport struct {
	Date         string                `json:"date"`
	Appointments []domain.DailyRow     `json:"appointments"`
	PerDoctor    []domain.DailySummary `json:"perDoctor"`
}

type TopDoctors struct {
	From    time.Time            `json:"from"`
	To      time.Time            `json:"to"`
	Doctors []domain.DoctorCount `json:"doctors"`
}

// ====================================================
// Daily
// ====================================================

type GetDailyReport struct {
	repo domain.Repository
}

func NewGetDailyReport(repo domain.Repository) *GetDailyReport {
	return &GetDailyReport{repo: repo}
}

func (uc *GetDailyReport) Execute(ctx context.Context, date time.Time) (*DailyReport, error) {
	loc := timezone.Clinic()
	d := date.In(loc)
	from := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, loc)

	rows, err := uc.repo.DailyAppointments(ctx, from, from.AddDate(0, 0, 1))
	if err != nil {
		return nil, httperr.Storage("daily appointments", err)
	}

	for i := range rows {
		rows[i].AppointmentTime = rows[i].AppointmentTime.In(loc)
	}

	return &DailyReport{
		Date:         from.Format("2006-01-02"),
		Appointments: rows,
		PerDoctor:    domain.Summarize(rows),
	}, nil
}

// ====================================================
// Top doctor
// ====================================================

type GetTopDoctor struct {
	repo domain.Repository
}

func NewGetTopDoctor(repo domain.Repository) *GetTopDoctor {
	return &GetTopDoctor{repo: repo}
}

func (uc *GetTopDoctor) ByMonth(ctx context.Context, year int, month time.Month) (*TopDoctors, error) {
	if year < 1 || month < time.January || month > time.December {
		return nil, ErrInvalidPeriod
	}
	from, to := domain.MonthRange(year, month, timezone.Clinic())
	return uc.top(ctx, from, to)
}

func (uc *GetTopDoctor) ByYear(ctx context.Context, year int) (*TopDoctors, error) {
	if year < 1 {
		return nil, ErrInvalidPeriod
	}
	from, to := domain.YearRange(year, timezone.Clinic())
	return uc.top(ctx, from, to)
}

func (uc *GetTopDoctor) top(ctx context.Context, from, to time.Time) (*TopDoctors, error) {
	counts, err := uc.repo.PatientCountsByDoctor(ctx, from, to)
	if err != nil {
		return nil, httperr.Storage("patient counts by doctor", err)
	}
	return &TopDoctors{From: from, To: to, Doctors: domain.Top(counts)}, nil
}
