package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/report"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// ReportPgRepository runs the read-only aggregate queries with raw SQL.
type ReportPgRepository struct {
	pool *pgxpool.Pool
}

func NewReportPgRepository(pool *pgxpool.Pool) *ReportPgRepository {
	return &ReportPgRepository{pool: pool}
}

func scanDailyRow(row pgx.Row) (report.DailyRow, error) {
	var r report.DailyRow
	var phone *string

	err := row.Scan(
		&r.AppointmentID,
		&r.DoctorID,
		&r.DoctorName,
		&r.AppointmentTime,
		&r.Status,
		&r.PatientName,
		&phone,
	)
	if err != nil {
		return r, err
	}
	if phone != nil {
		r.PatientPhone = *phone
	}
	return r, nil
}

func (r *ReportPgRepository) DailyAppointments(ctx context.Context, from, to time.Time) ([]report.DailyRow, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT a.id, d.id, d.name, a.appointment_time, a.status, p.name, p.phone
		FROM appointments a
		JOIN doctors d ON d.id = a.doctor_id
		JOIN patients p ON p.id = a.patient_id
		WHERE a.appointment_time >= $1 AND a.appointment_time < $2
		ORDER BY d.id, a.appointment_time
	`, from, to)
	if err != nil {
		return nil, httperr.Storage("daily report", err)
	}
	defer rows.Close()

	out := make([]report.DailyRow, 0)
	for rows.Next() {
		row, err := scanDailyRow(rows)
		if err != nil {
			return nil, httperr.Storage("scan daily report", err)
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, httperr.Storage("daily report", err)
	}
	return out, nil
}

func (r *ReportPgRepository) PatientCountsByDoctor(ctx context.Context, from, to time.Time) ([]report.DoctorCount, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT d.id, d.name, d.specialty, COUNT(DISTINCT a.patient_id)
		FROM doctors d
		JOIN appointments a ON a.doctor_id = d.id
		WHERE a.appointment_time >= $1 AND a.appointment_time < $2
		GROUP BY d.id, d.name, d.specialty
		ORDER BY d.id
	`, from, to)
	if err != nil {
		return nil, httperr.Storage("patient counts", err)
	}
	defer rows.Close()

	out := make([]report.DoctorCount, 0)
	for rows.Next() {
		var c report.DoctorCount
		if err := rows.Scan(&c.DoctorID, &c.DoctorName, &c.Specialty, &c.Patients); err != nil {
			return nil, httperr.Storage("scan patient counts", err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, httperr.Storage("patient counts", err)
	}
	return out, nil
}

var _ report.Repository = (*ReportPgRepository)(nil)
