package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

const (
	ActionAppointmentCreated     = "appointment_created"
	ActionAppointmentRescheduled = "appointment_rescheduled"
	ActionAppointmentCancelled   = "appointment_cancelled"
	ActionAppointmentCompleted   = "appointment_completed"
	ActionAppointmentConflict    = "appointment_conflict"
	ActionDoctorCreated          = "doctor_created"
	ActionDoctorUpdated          = "doctor_updated"
	ActionDoctorDeleted          = "doctor_deleted"
	ActionAvailabilityUpdated    = "availability_updated"
	ActionPatientRegistered      = "patient_registered"
)

type Query struct {
	Action string
	Entity string
	Actor  string
	From   *time.Time
	To     *time.Time
	Limit  int
	Offset int
}

// Store persists audit rows. List orders newest first.
type Store interface {
	CreateAuditLog(ctx context.Context, log *models.AuditLog) error
	ListAuditLogs(ctx context.Context, q Query) ([]models.AuditLog, int64, error)
}

type Logger struct {
	store Store
}

func New(store Store) *Logger {
	return &Logger{store: store}
}

func (l *Logger) Log(ctx context.Context, ev Event) error {
	var metaJSON string
	if ev.Metadata != nil {
		if b, err := json.Marshal(ev.Metadata); err == nil {
			metaJSON = string(b)
		}
	}

	log := models.AuditLog{
		Actor:    ev.Actor,
		Role:     ev.Role,
		Action:   ev.Action,
		Entity:   ev.Entity,
		EntityID: ev.EntityID,
		Metadata: metaJSON,
	}

	return l.store.CreateAuditLog(ctx, &log)
}
