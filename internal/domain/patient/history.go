package patient

import (
	"strings"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

// Condition selects a slice of a patient's history.
type Condition string

const (
	ConditionAll    Condition = ""
	ConditionPast   Condition = "past"
	ConditionFuture Condition = "future"
)

func ParseCondition(raw string) (Condition, error) {
	switch c := Condition(strings.ToLower(strings.TrimSpace(raw))); c {
	case ConditionAll, ConditionPast, ConditionFuture:
		return c, nil
	case "null":
		return ConditionAll, nil
	default:
		return ConditionAll, ErrInvalidHistory
	}
}

// Status maps a history condition onto the appointment status it selects:
// past visits are the completed ones, future visits are still scheduled.
func (c Condition) Status() appointment.Status {
	switch c {
	case ConditionPast:
		return appointment.StatusCompleted
	case ConditionFuture:
		return appointment.StatusScheduled
	default:
		return ""
	}
}
