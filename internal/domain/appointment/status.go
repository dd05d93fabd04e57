package appointment

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusCompleted Status = "completed"
)

func (s Status) Valid() bool {
	return s == StatusScheduled || s == StatusCompleted
}

// ===============================
// Validations
// ===============================

func InitialStatus() Status {
	return StatusScheduled
}

// CanReschedule only allows moving appointments that have not been finalized.
func CanReschedule(current Status) error {
	if current == StatusCompleted {
		return ErrInvalidState
	}
	return nil
}
