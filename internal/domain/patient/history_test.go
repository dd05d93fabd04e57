package patient

import (
	"testing"

	"github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
)

func TestParseCondition(t *testing.T) {
	tests := []struct {
		raw        string
		wantStatus appointment.Status
		wantErr    bool
	}{
		{"", "", false},
		{"null", "", false},
		{"past", appointment.StatusCompleted, false},
		{"FUTURE", appointment.StatusScheduled, false},
		{"yesterday", "", true},
	}

	for _, tt := range tests {
		c, err := ParseCondition(tt.raw)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCondition(%q) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			continue
		}
		if c.Status() != tt.wantStatus {
			t.Errorf("ParseCondition(%q).Status() = %q, want %q", tt.raw, c.Status(), tt.wantStatus)
		}
	}
}
