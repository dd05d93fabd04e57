package report

import (
	"testing"
	"time"
)

func TestTop_KeepsTies(t *testing.T) {
	counts := []DoctorCount{
		{DoctorID: 1, Patients: 3},
		{DoctorID: 2, Patients: 5},
		{DoctorID: 3, Patients: 5},
	}

	got := Top(counts)
	if len(got) != 2 || got[0].DoctorID != 2 || got[1].DoctorID != 3 {
		t.Errorf("expected doctors 2 and 3, got %+v", got)
	}
}

func TestTop_EmptyWhenNobodyRanks(t *testing.T) {
	if got := Top(nil); len(got) != 0 {
		t.Errorf("expected empty, got %+v", got)
	}
	if got := Top([]DoctorCount{{DoctorID: 1}}); len(got) != 0 {
		t.Errorf("expected empty for zero counts, got %+v", got)
	}
}

func TestSummarize(t *testing.T) {
	rows := []DailyRow{
		{DoctorID: 2, DoctorName: "B"},
		{DoctorID: 1, DoctorName: "A"},
		{DoctorID: 2, DoctorName: "B"},
	}

	got := Summarize(rows)
	if len(got) != 2 {
		t.Fatalf("expected 2 doctors, got %+v", got)
	}
	if got[0].DoctorID != 2 || got[0].Appointments != 2 {
		t.Errorf("unexpected first summary %+v", got[0])
	}
	if got[1].DoctorID != 1 || got[1].Appointments != 1 {
		t.Errorf("unexpected second summary %+v", got[1])
	}
}

func TestRanges(t *testing.T) {
	from, to := MonthRange(2030, time.December, time.UTC)
	if !from.Equal(time.Date(2030, 12, 1, 0, 0, 0, 0, time.UTC)) || !to.Equal(time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected month range %s..%s", from, to)
	}

	from, to = YearRange(2030, time.UTC)
	if !from.Equal(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)) || !to.Equal(time.Date(2031, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("unexpected year range %s..%s", from, to)
	}
}
