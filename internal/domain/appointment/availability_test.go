package appointment

import (
	"reflect"
	"testing"
	"time"
)

func at(t *testing.T, s string) time.Time {
	t.Helper()
	v, err := time.ParseInLocation("2006-01-02 15:04", s, time.UTC)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return v
}

func TestFreeSlots_NoBookingsReturnsDeclared(t *testing.T) {
	declared := []string{"14:00-15:00", "09:00-10:00", "09:00-10:00", "bad"}

	got := FreeSlots(declared, nil, ExactSlotMatch)

	if !reflect.DeepEqual(got, declared) {
		t.Errorf("expected %v unchanged, got %v", declared, got)
	}
}

func TestFreeSlots_ExactMatchRemovesBooked(t *testing.T) {
	declared := []string{"09:00-10:00", "10:00-11:00", "11:00-12:00"}
	booked := BookedSlots([]time.Time{at(t, "2030-05-10 10:00")}, time.UTC)

	got := FreeSlots(declared, booked, ExactSlotMatch)

	want := []string{"09:00-10:00", "11:00-12:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestFreeSlots_MisalignedBookingRemovesNothing(t *testing.T) {
	declared := []string{"09:00-10:00", "10:00-11:00"}
	booked := BookedSlots([]time.Time{at(t, "2030-05-10 09:15")}, time.UTC)

	got := FreeSlots(declared, booked, ExactSlotMatch)

	if !reflect.DeepEqual(got, declared) {
		t.Errorf("expected %v, got %v", declared, got)
	}
}

func TestFreeSlots_DuplicatesAllRemoved(t *testing.T) {
	declared := []string{"09:00-10:00", "09:00-10:00", "10:00-11:00"}
	booked := BookedSlots([]time.Time{at(t, "2030-05-10 09:00")}, time.UTC)

	got := FreeSlots(declared, booked, nil)

	want := []string{"10:00-11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestBookedSlots_UsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	booked := BookedSlots([]time.Time{at(t, "2030-05-10 12:00")}, loc)

	if booked[0].String() != "09:00-10:00" {
		t.Errorf("expected 09:00-10:00 in UTC-3, got %s", booked[0])
	}
}

func TestIsOffered(t *testing.T) {
	declared := []string{"09:00-10:00", "10:00-11:00"}
	booked := BookedSlots([]time.Time{at(t, "2030-05-10 09:00")}, time.UTC)

	if IsOffered(SlotFor(at(t, "2030-05-10 09:00")), declared, booked, ExactSlotMatch) {
		t.Error("expected booked slot not to be offered")
	}
	if !IsOffered(SlotFor(at(t, "2030-05-10 10:00")), declared, booked, ExactSlotMatch) {
		t.Error("expected free slot to be offered")
	}
	if IsOffered(SlotFor(at(t, "2030-05-10 15:00")), declared, booked, ExactSlotMatch) {
		t.Error("expected undeclared slot not to be offered")
	}
}

func TestDayRange(t *testing.T) {
	start, end := DayRange(at(t, "2030-05-10 15:42"), time.UTC)

	if !start.Equal(at(t, "2030-05-10 00:00")) {
		t.Errorf("unexpected start %s", start)
	}
	wantEnd := at(t, "2030-05-11 00:00").Add(-time.Nanosecond)
	if !end.Equal(wantEnd) {
		t.Errorf("unexpected end %s", end)
	}
}
