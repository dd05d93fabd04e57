package lock

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSlotKey(t *testing.T) {
	loc := time.FixedZone("UTC-3", -3*60*60)
	start := time.Date(2030, 5, 10, 9, 0, 0, 0, loc)

	got := SlotKey(42, start)
	want := "lock:doctor:42:slot:2030-05-10T12:00:00Z"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	if SlotKey(42, start) != SlotKey(42, start.UTC()) {
		t.Error("expected key to be independent of the time's location")
	}
}

func TestNoop_RunsFn(t *testing.T) {
	called := false
	err := Noop{}.WithSlotLock(context.Background(), "k", func(ctx context.Context) error {
		called = true
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Error("expected fn to run")
	}
}

func TestNoop_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := Noop{}.WithSlotLock(context.Background(), "k", func(ctx context.Context) error {
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}
