package httperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestIsBusiness(t *testing.T) {
	err := fmt.Errorf("booking: %w", ErrBusiness("slot_unavailable"))

	if !IsBusiness(err, "slot_unavailable") {
		t.Error("expected wrapped business error to match")
	}
	if IsBusiness(err, "unknown_doctor") {
		t.Error("expected different code not to match")
	}
	if CodeOf(err) != "slot_unavailable" {
		t.Errorf("expected code slot_unavailable, got %q", CodeOf(err))
	}
	if CodeOf(errors.New("plain")) != "" {
		t.Error("expected empty code for plain error")
	}
}

func TestStorage(t *testing.T) {
	if Storage("noop", nil) != nil {
		t.Fatal("expected nil for nil error")
	}

	base := errors.New("connection reset")
	err := Storage("create appointment", base)

	if !IsStorage(err) {
		t.Fatal("expected storage error")
	}
	if !errors.Is(err, base) {
		t.Error("expected storage error to unwrap to the cause")
	}
	if again := Storage("outer", err); again != err {
		t.Error("expected storage errors not to be wrapped twice")
	}
}

func TestIsUniqueViolation(t *testing.T) {
	dup := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	if !IsUniqueViolation(dup) {
		t.Error("expected 23505 to be a unique violation")
	}
	if IsUniqueViolation(&pgconn.PgError{Code: "23503"}) {
		t.Error("expected foreign key violation not to match")
	}
	if IsUniqueViolation(errors.New("x")) {
		t.Error("expected plain error not to match")
	}
}
