package lock

import (
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrLockNotAcquired = errors.New("slot lock not acquired")

// Locker guards the critical section of a booking for one (doctor, slot).
type Locker interface {
	WithSlotLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}

func SlotKey(doctorID uint, start time.Time) string {
	return fmt.Sprintf("lock:doctor:%d:slot:%s", doctorID, start.UTC().Format(time.RFC3339))
}

// Noop runs fn directly. The storage layer still enforces a single winner.
type Noop struct{}

func (Noop) WithSlotLock(ctx context.Context, _ string, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
