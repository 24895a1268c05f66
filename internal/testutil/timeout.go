package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTestBuffer is subtracted from the test deadline so a run can stop
// and report before the test itself times out.
const DefaultTestBuffer = 5 * time.Second

// ContextWithTestDeadline creates a context that ends DefaultTestBuffer before
// the test deadline, or after fallback if the test has no deadline or the
// adjusted deadline has already passed.
func ContextWithTestDeadline(t *testing.T, fallback time.Duration) (context.Context, context.CancelFunc) {
	t.Helper()

	if deadline, ok := t.Deadline(); ok {
		adjusted := deadline.Add(-DefaultTestBuffer)
		if remaining := time.Until(adjusted); remaining > 0 && remaining < fallback {
			return context.WithDeadline(context.Background(), adjusted)
		}
	}

	return context.WithTimeout(context.Background(), fallback)
}
