package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RemainderDelta is the tolerance used when comparing interpolation fractions.
const RemainderDelta = 1e-6

// AssertCounts asserts the recorder's successful update and render counts.
func AssertCounts(t *testing.T, rec *Recorder, expectedUpdates, expectedRenders int) {
	t.Helper()
	require.NotNil(t, rec, "recorder is nil")
	assert.Equal(t, expectedUpdates, rec.Updates, "update count mismatch")
	assert.Equal(t, expectedRenders, rec.Renders, "render count mismatch")
}

// AssertRemainder asserts that a fraction matches within RemainderDelta.
func AssertRemainder(t *testing.T, got, want float32) {
	t.Helper()
	assert.InDelta(t, want, got, RemainderDelta, "remainder mismatch")
}

// AssertRemaindersInRange asserts that every rendered remainder is in [0, 1).
func AssertRemaindersInRange(t *testing.T, rec *Recorder) {
	t.Helper()
	require.NotNil(t, rec, "recorder is nil")
	for i, r := range rec.Remainders {
		assert.GreaterOrEqual(t, r, float32(0), "remainder[%d] below 0", i)
		assert.Less(t, r, float32(1), "remainder[%d] not below 1", i)
	}
}
