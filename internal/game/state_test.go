package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thruflo/gameloop/internal/gameloop"
)

var _ gameloop.Consumer = (*State)(nil)

func TestState_Counts(t *testing.T) {
	s := &State{}

	require.NoError(t, s.Update())
	require.NoError(t, s.Render(0.4))

	assert.Equal(t, 1, s.Updates)
	assert.Equal(t, 1, s.Renders)
	assert.Equal(t, float32(0.4), s.LastRemainder)
}

func TestState_FailAt(t *testing.T) {
	tests := []struct {
		name        string
		state       State
		wantUpdates int
		wantRenders int
		wantErrs    int
	}{
		{"no failures", State{}, 3, 3, 0},
		{"second update fails", State{FailUpdateAt: 2}, 2, 3, 1},
		{"first render fails", State{FailRenderAt: 1}, 3, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := tt.state
			errs := 0
			for i := 0; i < 3; i++ {
				if err := s.Update(); err != nil {
					assert.ErrorIs(t, err, ErrUnknown)
					errs++
				}
				if err := s.Render(0); err != nil {
					assert.ErrorIs(t, err, ErrUnknown)
					errs++
				}
			}
			assert.Equal(t, tt.wantUpdates, s.Updates)
			assert.Equal(t, tt.wantRenders, s.Renders)
			assert.Equal(t, tt.wantErrs, errs)
		})
	}
}

func TestState_DrivenByLoop(t *testing.T) {
	d := gameloop.New(&State{})

	d.AddAccumulatedTime(25 * time.Millisecond)
	require.NoError(t, d.Step())

	assert.Equal(t, 2, d.Consumer().Updates)
	assert.Equal(t, 1, d.Consumer().Renders)
	assert.InDelta(t, 0.5, d.Consumer().LastRemainder, 1e-6)
}

func TestState_UpdateFailureSurfacesThroughLoop(t *testing.T) {
	d := gameloop.New(&State{FailUpdateAt: 1})
	d.AddAccumulatedTime(10 * time.Millisecond)

	err := d.Step()
	require.Error(t, err)
	assert.True(t, gameloop.IsUpdateError(err))
	assert.ErrorIs(t, err, ErrUnknown)
	assert.Equal(t, "update failed: unknown!", err.Error())
	assert.Equal(t, 0, d.Consumer().Renders)
}
