package gameloop

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorKindString(t *testing.T) {
	assert.Equal(t, "update", KindUpdate.String())
	assert.Equal(t, "render", KindRender.String())
	assert.Equal(t, "unknown", ErrorKind(0).String())
}

func TestStepError_WrapsConsumerError(t *testing.T) {
	cause := errors.New("unknown!")
	err := fmt.Errorf("tick 4: %w", &StepError{Kind: KindUpdate, Err: cause})

	assert.Equal(t, "tick 4: update failed: unknown!", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.True(t, IsUpdateError(err))
	assert.False(t, IsRenderError(err))
}

func TestIsStepError_PlainErrors(t *testing.T) {
	assert.False(t, IsUpdateError(nil))
	assert.False(t, IsRenderError(errors.New("plain")))
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		phase phase
		want  string
	}{
		{phaseIdle, "idle"},
		{phaseUpdating, "updating"},
		{phaseRendering, "rendering"},
		{phase(7), "invalid"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.phase.String())
		})
	}
}
