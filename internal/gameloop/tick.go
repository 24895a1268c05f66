package gameloop

import "time"

// phase is where a single Step currently is. A Step always starts and ends
// in phaseIdle; the value never outlives the call.
type phase int

const (
	phaseIdle phase = iota
	phaseUpdating
	phaseRendering
)

func (p phase) String() string {
	switch p {
	case phaseIdle:
		return "idle"
	case phaseUpdating:
		return "updating"
	case phaseRendering:
		return "rendering"
	default:
		return "invalid"
	}
}

// tick is the bookkeeping for one Step call. Only startedAt survives the
// call, as the driver's reference point for the next elapsed measurement.
type tick struct {
	startedAt time.Time
	phase     phase
}

func newTick(now time.Time) tick {
	return tick{startedAt: now, phase: phaseIdle}
}
