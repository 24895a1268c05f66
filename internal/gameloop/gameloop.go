package gameloop

import (
	"fmt"
	"math"
	"time"

	"github.com/thruflo/gameloop/internal/logging"
)

// DefaultUpdatesPerSecond is the simulation rate used when none is given.
// At 100 updates per second each update covers 10ms of simulated time.
const DefaultUpdatesPerSecond = 100

// maxFraction is the largest float32 below 1. A valid accumulator can sit a
// nanosecond short of a full interval, which rounds to 1.0 in float32.
var maxFraction = math.Nextafter32(1, 0)

// Updater advances simulation state by one fixed interval. By convention it
// changes simulation state only, never visual state.
type Updater interface {
	Update() error
}

// Renderer draws the current simulation state. remainder is in [0, 1) and
// says how far the loop is between the last update and the next one, so the
// renderer can interpolate. By convention it never changes simulation state.
type Renderer interface {
	Render(remainder float32) error
}

// Consumer is what a Driver drives. Implementations are normally pointer
// types so that Update can change state the next Render reads.
type Consumer interface {
	Updater
	Renderer
}

// Options configures a Driver. Zero-valued fields take their defaults.
type Options struct {
	UpdatesPerSecond int             // Fixed simulation rate (default 100)
	Clock            Clock           // Time source (default SystemClock)
	Logger           *logging.Logger // Step failure tracing (default logger)
}

// StepStats describes the most recent successful Step.
type StepStats struct {
	Updates   int           // Update calls made during the step
	Elapsed   time.Duration // Time added to the accumulator by the step
	Remainder float32       // Fraction passed to Render
}

// Driver runs a consumer at a fixed update rate.
//
// The driver does not advance on its own: call Step as often as the host
// likes, in a tight loop, on a throttled cadence, or by hand in tests.
type Driver[C Consumer] struct {
	consumer       C
	updateInterval time.Duration
	accumulated    time.Duration
	previous       *tick
	clock          Clock
	log            *logging.Logger
	last           StepStats
}

// New creates a Driver running consumer at DefaultUpdatesPerSecond. The
// driver keeps consumer for its whole life; pass a pointer so the caller can
// reach the same state through Consumer.
func New[C Consumer](consumer C) *Driver[C] {
	return NewWithOptions(consumer, Options{})
}

// NewWithOptions creates a Driver with explicit options. UpdatesPerSecond
// falls back to DefaultUpdatesPerSecond when it is not positive or when it
// exceeds one update per nanosecond, since the interval would then be zero.
func NewWithOptions[C Consumer](consumer C, opts Options) *Driver[C] {
	interval := updateInterval(opts.UpdatesPerSecond)
	if interval <= 0 {
		interval = updateInterval(DefaultUpdatesPerSecond)
	}

	clock := opts.Clock
	if clock == nil {
		clock = SystemClock{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.With("component", "gameloop")
	}

	return &Driver[C]{
		consumer:       consumer,
		updateInterval: interval,
		clock:          clock,
		log:            logger,
	}
}

// updateInterval returns the duration of one update at rate per second, or
// zero when rate does not yield a usable interval.
func updateInterval(rate int) time.Duration {
	if rate <= 0 {
		return 0
	}
	return time.Second / time.Duration(rate)
}

// Step advances the simulation by zero or more fixed updates and then renders
// exactly once.
//
// If Update fails the step stops at once: Render is not called and the
// failing update's interval stays in the accumulator, so the next Step retries
// the same slot. The returned error is a *StepError wrapping the consumer's
// error.
func (d *Driver[C]) Step() error {
	t := newTick(d.clock.Now())
	var (
		elapsed time.Duration
		updates int
	)

	for {
		switch t.phase {
		case phaseIdle:
			// The first step has nothing to measure against.
			if d.previous != nil {
				elapsed = t.startedAt.Sub(d.previous.startedAt)
				if elapsed < 0 {
					elapsed = 0
				}
				d.accumulated += elapsed
			}
			t.phase = phaseUpdating

		case phaseUpdating:
			if d.accumulated < d.updateInterval {
				t.phase = phaseRendering
				continue
			}
			if err := d.consumer.Update(); err != nil {
				if d.log.Enabled(logging.LevelDebug) {
					d.log.Debug("update failed",
						"update", updates+1,
						"accumulated", d.accumulated,
						"error", err)
				}
				return &StepError{Kind: KindUpdate, Err: err}
			}
			d.accumulated -= d.updateInterval
			updates++

		case phaseRendering:
			remainder := d.InterpolationFraction()
			if err := d.consumer.Render(remainder); err != nil {
				if d.log.Enabled(logging.LevelDebug) {
					d.log.Debug("render failed",
						"updates", updates,
						"remainder", remainder,
						"error", err)
				}
				return &StepError{Kind: KindRender, Err: err}
			}

			t.phase = phaseIdle
			d.previous = &t
			d.last = StepStats{Updates: updates, Elapsed: elapsed, Remainder: remainder}
			return nil

		default:
			panic(fmt.Errorf("%w: step in phase %s", ErrContractViolation, t.phase))
		}
	}
}

// InterpolationFraction returns the accumulated time as a fraction of one
// update interval without changing any state.
//
// The value is in [0, 1) whenever the driver is used through Step. Adding a
// full interval or more with AddAccumulatedTime and reading the fraction
// before stepping is a programming error and panics with an error wrapping
// ErrContractViolation, unless built with the gameloop_noassert tag.
func (d *Driver[C]) InterpolationFraction() float32 {
	ratio := float64(d.accumulated) / float64(d.updateInterval)
	if assertionsEnabled && !(ratio >= 0 && ratio < 1) {
		panic(fmt.Errorf("%w: interpolation fraction %g outside [0, 1) (accumulated %s, interval %s)",
			ErrContractViolation, ratio, d.accumulated, d.updateInterval))
	}

	fraction := float32(ratio)
	if fraction >= 1 && ratio < 1 {
		fraction = maxFraction
	}
	return fraction
}

// Consumer returns the driven consumer. C is expected to be a pointer type:
// the result then shares state with the driver, and changes made between
// steps are seen by the next Update and Render. For a value type C the
// result is a copy and writes to it are lost.
func (d *Driver[C]) Consumer() C {
	return d.consumer
}

// AddAccumulatedTime adds add to the accumulator as if that much time had
// passed. It lets tests force an exact number of updates on the next Step.
func (d *Driver[C]) AddAccumulatedTime(add time.Duration) {
	d.accumulated += add
}

// UpdateInterval returns the fixed simulated duration of one update.
func (d *Driver[C]) UpdateInterval() time.Duration {
	return d.updateInterval
}

// AccumulatedTime returns the time not yet consumed by updates.
func (d *Driver[C]) AccumulatedTime() time.Duration {
	return d.accumulated
}

// LastStep returns statistics for the most recent successful Step. It is the
// zero value before the first one.
func (d *Driver[C]) LastStep() StepStats {
	return d.last
}
