package loop

import (
	"context"
	"time"

	"github.com/thruflo/gameloop/internal/gameloop"
	"github.com/thruflo/gameloop/internal/logging"
)

// ExitReason indicates why Run stopped.
type ExitReason int

const (
	ExitReasonUnknown      ExitReason = iota
	ExitReasonDone                    // Hit the tick limit
	ExitReasonInterrupted             // Context cancelled
	ExitReasonUpdateFailed            // Consumer Update returned an error
	ExitReasonRenderFailed            // Consumer Render returned an error
)

// String returns a human-readable description of the exit reason.
func (r ExitReason) String() string {
	switch r {
	case ExitReasonDone:
		return "completed"
	case ExitReasonInterrupted:
		return "interrupted"
	case ExitReasonUpdateFailed:
		return "update failed"
	case ExitReasonRenderFailed:
		return "render failed"
	default:
		return "unknown"
	}
}

// Stepper is the part of a gameloop.Driver the runner needs.
type Stepper interface {
	Step() error
	LastStep() gameloop.StepStats
}

// Result contains the outcome of a run.
type Result struct {
	Reason  ExitReason
	Ticks   int   // Successful steps
	Updates int   // Update calls across all successful steps
	Err     error // Step error when Reason is a failure
}

// Options configures Run. Zero values mean: no tick limit, no delay,
// a context-aware real sleep, no spiral detection, the default logger.
type Options struct {
	MaxTicks        int
	FrameDelay      time.Duration
	Sleep           func(ctx context.Context, d time.Duration)
	OnTick          func(tick int, stats gameloop.StepStats)
	SpiralThreshold int
	Logger          *logging.Logger
}

// Run steps s until an exit condition is met. With MaxTicks zero it runs
// until ctx is done or a step fails.
func Run(ctx context.Context, s Stepper, opts Options) Result {
	sleep := opts.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	log := opts.Logger
	if log == nil {
		log = logging.With("component", "runner")
	}

	var (
		result    Result
		history   []gameloop.StepStats
		spiraling bool
	)

	log.Info("run started", "max_ticks", opts.MaxTicks, "frame_delay", opts.FrameDelay)

	for {
		if ctx.Err() != nil {
			result.Reason = ExitReasonInterrupted
			break
		}
		if opts.MaxTicks > 0 && result.Ticks >= opts.MaxTicks {
			result.Reason = ExitReasonDone
			break
		}

		if err := s.Step(); err != nil {
			result.Reason = failureReason(err)
			result.Err = err
			log.Error("step failed", "tick", result.Ticks+1, "error", err)
			break
		}

		result.Ticks++
		stats := s.LastStep()
		result.Updates += stats.Updates
		if opts.OnTick != nil {
			opts.OnTick(result.Ticks, stats)
		}

		if opts.SpiralThreshold > 0 {
			history = append(history, stats)
			if len(history) > opts.SpiralThreshold {
				history = history[len(history)-opts.SpiralThreshold:]
			}
			switch detected := DetectSpiral(history, opts.SpiralThreshold); {
			case detected && !spiraling:
				log.Warn("host is not keeping up with the update rate",
					"tick", result.Ticks,
					"updates_per_tick", UpdatesPerTick(history, opts.SpiralThreshold))
				spiraling = true
			case !detected && spiraling:
				log.Info("host caught up", "tick", result.Ticks)
				spiraling = false
			}
		}

		if opts.FrameDelay > 0 {
			sleep(ctx, opts.FrameDelay)
		}
	}

	log.Info("run stopped",
		"reason", result.Reason,
		"ticks", result.Ticks,
		"updates", result.Updates)
	return result
}

func failureReason(err error) ExitReason {
	switch {
	case gameloop.IsUpdateError(err):
		return ExitReasonUpdateFailed
	case gameloop.IsRenderError(err):
		return ExitReasonRenderFailed
	default:
		return ExitReasonUnknown
	}
}

// sleepContext waits for d or until ctx is done, whichever comes first.
func sleepContext(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
