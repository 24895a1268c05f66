package loop

import "github.com/thruflo/gameloop/internal/gameloop"

// DetectSpiral reports whether each of the last threshold steps had to run
// more than one update. That means real time is passing faster than the host
// steps, and the accumulator is being drained in bursts.
func DetectSpiral(history []gameloop.StepStats, threshold int) bool {
	if threshold <= 0 || len(history) < threshold {
		return false
	}

	for _, s := range history[len(history)-threshold:] {
		if s.Updates <= 1 {
			return false
		}
	}
	return true
}

// UpdatesPerTick returns the average number of updates per step over the last
// window entries of history.
func UpdatesPerTick(history []gameloop.StepStats, window int) float64 {
	if window <= 0 || len(history) == 0 {
		return 0
	}
	if window > len(history) {
		window = len(history)
	}

	total := 0
	for _, s := range history[len(history)-window:] {
		total += s.Updates
	}
	return float64(total) / float64(window)
}
