// Package gameloop provides a fixed-timestep loop driver.
//
// A Driver owns a consumer that can both update simulation state and render
// it. Every call to Step measures the monotonic time since the previous
// successful step, adds it to an accumulator, runs Update once per whole
// update interval held in the accumulator, and then runs Render exactly once
// with the leftover fraction of an interval:
//
//	d := gameloop.New(&game.State{})
//	for running {
//	    if err := d.Step(); err != nil {
//	        return err
//	    }
//	}
//
// The simulation therefore always advances in identical increments no matter
// how irregularly Step is called, and the renderer can interpolate between
// the last two simulated states using the fraction it receives.
//
// The driver never sleeps, spawns goroutines or blocks. Pacing is left to the
// caller (see internal/loop). AddAccumulatedTime and Consumer exist so tests
// can drive the accumulator without real time passing.
package gameloop
