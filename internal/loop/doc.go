// Package loop runs a gameloop driver on behalf of a host.
//
// The driver itself never sleeps; Run is the caller that decides how often
// to step. It steps, optionally waits a frame delay, and repeats until a tick
// limit is reached, the context ends, or a step fails. Injecting Sleep lets a
// simulated run advance a manual clock instead of waiting on real time.
//
// Pacing helpers (DetectSpiral, UpdatesPerTick) look at recent step
// statistics to tell when the host is not keeping up with the update rate.
package loop
