// Package game holds the placeholder game state driven by the loop. It only
// counts updates and renders; real simulation and drawing are out of scope.
package game

import "errors"

// ErrUnknown is the only failure the placeholder game reports.
var ErrUnknown = errors.New("unknown!")

// State is the game world. Use it through a pointer.
type State struct {
	Updates       int     `yaml:"updates"`
	Renders       int     `yaml:"renders"`
	LastRemainder float32 `yaml:"last_remainder"`

	// FailUpdateAt and FailRenderAt make the n-th call (1-based, counting
	// failed calls) return ErrUnknown. Zero disables the failure.
	FailUpdateAt int `yaml:"-"`
	FailRenderAt int `yaml:"-"`

	updateCalls int
	renderCalls int
}

// Update advances the world by one fixed interval.
func (s *State) Update() error {
	s.updateCalls++
	if s.FailUpdateAt > 0 && s.updateCalls == s.FailUpdateAt {
		return ErrUnknown
	}
	s.Updates++
	return nil
}

// Render records a frame drawn at remainder between two updates.
func (s *State) Render(remainder float32) error {
	s.renderCalls++
	if s.FailRenderAt > 0 && s.renderCalls == s.FailRenderAt {
		return ErrUnknown
	}
	s.Renders++
	s.LastRemainder = remainder
	return nil
}
