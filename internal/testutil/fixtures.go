package testutil

import "errors"

// ErrInjected is the default error returned by a Recorder set to fail.
var ErrInjected = errors.New("injected failure")

// Recorder is a consumer for driver tests. Use it through a pointer.
type Recorder struct {
	Updates    int
	Renders    int
	Remainders []float32

	failUpdateOn int
	failUpdate   error
	updateCalls  int
	failRenderOn int
	failRender   error
	renderCalls  int
}

// NewRecorder returns a Recorder that never fails.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// FailUpdateOn makes the k-th Update call (1-based, counting failed calls)
// return err. A nil err means ErrInjected.
func (r *Recorder) FailUpdateOn(k int, err error) *Recorder {
	if err == nil {
		err = ErrInjected
	}
	r.failUpdateOn = k
	r.failUpdate = err
	return r
}

// FailRenderOn makes the k-th Render call return err. A nil err means
// ErrInjected.
func (r *Recorder) FailRenderOn(k int, err error) *Recorder {
	if err == nil {
		err = ErrInjected
	}
	r.failRenderOn = k
	r.failRender = err
	return r
}

// Update records a successful update unless this call is set to fail.
func (r *Recorder) Update() error {
	r.updateCalls++
	if r.updateCalls == r.failUpdateOn {
		return r.failUpdate
	}
	r.Updates++
	return nil
}

// Render records the remainder unless this call is set to fail.
func (r *Recorder) Render(remainder float32) error {
	r.renderCalls++
	if r.renderCalls == r.failRenderOn {
		return r.failRender
	}
	r.Renders++
	r.Remainders = append(r.Remainders, remainder)
	return nil
}

// LastRemainder returns the most recent rendered remainder, or -1 if nothing
// has been rendered.
func (r *Recorder) LastRemainder() float32 {
	if len(r.Remainders) == 0 {
		return -1
	}
	return r.Remainders[len(r.Remainders)-1]
}
