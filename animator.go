package joystick

import "time"

const (
	// returnFrames is the number of frames used to bring the handle back to center.
	returnFrames = 2
	// frameInterval is the delay between two consecutive return frames.
	frameInterval = 40 * time.Millisecond
)

// animator moves the displacement back to the center in a few timed steps.
type animator struct {
	sched   Scheduler
	pending []Timer
}

// start schedules the return frames. Each frame calls step with the same increment,
// which together bring the displacement from its value at release to zero.
func (a *animator) start(from Point, step func(inc Point)) {
	a.stop()

	inc := Point{
		X: -from.X / returnFrames,
		Y: -from.Y / returnFrames,
	}
	for i := 0; i < returnFrames; i++ {
		var t Timer
		t = a.sched.AfterFunc(time.Duration(i)*frameInterval, func() {
			a.done(t)
			step(inc)
		})
		a.pending = append(a.pending, t)
	}
}

// stop cancels the frames still in flight.
func (a *animator) stop() int {
	var n int
	for _, t := range a.pending {
		if t.Stop() {
			n++
		}
	}
	a.pending = a.pending[:0]

	return n
}

// running reports whether some frames are still pending.
func (a *animator) running() bool {
	return len(a.pending) > 0
}

func (a *animator) done(t Timer) {
	for i, p := range a.pending {
		if p == t {
			a.pending = append(a.pending[:i], a.pending[i+1:]...)
			return
		}
	}
}
