package joystick

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Listener receives the joystick position in user units, each axis within [-10, 10].
type Listener func(x, y int)

// Subscription is the handle of a registered listener.
type Subscription struct {
	j  *Joystick
	fn Listener
}

// Cancel unregisters the listener. It has no effect if the
// listener has already been replaced by a newer registration.
func (s *Subscription) Cancel() {
	if s.j.sub == s {
		s.j.sub = nil
	}
}

// Joystick is the touch driven state machine behind a virtual analog joystick.
// It tracks a single pointer, maps its position to a clamped displacement,
// notifies the listener on meaningful changes and animates the handle back to
// the center on release.
//
// A Joystick is not safe for concurrent use: input events, geometry updates,
// scheduler callbacks and rendering reads must all happen on the same goroutine.
type Joystick struct {
	geom        Geometry
	orientation Orientation
	offset      Point
	disp        Point

	tracker  tracker
	reporter reporter
	animator animator

	sub        *Subscription
	invalidate func()
	log        logrus.FieldLogger
}

// New creates a joystick which uses sched to run the return animation frames.
func New(sched Scheduler) *Joystick {
	if sched == nil {
		panic("joystick: nil scheduler")
	}
	return &Joystick{
		animator: animator{sched: sched},
		log:      discardLogger(),
	}
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// SetLogger sets the logger used for tracing the pointer events.
func (j *Joystick) SetLogger(l logrus.FieldLogger) {
	if l == nil {
		l = discardLogger()
	}
	j.log = l
}

// Configure sets the orientation constraint from its textual form.
// An unrecognized value returns an error and leaves the joystick untouched.
func (j *Joystick) Configure(orientation string) error {
	o, err := ParseOrientation(orientation)
	if err != nil {
		return err
	}
	j.orientation = o

	return nil
}

// SetOrientation sets the orientation constraint.
func (j *Joystick) SetOrientation(o Orientation) error {
	if !o.Valid() {
		return errors.Wrapf(ErrUnknownOrientation, "no such orientation: %d", int(o))
	}
	j.orientation = o

	return nil
}

// Orientation returns the active orientation constraint.
func (j *Joystick) Orientation() Orientation {
	return j.orientation
}

// UpdateGeometry recomputes the control geometry for a width x height box.
// It is called by the layout whenever the size changes.
func (j *Joystick) UpdateGeometry(width, height, maxSize int) Geometry {
	j.geom = NewGeometry(width, height, maxSize)
	return j.geom
}

// Geometry returns the current control geometry.
func (j *Joystick) Geometry() Geometry {
	return j.geom
}

// SetTouchOffset sets the offset compensating for events delivered in the
// coordinate space of a parent container.
func (j *Joystick) SetTouchOffset(x, y float64) {
	j.offset = Point{X: x, Y: y}
}

// TouchOffset returns the touch offset.
func (j *Joystick) TouchOffset() (x, y float64) {
	return j.offset.X, j.offset.Y
}

// Listen registers fn as the movement listener, replacing any previous one.
func (j *Joystick) Listen(fn Listener) *Subscription {
	j.sub = &Subscription{j: j, fn: fn}
	return j.sub
}

// OnInvalidate registers the function called whenever the handle needs to be redrawn.
func (j *Joystick) OnInvalidate(fn func()) {
	j.invalidate = fn
}

// Displacement returns the current offset of the handle from the center.
func (j *Joystick) Displacement() (x, y float64) {
	return j.disp.X, j.disp.Y
}

// Captured returns the identifier of the pointer driving the joystick, if any.
func (j *Joystick) Captured() (id int, ok bool) {
	return j.tracker.id, j.tracker.captured
}

// Animating reports whether the handle is still on its way back to the center.
func (j *Joystick) Animating() bool {
	return j.animator.running()
}

// OnPress handles a pointer going down at the (x, y) view coordinates.
// It returns true if the pointer has been captured. A press is ignored while
// another pointer is captured or when it falls outside the horizontal hit region.
func (j *Joystick) OnPress(id int, x, y float64) bool {
	g := j.geom
	if !j.tracker.claim(id, x-float64(g.CenterX), j.offset.X, float64(g.HalfExtent())) {
		j.log.WithFields(logrus.Fields{"pointer": id, "x": x, "y": y}).Debug("press ignored")
		return false
	}
	if n := j.animator.stop(); n > 0 {
		j.log.WithField("frames", n).Debug("return animation superseded")
	}
	j.log.WithFields(logrus.Fields{"pointer": id, "x": x, "y": y}).Debug("pointer captured")
	j.update(x, y)

	return true
}

// OnMove handles a pointer moving to the (x, y) view coordinates.
// Only the captured pointer moves the handle.
func (j *Joystick) OnMove(id int, x, y float64) bool {
	if !j.tracker.owns(id) {
		return false
	}
	j.update(x, y)

	return true
}

// OnRelease handles a pointer going up. Only the release of the
// captured pointer frees the joystick.
func (j *Joystick) OnRelease(id int) bool {
	if !j.tracker.release(id) {
		return false
	}
	j.log.WithField("pointer", id).Debug("pointer released")
	j.returnToCenter()

	return true
}

// OnCancel frees the joystick whichever pointer holds it. It is used for
// cancelled gestures and for the final up event of a single touch stream.
func (j *Joystick) OnCancel() bool {
	id := j.tracker.id
	if !j.tracker.reset() {
		return false
	}
	j.log.WithField("pointer", id).Debug("pointer cancelled")
	j.returnToCenter()

	return true
}

func (j *Joystick) update(x, y float64) {
	j.disp = mapDisplacement(j.geom, j.orientation, j.offset, x, y)
	if j.reporter.changed(j.disp) {
		j.notify(userUnits(j.geom, j.disp))
	}
	j.redraw()
}

// returnToCenter starts the visual return animation and reports the center
// position right away. The animation frames are not reported.
func (j *Joystick) returnToCenter() {
	j.log.WithFields(logrus.Fields{"x": j.disp.X, "y": j.disp.Y}).Debug("returning to center")
	j.animator.start(j.disp, func(inc Point) {
		j.disp.X += inc.X
		j.disp.Y += inc.Y
		j.redraw()
	})
	j.reporter.reset()
	j.notify(0, 0)
}

func (j *Joystick) notify(x, y int) {
	if j.sub != nil && j.sub.fn != nil {
		j.sub.fn(x, y)
	}
}

func (j *Joystick) redraw() {
	if j.invalidate != nil {
		j.invalidate()
	}
}
