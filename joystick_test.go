package joystick

import (
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	calls       [][2]int
	invalidated int
}

func (r *recorder) last() [2]int {
	return r.calls[len(r.calls)-1]
}

// newTestJoystick returns a 400x400 joystick, which has a movement radius of 100
// and a center at (200, 200).
func newTestJoystick(t *testing.T) (*Joystick, *FrameQueue, *recorder) {
	t.Helper()

	q := NewFrameQueue(epoch)
	j := New(q)
	g := j.UpdateGeometry(400, 400, 0)
	require.Equal(t, 100, g.MovementRadius)

	rec := &recorder{}
	j.Listen(func(x, y int) {
		rec.calls = append(rec.calls, [2]int{x, y})
	})
	j.OnInvalidate(func() { rec.invalidated++ })

	return j, q, rec
}

func TestJoystick_PressBoth(t *testing.T) {
	j, _, rec := newTestJoystick(t)

	assert.True(t, j.OnPress(0, 250, 200))

	x, y := j.Displacement()
	assert.Equal(t, 50.0, x)
	assert.Equal(t, 0.0, y)
	assert.Equal(t, [][2]int{{5, 0}}, rec.calls)

	id, ok := j.Captured()
	assert.True(t, ok)
	assert.Equal(t, 0, id)
}

func TestJoystick_PressVertical(t *testing.T) {
	j, _, rec := newTestJoystick(t)
	require.NoError(t, j.Configure("vertical"))

	assert.True(t, j.OnPress(0, 250, 200))

	x, y := j.Displacement()
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
	assert.Empty(t, rec.calls, "no change from the center, nothing to report")

	assert.True(t, j.OnMove(0, 280, 150))
	x, y = j.Displacement()
	assert.Equal(t, 0.0, x)
	assert.Equal(t, -50.0, y)
	assert.Equal(t, [2]int{0, 5}, rec.last())
}

func TestJoystick_PressHorizontal(t *testing.T) {
	j, _, rec := newTestJoystick(t)
	require.NoError(t, j.SetOrientation(Horizontal))

	j.OnPress(0, 130, 20)

	x, y := j.Displacement()
	assert.Equal(t, -70.0, x)
	assert.Equal(t, 0.0, y)
	assert.Equal(t, [2]int{-7, 0}, rec.last())
}

func TestJoystick_PressBeyondRadiusIsClamped(t *testing.T) {
	j, _, rec := newTestJoystick(t)

	assert.True(t, j.OnPress(0, 350, 200))

	x, y := j.Displacement()
	assert.Equal(t, 100.0, x)
	assert.Equal(t, 0.0, y)
	assert.Equal(t, [2]int{10, 0}, rec.last())
}

func TestJoystick_ReleaseReportsCenterBeforeAnimation(t *testing.T) {
	assert := assert.New(t)
	j, q, rec := newTestJoystick(t)

	j.OnPress(7, 250, 160)
	assert.Equal([2]int{5, 4}, rec.last())
	redraws := rec.invalidated

	assert.True(j.OnRelease(7))
	assert.Equal([2]int{0, 0}, rec.last(), "the center is reported synchronously")
	assert.Len(rec.calls, 2)
	assert.Equal(2, q.Len(), "two frames are scheduled")
	assert.True(j.Animating())

	x, y := j.Displacement()
	assert.Equal(50.0, x, "no frame has run yet")
	assert.Equal(-40.0, y)

	q.Advance(epoch)
	x, y = j.Displacement()
	assert.Equal(25.0, x)
	assert.Equal(-20.0, y)
	assert.Equal(redraws+1, rec.invalidated)

	q.Advance(epoch.Add(40 * time.Millisecond))
	x, y = j.Displacement()
	assert.Equal(0.0, x)
	assert.Equal(0.0, y)
	assert.Equal(redraws+2, rec.invalidated)
	assert.False(j.Animating())

	assert.Len(rec.calls, 2, "animation frames are never reported")
	_, ok := j.Captured()
	assert.False(ok)
}

func TestJoystick_ReleaseWithoutMovement(t *testing.T) {
	j, q, rec := newTestJoystick(t)

	j.OnPress(0, 200, 200)
	assert.Empty(t, rec.calls)

	assert.True(t, j.OnRelease(0))
	assert.Equal(t, [][2]int{{0, 0}}, rec.calls)
	assert.Equal(t, 2, q.Len())
}

func TestJoystick_ConfigureRejectsUnknownOrientation(t *testing.T) {
	j, _, _ := newTestJoystick(t)
	require.NoError(t, j.Configure("Vertical"))

	err := j.Configure("diagonal")
	assert.ErrorIs(t, err, ErrUnknownOrientation)
	assert.Contains(t, err.Error(), "diagonal")
	assert.Equal(t, Vertical, j.Orientation(), "a failed configure must not change the state")

	err = j.SetOrientation(Orientation(42))
	assert.ErrorIs(t, err, ErrUnknownOrientation)
	assert.Equal(t, Vertical, j.Orientation())
}

func TestJoystick_SingleCapture(t *testing.T) {
	assert := assert.New(t)
	j, q, rec := newTestJoystick(t)

	assert.True(j.OnPress(1, 250, 200))
	assert.False(j.OnPress(2, 210, 200), "a second pointer cannot be captured")

	assert.False(j.OnMove(2, 300, 300), "moves of the foreign pointer are ignored")
	x, y := j.Displacement()
	assert.Equal(50.0, x)
	assert.Equal(0.0, y)

	assert.False(j.OnRelease(2), "releasing the foreign pointer has no effect")
	assert.Equal(0, q.Len())
	assert.Equal([][2]int{{5, 0}}, rec.calls)

	assert.True(j.OnMove(1, 200, 300))
	assert.Equal([2]int{0, -10}, rec.last())

	assert.True(j.OnRelease(1))
	assert.False(j.OnRelease(1), "a pointer is released only once")
	assert.Equal(2, q.Len(), "the animation runs once per release")

	// Idle again, the second pointer may now take over.
	assert.True(j.OnPress(2, 200, 200))
	id, _ := j.Captured()
	assert.Equal(2, id)
}

func TestJoystick_HitRegion(t *testing.T) {
	j, _, _ := newTestJoystick(t)

	assert.False(t, j.OnPress(0, 401, 200), "right of the hit region")
	assert.False(t, j.OnPress(0, -1, 200), "left of the hit region")
	assert.True(t, j.OnPress(0, 400, 900), "the hit region is bounded only horizontally")
	j.OnCancel()

	j.SetTouchOffset(300, 0)
	assert.False(t, j.OnPress(0, 250, 200))
	assert.True(t, j.OnPress(0, 300, 200))

	x, _ := j.Displacement()
	assert.Equal(t, -100.0, x, "the offset shifts the center of the mapping too")
}

func TestJoystick_MoveWhileIdle(t *testing.T) {
	j, _, rec := newTestJoystick(t)

	assert.False(t, j.OnMove(0, 250, 200))
	assert.False(t, j.OnRelease(0))
	assert.False(t, j.OnCancel())
	assert.Empty(t, rec.calls)
}

func TestJoystick_CancelReleasesAnyPointer(t *testing.T) {
	j, q, rec := newTestJoystick(t)

	j.OnPress(9, 260, 200)
	assert.True(t, j.OnCancel())
	assert.Equal(t, [2]int{0, 0}, rec.last())
	assert.Equal(t, 2, q.Len())

	_, ok := j.Captured()
	assert.False(t, ok)
}

func TestJoystick_ThresholdSuppressesJitter(t *testing.T) {
	assert := assert.New(t)
	j, _, rec := newTestJoystick(t)

	j.OnPress(0, 230, 200)
	assert.Len(rec.calls, 1)
	redraws := rec.invalidated

	j.OnMove(0, 230.6, 200.9)
	j.OnMove(0, 229.2, 199.5)
	assert.Len(rec.calls, 1, "sub pixel moves are not reported")
	assert.Equal(redraws+2, rec.invalidated, "but the handle is still redrawn")

	x, y := j.Displacement()
	assert.InDelta(29.2, x, 1e-9)
	assert.InDelta(-0.5, y, 1e-9)

	j.OnMove(0, 231, 200)
	assert.Len(rec.calls, 2)
}

func TestJoystick_RecaptureCancelsReturnAnimation(t *testing.T) {
	assert := assert.New(t)
	j, q, _ := newTestJoystick(t)

	j.OnPress(0, 300, 200)
	j.OnRelease(0)
	q.Advance(epoch)

	x, _ := j.Displacement()
	assert.Equal(50.0, x, "half way back")

	assert.True(j.OnPress(1, 180, 200))
	assert.Equal(0, q.Len(), "pending frames are cancelled by the new capture")
	assert.False(j.Animating())

	q.Advance(epoch.Add(time.Second))
	x, _ = j.Displacement()
	assert.Equal(-20.0, x, "stale frames must not move the new capture")
}

func TestJoystick_Subscription(t *testing.T) {
	q := NewFrameQueue(epoch)
	j := New(q)
	j.UpdateGeometry(400, 400, 0)

	var first, second int
	s1 := j.Listen(func(x, y int) { first++ })
	s2 := j.Listen(func(x, y int) { second++ })

	j.OnPress(0, 250, 200)
	assert.Equal(t, 0, first, "the newer registration replaces the older")
	assert.Equal(t, 1, second)

	s1.Cancel()
	j.OnMove(0, 270, 200)
	assert.Equal(t, 2, second, "cancelling a stale subscription is a no-op")

	s2.Cancel()
	j.OnMove(0, 290, 200)
	j.OnRelease(0)
	assert.Equal(t, 2, second)
}

func TestJoystick_ZeroGeometry(t *testing.T) {
	j := New(NewFrameQueue(epoch))

	var calls int
	j.Listen(func(x, y int) { calls++ })

	assert.True(t, j.OnPress(0, 0, 0))
	assert.True(t, j.OnMove(0, 0, 0))
	x, y := j.Displacement()
	assert.Equal(t, 0.0, x)
	assert.Equal(t, 0.0, y)
	assert.Equal(t, 0, calls)
}

func TestJoystick_Logging(t *testing.T) {
	logger, hook := test.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	j, _, _ := newTestJoystick(t)
	j.SetLogger(logger)

	j.OnPress(4, 250, 200)
	j.OnPress(5, 250, 200)
	j.OnRelease(4)

	var msgs []string
	for _, e := range hook.AllEntries() {
		msgs = append(msgs, e.Message)
	}
	assert.Equal(t, []string{"pointer captured", "press ignored", "pointer released", "returning to center"}, msgs)
	assert.Equal(t, 4, hook.AllEntries()[0].Data["pointer"])
}

func TestJoystick_NilScheduler(t *testing.T) {
	assert.Panics(t, func() { New(nil) })
}
