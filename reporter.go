package joystick

import "github.com/esimov/joystick/utils"

// reportThreshold is the minimum displacement change, in pixels,
// needed before the listener is notified again.
const reportThreshold = 1.0

// reporter rate-limits listener notifications to meaningful changes.
type reporter struct {
	last Point
}

// changed reports whether d moved at least one pixel away from the last
// reported value on either axis. If so, d becomes the new reported value.
func (r *reporter) changed(d Point) bool {
	rx := utils.Abs(d.X-r.last.X) >= reportThreshold
	ry := utils.Abs(d.Y-r.last.Y) >= reportThreshold
	if !rx && !ry {
		return false
	}
	r.last = d
	return true
}

// reset forces the reported value back to the center.
func (r *reporter) reset() {
	r.last = Point{}
}
