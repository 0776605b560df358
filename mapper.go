package joystick

import (
	"math"

	"github.com/esimov/joystick/utils"
)

// userScale is the user unit value reported at full deflection.
const userScale = 10

// Point is a real valued offset relative to the control center.
type Point struct {
	X, Y float64
}

// mapDisplacement translates the raw coordinates to the control center,
// applies the orientation constraint and clamps the retained axes independently.
// The clamp is axis aligned: one axis may reach the full radius while the other is nonzero.
func mapDisplacement(g Geometry, o Orientation, offset Point, rawX, rawY float64) Point {
	var (
		r = float64(g.MovementRadius)
		d Point
	)
	if r <= 0 {
		return d
	}
	if o != Vertical {
		d.X = utils.Clamp(rawX-float64(g.CenterX)-offset.X, -r, r)
	}
	if o != Horizontal {
		d.Y = utils.Clamp(rawY-float64(g.CenterY)-offset.Y, -r, r)
	}
	return d
}

// userUnits converts a displacement into the integer range [-10, 10].
// The values are truncated toward zero and the vertical axis is inverted, so up is positive.
func userUnits(g Geometry, d Point) (int, int) {
	r := float64(g.MovementRadius)
	if r <= 0 {
		return 0, 0
	}
	x := int(math.Trunc(d.X / r * userScale))
	y := -int(math.Trunc(d.Y / r * userScale))

	return x, y
}
