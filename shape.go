package joystick

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// kappa is the control point distance approximating a quarter circle with a cubic Bézier curve.
const kappa = 0.5522847498

// Disc returns an anti-aliased filled circle inscribed in a diameter x diameter image.
func Disc(diameter int, c color.Color) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, diameter, diameter))
	if diameter <= 0 {
		return dst
	}
	var (
		r = float32(diameter) / 2
		k = kappa * r
		z = vector.NewRasterizer(diameter, diameter)
	)
	z.MoveTo(2*r, r)
	z.CubeTo(2*r, r+k, r+k, 2*r, r, 2*r)
	z.CubeTo(r-k, 2*r, 0, r+k, 0, r)
	z.CubeTo(0, r-k, r-k, 0, r, 0)
	z.CubeTo(r+k, 0, 2*r, r-k, 2*r, r)
	z.ClosePath()
	z.Draw(dst, dst.Bounds(), image.NewUniform(c), image.Point{})

	return dst
}
