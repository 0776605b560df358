package joystick

import (
	"image"

	"github.com/esimov/joystick/imop"
)

// backgroundOrigin returns the top-left corner of a background bitmap of the
// given size centered on the control.
func backgroundOrigin(g Geometry, size image.Point) image.Point {
	return image.Pt(g.CenterX-size.X/2, g.CenterY-size.Y/2)
}

// handleOrigin returns the top-left corner of the handle bitmap for the displacement d.
func handleOrigin(g Geometry, d Point) image.Point {
	hx := d.X + float64(g.CenterX)
	hy := d.Y + float64(g.CenterY)
	r := float64(g.HandleRadius)

	return image.Pt(int(hx-r), int(hy-r))
}

// Render draws the current state of the joystick into a new image, the size of
// its geometry. The handle is laid over the background with the source-over operation.
func Render(j *Joystick, bm Bitmaps) *image.NRGBA {
	g := j.Geometry()
	dst := image.NewNRGBA(image.Rect(0, 0, g.Width, g.Height))

	op := imop.InitOp()
	op.Set(imop.SrcOver)

	if bm.Background != nil {
		op.Draw(dst, bm.Background, backgroundOrigin(g, bm.Background.Bounds().Size()))
	}
	if bm.Handle != nil {
		x, y := j.Displacement()
		op.Draw(dst, bm.Handle, handleOrigin(g, Point{X: x, Y: y}))
	}
	return dst
}
