package joystick

import "github.com/esimov/joystick/utils"

// defaultSize is used for a dimension the host leaves unspecified.
const defaultSize = 200

// bgPadding is the gap kept between the background disc and the view bounds.
const bgPadding = 10

// Geometry holds the pixel geometry of the control surface.
// It is computed by UpdateGeometry and never mutated by the input handling.
type Geometry struct {
	Width, Height int

	// Dim is the overall diameter of the control.
	Dim int

	CenterX, CenterY int

	BgRadius       int
	HandleRadius   int
	MovementRadius int
}

// NewGeometry computes the geometry of a control laid out in a width x height
// box. The diameter is bounded by maxSize if it is not zero.
func NewGeometry(width, height, maxSize int) Geometry {
	d := utils.Min(width, height)
	if maxSize != 0 {
		d = utils.Min(d, maxSize)
	}
	g := Geometry{
		Width:   width,
		Height:  height,
		Dim:     d,
		CenterX: width / 2,
		CenterY: height / 2,
	}
	g.BgRadius = d/2 - bgPadding
	g.HandleRadius = d / 4
	g.MovementRadius = d/2 - g.HandleRadius

	return g
}

// HalfExtent returns the half width of the horizontal hit region.
func (g Geometry) HalfExtent() int {
	return g.Dim / 2
}

// MeasureSize returns the size the control wants for the available width and height.
// A zero dimension is treated as unspecified and replaced by the default size.
// A portrait box is flattened to a 4:3 landscape one.
func MeasureSize(width, height int) (int, int) {
	if width <= 0 {
		width = defaultSize
	}
	if height <= 0 {
		height = defaultSize
	}
	if width < height {
		height = (width * 3) / 4
	}
	return width, height
}
