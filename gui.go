package joystick

import (
	"image"
	"image/color"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

var defaultBkgColor = color.NRGBA{R: 0xf5, G: 0xf5, B: 0xf5, A: 0xff}

// Widget hosts a Joystick in a Gio user interface. It forwards the pointer
// events to the joystick, drives its frame queue from the frame clock and
// paints the background and the handle bitmaps.
type Widget struct {
	Joystick *Joystick
	Queue    *FrameQueue
	// MaxSize caps the control diameter. Zero means unbounded.
	MaxSize int

	bgSrc, handleSrc image.Image

	size     image.Point
	bgOp     paint.ImageOp
	handleOp paint.ImageOp
	bgSize   image.Point
}

// NewWidget creates a widget for j. The optional bg and handle bitmaps are
// scaled to the control geometry; nil selects the plain discs.
func NewWidget(j *Joystick, q *FrameQueue, bg, handle image.Image) *Widget {
	return &Widget{
		Joystick:  j,
		Queue:     q,
		bgSrc:     bg,
		handleSrc: handle,
	}
}

// Layout handles the pending pointer events and draws the joystick.
func (w *Widget) Layout(gtx C) D {
	w.Queue.Advance(gtx.Now)

	width, height := MeasureSize(gtx.Constraints.Max.X, gtx.Constraints.Max.Y)
	if size := image.Pt(width, height); size != w.size {
		w.resize(size)
	}
	w.handleEvents(gtx)

	defer clip.Rect{Max: w.size}.Push(gtx.Ops).Pop()

	_, captured := w.Joystick.Captured()
	pointer.InputOp{
		Tag:   w,
		Grab:  captured,
		Types: pointer.Press | pointer.Drag | pointer.Release | pointer.Cancel,
	}.Add(gtx.Ops)

	g := w.Joystick.Geometry()
	if w.bgSize != (image.Point{}) {
		drawImage(gtx.Ops, w.bgOp, backgroundOrigin(g, w.bgSize))
	}
	if g.HandleRadius > 0 {
		x, y := w.Joystick.Displacement()
		drawImage(gtx.Ops, w.handleOp, handleOrigin(g, Point{X: x, Y: y}))
	}

	if next, ok := w.Queue.Next(); ok {
		op.InvalidateOp{At: next}.Add(gtx.Ops)
	}
	return D{Size: w.size}
}

// resize updates the joystick geometry and rescales the bitmaps.
func (w *Widget) resize(size image.Point) {
	w.size = size
	g := w.Joystick.UpdateGeometry(size.X, size.Y, w.MaxSize)

	bm := ScaleBitmaps(g, w.bgSrc, w.handleSrc)
	w.bgSize = image.Point{}
	if bm.Background != nil {
		w.bgOp = paint.NewImageOp(bm.Background)
		w.bgSize = bm.Background.Bounds().Size()
	}
	if bm.Handle != nil {
		w.handleOp = paint.NewImageOp(bm.Handle)
	}
}

// handleEvents forwards the pointer events to the joystick.
func (w *Widget) handleEvents(gtx C) {
	for _, ev := range gtx.Events(w) {
		e, ok := ev.(pointer.Event)
		if !ok {
			continue
		}
		id := int(e.PointerID)
		x, y := float64(e.Position.X), float64(e.Position.Y)

		switch e.Type {
		case pointer.Press:
			if e.Source == pointer.Mouse && e.Buttons != pointer.ButtonPrimary {
				break
			}
			w.Joystick.OnPress(id, x, y)
		case pointer.Drag:
			w.Joystick.OnMove(id, x, y)
		case pointer.Release:
			w.Joystick.OnRelease(id)
		case pointer.Cancel:
			w.Joystick.OnCancel()
		}
	}
}

// drawImage paints img with its top-left corner at pt.
func drawImage(ops *op.Ops, img paint.ImageOp, pt image.Point) {
	defer op.Affine(f32.Affine2D{}.Offset(f32.Pt(float32(pt.X), float32(pt.Y)))).Push(ops).Pop()
	defer clip.Rect{Max: img.Size()}.Push(ops).Pop()

	img.Add(ops)
	paint.PaintOp{}.Add(ops)
}

// Run opens a window hosting the widget and processes its events
// until the window is closed or the escape key is pressed.
func Run(title string, width, height int, w *Widget) error {
	win := app.NewWindow(
		app.Title(title),
		app.Size(unit.Dp(float32(width)), unit.Dp(float32(height))),
	)
	w.Joystick.OnInvalidate(win.Invalidate)

	var ops op.Ops
	for e := range win.Events() {
		switch e := e.(type) {
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			paint.Fill(gtx.Ops, defaultBkgColor)

			layout.Center.Layout(gtx, w.Layout)
			e.Frame(gtx.Ops)
		case key.Event:
			switch e.Name {
			case key.NameEscape:
				win.Close()
			}
		case system.DestroyEvent:
			return e.Err
		}
	}
	return nil
}
