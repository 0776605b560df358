// Package imop implements the Porter-Duff composition operations
// used for mixing a graphic element with its backdrop.
// The image/draw core package implements only the source-over-destination and source
// operations; this package covers the rest of them.
//
// It is used by the headless renderer to lay the handle over the background.
package imop

import (
	"image"
	"image/color"
)

// The supported composition operations.
const (
	Copy    = "copy"
	SrcOver = "src_over"
	DstOver = "dst_over"
	SrcIn   = "src_in"
	DstIn   = "dst_in"
	SrcOut  = "src_out"
	DstOut  = "dst_out"
	SrcAtop = "src_atop"
	DstAtop = "dst_atop"
	Xor     = "xor"
)

// Composite holds the currently active composition operation.
type Composite struct {
	current string
	ops     []string
}

// InitOp initializes a new Composite, using SrcOver by default.
func InitOp() *Composite {
	return &Composite{
		current: SrcOver,
		ops: []string{
			Copy,
			SrcOver,
			DstOver,
			SrcIn,
			DstIn,
			SrcOut,
			DstOut,
			SrcAtop,
			DstAtop,
			Xor,
		},
	}
}

// Set activates one of the supported composition operations.
// Unsupported values are ignored.
func (op *Composite) Set(cop string) {
	for _, o := range op.ops {
		if o == cop {
			op.current = cop
			return
		}
	}
}

// Get returns the currently active composition operation.
func (op *Composite) Get() string {
	return op.current
}

// factors returns the Porter-Duff source and backdrop fractions for the source
// alpha as and the backdrop alpha ab.
func (op *Composite) factors(as, ab float64) (fa, fb float64) {
	switch op.current {
	case Copy:
		return 1, 0
	case SrcOver:
		return 1, 1 - as
	case DstOver:
		return 1 - ab, 1
	case SrcIn:
		return ab, 0
	case DstIn:
		return 0, as
	case SrcOut:
		return 1 - ab, 0
	case DstOut:
		return 0, 1 - as
	case SrcAtop:
		return ab, 1 - as
	case DstAtop:
		return 1 - ab, as
	case Xor:
		return 1 - ab, 1 - as
	}
	return 1, 1 - as
}

// Draw composes src onto dst, with the top-left corner of src placed at pt.
// Only the area covered by src is affected.
func (op *Composite) Draw(dst *image.NRGBA, src image.Image, pt image.Point) {
	sb := src.Bounds()
	r := image.Rectangle{Min: pt, Max: pt.Add(sb.Size())}.Intersect(dst.Bounds())
	if r.Empty() {
		return
	}
	delta := sb.Min.Sub(pt)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			s := color.NRGBAModel.Convert(src.At(x+delta.X, y+delta.Y)).(color.NRGBA)
			b := dst.NRGBAAt(x, y)

			asn := float64(s.A) / 255
			abn := float64(b.A) / 255
			fa, fb := op.factors(asn, abn)

			// Premultiplied result.
			an := asn*fa + abn*fb
			if an <= 0 {
				dst.SetNRGBA(x, y, color.NRGBA{})
				continue
			}
			mix := func(cs, cb uint8) uint8 {
				v := (float64(cs)/255*asn*fa + float64(cb)/255*abn*fb) / an
				return uint8(v*255 + 0.5)
			}
			dst.SetNRGBA(x, y, color.NRGBA{
				R: mix(s.R, b.R),
				G: mix(s.G, b.G),
				B: mix(s.B, b.B),
				A: uint8(an*255 + 0.5),
			})
		}
	}
}
