package joystick

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/esimov/joystick/utils"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

var (
	defaultBgColor     = color.NRGBA{R: 0x90, G: 0x90, B: 0x90, A: 0x80}
	defaultHandleColor = color.NRGBA{R: 0x30, G: 0x30, B: 0x30, A: 0xe0}
)

// Bitmaps holds the background and handle images scaled to the control geometry.
type Bitmaps struct {
	Background *image.NRGBA
	Handle     *image.NRGBA
}

// LoadBitmap decodes the image found at src, which is either a local file or an URL.
func LoadBitmap(src string) (image.Image, error) {
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(src)
		if err != nil {
			return nil, errors.Wrapf(err, "could not download the bitmap %s", src)
		}
		defer os.Remove(f.Name())
		defer f.Close()

		return decodeImg(f.Name())
	}
	return decodeImg(src)
}

// decodeImg decodes an image file to type image.Image
func decodeImg(src string) (image.Image, error) {
	ctype, err := utils.DetectContentType(src)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open the bitmap %s", src)
	}
	if !strings.Contains(ctype, "image") {
		return nil, errors.Errorf("the bitmap %s should be an image file, got %s", src, ctype)
	}

	img, err := imaging.Open(src)
	if err != nil {
		return nil, errors.Wrapf(err, "could not decode the bitmap %s", src)
	}
	return img, nil
}

// ScaleBitmaps prepares the bitmaps for the geometry g. The background is scaled
// uniformly to fit into the background disc and the handle is stretched over the
// handle disc. A nil source is replaced by a plain disc.
func ScaleBitmaps(g Geometry, bg, handle image.Image) Bitmaps {
	var bm Bitmaps

	if d := 2 * g.BgRadius; d > 0 {
		if bg == nil {
			bm.Background = Disc(d, defaultBgColor)
		} else {
			bm.Background = fitBitmap(bg, d)
		}
	}
	if d := 2 * g.HandleRadius; d > 0 {
		if handle == nil {
			bm.Handle = Disc(d, defaultHandleColor)
		} else {
			bm.Handle = imaging.Resize(handle, d, d, imaging.Lanczos)
		}
	}
	return bm
}

// fitBitmap scales img up or down, keeping its aspect ratio, so that it fits into a size x size square.
func fitBitmap(img image.Image, size int) *image.NRGBA {
	b := img.Bounds()
	if b.Empty() {
		return imaging.Clone(img)
	}
	w, h := float64(b.Dx()), float64(b.Dy())
	scale := utils.Min(float64(size)/w, float64(size)/h)

	nw := utils.Max(int(w*scale), 1)
	nh := utils.Max(int(h*scale), 1)

	return imaging.Resize(img, nw, nh, imaging.Lanczos)
}
