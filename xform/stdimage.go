package xform

import (
	"image"
	"image/color"

	xdraw "golang.org/x/image/draw"

	"github.com/adriansahlman/imgxform/imagebuf"
	"github.com/adriansahlman/imgxform/roi"
)

// FromStdImage converts a standard library image.Image into a 4-channel
// (R,G,B,A), 8-bit-per-channel *imagebuf.Image, bridging this library's
// abstract Image container to Go's standard image ecosystem (ToStdImage is
// the reverse conversion; it reads im through a read-only image.Image
// adapter). Values are taken through color.NRGBAModel, i.e.
// straight (non-premultiplied) alpha, matching the convention
// github.com/disintegration/imaging uses internally.
func FromStdImage(img image.Image) *imagebuf.Image {
	b := img.Bounds()
	rect := roi.New(0, b.Dx(), 0, b.Dy(), 4)
	out := imagebuf.New(imagebuf.FormatUint8, 4, rect, rect)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			ox, oy := x-b.Min.X, y-b.Min.Y
			out.Set(ox, oy, 0, float64(c.R))
			out.Set(ox, oy, 1, float64(c.G))
			out.Set(ox, oy, 2, float64(c.B))
			out.Set(ox, oy, 3, float64(c.A))
		}
	}
	return out
}

// ToStdImage converts im's data window into a standard library
// *image.NRGBA, truncating to 4 channels (zero-filling any that im lacks,
// with alpha defaulting to fully opaque) and clamping each sample into
// [0,255]. im's format need not be 8-bit; values are decoded through the
// same accessor every other consumer of im uses, so the narrowing is
// explicit and in one place. The actual pixel transfer goes through
// golang.org/x/image/draw's Draw, the same compositing primitive
// golang-image's own image-adapter plumbing is built around, rather than a
// hand-rolled copy loop.
func ToStdImage(im *imagebuf.Image) *image.NRGBA {
	dr := im.DataRect()
	out := image.NewNRGBA(image.Rect(0, 0, dr.Width(), dr.Height()))
	xdraw.Draw(out, out.Bounds(), imagebufSource{im: im, dr: dr}, image.Point{}, xdraw.Src)
	return out
}

// imagebufSource presents an *imagebuf.Image's data window as a standard
// image.Image, so golang.org/x/image/draw can read from it directly.
type imagebufSource struct {
	im *imagebuf.Image
	dr roi.ROI
}

func (s imagebufSource) ColorModel() color.Model { return color.NRGBAModel }

func (s imagebufSource) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.dr.Width(), s.dr.Height())
}

func (s imagebufSource) At(x, y int) color.Color {
	nc := s.im.NChannels()
	c := color.NRGBA{A: 255}
	if nc > 0 {
		c.R = clamp8(s.im.At(s.dr.XBegin+x, s.dr.YBegin+y, 0))
	}
	if nc > 1 {
		c.G = clamp8(s.im.At(s.dr.XBegin+x, s.dr.YBegin+y, 1))
	}
	if nc > 2 {
		c.B = clamp8(s.im.At(s.dr.XBegin+x, s.dr.YBegin+y, 2))
	}
	if nc > 3 {
		c.A = clamp8(s.im.At(s.dr.XBegin+x, s.dr.YBegin+y, 3))
	}
	return c
}

func clamp8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
