package kernel

import (
	"math"

	"github.com/adriansahlman/imgxform/filter"
	"github.com/adriansahlman/imgxform/imagebuf"
	"github.com/adriansahlman/imgxform/roi"
)

// NonseparableResize evaluates a non-separable (radially symmetric) filter
// over tile. Unlike SeparableResize there is no per-column
// precompute to share across rows: f.Eval is a full 2D evaluation at every
// tap, so each destination pixel pays for (2*radi+1)*(2*radj+1) evaluations
// with no reuse. Out-of-source reads always use WrapClamp, regardless of any
// public wrap setting, matching SeparableResize.
func NonseparableResize(dst, src *imagebuf.Image, f *filter.Filter2D, tile roi.ROI) {
	nc := dst.NChannels()

	srcfx, srcfy := float64(src.FullX()), float64(src.FullY())
	srcfw, srcfh := float64(src.FullWidth()), float64(src.FullHeight())
	dstfx, dstfy := float64(dst.FullX()), float64(dst.FullY())
	dstfw, dstfh := float64(dst.FullWidth()), float64(dst.FullHeight())

	xratio := dstfw / srcfw
	yratio := dstfh / srcfh

	radi, radj := filter.Radii(f, xratio, yratio)

	acc := imagebuf.NewAccumulator(nc, dst.Format())

	for y := tile.YBegin; y < tile.YEnd; y++ {
		t := (float64(y) - dstfy + 0.5) / dstfh
		srcYf := srcfy + t*srcfh
		srcY := int(math.Floor(srcYf))
		fracY := srcYf - float64(srcY)

		for x := tile.XBegin; x < tile.XEnd; x++ {
			s := (float64(x) - dstfx + 0.5) / dstfw
			srcXf := srcfx + s*srcfw
			srcX := int(math.Floor(srcXf))
			fracX := srcXf - float64(srcX)

			acc.Reset()
			totalW := 0.0
			for j := -radj; j <= radj; j++ {
				fy := yratio * (float64(j) - (fracY - 0.5))
				sy := srcY + j
				for i := -radi; i <= radi; i++ {
					fx := xratio * (float64(i) - (fracX - 0.5))
					w := f.Eval(fx, fy)
					if w == 0 {
						continue
					}
					sx := srcX + i
					totalW += w
					for c := 0; c < nc; c++ {
						acc.Add(c, w, src.AtWrapped(sx, sy, c, roi.WrapClamp))
					}
				}
			}

			if totalW == 0 {
				for c := 0; c < nc; c++ {
					dst.Set(x, y, c, 0)
				}
			} else {
				for c := 0; c < nc; c++ {
					dst.Set(x, y, c, acc.Get(c)/totalW)
				}
			}
		}
	}
}
