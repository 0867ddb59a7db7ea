package kernel

import (
	"math"

	"github.com/adriansahlman/imgxform/filter"
	"github.com/adriansahlman/imgxform/imagebuf"
	"github.com/adriansahlman/imgxform/roi"
)

// SeparableResize evaluates a separable filter over tile (a sub-ROI of the
// destination): per-column x weights are precomputed once
// for the whole tile and reused identically across every row of the tile;
// per-row y weights are computed once per row and reused across every
// column. Out-of-source reads always use WrapClamp, regardless of any
// public wrap setting (resize does not expose wrap at all).
func SeparableResize(dst, src *imagebuf.Image, f *filter.Filter2D, tile roi.ROI) {
	nc := dst.NChannels()

	srcfx, srcfy := float64(src.FullX()), float64(src.FullY())
	srcfw, srcfh := float64(src.FullWidth()), float64(src.FullHeight())
	dstfx, dstfy := float64(dst.FullX()), float64(dst.FullY())
	dstfw, dstfh := float64(dst.FullWidth()), float64(dst.FullHeight())

	xratio := dstfw / srcfw
	yratio := dstfh / srcfh

	radi, radj := filter.Radii(f, xratio, yratio)
	xtaps := filter.Taps(radi)
	ytaps := filter.Taps(radj)

	width := tile.Width()
	xfiltvalAll := make([][]float64, width)
	srcXAll := make([]int, width)
	rawSumXAll := make([]float64, width)
	for i, x := 0, tile.XBegin; x < tile.XEnd; i, x = i+1, x+1 {
		s := (float64(x) - dstfx + 0.5) / dstfw
		srcXf := srcfx + s*srcfw
		srcX := int(math.Floor(srcXf))
		frac := srcXf - float64(srcX)
		w := make([]float64, xtaps)
		rawSumXAll[i] = filter.ColumnWeights(w, f.FX, radi, xratio, frac)
		xfiltvalAll[i] = w
		srcXAll[i] = srcX
	}

	yfiltval := make([]float64, ytaps)
	acc := imagebuf.NewAccumulator(nc, dst.Format())

	for y := tile.YBegin; y < tile.YEnd; y++ {
		t := (float64(y) - dstfy + 0.5) / dstfh
		srcYf := srcfy + t*srcfh
		srcY := int(math.Floor(srcYf))
		fracY := srcYf - float64(srcY)
		rawSumY := filter.ColumnWeights(yfiltval, f.FY, radj, yratio, fracY)

		for i, x := 0, tile.XBegin; x < tile.XEnd; i, x = i+1, x+1 {
			acc.Reset()
			if rawSumXAll[i] != 0 && rawSumY != 0 {
				xfiltval := xfiltvalAll[i]
				srcX := srcXAll[i]
				for j := -radj; j <= radj; j++ {
					wy := yfiltval[j+radj]
					if wy == 0 {
						continue
					}
					sy := srcY + j
					for k := 0; k < xtaps; k++ {
						w := wy * xfiltval[k]
						if w == 0 {
							continue
						}
						sx := srcX - radi + k
						for c := 0; c < nc; c++ {
							acc.Add(c, w, src.AtWrapped(sx, sy, c, roi.WrapClamp))
						}
					}
				}
			}
			if rawSumY == 0 {
				for c := 0; c < nc; c++ {
					dst.Set(x, y, c, 0)
				}
			} else {
				for c := 0; c < nc; c++ {
					dst.Set(x, y, c, acc.Get(c))
				}
			}
		}
	}
}
