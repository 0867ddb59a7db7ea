package kernel

import (
	"math"

	"github.com/adriansahlman/imgxform/imagebuf"
	"github.com/adriansahlman/imgxform/roi"
)

// srcCoord maps destination pixel (x,y) to source-space float coordinates.
func srcCoord(dst, src *imagebuf.Image, x, y int) (srcXf, srcYf float64) {
	dstfx, dstfy := float64(dst.FullX()), float64(dst.FullY())
	dstfw, dstfh := float64(dst.FullWidth()), float64(dst.FullHeight())
	srcfx, srcfy := float64(src.FullX()), float64(src.FullY())
	srcfw, srcfh := float64(src.FullWidth()), float64(src.FullHeight())

	s := (float64(x) - dstfx + 0.5) / dstfw
	t := (float64(y) - dstfy + 0.5) / dstfh
	return srcfx + s*srcfw, srcfy + t*srcfh
}

// Resample copies src into dst over tile. interpolate=false
// is nearest-neighbor; interpolate=true is 2x2 bilinear. Both read
// out-of-source coordinates under WrapClamp, independent of any public wrap
// setting, matching the resize kernels. Deep sample lists are not read
// here; deep sources go through ResampleDeep instead.
func Resample(dst, src *imagebuf.Image, tile roi.ROI, interpolate bool) {
	nc := dst.NChannels()
	for y := tile.YBegin; y < tile.YEnd; y++ {
		for x := tile.XBegin; x < tile.XEnd; x++ {
			srcXf, srcYf := srcCoord(dst, src, x, y)
			if !interpolate {
				sx := int(math.Floor(srcXf))
				sy := int(math.Floor(srcYf))
				for c := 0; c < nc; c++ {
					dst.Set(x, y, c, src.AtWrapped(sx, sy, c, roi.WrapClamp))
				}
				continue
			}

			sx0 := int(math.Floor(srcXf - 0.5))
			sy0 := int(math.Floor(srcYf - 0.5))
			fx := (srcXf - 0.5) - float64(sx0)
			fy := (srcYf - 0.5) - float64(sy0)
			for c := 0; c < nc; c++ {
				v00 := src.AtWrapped(sx0, sy0, c, roi.WrapClamp)
				v10 := src.AtWrapped(sx0+1, sy0, c, roi.WrapClamp)
				v01 := src.AtWrapped(sx0, sy0+1, c, roi.WrapClamp)
				v11 := src.AtWrapped(sx0+1, sy0+1, c, roi.WrapClamp)
				top := v00 + fx*(v10-v00)
				bot := v01 + fx*(v11-v01)
				dst.Set(x, y, c, top+fy*(bot-top))
			}
		}
	}
}

// PreallocateDeepSamples is the serial pre-pass required before
// ResampleDeep's parallel copy: for every destination pixel it reads the
// deep sample count of the nearest source pixel (under WrapClamp) and
// allocates that many samples on dst. This must run single-threaded over
// the whole destination ROI before any concurrent call to ResampleDeep,
// because imagebuf.Image.SetDeepSamples is not safe to call concurrently
// across pixels.
func PreallocateDeepSamples(dst, src *imagebuf.Image, full roi.ROI) {
	dr := src.DataRect()
	for y := full.YBegin; y < full.YEnd; y++ {
		for x := full.XBegin; x < full.XEnd; x++ {
			srcXf, srcYf := srcCoord(dst, src, x, y)
			sx := clampInt(int(math.Floor(srcXf)), dr.XBegin, dr.XEnd-1)
			sy := clampInt(int(math.Floor(srcYf)), dr.YBegin, dr.YEnd-1)
			n := src.DeepSamples(sx, sy)
			dst.SetDeepSamples(x, y, n)
		}
	}
}

// ResampleDeep copies deep samples for tile, after PreallocateDeepSamples
// has already run over the full destination ROI. uintChannels marks which
// channel indices are stored in a 32-bit unsigned format and must round
// through the integer-preserving accessor rather than float64/float32.
// If a destination pixel's sample count still disagrees with its nearest
// source pixel's after the pre-pass, that pixel is skipped.
func ResampleDeep(dst, src *imagebuf.Image, tile roi.ROI, uintChannels []bool) {
	nc := dst.NChannels()
	dr := src.DataRect()
	for y := tile.YBegin; y < tile.YEnd; y++ {
		for x := tile.XBegin; x < tile.XEnd; x++ {
			srcXf, srcYf := srcCoord(dst, src, x, y)
			sx := clampInt(int(math.Floor(srcXf)), dr.XBegin, dr.XEnd-1)
			sy := clampInt(int(math.Floor(srcYf)), dr.YBegin, dr.YEnd-1)

			n := dst.DeepSamples(x, y)
			if n != src.DeepSamples(sx, sy) {
				continue
			}
			for s := 0; s < n; s++ {
				for c := 0; c < nc; c++ {
					if uintChannels != nil && c < len(uintChannels) && uintChannels[c] {
						dst.SetDeepValueUint(x, y, c, s, src.DeepValueUint(sx, sy, c, s))
					} else {
						dst.SetDeepValue(x, y, c, s, src.DeepValue(sx, sy, c, s))
					}
				}
			}
		}
	}
}
