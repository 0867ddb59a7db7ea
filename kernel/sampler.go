// Package kernel implements the numeric cores of the transform engine: the
// filtered sampler used by warp, the separable and non-separable resize
// kernels, and the nearest/bilinear resample kernel (with its deep-image
// variant). Everything here is pure, allocation-light per call, and safe to
// invoke concurrently from disjoint sub-ROIs -- no kernel function here
// retains state across calls.
package kernel

import (
	"math"

	"github.com/adriansahlman/imgxform/filter"
	"github.com/adriansahlman/imgxform/imagebuf"
	"github.com/adriansahlman/imgxform/roi"
)

// FilteredSample computes one destination pixel's filtered, normalized
// average over src, given the destination pixel's mapped source coordinate
// (s,t) and its analytic partial derivatives (dsdx,dtdx,dsdy,dtdy). result
// is overwritten with up to len(result) channels; if src has fewer
// channels than result, only src.NChannels() of result is written.
func FilteredSample(src *imagebuf.Image, s, t, dsdx, dtdx, dsdy, dtdy float64, f *filter.Filter2D, wrap roi.Wrap, edgeclamp bool, result []float64) {
	ds := math.Max(1.0, math.Max(math.Abs(dsdx), math.Abs(dsdy)))
	dt := math.Max(1.0, math.Max(math.Abs(dtdx), math.Abs(dtdy)))
	dsInv := 1.0 / ds
	dtInv := 1.0 / dt

	filterradS := 0.5 * ds * f.W
	filterradT := 0.5 * dt * f.H
	smin := int(math.Floor(s - filterradS))
	smax := int(math.Ceil(s + filterradS))
	tmin := int(math.Floor(t - filterradT))
	tmax := int(math.Ceil(t + filterradT))

	if edgeclamp {
		dr := src.DataRect()
		smin = clampInt(smin, dr.XBegin, dr.XEnd)
		smax = clampInt(smax, dr.XBegin, dr.XEnd)
		tmin = clampInt(tmin, dr.YBegin, dr.YEnd)
		tmax = clampInt(tmax, dr.YBegin, dr.YEnd)
	}

	nc := src.NChannels()
	if len(result) < nc {
		nc = len(result)
	}
	for c := 0; c < nc; c++ {
		result[c] = 0
	}
	sum := make([]float64, nc)
	totalW := 0.0

	for y := tmin; y < tmax; y++ {
		for x := smin; x < smax; x++ {
			w := f.Eval(dsInv*(float64(x)+0.5-s), dtInv*(float64(y)+0.5-t))
			if w == 0 {
				continue
			}
			for c := 0; c < nc; c++ {
				sum[c] += w * src.AtWrapped(x, y, c, wrap)
			}
			totalW += w
		}
	}

	if totalW > 0 {
		for c := 0; c < nc; c++ {
			result[c] = sum[c] / totalW
		}
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
