package filter

import "math"

// Radii computes the integer filter radius on each axis for a given pair of
// size ratios (dst/src):
//
//	radi = ceil(filter.w/2 / xratio)
//	radj = ceil(filter.h/2 / yratio)
func Radii(f *Filter2D, xratio, yratio float64) (radi, radj int) {
	radi = int(math.Ceil(f.W / 2 / xratio))
	radj = int(math.Ceil(f.H / 2 / yratio))
	return
}

// Taps returns the number of taps spanned by radius rad: 2*rad+1.
func Taps(rad int) int {
	return 2*rad + 1
}

// ColumnWeights computes and normalizes the per-tap weight table for one
// axis of a separable filter:
//
//	w_i = fx(ratio * (i - rad - (frac - 0.5)))   for i in [0, 2*rad]
//
// normalized by the raw sum of the 2*rad+1 weights, unless that raw sum is
// zero (in which case the table is left unnormalized -- the caller treats
// an all-zero-sum table as "this row/column contributes nothing", per the
// zero-weight law).
//
// out must have length Taps(rad); it is filled in place and its raw sum is
// returned alongside it so callers can detect the zero-sum case without a
// second pass.
func ColumnWeights(out []float64, fx func(float64) float64, rad int, ratio, frac float64) (rawSum float64) {
	taps := Taps(rad)
	for i := 0; i < taps; i++ {
		w := fx(ratio * (float64(i) - float64(rad) - (frac - 0.5)))
		out[i] = w
		rawSum += w
	}
	if rawSum != 0 {
		for i := 0; i < taps; i++ {
			out[i] /= rawSum
		}
	}
	return rawSum
}
