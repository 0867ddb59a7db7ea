package xform

import (
	"github.com/adriansahlman/imgxform/dual"
	"github.com/adriansahlman/imgxform/filter"
	"github.com/adriansahlman/imgxform/imagebuf"
	"github.com/adriansahlman/imgxform/kernel"
	"github.com/adriansahlman/imgxform/roi"
)

// Warp maps src into dst through the 3x3 projective matrix m (src -> dst,
// in the row-vector convention; the sampler internally uses m's inverse to
// walk from each destination pixel back to source space).
// f is caller-owned. If dst is uninitialized, opts.ROI must be defined, or
// opts.RecomputeROI must be set (in which case the destination's full
// window is derived by projecting src's full window through m).
// If f is nil, a ratio-stretched triangle fallback is used.
func Warp(dst, src *imagebuf.Image, m roi.Matrix3, f *filter.Filter2D, opts Options) (bool, error) {
	return warp(dst, src, m, filter.Borrow(f), opts)
}

// WarpNamed is Warp's filter-name flavor; filterName "" defaults to
// "lanczos3" (warp's default filter does not depend on ratio,
// unlike resize's).
func WarpNamed(dst, src *imagebuf.Image, m roi.Matrix3, filterName string, filterWidth float64, opts Options) (bool, error) {
	name := filterName
	if name == "" {
		name = "lanczos3"
	}
	f, err := filter.Create(name, filterWidth, filterWidth)
	if err != nil {
		return fail(dst, "WarpNamed", joinUnknownFilter(err))
	}
	return warp(dst, src, m, filter.Own(f), opts)
}

// WarpResult allocates and returns a new destination and warps src into it.
// opts.ROI or opts.RecomputeROI must resolve a destination size.
func WarpResult(src *imagebuf.Image, m roi.Matrix3, f *filter.Filter2D, opts Options) *imagebuf.Image {
	dst := &imagebuf.Image{}
	if ok, _ := Warp(dst, src, m, f, opts); !ok {
		dst.SetErrorDefault("WarpResult")
	}
	return dst
}

// WarpResultNamed is WarpResult's filter-name flavor.
func WarpResultNamed(src *imagebuf.Image, m roi.Matrix3, filterName string, filterWidth float64, opts Options) *imagebuf.Image {
	dst := &imagebuf.Image{}
	if ok, _ := WarpNamed(dst, src, m, filterName, filterWidth, opts); !ok {
		dst.SetErrorDefault("WarpResultNamed")
	}
	return dst
}

func ensureAllocatedWarp(dst, src *imagebuf.Image, m roi.Matrix3, opts Options) error {
	if dst.Initialized() {
		return nil
	}
	full := opts.ROI
	if !full.Defined() {
		if !opts.RecomputeROI {
			return ErrUninitializedDestination
		}
		full = roi.Transform(m, src.FullRect())
	}
	*dst = *imagebuf.New(src.Format(), src.NChannels(), full, full)
	return nil
}

func warp(dst, src *imagebuf.Image, m roi.Matrix3, owned filter.Owner, opts Options) (bool, error) {
	if err := checkNotDeep(src, "warp"); err != nil {
		return fail(dst, "warp", err)
	}
	if err := ensureAllocatedWarp(dst, src, m, opts); err != nil {
		return fail(dst, "warp", err)
	}
	if err := checkChannels(dst, src); err != nil {
		return fail(dst, "warp", err)
	}

	f := owned.Get()
	if f == nil {
		xratio, yratio := fullRatios(dst, src)
		f = filter.TriangleFallback(xratio, yratio)
	}

	minv := m.Inverse()
	wrap := opts.Wrap
	edgeclamp := opts.EdgeClamp
	nc := dst.NChannels()

	r := effectiveROI(dst, opts)
	dispatch(r, opts, func(sub roi.ROI) {
		result := make([]float64, nc)
		for y := sub.YBegin; y < sub.YEnd; y++ {
			for x := sub.XBegin; x < sub.XEnd; x++ {
				sx, sy := projectDual(minv, float64(x)+0.5, float64(y)+0.5)
				kernel.FilteredSample(src, sx.V, sy.V, sx.Dx, sy.Dx, sx.Dy, sy.Dy, f, wrap, edgeclamp, result)
				for c := 0; c < nc; c++ {
					dst.Set(x, y, c, result[c])
				}
			}
		}
	})
	return true, nil
}

// projectDual projects the point (x,y) through m using dual-number
// arithmetic, so the result carries both the mapped coordinate and its
// analytic partial derivatives with respect to x and y in one pass.
// When the homogeneous coordinate evaluates to 0 at (x,y), the
// projection yields (0,0) with zero derivatives, matching roi.Project's
// plain-float convention.
func projectDual(m roi.Matrix3, x, y float64) (outx, outy dual.Dual2) {
	dx := dual.Var(x, 1, 0)
	dy := dual.Var(y, 0, 1)

	numx := dual.AddScalar(dual.Add(dual.MulScalar(dx, m[0][0]), dual.MulScalar(dy, m[1][0])), m[2][0])
	numy := dual.AddScalar(dual.Add(dual.MulScalar(dx, m[0][1]), dual.MulScalar(dy, m[1][1])), m[2][1])
	denom := dual.AddScalar(dual.Add(dual.MulScalar(dx, m[0][2]), dual.MulScalar(dy, m[1][2])), m[2][2])

	if denom.V == 0 {
		return dual.Const(0), dual.Const(0)
	}
	return dual.Div(numx, denom), dual.Div(numy, denom)
}
