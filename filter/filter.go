// Package filter implements the Filter2D reconstruction-kernel type, a
// catalog of named filters linear-scanned by name, and the
// filter-footprint/tap-generator math shared by resize and warp.
//
// The catalog's separable members wrap 1-D kernels from
// github.com/disintegration/imaging's ResampleFilter set -- the same
// filters bmpx.computeWeights consumes -- applied isotropically on both
// axes to build a 2-D Filter2D. The catalog's one non-separable member,
// "disk", is a circular box filter in the same family, added so the
// non-separable resize/sample code paths have a real filter to exercise.
package filter

import (
	"fmt"
	"math"

	"github.com/disintegration/imaging"
)

// Filter2D is a sampled 2D reconstruction kernel: a name, a support (w,h)
// in source pixels, a separability flag, and evaluators f(x,y), fx(x),
// fy(y). Evaluators may return negative weights for filters with negative
// lobes. FX/FY are nil for a non-separable filter.
type Filter2D struct {
	Name      string
	W, H      float64
	Separable bool
	F         func(x, y float64) float64
	FX        func(x float64) float64
	FY        func(y float64) float64
}

// Width returns the filter's support width in source pixels.
func (f *Filter2D) Width() float64 { return f.W }

// Height returns the filter's support height in source pixels.
func (f *Filter2D) Height() float64 { return f.H }

// Eval evaluates the 2D filter at (x,y). For a separable filter this is
// fx(x)*fy(y); for a non-separable filter it calls F directly.
func (f *Filter2D) Eval(x, y float64) float64 {
	if f.Separable {
		return f.FX(x) * f.FY(y)
	}
	return f.F(x, y)
}

type catalogEntry struct {
	name      string
	defaultW  float64
	defaultH  float64
	separable bool
	make      func(w, h float64) *Filter2D
}

func fromResampleFilter(name string, rf imaging.ResampleFilter) catalogEntry {
	support := 2 * rf.Support // imaging.Support is a one-sided radius; our
	// width/height is the full two-sided support (e.g. lanczos3 has width
	// 6, not 3).
	return catalogEntry{
		name:      name,
		defaultW:  support,
		defaultH:  support,
		separable: true,
		make: func(w, h float64) *Filter2D {
			// The kernel itself is expressed in units of the one-sided
			// radius; rescale the argument so a caller-widened filter
			// (for minification) stretches the same kernel shape
			// rather than just changing its reported width.
			sx := w / support
			sy := h / support
			return &Filter2D{
				Name: name, W: w, H: h, Separable: true,
				FX: func(x float64) float64 { return rf.Kernel(x / sx) },
				FY: func(y float64) float64 { return rf.Kernel(y / sy) },
			}
		},
	}
}

func diskEntry() catalogEntry {
	const support = 2.0 // diameter 2 at default width, radius 1
	return catalogEntry{
		name: "disk", defaultW: support, defaultH: support, separable: false,
		make: func(w, h float64) *Filter2D {
			rx, ry := w/2, h/2
			return &Filter2D{
				Name: "disk", W: w, H: h, Separable: false,
				F: func(x, y float64) float64 {
					nx, ny := x/rx, y/ry
					if nx*nx+ny*ny <= 1.0 {
						return 1.0
					}
					return 0.0
				},
			}
		},
	}
}

var catalog = []catalogEntry{
	fromResampleFilter("box", imaging.Box),
	fromResampleFilter("triangle", imaging.Linear),
	fromResampleFilter("hermite", imaging.Hermite),
	fromResampleFilter("gaussian", imaging.Gaussian),
	fromResampleFilter("mitchell", imaging.MitchellNetravali),
	fromResampleFilter("catmull-rom", imaging.CatmullRom),
	fromResampleFilter("b-spline", imaging.BSpline),
	fromResampleFilter("bartlett", imaging.Bartlett),
	fromResampleFilter("hann", imaging.Hann),
	fromResampleFilter("hamming", imaging.Hamming),
	fromResampleFilter("blackman-harris", imaging.Blackman), // imaging.Blackman is a plain Blackman window, not Blackman-Harris
	fromResampleFilter("welch", imaging.Welch),
	fromResampleFilter("cosine", imaging.Cosine),
	fromResampleFilter("lanczos3", lanczos3Filter()),
	diskEntry(),
}

// lanczos3Filter builds a Lanczos kernel with 3 lobes (imaging.Lanczos is
// already lobes=3, support=3, kept as its own helper in case a caller wants
// a different lobe count added to the catalog later).
func lanczos3Filter() imaging.ResampleFilter {
	return imaging.Lanczos
}

// Names returns the catalog's filter names, in scan order.
func Names() []string {
	names := make([]string, len(catalog))
	for i, e := range catalog {
		names[i] = e.name
	}
	return names
}

// Create builds a named filter. If width or height is <= 0, the filter's
// cataloged default support is used for that axis. Filter lookup is a
// case-sensitive linear scan; a name that doesn't match any catalog entry
// is reported as an error.
func Create(name string, width, height float64) (*Filter2D, error) {
	for _, e := range catalog {
		if e.name != name {
			continue
		}
		w, h := width, height
		if w <= 0 {
			w = e.defaultW
		}
		if h <= 0 {
			h = e.defaultH
		}
		return e.make(w, h), nil
	}
	return nil, fmt.Errorf("filter %q not recognized", name)
}

// CreateStretched is like Create, but when no explicit width is given it
// widens the cataloged default by max(1,ratio) per axis, the same rule as
// the last-resort triangle fallback's width: a ratio above 1 (upsampling)
// widens the filter, while a ratio of 1 or below leaves the cataloged
// default unchanged. Used by resize's filter-name path.
func CreateStretched(name string, width float64, xratio, yratio float64) (*Filter2D, error) {
	for _, e := range catalog {
		if e.name != name {
			continue
		}
		w, h := width, width
		if w <= 0 {
			w = e.defaultW * math.Max(1, xratio)
			h = e.defaultH * math.Max(1, yratio)
		}
		return e.make(w, h), nil
	}
	return nil, fmt.Errorf("filter %q not recognized", name)
}

// DefaultResizeFilterName returns "lanczos3" when neither axis is being
// minified (upsampling or 1:1), else "blackman-harris".
func DefaultResizeFilterName(xratio, yratio float64) string {
	if xratio < 1.0 || yratio < 1.0 {
		return "blackman-harris"
	}
	return "lanczos3"
}

// TriangleFallback builds the "last resort" triangle filter used when no
// filter is supplied at all, with width 2*max(1,ratio) per axis.
func TriangleFallback(xratio, yratio float64) *Filter2D {
	f, _ := Create("triangle", 2*math.Max(1, xratio), 2*math.Max(1, yratio))
	return f
}
