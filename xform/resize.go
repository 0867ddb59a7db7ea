package xform

import (
	"github.com/adriansahlman/imgxform/filter"
	"github.com/adriansahlman/imgxform/imagebuf"
	"github.com/adriansahlman/imgxform/kernel"
	"github.com/adriansahlman/imgxform/roi"
)

// Resize scales src into dst under f (caller-owned; not disposed here).
// dst must be a non-nil pointer; if the Image it
// points to is uninitialized, opts.ROI must be defined and is used as both
// the destination's full and data window. The ratio driving filter-footprint
// stretching is always dst's full window over src's full window,
// regardless of which sub-region of that full window opts.ROI restricts
// processing to. If f is nil, the "last resort" triangle fallback is used,
// widened by the `2*max(1,ratio)` rule. Returns false and a non-nil
// error (also recorded on dst) on preparation failure.
func Resize(dst, src *imagebuf.Image, f *filter.Filter2D, opts Options) (bool, error) {
	return resize(dst, src, filter.Borrow(f), opts)
}

// ResizeNamed is Resize's filter-name flavor: the catalog filter named
// filterName (or the ratio-appropriate default when filterName is "") is
// constructed, used, and implicitly released.
func ResizeNamed(dst, src *imagebuf.Image, filterName string, filterWidth float64, opts Options) (bool, error) {
	if err := ensureAllocated(dst, src, opts); err != nil {
		return fail(dst, "ResizeNamed", err)
	}
	xratio, yratio := fullRatios(dst, src)
	owned, err := resolveNamedFilter(filterName, filterWidth, xratio, yratio)
	if err != nil {
		return fail(dst, "ResizeNamed", err)
	}
	return resize(dst, src, owned, opts)
}

// ResizeResult allocates and returns a new destination sized by opts.ROI
// (or by src's full window when opts.ROI is undefined) and resizes src
// into it.
func ResizeResult(src *imagebuf.Image, f *filter.Filter2D, opts Options) *imagebuf.Image {
	dst := resultDestination(src, opts)
	if ok, _ := Resize(dst, src, f, opts); !ok {
		dst.SetErrorDefault("ResizeResult")
	}
	return dst
}

// ResizeResultNamed is ResizeResult's filter-name flavor.
func ResizeResultNamed(src *imagebuf.Image, filterName string, filterWidth float64, opts Options) *imagebuf.Image {
	dst := resultDestination(src, opts)
	if ok, _ := ResizeNamed(dst, src, filterName, filterWidth, opts); !ok {
		dst.SetErrorDefault("ResizeResultNamed")
	}
	return dst
}

func resultDestination(src *imagebuf.Image, opts Options) *imagebuf.Image {
	r := opts.ROI
	if !r.Defined() {
		r = src.FullRect()
	}
	return imagebuf.New(src.Format(), src.NChannels(), r, r)
}

// ensureAllocated allocates *dst in place (same format/channels as src,
// full and data window from opts.ROI) when dst is uninitialized. No-op when
// dst is already initialized.
func ensureAllocated(dst, src *imagebuf.Image, opts Options) error {
	if dst.Initialized() {
		return nil
	}
	if !opts.ROI.Defined() {
		return ErrUninitializedDestination
	}
	*dst = *imagebuf.New(src.Format(), src.NChannels(), opts.ROI, opts.ROI)
	return nil
}

// fullRatios returns the per-axis dst-full-window/src-full-window size
// ratio used throughout the footprint math.
func fullRatios(dst, src *imagebuf.Image) (xratio, yratio float64) {
	return float64(dst.FullWidth()) / float64(src.FullWidth()),
		float64(dst.FullHeight()) / float64(src.FullHeight())
}

func resize(dst, src *imagebuf.Image, owned filter.Owner, opts Options) (bool, error) {
	if err := checkNotDeep(src, "resize"); err != nil {
		return fail(dst, "resize", err)
	}
	if err := ensureAllocated(dst, src, opts); err != nil {
		return fail(dst, "resize", err)
	}
	if err := checkChannels(dst, src); err != nil {
		return fail(dst, "resize", err)
	}

	f := owned.Get()
	if f == nil {
		xratio, yratio := fullRatios(dst, src)
		f = filter.TriangleFallback(xratio, yratio)
	}

	r := effectiveROI(dst, opts)
	dispatch(r, opts, func(sub roi.ROI) {
		if f.Separable {
			kernel.SeparableResize(dst, src, f, sub)
		} else {
			kernel.NonseparableResize(dst, src, f, sub)
		}
	})
	return true, nil
}

func resolveNamedFilter(filterName string, filterWidth, xratio, yratio float64) (filter.Owner, error) {
	name := filterName
	if name == "" {
		name = filter.DefaultResizeFilterName(xratio, yratio)
	}
	f, err := filter.CreateStretched(name, filterWidth, xratio, yratio)
	if err != nil {
		return filter.Owner{}, joinUnknownFilter(err)
	}
	return filter.Own(f), nil
}
