package xform

import (
	"fmt"
	"math"

	"github.com/adriansahlman/imgxform/filter"
	"github.com/adriansahlman/imgxform/imagebuf"
	"github.com/adriansahlman/imgxform/roi"
)

// Fit places src into dst's fit rect preserving aspect ratio. The fit
// rect is opts.ROI if defined, else dst's full window (dst
// must then already be initialized). opts.FillMode selects "letterbox"
// (default), "width", or "height"; opts.Exact selects a single subpixel
// warp (true) over an integer-pixel resize-plus-placement (false).
func Fit(dst, src *imagebuf.Image, f *filter.Filter2D, opts Options) (bool, error) {
	warpFn := func(d *imagebuf.Image, m roi.Matrix3, o Options) (bool, error) { return Warp(d, src, m, f, o) }
	resizeFn := func(d *imagebuf.Image, o Options) (bool, error) { return Resize(d, src, f, o) }
	return fit(dst, src, warpFn, resizeFn, opts)
}

// FitNamed is Fit's filter-name flavor.
func FitNamed(dst, src *imagebuf.Image, filterName string, filterWidth float64, opts Options) (bool, error) {
	warpFn := func(d *imagebuf.Image, m roi.Matrix3, o Options) (bool, error) {
		return WarpNamed(d, src, m, filterName, filterWidth, o)
	}
	resizeFn := func(d *imagebuf.Image, o Options) (bool, error) {
		return ResizeNamed(d, src, filterName, filterWidth, o)
	}
	return fit(dst, src, warpFn, resizeFn, opts)
}

// FitResult allocates and returns a new destination sized by opts.ROI
// (the fit rect, which must be defined) and fits src into it.
func FitResult(src *imagebuf.Image, f *filter.Filter2D, opts Options) *imagebuf.Image {
	dst := &imagebuf.Image{}
	if ok, _ := Fit(dst, src, f, opts); !ok {
		dst.SetErrorDefault("FitResult")
	}
	return dst
}

// FitResultNamed is FitResult's filter-name flavor.
func FitResultNamed(src *imagebuf.Image, filterName string, filterWidth float64, opts Options) *imagebuf.Image {
	dst := &imagebuf.Image{}
	if ok, _ := FitNamed(dst, src, filterName, filterWidth, opts); !ok {
		dst.SetErrorDefault("FitResultNamed")
	}
	return dst
}

func fitRect(dst *imagebuf.Image, opts Options) (roi.ROI, error) {
	r := opts.ROI
	if r.Defined() {
		return r, nil
	}
	if dst.Initialized() {
		return dst.FullRect(), nil
	}
	return roi.ROI{}, ErrUninitializedDestination
}

// fit implements the exact/approximate fit policy in terms of the caller's
// already-bound warp/resize closures (which differ only in whether they
// resolve their filter by pointer or by name), so the placement math below
// is written exactly once.
func fit(dst, src *imagebuf.Image, warpFn func(*imagebuf.Image, roi.Matrix3, Options) (bool, error), resizeFn func(*imagebuf.Image, Options) (bool, error), opts Options) (bool, error) {
	fr, err := fitRect(dst, opts)
	if err != nil {
		return fail(dst, "fit", err)
	}
	opts.progress(fmt.Sprintf("fitting into %dx%d", fr.Width(), fr.Height()))
	fitX, fitY := fr.XBegin, fr.YBegin
	fitw, fith := float64(fr.Width()), float64(fr.Height())
	srcfw, srcfh := float64(src.FullWidth()), float64(src.FullHeight())

	resizeW, resizeH, xoffset, yoffset, scale, xoff, yoff := fitPlacement(fitw, fith, srcfw, srcfh, opts.FillMode)

	if opts.Exact {
		fitROI := roi.New(fitX, fitX+fr.Width(), fitY, fitY+fr.Height(), src.NChannels())
		if !dst.Initialized() {
			*dst = *imagebuf.New(src.Format(), src.NChannels(), fitROI, fitROI)
		}
		m := roi.Matrix3{
			{scale, 0, 0},
			{0, scale, 0},
			{xoff, yoff, 1},
		}
		warpOpts := Options{NThreads: opts.NThreads, Wrap: roi.WrapBlack, EdgeClamp: true, RecomputeROI: false, Progress: opts.Progress}
		return warpFn(dst, m, warpOpts)
	}

	resizeRect := roi.New(0, resizeW, 0, resizeH, src.NChannels())
	content := imagebuf.New(src.Format(), src.NChannels(), resizeRect, resizeRect)
	if resizeW == src.FullWidth() && resizeH == src.FullHeight() {
		copyPixels(content, src)
	} else if ok, rerr := resizeFn(content, Options{NThreads: opts.NThreads, Progress: opts.Progress}); !ok {
		return fail(dst, "fit", rerr)
	}

	*dst = *content
	dst.SetFullRect(fitX, fitY, fr.Width(), fr.Height())
	dst.SetDataOrigin(fitX+int(math.Round(xoffset)), fitY+int(math.Round(yoffset)))
	return true, nil
}

// copyPixels copies src into dst, which must share dst's data-window
// dimensions with src's (the fit "no resize needed" fast path).
func copyPixels(dst, src *imagebuf.Image) {
	nc := dst.NChannels()
	sdr := src.DataRect()
	ddr := dst.DataRect()
	for y := 0; y < ddr.Height(); y++ {
		for x := 0; x < ddr.Width(); x++ {
			for c := 0; c < nc; c++ {
				dst.Set(ddr.XBegin+x, ddr.YBegin+y, c, src.At(sdr.XBegin+x, sdr.YBegin+y, c))
			}
		}
	}
}

// fitPlacement derives the fit geometry: which fill mode governs, the
// integer resize window that mode implies, the integer
// placement offset for that window within the fit rect, and the
// subpixel scale/offset pair used by the exact=true warp path.
func fitPlacement(fitw, fith, srcfw, srcfh float64, fillmode string) (resizeW, resizeH int, xoffset, yoffset, scale, xoff, yoff float64) {
	oldaspect := srcfw / srcfh
	newaspect := fitw / fith

	mode := fillmode
	if mode != "width" && mode != "height" {
		mode = "letterbox"
	}
	if mode == "letterbox" {
		if newaspect >= oldaspect {
			mode = "height"
		} else {
			mode = "width"
		}
	}

	if mode == "height" {
		scale = fith / srcfh
		resizeWf := math.Round(fith * oldaspect)
		resizeW, resizeH = int(resizeWf), int(fith)
		xoffset = (fitw - resizeWf) / 2
		yoffset = 0
		xoff = (fitw - scale*srcfw) / 2
		yoff = 0
		return
	}

	scale = fitw / srcfw
	resizeHf := math.Round(fitw / oldaspect)
	resizeW, resizeH = int(fitw), int(resizeHf)
	yoffset = (fith - resizeHf) / 2
	xoffset = 0
	yoff = (fith - scale*srcfh) / 2
	xoff = 0
	return
}
