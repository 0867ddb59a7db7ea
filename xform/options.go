// Package xform implements the public driver functions -- resize, warp,
// resample, rotate, fit -- that compose filter acquisition, destination
// allocation, and tiled parallel dispatch over the kernels in the kernel
// package.
package xform

import (
	"github.com/adriansahlman/imgxform/roi"
)

// Options carries the common parameters shared by the driver functions.
// The zero value is the documented default for every driver:
// ROI undefined (use the per-driver default), NThreads 0 (use
// pscan.DefaultWorkers), Wrap WrapBlack, RecomputeROI/EdgeClamp/Interpolate
// false, FillMode "" (coerces to "letterbox"), Exact false.
type Options struct {
	ROI          roi.ROI
	NThreads     int
	Wrap         roi.Wrap
	RecomputeROI bool
	EdgeClamp    bool

	// Interpolate selects bilinear (true) over nearest (false) for Resample.
	Interpolate bool

	// FillMode and Exact are consumed only by Fit.
	FillMode string
	Exact    bool

	// Progress, if non-nil, receives short status messages as a driver
	// runs (debugging aid, mirrors fpresize.FPObject.SetProgressCallback;
	// a driver that never calls it is a no-op).
	Progress func(msg string)
}

// progress calls opts.Progress with msg if a callback was supplied.
func (o Options) progress(msg string) {
	if o.Progress != nil {
		o.Progress(msg)
	}
}
