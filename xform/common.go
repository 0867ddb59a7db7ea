package xform

import (
	"fmt"

	"github.com/adriansahlman/imgxform/imagebuf"
	"github.com/adriansahlman/imgxform/pscan"
	"github.com/adriansahlman/imgxform/roi"
)

// effectiveROI resolves the ROI a driver actually iterates over: the
// caller-supplied opts.ROI if defined, else dst's full window, clamped in
// both cases to dst's channel count.
func effectiveROI(dst *imagebuf.Image, opts Options) roi.ROI {
	r := opts.ROI
	if !r.Defined() {
		r = dst.FullRect()
	}
	return r.ClampChannels(dst.NChannels())
}

// checkChannels reports a preparation failure if dst and src disagree on
// channel count after ROI clamping would not resolve it -- i.e. if dst was
// already initialized with a channel count src cannot supply. Matching
// channel counts is otherwise guaranteed by allocateLike when dst is newly
// allocated.
func checkChannels(dst, src *imagebuf.Image) error {
	if dst.NChannels() > src.NChannels() {
		return fmt.Errorf("%w: destination has %d channels, source has %d", ErrPreparationFailed, dst.NChannels(), src.NChannels())
	}
	return nil
}

func checkNotDeep(src *imagebuf.Image, op string) error {
	if src.Deep() {
		return fmt.Errorf("%w: %s does not support deep sources", ErrPreparationFailed, op)
	}
	return nil
}

func dispatch(r roi.ROI, opts Options, fn func(sub roi.ROI)) {
	opts.progress(fmt.Sprintf("dispatching %dx%d pixels", r.Width(), r.Height()))
	pscan.Rows(r, opts.NThreads, fn)
	opts.progress("dispatch complete")
}
