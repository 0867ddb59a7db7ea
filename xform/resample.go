package xform

import (
	"github.com/adriansahlman/imgxform/imagebuf"
	"github.com/adriansahlman/imgxform/kernel"
	"github.com/adriansahlman/imgxform/roi"
)

// Resample point-samples src into dst, nearest-neighbor or bilinear
// depending on opts.Interpolate. Unlike Resize/Warp there is
// no filter to acquire. Deep sources are supported: the per-pixel sample
// count is propagated in a single-threaded pre-pass before the parallel
// copy, because deep sample storage is not safely concurrently growable.
func Resample(dst, src *imagebuf.Image, opts Options) (bool, error) {
	if err := ensureAllocated(dst, src, opts); err != nil {
		return fail(dst, "Resample", err)
	}
	if err := checkChannels(dst, src); err != nil {
		return fail(dst, "Resample", err)
	}

	r := effectiveROI(dst, opts)

	if src.Deep() {
		if !dst.Deep() {
			return fail(dst, "Resample", ErrPreparationFailed)
		}
		opts.progress("preallocating deep samples")
		kernel.PreallocateDeepSamples(dst, src, r)
		uintChannels := uintChannelMask(src)
		dispatch(r, opts, func(sub roi.ROI) {
			kernel.ResampleDeep(dst, src, sub, uintChannels)
		})
		return true, nil
	}

	dispatch(r, opts, func(sub roi.ROI) {
		kernel.Resample(dst, src, sub, opts.Interpolate)
	})
	return true, nil
}

// ResampleResult allocates and returns a new destination sized by opts.ROI
// (or by src's full window when opts.ROI is undefined) and resamples src
// into it.
func ResampleResult(src *imagebuf.Image, opts Options) *imagebuf.Image {
	r := opts.ROI
	if !r.Defined() {
		r = src.FullRect()
	}
	var dst *imagebuf.Image
	if src.Deep() {
		dst = imagebuf.NewDeep(src.Format(), src.NChannels(), r, r)
	} else {
		dst = imagebuf.New(src.Format(), src.NChannels(), r, r)
	}
	if ok, _ := Resample(dst, src, opts); !ok {
		dst.SetErrorDefault("ResampleResult")
	}
	return dst
}

// uintChannelMask reports, per channel, whether that channel should round
// through the integer-preserving deep accessor rather than the float one.
// Channel format is image-wide in this model (one format per image), so
// the mask is uniform: all channels if the image is stored as 32-bit
// unsigned, none otherwise.
func uintChannelMask(im *imagebuf.Image) []bool {
	if im.Format() != imagebuf.FormatUint32 {
		return nil
	}
	mask := make([]bool, im.NChannels())
	for i := range mask {
		mask[i] = true
	}
	return mask
}
