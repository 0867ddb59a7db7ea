package xform_test

import (
	"math"
	"testing"

	"github.com/adriansahlman/imgxform/filter"
	"github.com/adriansahlman/imgxform/imagebuf"
	"github.com/adriansahlman/imgxform/roi"
	"github.com/adriansahlman/imgxform/xform"
	"github.com/stretchr/testify/require"
)

func gradient(w, h, nc int) *imagebuf.Image {
	r := roi.New(0, w, 0, h, nc)
	im := imagebuf.New(imagebuf.FormatFloat64, nc, r, r)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			for c := 0; c < nc; c++ {
				im.Set(x, y, c, float64(x+y*w+c))
			}
		}
	}
	return im
}

func fillConst(im *imagebuf.Image, v float64) {
	dr := im.DataRect()
	for y := dr.YBegin; y < dr.YEnd; y++ {
		for x := dr.XBegin; x < dr.XEnd; x++ {
			for c := 0; c < im.NChannels(); c++ {
				im.Set(x, y, c, v)
			}
		}
	}
}

// an identity warp with a wide-enough filter support
// reproduces the source exactly for pixels away from the border.
func TestInvariantIdentityWarp(t *testing.T) {
	src := gradient(20, 20, 1)
	dstRect := roi.New(0, 20, 0, 20, 1)
	dst := imagebuf.New(imagebuf.FormatFloat64, 1, dstRect, dstRect)

	f, err := filter.Create("lanczos3", 0, 0)
	require.NoError(t, err)

	ok, err := xform.Warp(dst, src, roi.Identity(), f, xform.Options{EdgeClamp: true})
	require.NoError(t, err)
	require.True(t, ok)

	for y := 5; y < 15; y++ {
		for x := 5; x < 15; x++ {
			require.InDelta(t, src.At(x, y, 0), dst.At(x, y, 0), 1e-6)
		}
	}
}

// resizing to the same full window reproduces the source for
// interior pixels under a symmetric filter.
func TestInvariantIdentityResize(t *testing.T) {
	src := gradient(16, 16, 1)
	dstRect := roi.New(0, 16, 0, 16, 1)
	dst := imagebuf.New(imagebuf.FormatFloat64, 1, dstRect, dstRect)

	f, err := filter.Create("triangle", 0, 0)
	require.NoError(t, err)
	ok, err := xform.Resize(dst, src, f, xform.Options{})
	require.NoError(t, err)
	require.True(t, ok)

	for y := 3; y < 13; y++ {
		for x := 3; x < 13; x++ {
			require.InDelta(t, src.At(x, y, 0), dst.At(x, y, 0), 1e-6)
		}
	}
}

// a filter applied to a constant-color source, fully within
// its interior support, reproduces the same constant in the output.
func TestInvariantFilterNormalizationOnConstantSource(t *testing.T) {
	src := gradient(30, 30, 1)
	fillConst(src, 42.0)
	dstRect := roi.New(0, 10, 0, 10, 1)
	dst := imagebuf.New(imagebuf.FormatFloat64, 1, dstRect, dstRect)

	f, err := filter.Create("blackman-harris", 0, 0)
	require.NoError(t, err)
	ok, err := xform.Resize(dst, src, f, xform.Options{})
	require.NoError(t, err)
	require.True(t, ok)

	for y := 2; y < 8; y++ {
		for x := 2; x < 8; x++ {
			require.InDelta(t, 42.0, dst.At(x, y, 0), 1e-6)
		}
	}
}

// wherever the raw filter-weight sum is zero (here, a point
// warped entirely outside the source with EdgeClamp set, which clips its
// footprint to nothing), every output channel is exactly zero.
func TestInvariantZeroWeightProducesZero(t *testing.T) {
	src := gradient(4, 4, 3)
	fillConst(src, 9)
	dstRect := roi.New(0, 1, 0, 1, 3)
	dst := imagebuf.New(imagebuf.FormatFloat64, 3, dstRect, dstRect)

	f, err := filter.Create("box", 0, 0)
	require.NoError(t, err)
	// translate far away from the source so no sample falls within range.
	m := roi.Translate(1000, 1000)
	ok, err := xform.Warp(dst, src, m, f, xform.Options{Wrap: roi.WrapBlack, EdgeClamp: true})
	require.NoError(t, err)
	require.True(t, ok)

	for c := 0; c < 3; c++ {
		require.Equal(t, 0.0, dst.At(0, 0, c))
	}
}

// resizing then translating by an integer amount equals
// translating then resizing (commutativity of integer-pixel placement).
func TestInvariantTranslationComposition(t *testing.T) {
	src := gradient(12, 12, 1)

	f, err := filter.Create("triangle", 0, 0)
	require.NoError(t, err)

	resizeRect := roi.New(0, 6, 0, 6, 1)
	resized := imagebuf.New(imagebuf.FormatFloat64, 1, resizeRect, resizeRect)
	ok, err := xform.Resize(resized, src, f, xform.Options{})
	require.NoError(t, err)
	require.True(t, ok)
	resized.SetFullRect(3, 5, 6, 6)
	resized.SetDataOrigin(3, 5)

	directRect := roi.New(3, 9, 5, 11, 1)
	direct := imagebuf.New(imagebuf.FormatFloat64, 1, directRect, directRect)
	ok, err = xform.Resize(direct, src, f, xform.Options{})
	require.NoError(t, err)
	require.True(t, ok)

	for y := 5; y < 11; y++ {
		for x := 3; x < 9; x++ {
			require.InDelta(t, resized.At(x, y, 0), direct.At(x, y, 0), 1e-9)
		}
	}
}

// rotating by theta and then by -theta, both with
// RecomputeROI and a wide-support filter, reproduces the source for
// interior pixels.
func TestInvariantRotateRoundTrip(t *testing.T) {
	src := gradient(40, 40, 1)
	f, err := filter.Create("lanczos3", 0, 0)
	require.NoError(t, err)

	mid := xform.WarpResult(src, roi.RotateAbout(0.4, 20, 20), f, xform.Options{RecomputeROI: true, EdgeClamp: true})
	require.False(t, mid.HasError())

	back := xform.WarpResult(mid, roi.RotateAbout(-0.4, 20, 20), f, xform.Options{RecomputeROI: true, EdgeClamp: true})
	require.False(t, back.HasError())

	for y := 15; y < 25; y++ {
		for x := 15; x < 25; x++ {
			require.InDelta(t, src.At(x, y, 0), back.At(x, y, 0), 0.5)
		}
	}
}

// with Exact placement, the warped source rectangle's aspect
// ratio equals the source's own aspect ratio and is centered in the fit
// rect.
func TestInvariantFitExactPreservesAspect(t *testing.T) {
	src := gradient(100, 50, 1)
	fitRect := roi.New(0, 200, 0, 200, 1)
	dst := imagebuf.New(imagebuf.FormatFloat64, 1, fitRect, fitRect)

	f, err := filter.Create("triangle", 0, 0)
	require.NoError(t, err)
	ok, err := xform.Fit(dst, src, f, xform.Options{Exact: true})
	require.NoError(t, err)
	require.True(t, ok)
	// Exact fit keeps dst's full window as the fit rect itself.
	require.Equal(t, 200, dst.FullWidth())
	require.Equal(t, 200, dst.FullHeight())
	// The 2:1 source is scaled by 2 to fill the width, so it spans 100 of
	// the 200 rows, centered (rows 50..149), plus one row of triangle-filter
	// reach on each side; rows 48 and 151 stay black.
	require.Equal(t, 0.0, dst.At(100, 48, 0))
	require.NotEqual(t, 0.0, dst.At(100, 49, 0))
	require.NotEqual(t, 0.0, dst.At(100, 150, 0))
	require.Equal(t, 0.0, dst.At(100, 151, 0))
}

// restricting Resize to a sub-ROI of the destination gives, inside that
// sub-ROI, exactly the pixels of a full-window resize: the filter ratio
// comes from the full windows, not from the ROI. (Separable vs
// non-separable parity is checked in the kernel package's
// TestSeparableAndNonseparableAgreeOnIsotropicFilter.)
func TestInvariantResizeSeparableMatchesRatioIndependentOfROI(t *testing.T) {
	src := gradient(16, 16, 1)
	f, err := filter.Create("triangle", 0, 0)
	require.NoError(t, err)

	fullRect := roi.New(0, 8, 0, 8, 1)
	full := imagebuf.New(imagebuf.FormatFloat64, 1, fullRect, fullRect)
	ok, err := xform.Resize(full, src, f, xform.Options{})
	require.NoError(t, err)
	require.True(t, ok)

	partialRect := roi.New(0, 8, 0, 8, 1)
	partial := imagebuf.New(imagebuf.FormatFloat64, 1, partialRect, partialRect)
	sub := roi.New(2, 6, 2, 6, 1)
	ok, err = xform.Resize(partial, src, f, xform.Options{ROI: sub})
	require.NoError(t, err)
	require.True(t, ok)

	for y := 2; y < 6; y++ {
		for x := 2; x < 6; x++ {
			require.Equal(t, full.At(x, y, 0), partial.At(x, y, 0))
		}
	}
}

// a 4x4 all-ones single-channel source, resized to 2x2 with box or
// triangle, stays all-ones.
func TestScenarioAllOnesResizeStaysOnes(t *testing.T) {
	for _, name := range []string{"box", "triangle"} {
		src := gradient(4, 4, 1)
		fillConst(src, 1)
		f, err := filter.Create(name, 0, 0)
		require.NoError(t, err)

		dstRect := roi.New(0, 2, 0, 2, 1)
		dst := imagebuf.New(imagebuf.FormatFloat64, 1, dstRect, dstRect)
		ok, err := xform.Resize(dst, src, f, xform.Options{})
		require.NoError(t, err)
		require.True(t, ok)

		for y := 0; y < 2; y++ {
			for x := 0; x < 2; x++ {
				require.InDelta(t, 1.0, dst.At(x, y, 0), 1e-6)
			}
		}
	}
}

// a 4x4 source valued x+y, resized to its own size with triangle,
// equals the input.
func TestScenarioLinearRampResizeIdentity(t *testing.T) {
	r := roi.New(0, 4, 0, 4, 1)
	src := imagebuf.New(imagebuf.FormatFloat64, 1, r, r)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, 0, float64(x+y))
		}
	}
	f, err := filter.Create("triangle", 0, 0)
	require.NoError(t, err)
	dst := imagebuf.New(imagebuf.FormatFloat64, 1, r, r)
	ok, err := xform.Resize(dst, src, f, xform.Options{})
	require.NoError(t, err)
	require.True(t, ok)

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			require.InDelta(t, src.At(x, y, 0), dst.At(x, y, 0), 1e-6)
		}
	}
}

// an 8x8 solid-red image warped 90 degrees about its center with
// lanczos3 and WrapBlack stays red in the interior (a quarter turn about
// the center maps the square onto itself).
func TestScenarioSolidColorRotate90(t *testing.T) {
	r := roi.New(0, 8, 0, 8, 3)
	src := imagebuf.New(imagebuf.FormatFloat64, 3, r, r)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			src.Set(x, y, 0, 255)
			src.Set(x, y, 1, 0)
			src.Set(x, y, 2, 0)
		}
	}
	f, err := filter.Create("lanczos3", 0, 0)
	require.NoError(t, err)
	dst := imagebuf.New(imagebuf.FormatFloat64, 3, r, r)
	ok, err := xform.Rotate(dst, src, math.Pi/2, f, xform.Options{Wrap: roi.WrapBlack})
	require.NoError(t, err)
	require.True(t, ok)

	require.InDelta(t, 255.0, dst.At(4, 4, 0), 1.0)
	require.InDelta(t, 0.0, dst.At(4, 4, 1), 1.0)
}

// a 10x10 checkerboard resampled (nearest) to a 5x5 destination picks,
// for each destination pixel, the source pixel under its footprint's
// center -- at this exact 2x downsampling ratio, always the odd-indexed
// source pixel one past the midpoint of its 2x2 block.
func TestScenarioCheckerboardResampleNearest(t *testing.T) {
	r := roi.New(0, 10, 0, 10, 1)
	src := imagebuf.New(imagebuf.FormatFloat64, 1, r, r)
	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			v := 0.0
			if (x+y)%2 == 0 {
				v = 1
			}
			src.Set(x, y, 0, v)
		}
	}
	dstRect := roi.New(0, 5, 0, 5, 1)
	dst := imagebuf.New(imagebuf.FormatFloat64, 1, dstRect, dstRect)
	ok, err := xform.Resample(dst, src, xform.Options{})
	require.NoError(t, err)
	require.True(t, ok)

	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			require.Equal(t, src.At(2*x+1, 2*y+1, 0), dst.At(x, y, 0))
		}
	}
}

// fitting a 100x50 source into a 200x200 letterbox rect with
// exact=false resizes to height 100, offsets by (0,50), and keeps the
// destination's full window at 200x200 with the data window shifted.
func TestScenarioFitLetterboxApprox(t *testing.T) {
	src := gradient(100, 50, 1)
	fitRect := roi.New(0, 200, 0, 200, 1)
	dst := &imagebuf.Image{}

	f, err := filter.Create("triangle", 0, 0)
	require.NoError(t, err)
	ok, err := xform.Fit(dst, src, f, xform.Options{ROI: fitRect})
	require.NoError(t, err)
	require.True(t, ok)

	require.Equal(t, 200, dst.FullWidth())
	require.Equal(t, 200, dst.FullHeight())
	require.Equal(t, 200, dst.DataRect().Width())
	require.Equal(t, 100, dst.DataRect().Height())
	require.Equal(t, 50, dst.DataRect().YBegin)
}

// warping a 4x4 all-ones source by a 0.5x minifying scale with
// lanczos3, edge-clamped, WrapBlack produces no ringing: interior output
// stays close to 1.
func TestScenarioMinifyingWarpNoRinging(t *testing.T) {
	r := roi.New(0, 4, 0, 4, 1)
	src := imagebuf.New(imagebuf.FormatFloat64, 1, r, r)
	fillConst(src, 1)

	f, err := filter.Create("lanczos3", 0, 0)
	require.NoError(t, err)
	dst := imagebuf.New(imagebuf.FormatFloat64, 1, r, r)
	ok, err := xform.Warp(dst, src, roi.Scale(0.5, 0.5), f, xform.Options{EdgeClamp: true, Wrap: roi.WrapBlack})
	require.NoError(t, err)
	require.True(t, ok)

	require.InDelta(t, 1.0, dst.At(1, 1, 0), 0.05)
}

func TestProgressCallbackFiresDuringResize(t *testing.T) {
	src := gradient(8, 8, 1)
	dstRect := roi.New(0, 4, 0, 4, 1)
	dst := imagebuf.New(imagebuf.FormatFloat64, 1, dstRect, dstRect)
	f, err := filter.Create("box", 0, 0)
	require.NoError(t, err)

	var messages []string
	ok, err := xform.Resize(dst, src, f, xform.Options{Progress: func(msg string) {
		messages = append(messages, msg)
	}})
	require.NoError(t, err)
	require.True(t, ok)
	require.NotEmpty(t, messages)
}

func TestResizeReportsChannelMismatch(t *testing.T) {
	src := gradient(4, 4, 1)
	dstRect := roi.New(0, 2, 0, 2, 3)
	dst := imagebuf.New(imagebuf.FormatFloat64, 3, dstRect, dstRect)
	f, err := filter.Create("box", 0, 0)
	require.NoError(t, err)

	ok, err := xform.Resize(dst, src, f, xform.Options{})
	require.False(t, ok)
	require.Error(t, err)
	require.True(t, dst.HasError())
}
