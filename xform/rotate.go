package xform

import (
	"github.com/adriansahlman/imgxform/filter"
	"github.com/adriansahlman/imgxform/imagebuf"
	"github.com/adriansahlman/imgxform/roi"
)

// Rotate is a thin convenience over Warp: it rotates src by
// theta radians about its own full-window center and warps the result into
// dst. opts.Wrap defaults to WrapBlack when left at its zero value.
func Rotate(dst, src *imagebuf.Image, theta float64, f *filter.Filter2D, opts Options) (bool, error) {
	cx, cy := fullCenter(src)
	return Warp(dst, src, roi.RotateAbout(theta, cx, cy), f, opts)
}

// RotateAbout rotates src by theta radians about the explicit center
// (cx,cy), in source full-window coordinates.
func RotateAbout(dst, src *imagebuf.Image, theta, cx, cy float64, f *filter.Filter2D, opts Options) (bool, error) {
	return Warp(dst, src, roi.RotateAbout(theta, cx, cy), f, opts)
}

// RotateNamed is Rotate's filter-name flavor.
func RotateNamed(dst, src *imagebuf.Image, theta float64, filterName string, filterWidth float64, opts Options) (bool, error) {
	cx, cy := fullCenter(src)
	return WarpNamed(dst, src, roi.RotateAbout(theta, cx, cy), filterName, filterWidth, opts)
}

// RotateAboutNamed is RotateAbout's filter-name flavor.
func RotateAboutNamed(dst, src *imagebuf.Image, theta, cx, cy float64, filterName string, filterWidth float64, opts Options) (bool, error) {
	return WarpNamed(dst, src, roi.RotateAbout(theta, cx, cy), filterName, filterWidth, opts)
}

// RotateResult allocates and returns a new destination holding src rotated
// by theta about its own center.
func RotateResult(src *imagebuf.Image, theta float64, f *filter.Filter2D, opts Options) *imagebuf.Image {
	cx, cy := fullCenter(src)
	return WarpResult(src, roi.RotateAbout(theta, cx, cy), f, opts)
}

// RotateAboutResult is RotateResult's explicit-center flavor.
func RotateAboutResult(src *imagebuf.Image, theta, cx, cy float64, f *filter.Filter2D, opts Options) *imagebuf.Image {
	return WarpResult(src, roi.RotateAbout(theta, cx, cy), f, opts)
}

// RotateResultNamed is RotateResult's filter-name flavor.
func RotateResultNamed(src *imagebuf.Image, theta float64, filterName string, filterWidth float64, opts Options) *imagebuf.Image {
	cx, cy := fullCenter(src)
	return WarpResultNamed(src, roi.RotateAbout(theta, cx, cy), filterName, filterWidth, opts)
}

// RotateAboutResultNamed is RotateAboutResult's filter-name flavor.
func RotateAboutResultNamed(src *imagebuf.Image, theta, cx, cy float64, filterName string, filterWidth float64, opts Options) *imagebuf.Image {
	return WarpResultNamed(src, roi.RotateAbout(theta, cx, cy), filterName, filterWidth, opts)
}

func fullCenter(im *imagebuf.Image) (cx, cy float64) {
	return float64(im.FullX()) + float64(im.FullWidth())/2, float64(im.FullY()) + float64(im.FullHeight())/2
}
