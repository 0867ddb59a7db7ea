// Package imagebuf implements the Image data model: a 2D raster bound to a
// pixel data window, a (usually larger) full window defining its normalized
// coordinate space, a channel count, a per-channel numeric format drawn
// from a fixed set, and an optional deep-sample list per pixel.
package imagebuf

import "github.com/adriansahlman/imgxform/roi"

// Image is a read-only source or writable destination raster.
type Image struct {
	format    Format
	nchannels int

	dataX, dataY, dataW, dataH int
	fullX, fullY, fullW, fullH int

	pix  []byte
	deep *deepData

	errMsg string
	hasErr bool
}

// New allocates an Image over the given data window, with the given full
// window, channel count, and format. Pixel values are zero-initialized.
func New(format Format, nchannels int, dataRect, fullRect roi.ROI) *Image {
	im := &Image{
		format:    format,
		nchannels: nchannels,
		dataX:     dataRect.XBegin,
		dataY:     dataRect.YBegin,
		dataW:     dataRect.Width(),
		dataH:     dataRect.Height(),
		fullX:     fullRect.XBegin,
		fullY:     fullRect.YBegin,
		fullW:     fullRect.Width(),
		fullH:     fullRect.Height(),
	}
	im.pix = make([]byte, im.dataW*im.dataH*im.nchannels*format.bytesPerChannel())
	return im
}

// NewDeep allocates a deep Image: same as New, but every pixel starts with
// zero deep samples until SetDeepSamples is called.
func NewDeep(format Format, nchannels int, dataRect, fullRect roi.ROI) *Image {
	im := New(format, nchannels, dataRect, fullRect)
	im.deep = newDeepData(im.dataW * im.dataH)
	return im
}

// Initialized reports whether the image has been allocated.
func (im *Image) Initialized() bool {
	return im != nil && im.pix != nil
}

// Format returns the per-channel storage format.
func (im *Image) Format() Format { return im.format }

// NChannels returns the channel count.
func (im *Image) NChannels() int { return im.nchannels }

// Deep reports whether this image carries per-pixel deep sample lists.
func (im *Image) Deep() bool { return im.deep != nil }

// DataRect returns the data window as an ROI over all channels.
func (im *Image) DataRect() roi.ROI {
	return roi.New(im.dataX, im.dataX+im.dataW, im.dataY, im.dataY+im.dataH, im.nchannels)
}

// FullRect returns the full window as an ROI over all channels.
func (im *Image) FullRect() roi.ROI {
	return roi.New(im.fullX, im.fullX+im.fullW, im.fullY, im.fullY+im.fullH, im.nchannels)
}

// FullX, FullY, FullWidth, FullHeight expose the full-window geometry that
// the driver functions' numeric conventions are defined against.
func (im *Image) FullX() int      { return im.fullX }
func (im *Image) FullY() int      { return im.fullY }
func (im *Image) FullWidth() int  { return im.fullW }
func (im *Image) FullHeight() int { return im.fullH }

// SetFullRect rewrites the full window (and therefore the image's
// normalized coordinate space) without touching pixel storage. Used by fit
// to patch a resized destination's full window/offset.
func (im *Image) SetFullRect(fullX, fullY, fullW, fullH int) {
	im.fullX, im.fullY, im.fullW, im.fullH = fullX, fullY, fullW, fullH
}

// SetDataOrigin moves the data window's origin without resizing it or
// touching pixel storage. Used by fit's integer-pixel path to shift the
// data window by the placement offset.
func (im *Image) SetDataOrigin(x, y int) {
	im.dataX, im.dataY = x, y
}

func (im *Image) channelOffset(x, y, c int) int {
	lx := x - im.dataX
	ly := y - im.dataY
	bpc := im.format.bytesPerChannel()
	return ((ly*im.dataW + lx) * im.nchannels + c) * bpc
}

func (im *Image) inDataWindow(x, y int) bool {
	return x >= im.dataX && x < im.dataX+im.dataW && y >= im.dataY && y < im.dataY+im.dataH
}

// At reads channel c of pixel (x,y) with no wrap handling: (x,y) must lie
// within the data window.
func (im *Image) At(x, y, c int) float64 {
	bpc := im.format.bytesPerChannel()
	off := im.channelOffset(x, y, c)
	return im.format.decode(im.pix[off : off+bpc])
}

// Set writes channel c of pixel (x,y); (x,y) must lie within the data
// window.
func (im *Image) Set(x, y, c int, v float64) {
	bpc := im.format.bytesPerChannel()
	off := im.channelOffset(x, y, c)
	im.format.encode(im.pix[off:off+bpc], v)
}

// AtWrapped reads channel c of the pixel that coordinate (x,y) maps to
// under the given wrap mode, applied independently per axis against the
// data window. WrapBlack (or any coordinate that wraps to "black") returns
// 0.
func (im *Image) AtWrapped(x, y, c int, w roi.Wrap) float64 {
	wx, blackX := w.Coord(x, im.dataX, im.dataX+im.dataW)
	if blackX {
		return 0
	}
	wy, blackY := w.Coord(y, im.dataY, im.dataY+im.dataH)
	if blackY {
		return 0
	}
	return im.At(wx, wy, c)
}

// Fill sets every channel of every pixel in the data window to v.
func (im *Image) Fill(v float64) {
	for y := im.dataY; y < im.dataY+im.dataH; y++ {
		for x := im.dataX; x < im.dataX+im.dataW; x++ {
			for c := 0; c < im.nchannels; c++ {
				im.Set(x, y, c, v)
			}
		}
	}
}

// SetError records an error message on the image, mirroring the original
// API's "errors surface through the destination's error channel" design.
// HasError/Error retrieve it; most Go call sites should
// instead use the plain `error` return also supplied by every driver
// function.
func (im *Image) SetError(msg string) {
	im.errMsg = msg
	im.hasErr = true
}

// SetErrorDefault sets a generic fallback error message ("op() error") only
// if no error has already been recorded -- used by the allocate-and-return
// convenience wrappers.
func (im *Image) SetErrorDefault(op string) {
	if im.hasErr {
		return
	}
	im.SetError(op + "() error")
}

// HasError reports whether an error has been recorded on this image.
func (im *Image) HasError() bool { return im.hasErr }

// Error returns the recorded error message, or "" if none.
func (im *Image) Error() string { return im.errMsg }
