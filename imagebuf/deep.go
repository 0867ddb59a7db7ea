package imagebuf

// deepData holds a variable-length sample list per pixel, indexed by the
// pixel's position within the image's data window (row-major). Each sample
// carries one float64 per channel; uint32 channels round-trip exactly
// through float64 (which has more than enough mantissa bits for a uint32),
// so no separate integer storage is needed -- DeepValueUint just converts
// back on the way out.
type deepData struct {
	samples [][]float64 // samples[pixel][sample*nchannels+channel]
	counts  []int       // counts[pixel] = number of samples
}

func newDeepData(npixels int) *deepData {
	return &deepData{
		samples: make([][]float64, npixels),
		counts:  make([]int, npixels),
	}
}

// DeepSamples returns the number of deep samples stored at pixel (x,y).
func (im *Image) DeepSamples(x, y int) int {
	if im.deep == nil {
		return 0
	}
	return im.deep.counts[im.pixelIndex(x, y)]
}

// SetDeepSamples (re)allocates pixel (x,y)'s sample storage to hold n
// samples. This is NOT safe to call concurrently for pixels that might
// share underlying storage growth -- callers must run
// this in a serial pre-pass before any parallel copy into the storage it
// allocates.
func (im *Image) SetDeepSamples(x, y, n int) {
	idx := im.pixelIndex(x, y)
	im.deep.counts[idx] = n
	im.deep.samples[idx] = make([]float64, n*im.nchannels)
}

// DeepValue reads channel c of sample `sample` at pixel (x,y) as a float64.
func (im *Image) DeepValue(x, y, c, sample int) float64 {
	idx := im.pixelIndex(x, y)
	return im.deep.samples[idx][sample*im.nchannels+c]
}

// SetDeepValue writes channel c of sample `sample` at pixel (x,y).
func (im *Image) SetDeepValue(x, y, c, sample int, v float64) {
	idx := im.pixelIndex(x, y)
	im.deep.samples[idx][sample*im.nchannels+c] = v
}

// DeepValueUint reads channel c of sample `sample` at pixel (x,y) as a
// uint32, for channels stored in a 32-bit unsigned format. It reads the
// same float64 storage as DeepValue, which holds any uint32 exactly, and
// converts the stored value to uint32.
func (im *Image) DeepValueUint(x, y, c, sample int) uint32 {
	return uint32(im.DeepValue(x, y, c, sample))
}

// SetDeepValueUint writes channel c of sample `sample` at pixel (x,y) from
// a uint32.
func (im *Image) SetDeepValueUint(x, y, c, sample int, v uint32) {
	im.SetDeepValue(x, y, c, sample, float64(v))
}

func (im *Image) pixelIndex(x, y int) int {
	lx := x - im.dataX
	ly := y - im.dataY
	return ly*im.dataW + lx
}
