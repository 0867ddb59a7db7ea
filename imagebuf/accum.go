package imagebuf

// Accumulator is a per-channel running-sum buffer whose precision is
// selected by the destination format: double when the destination format
// is Float64, float32 otherwise (Design Notes, "Polymorphism over pixel
// types" -- the accumulator type is picked by a compile-time mapping from
// destination format to double/float; this is the runtime stand-in for
// that mapping, since Go's format set here is chosen dynamically).
type Accumulator struct {
	vals   []float64
	double bool
}

// NewAccumulator returns a zeroed Accumulator with n channel slots, sized
// for dstFormat's accumulation precision.
func NewAccumulator(n int, dstFormat Format) *Accumulator {
	return &Accumulator{vals: make([]float64, n), double: dstFormat.AccumIsDouble()}
}

// Reset zeroes all channel slots for reuse across pixels.
func (a *Accumulator) Reset() {
	for i := range a.vals {
		a.vals[i] = 0
	}
}

// Add accumulates w*v into channel c, rounding the running sum through
// float32 between additions when this accumulator is single-precision.
func (a *Accumulator) Add(c int, w, v float64) {
	if a.double {
		a.vals[c] += w * v
		return
	}
	a.vals[c] = float64(float32(a.vals[c]) + float32(w*v))
}

// Get returns the current running sum for channel c.
func (a *Accumulator) Get(c int) float64 {
	return a.vals[c]
}
