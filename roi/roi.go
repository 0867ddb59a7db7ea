// Package roi implements the half-open integer region-of-interest used to
// describe the destination sub-rectangle a transform operates on, the wrap
// modes used to read outside a source's data window, and the ROI projector
// that maps a ROI through a 3x3 matrix.
package roi

import "math"

// ROI is a half-open integer rectangle [XBegin,XEnd) x [YBegin,YEnd), with
// optional z and channel ranges. A zero-value ROI is undefined: callers
// must check Defined before trusting its bounds.
type ROI struct {
	XBegin, XEnd int
	YBegin, YEnd int
	ZBegin, ZEnd int
	ChBegin, ChEnd int

	defined bool
}

// New returns a defined 2D ROI over channels [0,nchannels), z in [0,1).
func New(xbegin, xend, ybegin, yend, nchannels int) ROI {
	return ROI{
		XBegin: xbegin, XEnd: xend,
		YBegin: ybegin, YEnd: yend,
		ZBegin: 0, ZEnd: 1,
		ChBegin: 0, ChEnd: nchannels,
		defined: true,
	}
}

// Defined reports whether this ROI carries real bounds, as opposed to being
// the "use a default derived from the images" placeholder.
func (r ROI) Defined() bool {
	return r.defined
}

// Width returns XEnd-XBegin.
func (r ROI) Width() int { return r.XEnd - r.XBegin }

// Height returns YEnd-YBegin.
func (r ROI) Height() int { return r.YEnd - r.YBegin }

// NChannels returns ChEnd-ChBegin.
func (r ROI) NChannels() int { return r.ChEnd - r.ChBegin }

// Empty reports whether the ROI encloses no pixels.
func (r ROI) Empty() bool {
	return !r.defined || r.XEnd <= r.XBegin || r.YEnd <= r.YBegin
}

// ClampChannels clamps ChEnd to be no larger than nchannels: a
// caller-supplied ROI that requests more channels than the source has
// silently loses the excess channels rather than erroring.
func (r ROI) ClampChannels(nchannels int) ROI {
	if r.ChEnd > nchannels {
		r.ChEnd = nchannels
	}
	if r.ChBegin > r.ChEnd {
		r.ChBegin = r.ChEnd
	}
	return r
}

// Matrix3 is a 3x3 matrix in the "point row times M" convention: a point
// (x,y) is transformed as (x,y,1) * M, i.e.
//
//	outx = x*M[0][0] + y*M[1][0] + M[2][0]
//	outy = x*M[0][1] + y*M[1][1] + M[2][1]
//	outw = x*M[0][2] + y*M[1][2] + M[2][2]
type Matrix3 [3][3]float64

// Identity returns the identity matrix.
func Identity() Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{0, 0, 1},
	}
}

// Mul returns the standard matrix product a*b. In the row-vector
// convention used throughout this package, point*(a*b) == (point*a)*b, so
// the result applies a first, then b.
func (a Matrix3) Mul(b Matrix3) Matrix3 {
	var out Matrix3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum float64
			for k := 0; k < 3; k++ {
				sum += a[i][k] * b[k][j]
			}
			out[i][j] = sum
		}
	}
	return out
}

// Translate returns the translation matrix for (tx,ty) in the row-vector
// convention.
func Translate(tx, ty float64) Matrix3 {
	return Matrix3{
		{1, 0, 0},
		{0, 1, 0},
		{tx, ty, 1},
	}
}

// Rotate returns the rotation-by-theta (radians) matrix about the origin,
// in the row-vector convention.
func Rotate(theta float64) Matrix3 {
	c, s := math.Cos(theta), math.Sin(theta)
	return Matrix3{
		{c, s, 0},
		{-s, c, 0},
		{0, 0, 1},
	}
}

// Scale returns the scale-by-(sx,sy) matrix in the row-vector convention.
func Scale(sx, sy float64) Matrix3 {
	return Matrix3{
		{sx, 0, 0},
		{0, sy, 0},
		{0, 0, 1},
	}
}

// RotateAbout returns T(-cx,-cy) * R(theta) * T(cx,cy), the rotation matrix
// for angle theta about the point (cx,cy).
func RotateAbout(theta, cx, cy float64) Matrix3 {
	return Translate(-cx, -cy).Mul(Rotate(theta)).Mul(Translate(cx, cy))
}

// Inverse returns the inverse of m, assuming m is non-singular. Used by the
// warp driver to go from the forward-mapping matrix the caller supplies to
// the destination->source inverse mapping the sampler actually walks.
func (m Matrix3) Inverse() Matrix3 {
	a, b, c := m[0][0], m[0][1], m[0][2]
	d, e, f := m[1][0], m[1][1], m[1][2]
	g, h, i := m[2][0], m[2][1], m[2][2]

	A := e*i - f*h
	B := -(d*i - f*g)
	C := d*h - e*g
	D := -(b*i - c*h)
	E := a*i - c*g
	F := -(a*h - b*g)
	G := b*f - c*e
	H := -(a*f - c*d)
	I := a*e - b*d

	det := a*A + b*B + c*C
	if det == 0 {
		return Identity()
	}
	invDet := 1.0 / det
	return Matrix3{
		{A * invDet, D * invDet, G * invDet},
		{B * invDet, E * invDet, H * invDet},
		{C * invDet, F * invDet, I * invDet},
	}
}

// Project maps a single point (x,y) through m using homogeneous divide.
// When the homogeneous w works out to 0, the projection yields (0,0) rather
// than dividing by zero.
func Project(m Matrix3, x, y float64) (outx, outy float64) {
	a := x*m[0][0] + y*m[1][0] + m[2][0]
	b := x*m[0][1] + y*m[1][1] + m[2][1]
	w := x*m[0][2] + y*m[1][2] + m[2][2]
	if w == 0 {
		return 0, 0
	}
	return a / w, b / w
}

// Transform projects roi's four corner pixel centers through m and returns
// the integer ROI enclosing the result. Z and channel ranges pass through
// unchanged.
func Transform(m Matrix3, r ROI) ROI {
	xs := [4]float64{float64(r.XBegin) + 0.5, float64(r.XEnd) - 0.5, float64(r.XBegin) + 0.5, float64(r.XEnd) - 0.5}
	ys := [4]float64{float64(r.YBegin) + 0.5, float64(r.YBegin) + 0.5, float64(r.YEnd) - 0.5, float64(r.YEnd) - 0.5}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for i := 0; i < 4; i++ {
		px, py := Project(m, xs[i], ys[i])
		if px < minX {
			minX = px
		}
		if px > maxX {
			maxX = px
		}
		if py < minY {
			minY = py
		}
		if py > maxY {
			maxY = py
		}
	}

	out := r
	out.XBegin = int(math.Floor(minX))
	out.XEnd = int(math.Floor(maxX)) + 1
	out.YBegin = int(math.Floor(minY))
	out.YEnd = int(math.Floor(maxY)) + 1
	out.defined = true
	return out
}
