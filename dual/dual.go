// Package dual implements dual-number arithmetic: a scalar value carried
// alongside two partial derivatives, propagated through +, *, / by the
// chain rule. It is used to push a single (x, y) point through a projective
// map and come out the other side with both the mapped coordinate and its
// analytic Jacobian, in one pass, without approximating the derivative from
// the matrix alone (a projective map's Jacobian varies with position).
package dual

// Dual2 is a value with partial derivatives with respect to two independent
// variables, conventionally named x and y.
type Dual2 struct {
	V  float64 // value
	Dx float64 // d/dx
	Dy float64 // d/dy
}

// Const returns a Dual2 with zero derivatives, suitable for lifting a plain
// scalar (e.g. a matrix entry) into dual arithmetic.
func Const(v float64) Dual2 {
	return Dual2{V: v}
}

// Var returns the Dual2 for an independent variable: dx=1 if this value
// varies with x, dy=1 if it varies with y. Passing (1,0) seeds the x
// variable, (0,1) seeds the y variable.
func Var(v, dx, dy float64) Dual2 {
	return Dual2{V: v, Dx: dx, Dy: dy}
}

// Add returns a+b.
func Add(a, b Dual2) Dual2 {
	return Dual2{V: a.V + b.V, Dx: a.Dx + b.Dx, Dy: a.Dy + b.Dy}
}

// AddScalar returns a+b for a plain float64 b.
func AddScalar(a Dual2, b float64) Dual2 {
	return Dual2{V: a.V + b, Dx: a.Dx, Dy: a.Dy}
}

// Mul returns a*b, applying the product rule to the derivatives.
func Mul(a, b Dual2) Dual2 {
	return Dual2{
		V:  a.V * b.V,
		Dx: a.V*b.Dx + a.Dx*b.V,
		Dy: a.V*b.Dy + a.Dy*b.V,
	}
}

// MulScalar returns a*b for a plain float64 b.
func MulScalar(a Dual2, b float64) Dual2 {
	return Dual2{V: a.V * b, Dx: a.Dx * b, Dy: a.Dy * b}
}

// Div returns a/b. The caller is responsible for guarding against b.V == 0;
// this function does not check for it, since the division rule itself has
// no sane behavior to fall back to at that point, and callers (the
// projective-mapping code) already know when w can be zero and handle it
// there.
func Div(a, b Dual2) Dual2 {
	bInv := 1.0 / b.V
	aOverB := a.V * bInv
	return Dual2{
		V:  aOverB,
		Dx: bInv * (a.Dx - aOverB*b.Dx),
		Dy: bInv * (a.Dy - aOverB*b.Dy),
	}
}
