// Package curve implements the short Weierstrass curve
// E: y^2 = x^3 + 3u*x + 42639 over the degree-8 extension field, along
// with fixed-generator and double-scalar multiplication.
package curve

import (
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/extfield"
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/scalarfield"
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/smallfield"
)

// Affine is a point in affine coordinates, or the point at infinity.
type Affine struct {
	X, Y       extfield.Element
	IsInfinity bool
}

// Infinity is the identity element.
var Infinity = Affine{X: extfield.Zero(), Y: extfield.Zero(), IsInfinity: true}

// New builds a finite affine point.
func New(x, y extfield.Element) Affine {
	return Affine{X: x, Y: y, IsInfinity: false}
}

// IsOnCurve reports whether p satisfies the curve equation (always true
// for the point at infinity).
func (p Affine) IsOnCurve() bool {
	if p.IsInfinity {
		return true
	}
	y2 := p.Y.Mul(p.Y)
	x2 := p.X.Mul(p.X)
	x3 := x2.Mul(p.X)
	ax := extfield.CurveA().Mul(p.X)
	rhs := x3.Add(ax).Add(extfield.CurveB())
	return y2.Equal(rhs)
}

// Equal reports whether p and other are the same point.
func (p Affine) Equal(other Affine) bool {
	if p.IsInfinity || other.IsInfinity {
		return p.IsInfinity == other.IsInfinity
	}
	return p.X.Equal(other.X) && p.Y.Equal(other.Y)
}

// Negate returns -p.
func (p Affine) Negate() Affine {
	if p.IsInfinity {
		return p
	}
	return New(p.X, p.Y.Neg())
}

// Double returns 2*p.
func (p Affine) Double() Affine {
	if p.IsInfinity {
		return p
	}
	if p.Y.IsZero() {
		return Infinity
	}

	x2 := p.X.Mul(p.X)
	threeX2 := x2.Add(x2).Add(x2)
	numerator := threeX2.Add(extfield.CurveA())
	denominator := p.Y.Add(p.Y)
	lambda := numerator.Mul(denominator.Inverse())

	lambda2 := lambda.Mul(lambda)
	xr := lambda2.Sub(p.X).Sub(p.X)
	yr := lambda.Mul(p.X.Sub(xr)).Sub(p.Y)

	return New(xr, yr)
}

// Add returns p + other.
func (p Affine) Add(other Affine) Affine {
	if p.IsInfinity {
		return other
	}
	if other.IsInfinity {
		return p
	}
	if p.X.Equal(other.X) {
		if p.Y.Equal(other.Y) {
			return p.Double()
		}
		return Infinity
	}

	lambda := other.Y.Sub(p.Y).Mul(other.X.Sub(p.X).Inverse())
	xr := lambda.Mul(lambda).Sub(p.X).Sub(other.X)
	yr := lambda.Mul(p.X.Sub(xr)).Sub(p.Y)
	return New(xr, yr)
}

// Sub returns p - other.
func (p Affine) Sub(other Affine) Affine {
	return p.Add(other.Negate())
}

func coeffs8(vals [8]uint32) extfield.Element {
	var c [8]smallfield.Element
	for i, v := range vals {
		c[i] = smallfield.KoalaBear.NewElement(uint64(v))
	}
	return extfield.FromCoeffs(c)
}

// Generator returns the fixed curve generator G (from SSWU on "ZKM2").
func Generator() Affine {
	x := coeffs8([8]uint32{
		1813646457, 1763905369, 2115217807, 1299273209,
		1825476283, 438909494, 1368232771, 1195559694,
	})
	y := coeffs8([8]uint32{
		376996212, 840779000, 1365273355, 655051022,
		1286889583, 125328769, 434578416, 2077084094,
	})
	return New(x, y)
}

// PedersenGenerator returns the independent fixed generator H (from SSWU
// on "ZKM2 - Pedersen"), carried alongside G since a conforming witness
// builder may commit to either.
func PedersenGenerator() Affine {
	x := coeffs8([8]uint32{
		1709677626, 550988532, 358531926, 543192455,
		1949220725, 7156361, 1750752810, 1741425845,
	})
	y := coeffs8([8]uint32{
		548133034, 1399061592, 978667041, 156828552,
		598910111, 1684498755, 1876016551, 71894712,
	})
	return New(x, y)
}

// ScalarMulWindowed multiplies p by scalar using a 4-bit windowed
// double-and-add over the scalar's 4 canonical 64-bit limbs.
func ScalarMulWindowed(scalar scalarfield.Element, p Affine) Affine {
	var table [16]Affine
	table[0] = Infinity
	table[1] = p
	for i := 2; i < 16; i += 2 {
		table[i] = table[i/2].Double()
		table[i+1] = table[i].Add(table[1])
	}

	limbs := scalar.ToCanonicalLimbs()
	result := Infinity
	for limbIdx := 3; limbIdx >= 0; limbIdx-- {
		limb := limbs[limbIdx]
		for shift := 60; shift >= 0; shift -= 4 {
			for i := 0; i < 4; i++ {
				result = result.Double()
			}
			window := (limb >> uint(shift)) & 0xf
			if window != 0 {
				result = result.Add(table[window])
			}
		}
	}
	return result
}
