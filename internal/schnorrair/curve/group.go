package curve

import (
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/extfield"
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/scalarfield"
)

// Projective is a point in projective (X:Y:Z) coordinates. Add and Double
// round-trip through affine, so each step still pays the affine
// inversions; only BatchNormalize shares one inversion across many points.
// The point at infinity is (0:1:0).
type Projective struct {
	X, Y, Z extfield.Element
}

// ProjectiveInfinity is the identity element (0:1:0).
var ProjectiveInfinity = Projective{X: extfield.Zero(), Y: extfield.One(), Z: extfield.Zero()}

// IsInfinity reports whether p is the point at infinity.
func (p Projective) IsInfinity() bool {
	return p.Z.IsZero()
}

// FromAffine lifts an affine point into projective coordinates.
func FromAffine(p Affine) Projective {
	if p.IsInfinity {
		return ProjectiveInfinity
	}
	return Projective{X: p.X, Y: p.Y, Z: extfield.One()}
}

// ToAffine lowers p to affine coordinates, paying a single inversion.
func (p Projective) ToAffine() Affine {
	if p.IsInfinity() {
		return Infinity
	}
	zInv := p.Z.Inverse()
	return New(p.X.Mul(zInv), p.Y.Mul(zInv))
}

// IsOnCurve reports whether p satisfies Y^2*Z = X^3 + a*X*Z^2 + b*Z^3.
func (p Projective) IsOnCurve() bool {
	if p.IsInfinity() {
		return true
	}
	y2 := p.Y.Mul(p.Y)
	x2 := p.X.Mul(p.X)
	x3 := x2.Mul(p.X)
	z2 := p.Z.Mul(p.Z)
	z3 := z2.Mul(p.Z)
	lhs := y2.Mul(p.Z)
	rhs := x3.Add(extfield.CurveA().Mul(p.X).Mul(z2)).Add(extfield.CurveB().Mul(z3))
	return lhs.Equal(rhs)
}

// Negate returns -p.
func (p Projective) Negate() Projective {
	if p.IsInfinity() {
		return p
	}
	return Projective{X: p.X, Y: p.Y.Neg(), Z: p.Z}
}

// Double returns 2*p, by round-tripping through affine.
func (p Projective) Double() Projective {
	if p.IsInfinity() {
		return p
	}
	return FromAffine(p.ToAffine().Double())
}

// Add returns p + other, by round-tripping through affine.
func (p Projective) Add(other Projective) Projective {
	if p.IsInfinity() {
		return other
	}
	if other.IsInfinity() {
		return p
	}
	return FromAffine(p.ToAffine().Add(other.ToAffine()))
}

// Sub returns p - other.
func (p Projective) Sub(other Projective) Projective {
	return p.Add(other.Negate())
}

// Equal reports whether p and other represent the same affine point.
func (p Projective) Equal(other Projective) bool {
	return p.ToAffine().Equal(other.ToAffine())
}

// BatchNormalize converts many projective points to affine, more
// efficiently than converting each individually via extfield.BatchInverse.
func BatchNormalize(points []Projective) []Affine {
	finite := make([]extfield.Element, 0, len(points))
	for _, p := range points {
		if !p.IsInfinity() {
			finite = append(finite, p.Z)
		}
	}
	inverses := extfield.BatchInverse(finite)

	out := make([]Affine, len(points))
	j := 0
	for i, p := range points {
		if p.IsInfinity() {
			out[i] = Infinity
			continue
		}
		zInv := inverses[j]
		j++
		out[i] = New(p.X.Mul(zInv), p.Y.Mul(zInv))
	}
	return out
}

// ScalarMul multiplies p by scalar using plain LSB-to-MSB double-and-add
// over all 256 bits of scalar's four 64-bit limbs.
func ScalarMul(scalar scalarfield.Element, p Affine) Affine {
	result := Infinity
	temp := p
	for _, limb := range scalar.ToCanonicalLimbs() {
		bits := limb
		for i := 0; i < 64; i++ {
			if bits&1 == 1 {
				result = result.Add(temp)
			}
			temp = temp.Double()
			bits >>= 1
		}
	}
	return result
}

// MulU64 multiplies p by the native scalar n, via double-and-add over n's
// bits, without going through the full scalar field representation.
func MulU64(p Affine, n uint64) Affine {
	if n == 0 {
		return Infinity
	}
	if n == 1 {
		return p
	}
	result := Infinity
	temp := p
	bits := n
	for bits > 0 {
		if bits&1 == 1 {
			result = result.Add(temp)
		}
		temp = temp.Double()
		bits >>= 1
	}
	return result
}

// MultiScalarMul computes sum_i scalars[i]*points[i]. It panics if the two
// slices differ in length.
func MultiScalarMul(points []Affine, scalars []scalarfield.Element) Affine {
	if len(points) != len(scalars) {
		panic("curve: points and scalars must have same length")
	}
	result := Infinity
	for i, p := range points {
		result = result.Add(ScalarMul(scalars[i], p))
	}
	return result
}
