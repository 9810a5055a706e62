package curve

import (
	"testing"

	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/scalarfield"
)

func TestScalarMulMatchesWindowed(t *testing.T) {
	g := Generator()
	seven := scalarfield.FromCanonicalUint64(7)
	if !ScalarMul(seven, g).Equal(ScalarMulWindowed(seven, g)) {
		t.Errorf("ScalarMul(7, G) != ScalarMulWindowed(7, G)")
	}
}

func TestScalarMulZeroAndOne(t *testing.T) {
	g := Generator()
	if !ScalarMul(scalarfield.Zero, g).Equal(Infinity) {
		t.Errorf("0*P != O")
	}
	if !ScalarMul(scalarfield.FromCanonicalUint64(1), g).Equal(g) {
		t.Errorf("1*P != P")
	}
}

func TestMulU64MatchesRepeatedAddition(t *testing.T) {
	g := Generator()
	want := Infinity
	for i := 0; i < 6; i++ {
		want = want.Add(g)
	}
	if !MulU64(g, 6).Equal(want) {
		t.Errorf("MulU64(P, 6) != P+P+P+P+P+P")
	}
}

func TestMulU64ZeroAndOne(t *testing.T) {
	g := Generator()
	if !MulU64(g, 0).Equal(Infinity) {
		t.Errorf("MulU64(P, 0) != O")
	}
	if !MulU64(g, 1).Equal(g) {
		t.Errorf("MulU64(P, 1) != P")
	}
}

func TestMultiScalarMulMatchesSeparateMuls(t *testing.T) {
	g := Generator()
	h := PedersenGenerator()
	a := scalarfield.FromCanonicalUint64(4)
	b := scalarfield.FromCanonicalUint64(9)

	got := MultiScalarMul([]Affine{g, h}, []scalarfield.Element{a, b})
	want := ScalarMul(a, g).Add(ScalarMul(b, h))
	if !got.Equal(want) {
		t.Errorf("MultiScalarMul mismatch")
	}
}

func TestProjectiveRoundTrip(t *testing.T) {
	g := Generator()
	p := FromAffine(g)
	if !p.ToAffine().Equal(g) {
		t.Errorf("FromAffine/ToAffine round trip failed")
	}
	if !ProjectiveInfinity.ToAffine().Equal(Infinity) {
		t.Errorf("projective infinity does not round-trip to affine infinity")
	}
	if !FromAffine(Infinity).IsInfinity() {
		t.Errorf("FromAffine(Infinity) is not projective infinity")
	}
}

func TestProjectiveOnCurve(t *testing.T) {
	if !FromAffine(Generator()).IsOnCurve() {
		t.Errorf("projective generator is not on curve")
	}
	if !ProjectiveInfinity.IsOnCurve() {
		t.Errorf("projective infinity must be considered on-curve")
	}
}

func TestProjectiveAgreesWithAffineForChainsOfAddDouble(t *testing.T) {
	g := Generator()
	h := PedersenGenerator()

	affine := g.Double().Add(h).Double().Double().Add(g)
	proj := FromAffine(g).Double().Add(FromAffine(h)).Double().Double().Add(FromAffine(g))

	if !proj.ToAffine().Equal(affine) {
		t.Errorf("projective chain disagrees with affine chain")
	}
}

func TestProjectiveScalarMulAgreesWithAffine(t *testing.T) {
	g := Generator()
	s := scalarfield.FromCanonicalUint64(123)

	wantAffine := ScalarMul(s, g)

	acc := ProjectiveInfinity
	temp := FromAffine(g)
	for _, limb := range s.ToCanonicalLimbs() {
		bits := limb
		for i := 0; i < 64; i++ {
			if bits&1 == 1 {
				acc = acc.Add(temp)
			}
			temp = temp.Double()
			bits >>= 1
		}
	}

	if !acc.ToAffine().Equal(wantAffine) {
		t.Errorf("projective scalar-mul chain disagrees with affine ScalarMul")
	}
}

func TestBatchNormalize(t *testing.T) {
	g := Generator()
	h := PedersenGenerator()
	points := []Projective{FromAffine(g), ProjectiveInfinity, FromAffine(h)}
	got := BatchNormalize(points)
	if !got[0].Equal(g) || !got[1].Equal(Infinity) || !got[2].Equal(h) {
		t.Errorf("BatchNormalize mismatch: %+v", got)
	}
}
