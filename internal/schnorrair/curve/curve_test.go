package curve

import (
	"testing"

	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/scalarfield"
)

func TestInfinity(t *testing.T) {
	if !Infinity.IsOnCurve() {
		t.Errorf("infinity must be considered on-curve")
	}
	if !Infinity.Add(Infinity).Equal(Infinity) {
		t.Errorf("O + O != O")
	}
}

func TestGeneratorsOnCurve(t *testing.T) {
	if !Generator().IsOnCurve() {
		t.Errorf("generator is not on curve")
	}
	if !PedersenGenerator().IsOnCurve() {
		t.Errorf("pedersen generator is not on curve")
	}
}

func TestAdditionWithInfinity(t *testing.T) {
	g := Generator()
	if !g.Add(Infinity).Equal(g) {
		t.Errorf("P + O != P")
	}
	if !Infinity.Add(g).Equal(g) {
		t.Errorf("O + P != P")
	}
}

func TestDoublingMatchesAddingSelf(t *testing.T) {
	g := Generator()
	if !g.Double().Equal(g.Add(g)) {
		t.Errorf("2P != P + P")
	}
}

func TestNegation(t *testing.T) {
	g := Generator()
	if !g.Add(g.Negate()).Equal(Infinity) {
		t.Errorf("P + (-P) != O")
	}
}

func TestScalarMultiplicationMatchesRepeatedAddition(t *testing.T) {
	g := Generator()
	five := scalarfield.FromCanonicalUint64(5)
	lhs := ScalarMulWindowed(five, g)
	rhs := g.Add(g).Add(g).Add(g).Add(g)
	if !lhs.Equal(rhs) {
		t.Errorf("5*G != G+G+G+G+G")
	}
}

func TestScalarMulWindowedZeroAndOne(t *testing.T) {
	g := Generator()
	if !ScalarMulWindowed(scalarfield.Zero, g).Equal(Infinity) {
		t.Errorf("0*P != O")
	}
	if !ScalarMulWindowed(scalarfield.FromCanonicalUint64(1), g).Equal(g) {
		t.Errorf("1*P != P")
	}
}

func TestMulGeneratorMatchesWindowed(t *testing.T) {
	g := Generator()
	seven := scalarfield.FromCanonicalUint64(7)
	lhs := MulGenerator(seven)
	rhs := ScalarMulWindowed(seven, g)
	if !lhs.Equal(rhs) {
		t.Errorf("MulGenerator(7) != ScalarMulWindowed(7, G)")
	}
}

func TestDoubleScalarMulBasepointMatchesSeparateMuls(t *testing.T) {
	g := Generator()
	a := scalarfield.FromCanonicalUint64(11)
	b := scalarfield.FromCanonicalUint64(13)
	point := ScalarMulWindowed(scalarfield.FromCanonicalUint64(3), g)

	got := DoubleScalarMulBasepoint(a, b, point)
	want := MulGenerator(a).Add(ScalarMulWindowed(b, point))
	if !got.Equal(want) {
		t.Errorf("a*G + b*P mismatch")
	}
}

func TestAssociativity(t *testing.T) {
	g := Generator()
	a := scalarfield.FromCanonicalUint64(9)
	b := scalarfield.FromCanonicalUint64(21)
	lhs := ScalarMulWindowed(a.Add(b), g)
	rhs := ScalarMulWindowed(a, g).Add(ScalarMulWindowed(b, g))
	if !lhs.Equal(rhs) {
		t.Errorf("(a+b)*G != a*G + b*G")
	}
}
