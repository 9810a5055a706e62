package scalarfield

import "testing"

func TestArithmetic(t *testing.T) {
	t.Run("ZeroOne", func(t *testing.T) {
		if !Zero.Add(Zero).Equal(Zero) {
			t.Errorf("0+0 != 0")
		}
		if !One.Mul(One).Equal(One) {
			t.Errorf("1*1 != 1")
		}
	})

	t.Run("MultiplicationAndInverse", func(t *testing.T) {
		a := FromCanonicalUint64(6)
		b := FromCanonicalUint64(7)
		c := a.Mul(b)
		want := FromCanonicalUint64(42)
		if !c.Equal(want) {
			t.Fatalf("6*7 != 42")
		}
		inv := c.Inverse()
		if !c.Mul(inv).Equal(One) {
			t.Errorf("c * c^-1 != 1")
		}
	})

	t.Run("Negation", func(t *testing.T) {
		a := FromCanonicalUint64(12345)
		if !a.Add(a.Neg()).IsZero() {
			t.Errorf("a + -a != 0")
		}
	})

	t.Run("Halve", func(t *testing.T) {
		a := FromCanonicalUint64(10)
		if !a.Halve().Equal(FromCanonicalUint64(5)) {
			t.Errorf("halve(10) != 5")
		}
	})

	t.Run("CanonicalRoundTrip", func(t *testing.T) {
		a := FromCanonicalUint64(987654321)
		limbs := a.ToCanonicalLimbs()
		b := FromCanonicalLimbs(limbs)
		if !a.Equal(b) {
			t.Errorf("round trip through canonical limbs changed value")
		}
	})

	t.Run("BigIntRoundTrip", func(t *testing.T) {
		a := FromCanonicalUint64(42)
		big := a.ToCanonicalBigInt()
		b := FromCanonicalBigInt(big)
		if !a.Equal(b) {
			t.Errorf("round trip through big.Int changed value")
		}
	})
}
