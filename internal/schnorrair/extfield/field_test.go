package extfield

import "testing"

func TestRing(t *testing.T) {
	t.Run("ZeroOne", func(t *testing.T) {
		if !Zero().Add(Zero()).Equal(Zero()) {
			t.Errorf("0+0 != 0")
		}
		if !One().Mul(One()).Equal(One()) {
			t.Errorf("1*1 != 1")
		}
	})

	t.Run("AddSubRoundTrip", func(t *testing.T) {
		a := FromBaseUint32(5)
		b := FromBaseUint32(9)
		if !a.Add(b).Sub(b).Equal(a) {
			t.Errorf("(a+b)-b != a")
		}
	})

	t.Run("MulInverse", func(t *testing.T) {
		a := FromBaseUint32(17).Add(CurveA())
		inv := a.Inverse()
		if !a.Mul(inv).Equal(One()) {
			t.Errorf("a * a^-1 != 1")
		}
	})

	t.Run("Distributive", func(t *testing.T) {
		a := FromBaseUint32(3)
		b := FromBaseUint32(4)
		c := FromBaseUint32(5)
		lhs := a.Mul(b.Add(c))
		rhs := a.Mul(b).Add(a.Mul(c))
		if !lhs.Equal(rhs) {
			t.Errorf("distributivity failed")
		}
	})

	t.Run("InverseOfZeroPanics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected panic")
			}
		}()
		Zero().Inverse()
	})
}
