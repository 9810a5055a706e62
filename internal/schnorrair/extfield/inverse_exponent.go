package extfield

import "math/big"

// pMinusTwoExponentBits returns the bits of p^8 - 2 (p = KoalaBearModulus),
// least-significant bit first, for use by Inverse's square-and-multiply
// ladder. The exponent is an 8*31-bit constant that is awkward to
// hand-encode as a literal, so it is rebuilt via math/big on every call;
// the ladder in Inverse then works on the returned bits only.
func pMinusTwoExponentBits() []bool {
	p := big.NewInt(2130706433)
	pPow8 := new(big.Int).Exp(p, big.NewInt(8), nil)
	exponent := new(big.Int).Sub(pPow8, big.NewInt(2))

	bits := make([]bool, exponent.BitLen())
	for i := range bits {
		bits[i] = exponent.Bit(i) == 1
	}
	return bits
}
