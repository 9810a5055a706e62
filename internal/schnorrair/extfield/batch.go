package extfield

// BatchInverse inverts every element of in using Montgomery's trick: one
// running product, a single inversion of the total, and a backward pass
// that peels the inverse back apart. It panics if any element is zero,
// matching Inverse's contract on a single element.
func BatchInverse(in []Element) []Element {
	n := len(in)
	if n == 0 {
		return nil
	}

	acc := make([]Element, n)
	acc[0] = in[0]
	for i := 1; i < n; i++ {
		acc[i] = acc[i-1].Mul(in[i])
	}

	accInv := acc[n-1].Inverse()

	out := make([]Element, n)
	for i := n - 1; i > 0; i-- {
		out[i] = accInv.Mul(acc[i-1])
		accInv = accInv.Mul(in[i])
	}
	out[0] = accInv
	return out
}
