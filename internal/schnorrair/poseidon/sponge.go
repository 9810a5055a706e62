package poseidon

import "github.com/vybium/schnorr-fp8-air/internal/schnorrair/smallfield"

// Sponge is a padding-free sponge construction over a width-16
// permutation, absorbing Rate elements per call and squeezing Out
// elements from the final state. Input of any length is accepted (see
// HashIter for how a final partial block is filled), and only the final
// permutation's output is read.
type Sponge struct {
	perm Permutation
}

// NewSponge builds a sponge around the given permutation.
func NewSponge(perm Permutation) Sponge {
	return Sponge{perm: perm}
}

// HashIter absorbs input (whose length need not be a multiple of Rate;
// the rate slots a final partial block does not fill are set to zero
// before the last permutation, and the capacity is left untouched) and
// returns the first Out elements of the final permutation state.
func (s Sponge) HashIter(input []smallfield.Element) [Out]smallfield.Element {
	var state [Width]smallfield.Element
	for i := range state {
		state[i] = smallfield.BabyBear.Zero()
	}

	for offset := 0; offset < len(input); offset += Rate {
		end := offset + Rate
		if end > len(input) {
			end = len(input)
		}
		for i := offset; i < end; i++ {
			state[i-offset] = input[i]
		}
		for i := end - offset; i < Rate; i++ {
			state[i] = smallfield.BabyBear.Zero()
		}
		state = s.perm.Permute(state)
	}

	var digest [Out]smallfield.Element
	copy(digest[:], state[:Out])
	return digest
}
