// Package poseidon defines the external permutation interface the Schnorr
// challenge hash consumes, together with a reference width-16 permutation
// for tests and examples. The permutation's internal S-box/round-constant
// structure is not part of this specification's scope; callers depend only
// on the Permutation interface, matching the "external collaborator"
// treatment of Poseidon2 throughout the AIR.
package poseidon

import (
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/smallfield"
	vcfield "github.com/vybium/vybium-crypto/pkg/vybium-crypto/field"
)

// Width is the sponge's permutation width.
const Width = 16

// Rate is the sponge's absorption/squeeze rate (remaining Width-Rate slots
// form the capacity).
const Rate = 8

// Out is the number of digest elements read back out of the final state.
const Out = 8

// Permutation is any width-16 permutation over the BabyBear-equivalent
// challenge field.
type Permutation interface {
	Permute(state [Width]smallfield.Element) [Width]smallfield.Element
}

// referencePermutation is a reference Poseidon2-shaped permutation. Its
// round constants are derived through github.com/vybium/vybium-crypto's
// native field type and reduced into the challenge field at the sponge
// boundary, the same canonical-integer reduction the signing path already
// uses to move coefficients between the curve's base field and the
// challenge field.
type referencePermutation struct {
	fullRounds    int
	partialRounds int
	roundConst    [][Width]smallfield.Element
}

// DefaultPermutation returns the reference permutation used by this
// module's tests and examples.
var DefaultPermutation Permutation = newReferencePermutation()

func newReferencePermutation() *referencePermutation {
	const fullRounds = 8
	const partialRounds = 13

	rc := make([][Width]smallfield.Element, fullRounds+partialRounds)
	seed := vcfield.New(0x706f7365696e3200) // "posein2\0", an arbitrary fixed seed
	state := seed
	for r := range rc {
		for i := 0; i < Width; i++ {
			state = state.Mul(vcfield.New(6364136223846793005)).Add(vcfield.New(uint64(r*Width + i + 1)))
			rc[r][i] = smallfield.BabyBear.NewElement(state.Value())
		}
	}

	return &referencePermutation{
		fullRounds:    fullRounds,
		partialRounds: partialRounds,
		roundConst:    rc,
	}
}

func sbox(e smallfield.Element) smallfield.Element {
	// x^7, matching the degree-7 S-box used throughout the retrieved
	// Poseidon2-over-BabyBear sources.
	sq := e.Square()
	return sq.Mul(sq).Mul(sq).Mul(e)
}

// mix applies a simple width-16 circulant MDS-like mixing: each output
// slot is the sum of all inputs plus one extra copy of its own slot,
// which is a standard lightweight linear diffusion layer for small
// Poseidon-style permutations.
func mix(state [Width]smallfield.Element) [Width]smallfield.Element {
	var sum smallfield.Element = smallfield.BabyBear.Zero()
	for _, s := range state {
		sum = sum.Add(s)
	}
	var out [Width]smallfield.Element
	for i := range state {
		out[i] = sum.Add(state[i])
	}
	return out
}

// Permute runs the full/partial round schedule over state.
func (p *referencePermutation) Permute(state [Width]smallfield.Element) [Width]smallfield.Element {
	round := 0
	half := p.fullRounds / 2

	applyFull := func(s [Width]smallfield.Element, rc [Width]smallfield.Element) [Width]smallfield.Element {
		var added [Width]smallfield.Element
		for i := range s {
			added[i] = sbox(s[i].Add(rc[i]))
		}
		return mix(added)
	}
	applyPartial := func(s [Width]smallfield.Element, rc [Width]smallfield.Element) [Width]smallfield.Element {
		var added [Width]smallfield.Element
		added[0] = sbox(s[0].Add(rc[0]))
		for i := 1; i < Width; i++ {
			added[i] = s[i].Add(rc[i])
		}
		return mix(added)
	}

	for i := 0; i < half; i++ {
		state = applyFull(state, p.roundConst[round])
		round++
	}
	for i := 0; i < p.partialRounds; i++ {
		state = applyPartial(state, p.roundConst[round])
		round++
	}
	for i := 0; i < half; i++ {
		state = applyFull(state, p.roundConst[round])
		round++
	}
	return state
}
