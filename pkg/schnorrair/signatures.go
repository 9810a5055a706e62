package schnorrair

import (
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/circuit"
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/curve"
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/extfield"
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/poseidon"
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/scalarfield"
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/smallfield"
)

// Signature is a Schnorr signature: the commitment point R and the
// response scalar s, satisfying G*s == R + pk*e for e = HashChallenge(R, pk, msg).
type Signature struct {
	R curve.Affine
	S scalarfield.Element
}

// encodePoint reduces a point's 16 KoalaBear coordinate coefficients
// into BabyBear-domain elements suitable for Poseidon2 hashing, the same
// canonical-integer reduction the original hash_challenge uses to cross
// from the curve's base field into the hashing field.
func encodePoint(p curve.Affine) [16]smallfield.Element {
	var out [16]smallfield.Element
	xc := p.X.ToCoeffs()
	yc := p.Y.ToCoeffs()
	for i := 0; i < extfield.Degree; i++ {
		out[i] = smallfield.BabyBear.NewElement(uint64(xc[i].Uint32()))
		out[i+8] = smallfield.BabyBear.NewElement(uint64(yc[i].Uint32()))
	}
	return out
}

// HashChallenge computes e = H(R || pk || msg) with a width-16 rate-8
// Poseidon2 sponge, then packs the first five digest elements into a
// scalar-field element: limb0 = d0 | d1<<31, limb1 = d2 | d3<<31,
// limb2 = d4, limb3 = 0.
func HashChallenge(r, pk curve.Affine, msg []smallfield.Element) (scalarfield.Element, *SchnorrAirError) {
	if r.IsInfinity || pk.IsInfinity {
		return scalarfield.Element{}, newError(ErrInvalidPoint, "challenge point is the identity", nil)
	}

	input := make([]smallfield.Element, 0, len(msg)+32)
	re := encodePoint(r)
	pe := encodePoint(pk)
	input = append(input, re[:]...)
	input = append(input, pe[:]...)
	input = append(input, msg...)

	sponge := poseidon.NewSponge(poseidon.DefaultPermutation)
	digest := sponge.HashIter(input)

	d0 := uint64(digest[0].Uint32())
	d1 := uint64(digest[1].Uint32())
	d2 := uint64(digest[2].Uint32())
	d3 := uint64(digest[3].Uint32())
	d4 := uint64(digest[4].Uint32())

	limbs := [4]uint64{
		d0 | (d1 << 31),
		d2 | (d3 << 31),
		d4,
		0,
	}
	return scalarfield.FromCanonicalLimbs(limbs), nil
}

// Sign produces a signature over msg using a freshly drawn nonce.
func (sk SigningKey) Sign(src randSource, msg []smallfield.Element) (Signature, *SchnorrAirError) {
	nonce := scalarfield.Random(src)
	r := curve.MulGenerator(nonce)
	pk := sk.VerifyingKey()

	e, err := HashChallenge(r, pk.point, msg)
	if err != nil {
		return Signature{}, err
	}

	s := nonce.Add(e.Mul(sk.scalar))
	return Signature{R: r, S: s}, nil
}

// Verify checks a signature directly via curve arithmetic (no AIR/proof
// involved). It returns (false, ErrInvalidPoint) if the verifying key or
// the signature's R is the identity, and otherwise reports whether the
// verification equation held as its bool result, with a nil error — a
// signature that simply fails to verify is not itself an error condition.
func (vk VerifyingKey) Verify(msg []smallfield.Element, sig Signature) (bool, *SchnorrAirError) {
	if vk.point.IsInfinity || sig.R.IsInfinity {
		return false, newError(ErrInvalidPoint, "verifying key or signature R is the identity", nil)
	}

	e, err := HashChallenge(sig.R, vk.point, msg)
	if err != nil {
		return false, err
	}

	lhs := curve.DoubleScalarMulBasepoint(sig.S, e.Neg(), vk.point)
	return lhs.Equal(sig.R), nil
}

// CircuitWitness is the trace-building input for proving a signature's
// verification equation in zero-knowledge: s*G + (-e)*pk = R.
type CircuitWitness struct {
	S    scalarfield.Element
	NegE scalarfield.Element
	PK   curve.Affine
	R    curve.Affine
}

// BuildWitness derives the (s, -e, pk, R) witness for a signature,
// computing the Fiat-Shamir challenge the same way Verify does.
func BuildWitness(vk VerifyingKey, msg []smallfield.Element, sig Signature) (CircuitWitness, *SchnorrAirError) {
	if vk.point.IsInfinity || sig.R.IsInfinity {
		return CircuitWitness{}, newError(ErrInvalidPoint, "verifying key or signature R is the identity", nil)
	}
	e, err := HashChallenge(sig.R, vk.point, msg)
	if err != nil {
		return CircuitWitness{}, err
	}
	return CircuitWitness{S: sig.S, NegE: e.Neg(), PK: vk.point, R: sig.R}, nil
}

// BuildSignatureTrace generates the 256-row AIR trace proving
// witness.S*G + witness.NegE*witness.PK == witness.R, returning the trace
// rows and the shared preprocessed generator-power table. It returns
// ErrInvalidWitness, wrapping the failing row and intermediate, if a
// chord/tangent denominator vanishes or the computed accumulator
// disagrees with witness.R, instead of panicking.
func BuildSignatureTrace(witness CircuitWitness) ([]circuit.Row, []circuit.Point, *SchnorrAirError) {
	if witness.PK.IsInfinity {
		return nil, nil, newError(ErrInvalidPoint, "witness public key is the identity", nil)
	}
	if witness.R.IsInfinity {
		return nil, nil, newError(ErrInvalidPoint, "witness expected result R is the identity", nil)
	}
	rows, prep, err := circuit.BuildTrace(witness.S, witness.NegE, witness.PK, witness.R)
	if err != nil {
		return nil, nil, newError(ErrInvalidWitness, "circuit trace generation failed", err)
	}
	return rows, prep, nil
}
