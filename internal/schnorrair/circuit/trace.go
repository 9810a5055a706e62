package circuit

import (
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/curve"
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/extfield"
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/scalarfield"
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/smallfield"
)

// TraceHeight is fixed by the scalar field's bit width: both operands are
// decomposed into 256 bits, one row per bit position. This is already a
// power of two, so the next-power-of-two rounding the original trace
// builder performs is a no-op here, but the helper is kept for parity
// with how variable-length traces are padded elsewhere in this style of
// STARK tooling.
const TraceHeight = 256

// nextPowerOfTwo mirrors the teacher's utils.NextPowerOfTwo helper,
// adapted to operate on a plain int rather than the teacher's field
// element sizing use case.
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	p := 1
	for p < n {
		p <<= 1
	}
	return p
}

func scalarToBits(s scalarfield.Element) [256]smallfield.Element {
	limbs := s.ToCanonicalLimbs()
	var bits [256]smallfield.Element
	for limbIdx, limb := range limbs {
		for bitIdx := 0; bitIdx < 64; bitIdx++ {
			b := (limb >> uint(bitIdx)) & 1
			bits[limbIdx*64+bitIdx] = smallfield.KoalaBear.NewElement(b)
		}
	}
	return bits
}

func pointFromAffine(p curve.Affine) Point {
	return Point{X: p.X, Y: p.Y}
}

// PreprocessedTrace returns the n-row generator-power table: row i holds
// (2^i * G).x and (2^i * G).y. It is witness-independent and recomputed
// identically by prover and verifier, so it carries no constraints of its
// own beyond what BuildTrace and Eval read from it.
func PreprocessedTrace(n int) []Point {
	rows := make([]Point, n)
	g := curve.Generator()
	for i := 0; i < n; i++ {
		rows[i] = pointFromAffine(g)
		g = g.Double()
	}
	return rows
}

// BuildTrace generates the 256-row main trace proving s*G + (-e)*pk = R,
// where negE is already negated (the caller supplies -e, not e), matching
// the circuit's e_bit column holding the bits of -e rather than e, and r
// is the expected result the final accumulator must equal.
//
// It returns *InvalidWitnessError, wrapping the offending row and which
// intermediate failed, instead of panicking: a chord or tangent gadget
// whose denominator is zero (the witness drove two gadget inputs to the
// same x-coordinate, or a tangent point to y=0), or a final accumulator
// that disagrees with r.
func BuildTrace(s, negE scalarfield.Element, pk, r curve.Affine) ([]Row, []Point, error) {
	sBits := scalarToBits(s)
	eBits := scalarToBits(negE)
	prep := PreprocessedTrace(TraceHeight)

	rows := make([]Row, TraceHeight)

	accAffine := curve.Infinity
	pAffine := pk

	for i := 0; i < TraceHeight; i++ {
		var row Row
		row.Acc = pointFromAffine(accAffine)
		row.P = pointFromAffine(pAffine)
		accIsInf := accAffine.IsInfinity

		p2, p2Num, p2Den, p2Inv, p2Slope, ok := doublingGadgetChecked(row.P)
		if !ok {
			return nil, nil, newInvalidWitnessError(i, "public-key doubling tangent denominator is zero")
		}
		p2Affine := curve.New(p2.X, p2.Y)
		row.P2 = p2
		row.P2Num, row.P2Den, row.P2Inv, row.P2Slp = p2Num, p2Den, p2Inv, p2Slope

		gi := prep[i]
		sum, sumNum, sumDen, sumInv, sumSlope, ok := chordGadgetChecked(row.P, gi)
		if !ok {
			return nil, nil, newInvalidWitnessError(i, "pubkey-plus-generator chord denominator is zero")
		}
		row.Sum = sum
		row.SumNum, row.SumDen, row.SumInv, row.SumSlp = sumNum, sumDen, sumInv, sumSlope

		row.SBit = sBits[i]
		row.EBit = eBits[i]
		if accIsInf {
			row.AccIsInfinity = smallfield.KoalaBear.One()
		} else {
			row.AccIsInfinity = smallfield.KoalaBear.Zero()
		}

		sOn, eOn := !row.SBit.IsZero(), !row.EBit.IsZero()
		switch {
		case !sOn && !eOn:
			row.Addend = zeroPoint()
		case sOn && !eOn:
			row.Addend = gi
		case !sOn && eOn:
			row.Addend = row.P
		default:
			row.Addend = sum
		}

		addSelOn := sOn || eOn
		if addSelOn {
			if accIsInf {
				row.AddOut = row.Addend
				row.AONum, row.AODen = extfield.Zero(), extfield.One()
				row.AOInv, row.AOSlp = extfield.One(), extfield.Zero()
			} else {
				aoSum, aoNum, aoDen, aoInv, aoSlope, ok := chordGadgetChecked(row.Acc, row.Addend)
				if !ok {
					return nil, nil, newInvalidWitnessError(i, "accumulator chord denominator is zero")
				}
				row.AddOut = aoSum
				row.AONum, row.AODen, row.AOInv, row.AOSlp = aoNum, aoDen, aoInv, aoSlope
			}
			accAffine = curve.New(row.AddOut.X, row.AddOut.Y)
		} else {
			row.AddOut = row.Acc
			row.AONum, row.AODen = extfield.Zero(), extfield.One()
			row.AOInv, row.AOSlp = extfield.One(), extfield.Zero()
		}

		rows[i] = row
		pAffine = p2Affine
	}

	if !accAffine.Equal(r) {
		return nil, nil, newInvalidWitnessError(TraceHeight-1, "final accumulator does not match the expected result R")
	}

	return rows, prep, nil
}
