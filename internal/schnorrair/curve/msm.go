package curve

import "github.com/vybium/schnorr-fp8-air/internal/schnorrair/scalarfield"

// scalarBytes returns the 32-byte little-endian canonical encoding of a
// scalar, derived from its 4 canonical 64-bit limbs.
func scalarBytes(s scalarfield.Element) [32]byte {
	limbs := s.ToCanonicalLimbs()
	var out [32]byte
	for limbIdx := 0; limbIdx < 4; limbIdx++ {
		limb := limbs[limbIdx]
		for b := 0; b < 8; b++ {
			out[limbIdx*8+b] = byte(limb >> uint(8*b))
		}
	}
	return out
}

// generatorTable is the fixed 32x256 position-scaled table used by
// MulGenerator: generatorTable[pos][v] = v * 256^pos * G. Building it with
// no interleaved doublings at call time is what makes MulGenerator run in
// O(32) additions instead of O(256) doublings.
var generatorTable = buildGeneratorTable()

func buildGeneratorTable() [32][256]Affine {
	var table [32][256]Affine
	unit := Generator()
	for pos := 0; pos < 32; pos++ {
		table[pos][0] = Infinity
		table[pos][1] = unit
		for v := 2; v < 256; v++ {
			table[pos][v] = table[pos][v-1].Add(unit)
		}
		for i := 0; i < 8; i++ {
			unit = unit.Double()
		}
	}
	return table
}

// MulGenerator computes scalar * G using the fixed position-scaled table,
// one addition per byte position and no doublings.
func MulGenerator(scalar scalarfield.Element) Affine {
	bytes := scalarBytes(scalar)
	result := Infinity
	for pos := 0; pos < 32; pos++ {
		v := bytes[pos]
		if v != 0 {
			result = result.Add(generatorTable[pos][v])
		}
	}
	return result
}

// flatTable256 builds table[v] = v * base, via repeated addition (not
// doubling), matching the source's point_table construction exactly.
func flatTable256(base Affine) [256]Affine {
	var table [256]Affine
	table[0] = Infinity
	table[1] = base
	for v := 2; v < 256; v++ {
		table[v] = table[v-1].Add(base)
	}
	return table
}

// DoubleScalarMulBasepoint computes a*G + b*point using interleaved
// 8-bit-window double-and-add: the accumulator is doubled 8 times between
// each byte position, so both G's and point's per-call tables stay flat
// (unscaled, 256 entries), matching msm.rs's double_scalar_mul_basepoint_affine.
func DoubleScalarMulBasepoint(a, b scalarfield.Element, point Affine) Affine {
	aBytes := scalarBytes(a)
	bBytes := scalarBytes(b)

	gTable := flatTable256(Generator())
	pTable := flatTable256(point)

	result := Infinity
	for pos := 31; pos >= 0; pos-- {
		for i := 0; i < 8; i++ {
			result = result.Double()
		}
		if av := aBytes[pos]; av != 0 {
			result = result.Add(gTable[av])
		}
		if bv := bBytes[pos]; bv != 0 {
			result = result.Add(pTable[bv])
		}
	}
	return result
}
