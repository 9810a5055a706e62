package scalarfield

// randSource is satisfied by rng.SmallRng without scalarfield importing
// the rng package directly, keeping the dependency direction the same way
// the teacher's core.Field.RandomElement takes an io.Reader rather than a
// concrete generator type.
type randSource interface {
	FillBytes(dst []byte)
}

// Random draws a uniformly distributed scalar from src via rejection
// sampling: 32 random bytes with the top byte cleared, parsed as 4
// little-endian u64 limbs, retried if the result is not a canonical
// representative below the modulus. This mirrors
// StandardUniform::sample for ScalarField in the original source exactly.
func Random(src randSource) Element {
	var bytes [32]byte
	for {
		src.FillBytes(bytes[:])
		bytes[31] = 0

		var limbs [4]uint64
		for i := 0; i < 4; i++ {
			limbs[i] = leUint64(bytes[i*8 : i*8+8])
		}
		if isCanonical(limbs) {
			return FromCanonicalLimbs(limbs)
		}
	}
}

func leUint64(b []byte) uint64 {
	var v uint64
	for i := 7; i >= 0; i-- {
		v = (v << 8) | uint64(b[i])
	}
	return v
}
