// Package rng provides a small deterministic pseudorandom generator,
// seeded by a single uint64, for the reproducible test vectors and nonce
// generation the scalar/curve/signature tests rely on.
package rng

import (
	"encoding/binary"

	"golang.org/x/crypto/sha3"
)

// SmallRng is a deterministic counter-based generator: each call hashes
// the seed concatenated with a monotonically increasing counter, the same
// state-derivation idiom the teacher's Fiat-Shamir Channel uses to turn a
// transcript into pseudorandom bytes, specialized here to a bare seed with
// no transcript.
type SmallRng struct {
	seed    uint64
	counter uint64
}

// NewSmallRng seeds a generator deterministically.
func NewSmallRng(seed uint64) *SmallRng {
	return &SmallRng{seed: seed}
}

func (r *SmallRng) nextBlock() [32]byte {
	var input [16]byte
	binary.LittleEndian.PutUint64(input[0:8], r.seed)
	binary.LittleEndian.PutUint64(input[8:16], r.counter)
	r.counter++
	return sha3.Sum256(input[:])
}

// Uint64 returns the next pseudorandom 64-bit value.
func (r *SmallRng) Uint64() uint64 {
	block := r.nextBlock()
	return binary.LittleEndian.Uint64(block[:8])
}

// FillBytes fills dst with pseudorandom bytes.
func (r *SmallRng) FillBytes(dst []byte) {
	for len(dst) > 0 {
		block := r.nextBlock()
		n := copy(dst, block[:])
		dst = dst[n:]
	}
}
