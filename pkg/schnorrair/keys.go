package schnorrair

import (
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/curve"
	"github.com/vybium/schnorr-fp8-air/internal/schnorrair/scalarfield"
)

// SigningKey is a secret scalar used to produce signatures.
type SigningKey struct {
	scalar scalarfield.Element
}

// VerifyingKey is the public curve point derived from a signing key.
type VerifyingKey struct {
	point curve.Affine
}

// randSource is the minimal interface RandomSigningKey needs; both
// rng.SmallRng and a wrapped crypto/rand.Reader satisfy it.
type randSource interface {
	FillBytes(dst []byte)
}

// RandomSigningKey draws a signing key uniformly from the scalar field.
// Go has no associated-function syntax for SigningKey::random(rng); this
// package-level constructor is its idiomatic equivalent.
func RandomSigningKey(src randSource) SigningKey {
	return SigningKey{scalar: scalarfield.Random(src)}
}

// VerifyingKey derives the public key G*sk.
func (sk SigningKey) VerifyingKey() VerifyingKey {
	return VerifyingKey{point: curve.MulGenerator(sk.scalar)}
}

// Scalar exposes the raw secret scalar, for callers assembling a witness
// to hand to BuildSignatureTrace.
func (sk SigningKey) Scalar() scalarfield.Element { return sk.scalar }

// Point exposes the raw public point.
func (vk VerifyingKey) Point() curve.Affine { return vk.point }
