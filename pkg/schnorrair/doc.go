// Package schnorrair implements a Schnorr signature scheme over a
// KoalaBear-backed degree-8 extension-field elliptic curve, together with
// a STARK AIR that proves the verification equation s*G + (-e)*pk = R
// without revealing s.
//
// # Quick Start
//
// Signing and verifying directly:
//
//	sk := schnorrair.RandomSigningKey(rng.NewSmallRng(42))
//	vk := sk.VerifyingKey()
//	msg := []smallfield.Element{smallfield.BabyBear.NewElement(1)}
//
//	sig, err := sk.Sign(rng.NewSmallRng(7), msg)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	ok, err := vk.Verify(msg, sig)
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Building the AIR trace that proves verification without revealing sk:
//
//	witness, err := schnorrair.BuildWitness(vk, msg, sig)
//	if err != nil {
//		log.Fatal(err)
//	}
//	rows, prep, err := schnorrair.BuildSignatureTrace(witness)
//
// # Architecture
//
//   - pkg/schnorrair/: public API (this package)
//   - internal/schnorrair/: field, curve, hash, and AIR implementation
package schnorrair
