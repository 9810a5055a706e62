// Package scalarfield implements the 248-bit scalar field of the curve in
// Montgomery form, matching the field F_q where q is the curve's group
// order.
package scalarfield

import (
	"math/big"
	"math/bits"
)

// Element is a scalar field value, held internally as
// value * R mod p in little-endian 64-bit limbs.
type Element struct {
	limbs [4]uint64
}

// modulus: p = 0xf06e44682c2aa440f5f26a5ae1748ff85ccc2efc3068faf2154ff8a2e94d81
var modulus = [4]uint64{
	0xf2154ff8a2e94d81,
	0xf85ccc2efc3068fa,
	0x40f5f26a5ae1748f,
	0x00f06e44682c2aa4,
}

// r = 2^256 mod p (Montgomery parameter R).
var r = [4]uint64{
	0xc95b07d2e81da6f0,
	0x1d670e140c90755e,
	0xfaae6eff70742708,
	0x008ad7515112b17a,
}

// r2 = 2^512 mod p, used to convert values into Montgomery form.
var r2 = [4]uint64{
	0x23eabb3eaf3c12e3,
	0xefbc3b2088f7b0f7,
	0x0943bc9a31f37148,
	0x004497b874228e49,
}

// mu = -p^-1 mod 2^64, the CIOS Montgomery reduction constant.
const mu uint64 = 0x921d21f874d30d7f

// generatorLimbs is the multiplicative generator 5, already in Montgomery
// form (5 * R mod p).
var generatorLimbs = [4]uint64{
	0x0a9c872d42c1a7ae,
	0xa249ae06467178e4,
	0x637c46287c81da08,
	0x00d5580dc505221e,
}

// Zero is the additive identity.
var Zero = Element{limbs: [4]uint64{0, 0, 0, 0}}

// One is the multiplicative identity (Montgomery form of 1, i.e. R mod p).
var One = Element{limbs: r}

// Generator returns a generator of the scalar field's multiplicative group.
func Generator() Element {
	return Element{limbs: generatorLimbs}
}

func carryingAdd(a, b uint64, carry bool) (uint64, bool) {
	sum1 := a + b
	c1 := sum1 < a
	var carryIn uint64
	if carry {
		carryIn = 1
	}
	sum2 := sum1 + carryIn
	c2 := sum2 < sum1
	return sum2, c1 || c2
}

func borrowingSub(a, b uint64, borrow bool) (uint64, bool) {
	diff1 := a - b
	b1 := b > a
	var borrowIn uint64
	if borrow {
		borrowIn = 1
	}
	diff2 := diff1 - borrowIn
	b2 := borrowIn > diff1
	return diff2, b1 || b2
}

func addMod(a, b [4]uint64) [4]uint64 {
	var r0, r1, r2c, r3 uint64
	var carry bool
	r0, carry = carryingAdd(a[0], b[0], false)
	r1, carry = carryingAdd(a[1], b[1], carry)
	r2c, carry = carryingAdd(a[2], b[2], carry)
	r3, carry = carryingAdd(a[3], b[3], carry)

	var s0, s1, s2, s3 uint64
	var borrow bool
	s0, borrow = borrowingSub(r0, modulus[0], false)
	s1, borrow = borrowingSub(r1, modulus[1], borrow)
	s2, borrow = borrowingSub(r2c, modulus[2], borrow)
	s3, borrow = borrowingSub(r3, modulus[3], borrow)

	if carry || !borrow {
		return [4]uint64{s0, s1, s2, s3}
	}
	return [4]uint64{r0, r1, r2c, r3}
}

func subMod(a, b [4]uint64) [4]uint64 {
	var r0, r1, r2c, r3 uint64
	var borrow bool
	r0, borrow = borrowingSub(a[0], b[0], false)
	r1, borrow = borrowingSub(a[1], b[1], borrow)
	r2c, borrow = borrowingSub(a[2], b[2], borrow)
	r3, borrow = borrowingSub(a[3], b[3], borrow)

	if borrow {
		var carry bool
		r0, carry = carryingAdd(r0, modulus[0], false)
		r1, carry = carryingAdd(r1, modulus[1], carry)
		r2c, carry = carryingAdd(r2c, modulus[2], carry)
		r3, _ = carryingAdd(r3, modulus[3], carry)
	}
	return [4]uint64{r0, r1, r2c, r3}
}

func isCanonical(limbs [4]uint64) bool {
	_, borrow := borrowingSub(limbs[0], modulus[0], false)
	_, borrow = borrowingSub(limbs[1], modulus[1], borrow)
	_, borrow = borrowingSub(limbs[2], modulus[2], borrow)
	_, borrow = borrowingSub(limbs[3], modulus[3], borrow)
	return borrow
}

// montgomeryMul computes (a * b * R^-1) mod p via CIOS reduction.
func montgomeryMul(a, b [4]uint64) [4]uint64 {
	var t [8]uint64

	for i := 0; i < 4; i++ {
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(a[i], b[j])
			lo, c0 := bits.Add64(lo, t[i+j], 0)
			lo, c1 := bits.Add64(lo, carry, 0)
			t[i+j] = lo
			carry = hi + c0 + c1
		}
		t[i+4] = carry
	}

	for i := 0; i < 4; i++ {
		k := t[i] * mu
		var carry uint64
		for j := 0; j < 4; j++ {
			hi, lo := bits.Mul64(k, modulus[j])
			lo, c0 := bits.Add64(lo, t[i+j], 0)
			lo, c1 := bits.Add64(lo, carry, 0)
			t[i+j] = lo
			carry = hi + c0 + c1
		}
		for j := 4; j < 8-i; j++ {
			sum, c := bits.Add64(t[i+j], carry, 0)
			t[i+j] = sum
			carry = c
		}
	}

	result := [4]uint64{t[4], t[5], t[6], t[7]}
	if isCanonical(result) {
		return result
	}
	return subMod(result, modulus)
}

// FromCanonicalUint64 builds an element from a small integer.
func FromCanonicalUint64(val uint64) Element {
	return Element{limbs: montgomeryMul([4]uint64{val, 0, 0, 0}, r2)}
}

// FromCanonicalLimbs builds an element from its canonical (non-Montgomery)
// little-endian limb representation.
func FromCanonicalLimbs(limbs [4]uint64) Element {
	return Element{limbs: montgomeryMul(limbs, r2)}
}

// ToCanonicalLimbs returns the element's canonical little-endian limb
// representation (out of Montgomery form).
func (e Element) ToCanonicalLimbs() [4]uint64 {
	return montgomeryMul(e.limbs, [4]uint64{1, 0, 0, 0})
}

// ToCanonicalBigInt returns the element's canonical value as a big.Int, for
// serialization and debugging only.
func (e Element) ToCanonicalBigInt() *big.Int {
	limbs := e.ToCanonicalLimbs()
	out := new(big.Int)
	for i := 3; i >= 0; i-- {
		out.Lsh(out, 64)
		out.Or(out, new(big.Int).SetUint64(limbs[i]))
	}
	return out
}

// FromCanonicalBigInt reduces v modulo the field order and returns the
// corresponding element, for deserialization and debugging only.
func FromCanonicalBigInt(v *big.Int) Element {
	red := new(big.Int).Mod(v, Order())
	var limbs [4]uint64
	mask := new(big.Int).SetUint64(^uint64(0))
	tmp := new(big.Int).Set(red)
	for i := 0; i < 4; i++ {
		word := new(big.Int).And(tmp, mask)
		limbs[i] = word.Uint64()
		tmp.Rsh(tmp, 64)
	}
	return FromCanonicalLimbs(limbs)
}

// Order returns the field modulus as a big.Int.
func Order() *big.Int {
	out := new(big.Int)
	for i := 3; i >= 0; i-- {
		out.Lsh(out, 64)
		out.Or(out, new(big.Int).SetUint64(modulus[i]))
	}
	return out
}

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool {
	return e.limbs == [4]uint64{0, 0, 0, 0}
}

// Equal reports whether e and other are the same element.
func (e Element) Equal(other Element) bool {
	return e.limbs == other.limbs
}

// Add returns e + other.
func (e Element) Add(other Element) Element {
	return Element{limbs: addMod(e.limbs, other.limbs)}
}

// Sub returns e - other.
func (e Element) Sub(other Element) Element {
	return Element{limbs: subMod(e.limbs, other.limbs)}
}

// Neg returns -e.
func (e Element) Neg() Element {
	if e.IsZero() {
		return e
	}
	return Element{limbs: subMod(modulus, e.limbs)}
}

// Mul returns e * other.
func (e Element) Mul(other Element) Element {
	return Element{limbs: montgomeryMul(e.limbs, other.limbs)}
}

// Square returns e * e.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Halve returns e / 2.
func (e Element) Halve() Element {
	isOdd := e.limbs[0]&1 == 1
	limbs := e.limbs
	if isOdd {
		// e + p is even and below 2^249, so it fits in 4 limbs unreduced.
		var carry bool
		limbs[0], carry = carryingAdd(limbs[0], modulus[0], false)
		limbs[1], carry = carryingAdd(limbs[1], modulus[1], carry)
		limbs[2], carry = carryingAdd(limbs[2], modulus[2], carry)
		limbs[3], _ = carryingAdd(limbs[3], modulus[3], carry)
	}
	var result [4]uint64
	result[0] = (limbs[0] >> 1) | (limbs[1] << 63)
	result[1] = (limbs[1] >> 1) | (limbs[2] << 63)
	result[2] = (limbs[2] >> 1) | (limbs[3] << 63)
	result[3] = limbs[3] >> 1
	return Element{limbs: result}
}

// Inverse returns the multiplicative inverse of e via Fermat's little
// theorem (e^(p-2)). Panics if e is zero.
func (e Element) Inverse() Element {
	if e.IsZero() {
		panic("scalarfield: inverse of zero")
	}
	exp := subMod(modulus, [4]uint64{2, 0, 0, 0})
	return e.powVartime(exp)
}

func (e Element) powVartime(exp [4]uint64) Element {
	if e.IsZero() {
		return Zero
	}
	result := One
	base := e
	for _, limb := range exp {
		remaining := limb
		for i := 0; i < 64; i++ {
			if remaining&1 == 1 {
				result = result.Mul(base)
			}
			base = base.Mul(base)
			remaining >>= 1
		}
	}
	return result
}
