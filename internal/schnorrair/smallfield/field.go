// Package smallfield implements modular arithmetic over prime fields whose
// modulus fits in 31 bits, using native uint64 intermediates instead of
// arbitrary-precision integers.
package smallfield

import "fmt"

// Field is a prime field GF(p) with p < 2^31.
type Field struct {
	modulus uint64
}

// Element is a value in a Field, always kept in canonical reduced form.
type Element struct {
	field *Field
	value uint64
}

// New creates a field with the given modulus. The modulus must be an odd
// prime less than 2^31; this is not verified (callers use fixed literal
// moduli).
func New(modulus uint32) (*Field, error) {
	if modulus <= 2 {
		return nil, fmt.Errorf("smallfield: modulus must be greater than 2")
	}
	return &Field{modulus: uint64(modulus)}, nil
}

// Modulus returns the field modulus.
func (f *Field) Modulus() uint32 {
	return uint32(f.modulus)
}

// NewElement reduces value into the field and returns the element.
func (f *Field) NewElement(value uint64) Element {
	return Element{field: f, value: value % f.modulus}
}

// Zero returns the additive identity.
func (f *Field) Zero() Element {
	return Element{field: f, value: 0}
}

// One returns the multiplicative identity.
func (f *Field) One() Element {
	return Element{field: f, value: 1 % f.modulus}
}

// Field returns the element's field.
func (e Element) Field() *Field { return e.field }

// Uint32 returns the canonical representative of the element.
func (e Element) Uint32() uint32 { return uint32(e.value) }

// IsZero reports whether the element is the additive identity.
func (e Element) IsZero() bool { return e.value == 0 }

func (e Element) sameField(other Element) {
	if e.field != other.field {
		panic("smallfield: operands belong to different fields")
	}
}

// Add returns e + other.
func (e Element) Add(other Element) Element {
	e.sameField(other)
	sum := e.value + other.value
	if sum >= e.field.modulus {
		sum -= e.field.modulus
	}
	return Element{field: e.field, value: sum}
}

// Sub returns e - other.
func (e Element) Sub(other Element) Element {
	e.sameField(other)
	if e.value >= other.value {
		return Element{field: e.field, value: e.value - other.value}
	}
	return Element{field: e.field, value: e.field.modulus - (other.value - e.value)}
}

// Neg returns -e.
func (e Element) Neg() Element {
	if e.value == 0 {
		return e
	}
	return Element{field: e.field, value: e.field.modulus - e.value}
}

// Mul returns e * other.
func (e Element) Mul(other Element) Element {
	e.sameField(other)
	product := e.value * other.value
	return Element{field: e.field, value: product % e.field.modulus}
}

// Square returns e * e.
func (e Element) Square() Element {
	return e.Mul(e)
}

// Exp returns e raised to the given exponent via square-and-multiply.
func (e Element) Exp(exponent uint64) Element {
	result := e.field.One()
	base := e
	for exponent > 0 {
		if exponent&1 == 1 {
			result = result.Mul(base)
		}
		base = base.Mul(base)
		exponent >>= 1
	}
	return result
}

// Inverse returns the multiplicative inverse of e via Fermat's little
// theorem (e^(p-2)). Panics if e is zero.
func (e Element) Inverse() Element {
	if e.IsZero() {
		panic("smallfield: inverse of zero")
	}
	return e.Exp(e.field.modulus - 2)
}

// Equal reports whether e and other represent the same field value.
func (e Element) Equal(other Element) bool {
	return e.field == other.field && e.value == other.value
}

// String implements fmt.Stringer.
func (e Element) String() string {
	return fmt.Sprintf("%d", e.value)
}
