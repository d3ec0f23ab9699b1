package numtheory

import (
	"errors"
	"fmt"
	"math/bits"
)

var (
	// ErrInvalidModulus is returned when a modulus smaller than 1 is supplied.
	ErrInvalidModulus = errors.New("numtheory: modulus must be at least 1")
	// ErrNegativeExponent is returned when a negative exponent is supplied.
	ErrNegativeExponent = errors.New("numtheory: exponent must not be negative")
)

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// ModExp computes base^exponent mod modulus using square-and-multiply.
// The base may be any integer; it is reduced into [0, modulus) first.
func ModExp(base, exponent, modulus int64) (int64, error) {
	if modulus < 1 {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidModulus, modulus)
	}
	if exponent < 0 {
		return 0, fmt.Errorf("%w: got %d", ErrNegativeExponent, exponent)
	}

	m := uint64(modulus)
	b := uint64(reduce(base, modulus))
	e := uint64(exponent)
	result := uint64(1) % m

	for e > 0 {
		if e&1 == 1 {
			result = mulMod(result, b, m)
		}
		b = mulMod(b, b, m)
		e >>= 1
	}
	return int64(result), nil
}

// ModInverse computes e^-1 mod phi with the extended Euclidean algorithm.
// The boolean is false when gcd(e, phi) != 1 or phi < 1. A returned inverse lies in [0, phi).
func ModInverse(e, phi int64) (int64, bool) {
	if phi < 1 {
		return 0, false
	}

	t, newT := int64(0), int64(1)
	r, newR := phi, reduce(e, phi)
	for newR != 0 {
		quotient := r / newR
		t, newT = newT, t-quotient*newT
		r, newR = newR, r-quotient*newR
	}

	if r != 1 {
		return 0, false
	}
	if t < 0 {
		t += phi
	}
	return t, true
}

// mulMod returns a*b mod m. Both operands must already be below m, which keeps the
// high word of the product below m as bits.Div64 requires.
func mulMod(a, b, m uint64) uint64 {
	hi, lo := bits.Mul64(a, b)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

func reduce(x, m int64) int64 {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}
