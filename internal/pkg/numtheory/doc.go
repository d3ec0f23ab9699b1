// Package numtheory provides the integer arithmetic behind the textbook RSA toolkit:
// greatest common divisors, modular exponentiation, modular inverses and a bounded
// trial-division primality test.
//
// All functions are pure. Modular products are computed with a 128-bit intermediate,
// so no step overflows for any modulus that fits in an int64.
package numtheory
