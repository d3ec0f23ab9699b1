// Package textbook defines the domain model of the textbook RSA toolkit: key pairs and
// their fixed-width key strings, the persisted key records, the error kinds raised by the
// number-theoretic core and the contracts implemented by the infrastructure and
// application layers.
//
// The scheme is deliberately insecure. There is no padding, primes are small and every
// byte is transformed independently.
package textbook
