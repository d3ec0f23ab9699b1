package textbook

import "errors"

// Error kinds reported by the core. All of them are terminal for the failing operation
// and are matched with errors.Is after wrapping.
var (
	// ErrInvalidPrimeCandidate is raised when a candidate fails primality, exceeds the bound
	// or cannot form a representable key.
	ErrInvalidPrimeCandidate = errors.New("invalid prime candidate")

	// ErrNoValidExponent is raised when no public exponent satisfies both gcd conditions.
	ErrNoValidExponent = errors.New("no valid public exponent")

	// ErrNoModularInverse is raised when the public exponent has no inverse modulo phi.
	ErrNoModularInverse = errors.New("no modular inverse for public exponent")

	// ErrMalformedKey is raised when a key string is not 20 hex characters or describes an unusable key.
	ErrMalformedKey = errors.New("malformed key")

	// ErrMalformedCiphertext is raised when a ciphertext is not a whole number of hex cipher units.
	ErrMalformedCiphertext = errors.New("malformed ciphertext")

	// ErrOutOfRangeDecryptedByte is raised when a decrypted unit does not fit in one byte.
	ErrOutOfRangeDecryptedByte = errors.New("decrypted unit out of byte range")
)

// ErrKeyRecordNotFound is raised by the key registry when no record has the requested ID.
var ErrKeyRecordNotFound = errors.New("key record not found")

// ErrKeyRegistryUnavailable is raised by registry operations when no key registry is configured.
var ErrKeyRegistryUnavailable = errors.New("key registry is not configured")
