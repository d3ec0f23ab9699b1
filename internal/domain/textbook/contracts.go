package textbook

import "context"

// KeyGenerator derives a key pair from two primes.
type KeyGenerator interface {
	// CreateKeyPair computes n and phi, selects the public exponent e and its inverse d,
	// and returns the public (e, n) and private (d, n) key strings.
	// Primality and p != q are the caller's responsibility.
	CreateKeyPair(p, q int64) (KeyString, KeyString, error)
}

// KeyParser decodes key strings.
type KeyParser interface {
	// ParseKey decodes a 20 character hex key string into its exponent and modulus.
	ParseKey(keyString string) (KeyPair, error)
}

// Codec transforms byte streams into fixed-width hex ciphertext and back.
type Codec interface {
	// Encode raises every byte to the key's exponent modulo n and renders each result as
	// an 8 digit hex cipher unit, preserving input order.
	Encode(plain []byte, key KeyPair) (string, error)

	// Decode splits the ciphertext into 8 digit units and maps each back to one byte.
	Decode(cipherText string, key KeyPair) ([]byte, error)
}

// PrimeSampler supplies validated prime candidates for key generation.
type PrimeSampler interface {
	// SamplePrime draws candidates until one passes the primality check.
	SamplePrime(ctx context.Context) (int64, error)
}

// KeyRepository defines the interface for KeyRecord persistence
type KeyRepository interface {
	Create(ctx context.Context, record *KeyRecord) error
	List(ctx context.Context, query *KeyRecordQuery) ([]*KeyRecord, error)
	GetByID(ctx context.Context, id string) (*KeyRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

// KeyService defines the key generation and key registry use cases.
type KeyService interface {
	// GenerateFromPrimes validates p and q and derives a key pair from them.
	GenerateFromPrimes(ctx context.Context, p, q int64) (*GeneratedKeyPair, error)

	// GenerateRandom samples two distinct primes and derives a key pair from them.
	GenerateRandom(ctx context.Context) (*GeneratedKeyPair, error)

	// List retrieves recorded keys considering a query filter.
	List(ctx context.Context, query *KeyRecordQuery) ([]*KeyRecord, error)

	// GetByID retrieves a recorded key by its ID.
	GetByID(ctx context.Context, id string) (*KeyRecord, error)

	// DeleteByID removes a recorded key by its ID.
	DeleteByID(ctx context.Context, id string) error
}

// CipherService defines the encryption and decryption use cases.
type CipherService interface {
	Encrypt(ctx context.Context, plain []byte, keyString string) (string, error)
	Decrypt(ctx context.Context, cipherText string, keyString string) ([]byte, error)

	// EncryptFile reads inputPath, encrypts it and writes the ciphertext plus a trailing newline to outputPath.
	EncryptFile(ctx context.Context, inputPath, outputPath, keyString string) error

	// DecryptFile reads the ciphertext at inputPath and writes the recovered bytes to outputPath.
	DecryptFile(ctx context.Context, inputPath, outputPath, keyString string) error
}

// MetricsRecorder receives counts of completed and failed operations.
type MetricsRecorder interface {
	KeyGenerated(mode string)
	UnitsEncoded(n int)
	UnitsDecoded(n int)
	Failure(op string, err error)
}
