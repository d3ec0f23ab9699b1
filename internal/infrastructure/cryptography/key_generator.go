package cryptography

import (
	"fmt"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/logger"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/numtheory"
)

// conventionalExponents are tried in order before falling back to a linear scan
var conventionalExponents = [...]int64{textbook.ExponentSmall, textbook.ExponentF4}

// keyGenerator struct that implements the textbook.KeyGenerator interface
type keyGenerator struct {
	logger logger.Logger
}

// NewKeyGenerator creates and returns a new instance of keyGenerator
func NewKeyGenerator(logger logger.Logger) (textbook.KeyGenerator, error) {
	return &keyGenerator{
		logger: logger,
	}, nil
}

// CreateKeyPair derives the public (e, n) and private (d, n) key strings from p and q.
// It does not test primality: callers validate candidates first.
func (g *keyGenerator) CreateKeyPair(p, q int64) (textbook.KeyString, textbook.KeyString, error) {
	if p < 2 || q < 2 {
		return "", "", fmt.Errorf("%w: p=%d q=%d must both be at least 2", textbook.ErrInvalidPrimeCandidate, p, q)
	}
	if p > textbook.MaxKeyField/q {
		return "", "", fmt.Errorf("%w: modulus %d*%d does not fit in %d hex digits",
			textbook.ErrInvalidPrimeCandidate, p, q, textbook.KeyFieldWidth)
	}

	n := p * q
	phi := (p - 1) * (q - 1)

	e, err := selectExponent(n, phi)
	if err != nil {
		return "", "", err
	}

	d, ok := numtheory.ModInverse(e, phi)
	if !ok {
		return "", "", fmt.Errorf("%w: e=%d phi=%d", textbook.ErrNoModularInverse, e, phi)
	}

	public := textbook.KeyPair{Exponent: uint64(e), Modulus: uint64(n)}
	private := textbook.KeyPair{Exponent: uint64(d), Modulus: uint64(n)}

	g.logger.Info(fmt.Sprintf("Generated textbook RSA key pair with n=%d e=%d", n, e))
	return public.KeyString(), private.KeyString(), nil
}

// selectExponent picks the public exponent: the first conventional exponent coprime to
// both phi and n, otherwise the smallest such value in [2, phi).
func selectExponent(n, phi int64) (int64, error) {
	for _, e := range conventionalExponents {
		if usableExponent(e, n, phi) {
			return e, nil
		}
	}

	for e := int64(2); e < phi; e++ {
		if usableExponent(e, n, phi) {
			return e, nil
		}
	}

	return 0, fmt.Errorf("%w: n=%d phi=%d", textbook.ErrNoValidExponent, n, phi)
}

func usableExponent(e, n, phi int64) bool {
	return numtheory.GCD(e, phi) == 1 && numtheory.GCD(e, n) == 1
}
