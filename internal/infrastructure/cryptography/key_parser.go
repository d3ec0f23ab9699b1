package cryptography

import (
	"fmt"
	"strconv"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/logger"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/validators"
)

// keyParser struct that implements the textbook.KeyParser interface
type keyParser struct {
	logger logger.Logger
}

// NewKeyParser creates and returns a new instance of keyParser
func NewKeyParser(logger logger.Logger) (textbook.KeyParser, error) {
	return &keyParser{
		logger: logger,
	}, nil
}

// ParseKey splits a key string into exponent (first 10 hex digits) and modulus (last 10).
// Hex digits are accepted in either case.
func (k *keyParser) ParseKey(keyString string) (textbook.KeyPair, error) {
	if len(keyString) != textbook.KeyStringLength {
		return textbook.KeyPair{}, fmt.Errorf("%w: expected %d characters, got %d",
			textbook.ErrMalformedKey, textbook.KeyStringLength, len(keyString))
	}
	if !validators.IsHex(keyString) {
		return textbook.KeyPair{}, fmt.Errorf("%w: key contains non-hex characters", textbook.ErrMalformedKey)
	}

	exponent, err := strconv.ParseUint(keyString[:textbook.KeyFieldWidth], 16, 64)
	if err != nil {
		return textbook.KeyPair{}, fmt.Errorf("%w: failed to parse exponent: %v", textbook.ErrMalformedKey, err)
	}
	modulus, err := strconv.ParseUint(keyString[textbook.KeyFieldWidth:], 16, 64)
	if err != nil {
		return textbook.KeyPair{}, fmt.Errorf("%w: failed to parse modulus: %v", textbook.ErrMalformedKey, err)
	}
	if modulus == 0 {
		return textbook.KeyPair{}, fmt.Errorf("%w: modulus is zero", textbook.ErrMalformedKey)
	}

	k.logger.Debug(fmt.Sprintf("Parsed key with exponent=%d modulus=%d", exponent, modulus))
	return textbook.KeyPair{Exponent: exponent, Modulus: modulus}, nil
}
