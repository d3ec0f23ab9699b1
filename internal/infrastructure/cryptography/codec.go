package cryptography

import (
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/logger"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/numtheory"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/validators"
)

// codec struct that implements the textbook.Codec interface
type codec struct {
	logger  logger.Logger
	workers int
}

// NewCodec creates and returns a new instance of codec.
// With workers > 1 units are transformed concurrently in contiguous chunks.
func NewCodec(logger logger.Logger, workers int) (textbook.Codec, error) {
	if workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", workers)
	}
	return &codec{
		logger:  logger,
		workers: workers,
	}, nil
}

// Encode maps every byte b to b^e mod n rendered as an 8 digit lowercase hex unit.
func (c *codec) Encode(plain []byte, key textbook.KeyPair) (string, error) {
	if err := checkCodecKey(key); err != nil {
		return "", err
	}

	units := make([]uint64, len(plain))
	err := c.forEachUnit(len(plain), func(i int) error {
		v, err := numtheory.ModExp(int64(plain[i]), int64(key.Exponent), int64(key.Modulus))
		if err != nil {
			return fmt.Errorf("failed to encrypt byte %d: %w", i, err)
		}
		units[i] = uint64(v)
		return nil
	})
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.Grow(len(units) * textbook.CipherUnitWidth)
	for _, u := range units {
		fmt.Fprintf(&sb, "%0*x", textbook.CipherUnitWidth, u)
	}

	c.logger.Info(fmt.Sprintf("Encoded %d bytes into %d cipher units", len(plain), len(units)))
	return sb.String(), nil
}

// Decode splits cipherText into 8 digit units and maps each unit u to u^d mod n.
// The input is never truncated: a partial trailing unit is an error.
func (c *codec) Decode(cipherText string, key textbook.KeyPair) ([]byte, error) {
	if err := checkCodecKey(key); err != nil {
		return nil, err
	}
	if len(cipherText)%textbook.CipherUnitWidth != 0 {
		return nil, fmt.Errorf("%w: length %d is not a multiple of %d",
			textbook.ErrMalformedCiphertext, len(cipherText), textbook.CipherUnitWidth)
	}
	if cipherText != "" && !validators.IsHex(cipherText) {
		return nil, fmt.Errorf("%w: non-hex characters", textbook.ErrMalformedCiphertext)
	}

	count := len(cipherText) / textbook.CipherUnitWidth
	plain := make([]byte, count)
	err := c.forEachUnit(count, func(i int) error {
		unit := cipherText[i*textbook.CipherUnitWidth : (i+1)*textbook.CipherUnitWidth]
		u, err := strconv.ParseUint(unit, 16, 32)
		if err != nil {
			return fmt.Errorf("%w: unit %d: %v", textbook.ErrMalformedCiphertext, i, err)
		}

		v, err := numtheory.ModExp(int64(u), int64(key.Exponent), int64(key.Modulus))
		if err != nil {
			return fmt.Errorf("failed to decrypt unit %d: %w", i, err)
		}
		if v > 0xff {
			return fmt.Errorf("%w: unit %d (%s) decrypts to %d", textbook.ErrOutOfRangeDecryptedByte, i, unit, v)
		}
		plain[i] = byte(v)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info(fmt.Sprintf("Decoded %d cipher units", count))
	return plain, nil
}

// forEachUnit runs fn for every index in [0, count). Each chunk stops at its first error and
// the error of the lowest failing chunk is returned, so results match the sequential run.
func (c *codec) forEachUnit(count int, fn func(i int) error) error {
	workers := c.workers
	if workers > count {
		workers = count
	}
	if workers <= 1 {
		for i := 0; i < count; i++ {
			if err := fn(i); err != nil {
				return err
			}
		}
		return nil
	}

	chunk := (count + workers - 1) / workers
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := min(start+chunk, count)
		if start >= end {
			break
		}

		wg.Add(1)
		go func(w, start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				if err := fn(i); err != nil {
					errs[w] = err
					return
				}
			}
		}(w, start, end)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// checkCodecKey rejects keys whose units cannot be rendered in 8 hex digits
func checkCodecKey(key textbook.KeyPair) error {
	if key.Modulus == 0 {
		return fmt.Errorf("%w: modulus is zero", textbook.ErrMalformedKey)
	}
	if key.Modulus > textbook.MaxCipherUnit+1 {
		return fmt.Errorf("%w: modulus %d exceeds the %d digit cipher unit range",
			textbook.ErrMalformedKey, key.Modulus, textbook.CipherUnitWidth)
	}
	if key.Exponent > textbook.MaxKeyField {
		return fmt.Errorf("%w: exponent %d exceeds the key field range", textbook.ErrMalformedKey, key.Exponent)
	}
	return nil
}
