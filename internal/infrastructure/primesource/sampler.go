// Package primesource draws prime candidates for random key generation.
package primesource

import (
	"context"
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/config"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/logger"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/numtheory"
)

// sampler struct that implements the textbook.PrimeSampler interface
type sampler struct {
	logger      logger.Logger
	lower       int64
	upper       int64
	maxAttempts int

	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler creates a sampler over [LowerLimit, UpperLimit). A zero seed means time-seeded.
func NewSampler(logger logger.Logger, settings *config.KeyGenSettings) (textbook.PrimeSampler, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	seed := uint64(settings.Seed)
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}

	return NewSamplerWithSource(logger, settings, rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// NewSamplerWithSource creates a sampler drawing from an explicit random source
func NewSamplerWithSource(logger logger.Logger, settings *config.KeyGenSettings, src rand.Source) (textbook.PrimeSampler, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if src == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}

	return &sampler{
		logger:      logger,
		lower:       settings.LowerLimit,
		upper:       settings.UpperLimit,
		maxAttempts: settings.MaxAttempts,
		rng:         rand.New(src),
	}, nil
}

// SamplePrime draws uniform candidates from [lower, upper) until one is prime.
func (s *sampler) SamplePrime(ctx context.Context) (int64, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return 0, fmt.Errorf("prime sampling cancelled: %w", err)
		}

		candidate := s.draw()
		if numtheory.IsPrime(candidate, s.upper) {
			s.logger.Debug(fmt.Sprintf("Sampled prime %d after %d attempts", candidate, attempt))
			return candidate, nil
		}
	}

	return 0, fmt.Errorf("%w: no prime in [%d, %d) after %d attempts",
		textbook.ErrInvalidPrimeCandidate, s.lower, s.upper, s.maxAttempts)
}

func (s *sampler) draw() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lower + s.rng.Int64N(s.upper-s.lower)
}
