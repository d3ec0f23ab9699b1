package app

import (
	"context"
	"fmt"
	"time"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/config"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/logger"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/numtheory"

	"github.com/google/uuid"
)

// Key generation modes reported to metrics
const (
	ModeFromPrimes = "primes"
	ModeRandom     = "random"
)

// keyService implements the textbook.KeyService interface
type keyService struct {
	generator   textbook.KeyGenerator
	parser      textbook.KeyParser
	sampler     textbook.PrimeSampler
	repo        textbook.KeyRepository
	metrics     textbook.MetricsRecorder
	upperLimit  int64
	maxAttempts int
	logger      logger.Logger
}

// NewKeyService creates a new keyService instance.
// repo and metrics are optional: without a repository generated keys are not recorded.
func NewKeyService(
	generator textbook.KeyGenerator,
	parser textbook.KeyParser,
	sampler textbook.PrimeSampler,
	repo textbook.KeyRepository,
	metrics textbook.MetricsRecorder,
	settings *config.KeyGenSettings,
	logger logger.Logger,
) (textbook.KeyService, error) {
	if generator == nil || parser == nil || sampler == nil {
		return nil, fmt.Errorf("key generator, parser and sampler are required")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &keyService{
		generator:   generator,
		parser:      parser,
		sampler:     sampler,
		repo:        repo,
		metrics:     metrics,
		upperLimit:  settings.UpperLimit,
		maxAttempts: settings.MaxAttempts,
		logger:      logger,
	}, nil
}

// GenerateFromPrimes checks that p and q are distinct primes within the bound and derives a key pair.
func (s *keyService) GenerateFromPrimes(ctx context.Context, p, q int64) (*textbook.GeneratedKeyPair, error) {
	if err := s.checkCandidates(p, q); err != nil {
		s.metrics.Failure("generate", err)
		return nil, err
	}
	return s.generate(ctx, p, q, ModeFromPrimes)
}

// GenerateRandom samples p, redraws q until it differs from p, and derives a key pair.
func (s *keyService) GenerateRandom(ctx context.Context) (*textbook.GeneratedKeyPair, error) {
	p, err := s.sampler.SamplePrime(ctx)
	if err != nil {
		s.metrics.Failure("generate", err)
		return nil, fmt.Errorf("failed to sample p: %w", err)
	}

	for attempt := 0; attempt < s.maxAttempts; attempt++ {
		q, err := s.sampler.SamplePrime(ctx)
		if err != nil {
			s.metrics.Failure("generate", err)
			return nil, fmt.Errorf("failed to sample q: %w", err)
		}
		if q != p {
			return s.generate(ctx, p, q, ModeRandom)
		}
	}

	err = fmt.Errorf("%w: no second prime distinct from %d after %d draws",
		textbook.ErrInvalidPrimeCandidate, p, s.maxAttempts)
	s.metrics.Failure("generate", err)
	return nil, err
}

func (s *keyService) checkCandidates(p, q int64) error {
	for _, c := range []int64{p, q} {
		if !numtheory.IsPrime(c, s.upperLimit) {
			return fmt.Errorf("%w: %d is not a prime not exceeding %d", textbook.ErrInvalidPrimeCandidate, c, s.upperLimit)
		}
	}
	if p == q {
		return fmt.Errorf("%w: p and q must differ, both are %d", textbook.ErrInvalidPrimeCandidate, p)
	}
	return nil
}

func (s *keyService) generate(ctx context.Context, p, q int64, mode string) (*textbook.GeneratedKeyPair, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	public, private, err := s.generator.CreateKeyPair(p, q)
	if err != nil {
		s.metrics.Failure("generate", err)
		return nil, fmt.Errorf("failed to create key pair: %w", err)
	}

	kp := &textbook.GeneratedKeyPair{
		KeyPairID:       uuid.NewString(),
		PublicKey:       public,
		PrivateKey:      private,
		Modulus:         uint64(p * q),
		DateTimeCreated: time.Now().UTC(),
	}

	if s.repo != nil {
		if err := s.record(ctx, kp); err != nil {
			return nil, err
		}
	}

	s.metrics.KeyGenerated(mode)
	s.logger.Info(fmt.Sprintf("Generated key pair %s (mode=%s, n=%d)", kp.KeyPairID, mode, kp.Modulus))
	return kp, nil
}

// record stores both halves of the key pair in the registry
func (s *keyService) record(ctx context.Context, kp *textbook.GeneratedKeyPair) error {
	halves := []struct {
		keyType string
		key     textbook.KeyString
	}{
		{textbook.KeyTypePublic, kp.PublicKey},
		{textbook.KeyTypePrivate, kp.PrivateKey},
	}

	for _, h := range halves {
		parsed, err := s.parser.ParseKey(h.key.String())
		if err != nil {
			return fmt.Errorf("failed to parse generated %s key: %w", h.keyType, err)
		}

		rec := &textbook.KeyRecord{
			ID:              uuid.NewString(),
			KeyPairID:       kp.KeyPairID,
			Type:            h.keyType,
			KeyString:       h.key.String(),
			Exponent:        parsed.Exponent,
			Modulus:         parsed.Modulus,
			DateTimeCreated: kp.DateTimeCreated,
		}
		if err := s.repo.Create(ctx, rec); err != nil {
			return fmt.Errorf("failed to record %s key: %w", h.keyType, err)
		}
	}
	return nil
}

// List retrieves recorded keys matching the query
func (s *keyService) List(ctx context.Context, query *textbook.KeyRecordQuery) ([]*textbook.KeyRecord, error) {
	if s.repo == nil {
		return nil, textbook.ErrKeyRegistryUnavailable
	}
	return s.repo.List(ctx, query)
}

// GetByID retrieves a recorded key by its ID
func (s *keyService) GetByID(ctx context.Context, id string) (*textbook.KeyRecord, error) {
	if s.repo == nil {
		return nil, textbook.ErrKeyRegistryUnavailable
	}
	return s.repo.GetByID(ctx, id)
}

// DeleteByID removes a recorded key by its ID
func (s *keyService) DeleteByID(ctx context.Context, id string) error {
	if s.repo == nil {
		return textbook.ErrKeyRegistryUnavailable
	}
	return s.repo.DeleteByID(ctx, id)
}

type noopMetrics struct{}

func (noopMetrics) KeyGenerated(string)   {}
func (noopMetrics) UnitsEncoded(int)      {}
func (noopMetrics) UnitsDecoded(int)      {}
func (noopMetrics) Failure(string, error) {}
