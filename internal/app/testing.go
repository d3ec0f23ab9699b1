//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"
	"github.com/Jesso3/RSA-Encyption/internal/infrastructure/cryptography"
	"github.com/Jesso3/RSA-Encyption/internal/infrastructure/persistence"
	"github.com/Jesso3/RSA-Encyption/internal/infrastructure/primesource"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/config"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	KeyService    textbook.KeyService
	CipherService textbook.CipherService

	DBContext *persistence.TestContext
}

// SetupTestServices wires the services against a fresh database of the given type
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	settings := &config.KeyGenSettings{
		LowerLimit:  textbook.DefaultLowerLimit,
		UpperLimit:  textbook.DefaultUpperLimit,
		Seed:        7,
		MaxAttempts: 100000,
	}

	generator, err := cryptography.NewKeyGenerator(logger)
	require.NoError(t, err)
	parser, err := cryptography.NewKeyParser(logger)
	require.NoError(t, err)
	codec, err := cryptography.NewCodec(logger, 4)
	require.NoError(t, err)
	sampler, err := primesource.NewSampler(logger, settings)
	require.NoError(t, err)

	keyService, err := NewKeyService(generator, parser, sampler, dbContext.KeyRepo, nil, settings, logger)
	require.NoError(t, err)
	cipherService, err := NewCipherService(parser, codec, nil, logger)
	require.NoError(t, err)

	return &TestServices{
		KeyService:    keyService,
		CipherService: cipherService,
		DBContext:     dbContext,
	}
}
