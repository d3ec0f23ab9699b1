//go:build integration
// +build integration

package app

import (
	"context"
	"testing"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServices_GenerateRecordEncryptDecrypt(t *testing.T) {
	services := SetupTestServices(t, config.SqliteDbType)
	ctx := context.Background()

	kp, err := services.KeyService.GenerateRandom(ctx)
	require.NoError(t, err)

	records, err := services.KeyService.List(ctx, &textbook.KeyRecordQuery{KeyPairID: kp.KeyPairID})
	require.NoError(t, err)
	require.Len(t, records, 2)

	plain := []byte("The quick brown fox jumps over the lazy dog")
	cipherText, err := services.CipherService.Encrypt(ctx, plain, kp.PublicKey.String())
	require.NoError(t, err)

	decrypted, err := services.CipherService.Decrypt(ctx, cipherText, kp.PrivateKey.String())
	require.NoError(t, err)
	assert.Equal(t, plain, decrypted)

	for _, r := range records {
		require.NoError(t, services.KeyService.DeleteByID(ctx, r.ID))
	}
	remaining, err := services.KeyService.List(ctx, &textbook.KeyRecordQuery{KeyPairID: kp.KeyPairID})
	require.NoError(t, err)
	assert.Empty(t, remaining)
}
