//go:build unit
// +build unit

package app

import (
	"context"
	"os"
	"testing"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"
	"github.com/Jesso3/RSA-Encyption/internal/infrastructure/cryptography"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	testPublicKey  = "00000100010000000ca1"
	testPrivateKey = "0000000ac10000000ca1"
)

func setupCipherService(t *testing.T, metrics textbook.MetricsRecorder) textbook.CipherService {
	t.Helper()
	logger := testutil.SetupTestLogger(t)

	parser, err := cryptography.NewKeyParser(logger)
	require.NoError(t, err)
	codec, err := cryptography.NewCodec(logger, 2)
	require.NoError(t, err)

	svc, err := NewCipherService(parser, codec, metrics, logger)
	require.NoError(t, err)
	return svc
}

func TestCipherService_EncryptDecrypt(t *testing.T) {
	metrics := new(MockMetricsRecorder)
	metrics.On("UnitsEncoded", 2).Once()
	metrics.On("UnitsDecoded", 2).Once()
	svc := setupCipherService(t, metrics)

	cipherText, err := svc.Encrypt(context.Background(), []byte("Hi"), testPublicKey)
	require.NoError(t, err)
	assert.Equal(t, "00000bb800000c6b", cipherText)

	plain, err := svc.Decrypt(context.Background(), cipherText+"\r\n", testPrivateKey)
	require.NoError(t, err)
	assert.Equal(t, []byte("Hi"), plain)

	metrics.AssertExpectations(t)
}

func TestCipherService_Errors(t *testing.T) {
	metrics := new(MockMetricsRecorder)
	metrics.On("Failure", mock.Anything, mock.Anything)
	svc := setupCipherService(t, metrics)

	_, err := svc.Encrypt(context.Background(), []byte("Hi"), "short")
	assert.ErrorIs(t, err, textbook.ErrMalformedKey)

	_, err = svc.Decrypt(context.Background(), "00000bb", testPrivateKey)
	assert.ErrorIs(t, err, textbook.ErrMalformedCiphertext)

	_, err = svc.Decrypt(context.Background(), "00000bb800000c6b", "0000000001zzzzzzzzzz")
	assert.ErrorIs(t, err, textbook.ErrMalformedKey)

	metrics.AssertNumberOfCalls(t, "Failure", 3)
}

func TestCipherService_Cancelled(t *testing.T) {
	svc := setupCipherService(t, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Encrypt(ctx, []byte("Hi"), testPublicKey)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCipherService_FileRoundTrip(t *testing.T) {
	svc := setupCipherService(t, nil)

	input := testutil.TempFilePath(t, "plain.txt")
	encrypted := testutil.TempFilePath(t, "rsa.cip")
	decrypted := testutil.TempFilePath(t, "rsa.out")

	content := []byte("line one\nline two\x00 with a zero byte\n")
	require.NoError(t, testutil.CreateTestFile(input, content))

	require.NoError(t, svc.EncryptFile(context.Background(), input, encrypted, testPublicKey))

	cipherText, err := os.ReadFile(encrypted)
	require.NoError(t, err)
	assert.Len(t, cipherText, len(content)*textbook.CipherUnitWidth+1)
	assert.Equal(t, byte('\n'), cipherText[len(cipherText)-1])

	require.NoError(t, svc.DecryptFile(context.Background(), encrypted, decrypted, testPrivateKey))

	got, err := os.ReadFile(decrypted)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestCipherService_FileErrors(t *testing.T) {
	svc := setupCipherService(t, nil)

	missing := testutil.TempFilePath(t, "missing.txt")
	out := testutil.TempFilePath(t, "out")

	assert.Error(t, svc.EncryptFile(context.Background(), missing, out, testPublicKey))
	assert.Error(t, svc.DecryptFile(context.Background(), missing, out, testPrivateKey))

	garbage := testutil.TempFilePath(t, "garbage.cip")
	require.NoError(t, testutil.CreateTestFile(garbage, []byte("not hex!\n")))
	err := svc.DecryptFile(context.Background(), garbage, out, testPrivateKey)
	assert.ErrorIs(t, err, textbook.ErrMalformedCiphertext)

	_, statErr := os.Stat(out)
	assert.True(t, os.IsNotExist(statErr))
}
