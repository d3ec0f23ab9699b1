//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"

	"github.com/stretchr/testify/mock"
)

// MockKeyService is a mock implementation of KeyService
type MockKeyService struct {
	mock.Mock
}

func (m *MockKeyService) GenerateFromPrimes(ctx context.Context, p, q int64) (*textbook.GeneratedKeyPair, error) {
	args := m.Called(ctx, p, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*textbook.GeneratedKeyPair), args.Error(1)
}

func (m *MockKeyService) GenerateRandom(ctx context.Context) (*textbook.GeneratedKeyPair, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*textbook.GeneratedKeyPair), args.Error(1)
}

func (m *MockKeyService) List(ctx context.Context, query *textbook.KeyRecordQuery) ([]*textbook.KeyRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*textbook.KeyRecord), args.Error(1)
}

func (m *MockKeyService) GetByID(ctx context.Context, id string) (*textbook.KeyRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*textbook.KeyRecord), args.Error(1)
}

func (m *MockKeyService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCipherService is a mock implementation of CipherService
type MockCipherService struct {
	mock.Mock
}

func (m *MockCipherService) Encrypt(ctx context.Context, plain []byte, keyString string) (string, error) {
	args := m.Called(ctx, plain, keyString)
	return args.String(0), args.Error(1)
}

func (m *MockCipherService) Decrypt(ctx context.Context, cipherText string, keyString string) ([]byte, error) {
	args := m.Called(ctx, cipherText, keyString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCipherService) EncryptFile(ctx context.Context, inputPath, outputPath, keyString string) error {
	args := m.Called(ctx, inputPath, outputPath, keyString)
	return args.Error(0)
}

func (m *MockCipherService) DecryptFile(ctx context.Context, inputPath, outputPath, keyString string) error {
	args := m.Called(ctx, inputPath, outputPath, keyString)
	return args.Error(0)
}
