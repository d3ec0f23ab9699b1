//go:build unit
// +build unit

package app

import (
	"context"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"

	"github.com/stretchr/testify/mock"
)

// MockKeyRepository is a mock implementation of KeyRepository
type MockKeyRepository struct {
	mock.Mock
}

func (m *MockKeyRepository) Create(ctx context.Context, record *textbook.KeyRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockKeyRepository) List(ctx context.Context, query *textbook.KeyRecordQuery) ([]*textbook.KeyRecord, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*textbook.KeyRecord), args.Error(1)
}

func (m *MockKeyRepository) GetByID(ctx context.Context, id string) (*textbook.KeyRecord, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*textbook.KeyRecord), args.Error(1)
}

func (m *MockKeyRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockPrimeSampler is a mock implementation of PrimeSampler
type MockPrimeSampler struct {
	mock.Mock
}

func (m *MockPrimeSampler) SamplePrime(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockMetricsRecorder is a mock implementation of MetricsRecorder
type MockMetricsRecorder struct {
	mock.Mock
}

func (m *MockMetricsRecorder) KeyGenerated(mode string) {
	m.Called(mode)
}

func (m *MockMetricsRecorder) UnitsEncoded(n int) {
	m.Called(n)
}

func (m *MockMetricsRecorder) UnitsDecoded(n int) {
	m.Called(n)
}

func (m *MockMetricsRecorder) Failure(op string, err error) {
	m.Called(op, err)
}
