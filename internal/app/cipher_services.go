package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/logger"
)

// cipherService implements the textbook.CipherService interface
type cipherService struct {
	parser  textbook.KeyParser
	codec   textbook.Codec
	metrics textbook.MetricsRecorder
	logger  logger.Logger
}

// NewCipherService creates a new cipherService instance. metrics is optional.
func NewCipherService(
	parser textbook.KeyParser,
	codec textbook.Codec,
	metrics textbook.MetricsRecorder,
	logger logger.Logger,
) (textbook.CipherService, error) {
	if parser == nil || codec == nil {
		return nil, fmt.Errorf("key parser and codec are required")
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &cipherService{
		parser:  parser,
		codec:   codec,
		metrics: metrics,
		logger:  logger,
	}, nil
}

// Encrypt encodes plain with the public key string
func (s *cipherService) Encrypt(ctx context.Context, plain []byte, keyString string) (string, error) {
	cipherText, err := s.encrypt(ctx, plain, keyString)
	if err != nil {
		s.metrics.Failure("encrypt", err)
		return "", err
	}
	s.metrics.UnitsEncoded(len(plain))
	return cipherText, nil
}

func (s *cipherService) encrypt(ctx context.Context, plain []byte, keyString string) (string, error) {
	kp, err := s.parser.ParseKey(keyString)
	if err != nil {
		return "", fmt.Errorf("failed to parse encryption key: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}

	cipherText, err := s.codec.Encode(plain, kp)
	if err != nil {
		return "", fmt.Errorf("failed to encrypt: %w", err)
	}
	return cipherText, nil
}

// Decrypt decodes cipherText with the private key string. Trailing line breaks are ignored.
func (s *cipherService) Decrypt(ctx context.Context, cipherText string, keyString string) ([]byte, error) {
	plain, err := s.decrypt(ctx, cipherText, keyString)
	if err != nil {
		s.metrics.Failure("decrypt", err)
		return nil, err
	}
	s.metrics.UnitsDecoded(len(plain))
	return plain, nil
}

func (s *cipherService) decrypt(ctx context.Context, cipherText string, keyString string) ([]byte, error) {
	kp, err := s.parser.ParseKey(keyString)
	if err != nil {
		return nil, fmt.Errorf("failed to parse decryption key: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	plain, err := s.codec.Decode(strings.TrimRight(cipherText, "\r\n"), kp)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt: %w", err)
	}
	return plain, nil
}

// EncryptFile encrypts the content of inputPath and writes the ciphertext followed by a newline to outputPath
func (s *cipherService) EncryptFile(ctx context.Context, inputPath, outputPath, keyString string) error {
	plain, err := os.ReadFile(filepath.Clean(inputPath))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	cipherText, err := s.Encrypt(ctx, plain, keyString)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Clean(outputPath), []byte(cipherText+"\n"), 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	s.logger.Info(fmt.Sprintf("Encrypted %s into %s", inputPath, outputPath))
	return nil
}

// DecryptFile decrypts the ciphertext in inputPath and writes the recovered bytes unchanged to outputPath
func (s *cipherService) DecryptFile(ctx context.Context, inputPath, outputPath, keyString string) error {
	cipherText, err := os.ReadFile(filepath.Clean(inputPath))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	plain, err := s.Decrypt(ctx, string(cipherText), keyString)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Clean(outputPath), plain, 0600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	s.logger.Info(fmt.Sprintf("Decrypted %s into %s", inputPath, outputPath))
	return nil
}
