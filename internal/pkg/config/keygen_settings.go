package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// KeyGenSettings controls how prime candidates are sourced and bounded.
//
// UpperLimit is capped at 65536 so that n = p*q stays below 2^32 and every
// encrypted unit fits in eight hex digits.
type KeyGenSettings struct {
	LowerLimit  int64 `mapstructure:"lower_limit" validate:"gte=2"`
	UpperLimit  int64 `mapstructure:"upper_limit" validate:"gtfield=LowerLimit,lte=65536"`
	Seed        int64 `mapstructure:"seed"`
	MaxAttempts int   `mapstructure:"max_attempts" validate:"gte=1"`
}

// Validate checks that all fields in KeyGenSettings are valid
func (s *KeyGenSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for KeyGenSettings: %w", err)
	}
	return nil
}

// CodecSettings controls the codec worker count and default output files
type CodecSettings struct {
	Workers       int    `mapstructure:"workers" validate:"gte=1,lte=64"`
	EncryptedFile string `mapstructure:"encrypted_file" validate:"required"`
	DecryptedFile string `mapstructure:"decrypted_file" validate:"required"`
}

// Validate checks that all fields in CodecSettings are valid
func (s *CodecSettings) Validate() error {
	validate := validator.New()

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for CodecSettings: %w", err)
	}
	return nil
}

// RateLimitSettings configures the per-client token bucket of the REST API
type RateLimitSettings struct {
	Enabled bool    `mapstructure:"enabled"`
	RPS     float64 `mapstructure:"rps" validate:"gt=0"`
	Burst   int     `mapstructure:"burst" validate:"gt=0"`
}

// Validate checks that all fields in RateLimitSettings are valid
func (s *RateLimitSettings) Validate() error {
	if !s.Enabled {
		return nil
	}

	validate := validator.New()
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RateLimitSettings: %w", err)
	}
	return nil
}
