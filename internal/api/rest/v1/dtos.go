package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// GenerateKeysRequest selects the key generation mode: both primes for explicit mode, none for random mode
type GenerateKeysRequest struct {
	P *int64 `json:"p" validate:"omitempty,gte=2"`
	Q *int64 `json:"q" validate:"omitempty,gte=2"`
}

// Random reports whether the request asks for randomly sampled primes
func (r *GenerateKeysRequest) Random() bool {
	return r.P == nil && r.Q == nil
}

// Validate for validating GenerateKeysRequest struct
func (r *GenerateKeysRequest) Validate() error {
	if (r.P == nil) != (r.Q == nil) {
		return fmt.Errorf("p and q must be given together")
	}
	return formatValidationError(newValidator().Struct(r))
}

// KeyPairResponse is returned after a key generation run
type KeyPairResponse struct {
	KeyPairID       string    `json:"key_pair_id"`
	PublicKey       string    `json:"public_key"`
	PrivateKey      string    `json:"private_key"`
	Modulus         uint64    `json:"modulus"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// NewKeyPairResponse maps a generated key pair to its response DTO
func NewKeyPairResponse(kp *textbook.GeneratedKeyPair) KeyPairResponse {
	return KeyPairResponse{
		KeyPairID:       kp.KeyPairID,
		PublicKey:       kp.PublicKey.String(),
		PrivateKey:      kp.PrivateKey.String(),
		Modulus:         kp.Modulus,
		DateTimeCreated: kp.DateTimeCreated,
	}
}

// KeyRecordResponse represents one recorded key half
type KeyRecordResponse struct {
	ID              string    `json:"id"`
	KeyPairID       string    `json:"key_pair_id"`
	Type            string    `json:"type"`
	KeyString       string    `json:"key"`
	Exponent        uint64    `json:"exponent"`
	Modulus         uint64    `json:"modulus"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

// NewKeyRecordResponse maps a key record to its response DTO
func NewKeyRecordResponse(r *textbook.KeyRecord) KeyRecordResponse {
	return KeyRecordResponse{
		ID:              r.ID,
		KeyPairID:       r.KeyPairID,
		Type:            r.Type,
		KeyString:       r.KeyString,
		Exponent:        r.Exponent,
		Modulus:         r.Modulus,
		DateTimeCreated: r.DateTimeCreated,
	}
}

// EncryptRequest carries a public key and base64 encoded plaintext
type EncryptRequest struct {
	Key       string `json:"key" validate:"required,keystring"`
	Plaintext string `json:"plaintext" validate:"omitempty,base64"`
}

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error {
	return formatValidationError(newValidator().Struct(r))
}

// EncryptResponse carries the hex ciphertext
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
	Units      int    `json:"units"`
}

// DecryptRequest carries a private key and hex ciphertext.
// The ciphertext shape is checked by the codec so that it reports the exact failure.
type DecryptRequest struct {
	Key        string `json:"key" validate:"required,keystring"`
	Ciphertext string `json:"ciphertext"`
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	return formatValidationError(newValidator().Struct(r))
}

// DecryptResponse carries the base64 encoded plaintext
type DecryptResponse struct {
	Plaintext string `json:"plaintext"`
}

// PrimeCheckResponse reports the primality of a candidate
type PrimeCheckResponse struct {
	Candidate  int64 `json:"candidate"`
	UpperBound int64 `json:"upper_bound"`
	Prime      bool  `json:"prime"`
}

// ErrorResponse is the body of every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

func newValidator() *validator.Validate {
	validate := validator.New()
	// registering a fresh tag name on a new instance cannot fail
	_ = validate.RegisterValidation("keystring", validators.KeyStringValidation)
	return validate
}

func formatValidationError(err error) error {
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		var messages []string
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%v", messages)
	}
	return err
}
