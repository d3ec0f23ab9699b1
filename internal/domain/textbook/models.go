package textbook

import (
	"errors"
	"fmt"
	"time"

	"github.com/Jesso3/RSA-Encyption/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// KeyString is the packed textual form of a key pair: exponent and modulus, each
// zero-padded to 10 lowercase hex digits and concatenated.
type KeyString string

// String returns the key string as plain text
func (k KeyString) String() string {
	return string(k)
}

// KeyPair is one half of an RSA key: (e, n) for the public key or (d, n) for the private key.
type KeyPair struct {
	Exponent uint64
	Modulus  uint64
}

// KeyString encodes the key pair in the fixed-width key string format.
func (k KeyPair) KeyString() KeyString {
	return KeyString(fmt.Sprintf("%0*x%0*x", KeyFieldWidth, k.Exponent, KeyFieldWidth, k.Modulus))
}

// GeneratedKeyPair is the outcome of a key generation run
type GeneratedKeyPair struct {
	KeyPairID       string
	PublicKey       KeyString
	PrivateKey      KeyString
	Modulus         uint64
	DateTimeCreated time.Time
}

// KeyRecord entity
type KeyRecord struct {
	ID              string    `validate:"required,uuid4"`
	KeyPairID       string    `validate:"required,uuid4"`
	Type            string    `validate:"required,oneof=public private"`
	KeyString       string    `validate:"required,keystring"`
	Exponent        uint64    `validate:"required"`
	Modulus         uint64    `validate:"required"`
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating KeyRecord struct
func (r *KeyRecord) Validate() error {
	validate := validator.New()

	if err := validate.RegisterValidation("keystring", validators.KeyStringValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	return formatValidationError(validate.Struct(r))
}

// KeyRecordQuery represents filters, pagination and sorting for listing key records
type KeyRecordQuery struct {
	Type            string    `validate:"omitempty,oneof=public private"`
	KeyPairID       string    `validate:"omitempty,uuid4"`
	DateTimeCreated time.Time `validate:"omitempty"`

	Limit  int `validate:"omitempty,gt=0"`
	Offset int `validate:"omitempty,gte=0"`

	SortBy    string `validate:"omitempty,oneof=id type modulus date_time_created"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewKeyRecordQuery creates a KeyRecordQuery with default values
func NewKeyRecordQuery() *KeyRecordQuery {
	return &KeyRecordQuery{
		Limit:     10,
		Offset:    0,
		SortBy:    "date_time_created",
		SortOrder: "desc",
	}
}

// Validate for validating KeyRecordQuery struct
func (q *KeyRecordQuery) Validate() error {
	validate := validator.New()
	return formatValidationError(validate.Struct(q))
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
		return fmt.Errorf("validation failed: %v", messages)
	}
	return fmt.Errorf("validation error: %w", err)
}
