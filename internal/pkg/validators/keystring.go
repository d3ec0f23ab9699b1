package validators

import (
	"github.com/go-playground/validator/v10"
)

// keyStringLength mirrors the packed key format: two 10 digit hex fields.
const keyStringLength = 20

// KeyStringValidation validates that a string field holds a packed key string
// (exactly 20 hexadecimal characters, no prefix or separators).
func KeyStringValidation(fl validator.FieldLevel) bool {
	return IsKeyString(fl.Field().String())
}

// IsKeyString reports whether s has the packed key string shape.
func IsKeyString(s string) bool {
	if len(s) != keyStringLength {
		return false
	}
	return IsHex(s)
}

// IsHex reports whether s is non-empty and consists only of hexadecimal digits.
func IsHex(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}
