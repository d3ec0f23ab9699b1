//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keyHolder struct {
	Key string `validate:"required,keystring"`
}

func TestKeyStringValidation(t *testing.T) {
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("keystring", KeyStringValidation))

	tests := []struct {
		name      string
		key       string
		shouldErr bool
	}{
		{"valid lowercase", "00000100010000000ca1", false},
		{"valid uppercase", "00000100010000000CA1", false},
		{"too short", "00000100010000000ca", true},
		{"too long", "00000100010000000ca10", true},
		{"non hex character", "0000010001000000zca1", true},
		{"hex prefix", "0x000100010000000ca1", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(keyHolder{Key: tt.key})
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsHex(t *testing.T) {
	assert.True(t, IsHex("deadBEEF0123"))
	assert.False(t, IsHex(""))
	assert.False(t, IsHex("12 34"))
	assert.False(t, IsHex("-1"))
}
