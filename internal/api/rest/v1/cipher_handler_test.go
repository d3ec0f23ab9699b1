//go:build unit
// +build unit

package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func serveCipher(handlerFunc func(*gin.Context), body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	handlerFunc(c)
	return w
}

func TestCipherHandler_Encrypt_Success(t *testing.T) {
	mockCipherService := new(MockCipherService)
	handler := NewCipherHandler(mockCipherService)

	mockCipherService.On("Encrypt", mock.Anything, []byte("Hi"), "00000100010000000ca1").
		Return("00000bb800000c6b", nil)

	w := serveCipher(handler.Encrypt, `{"key": "00000100010000000ca1", "plaintext": "SGk="}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ciphertext": "00000bb800000c6b", "units": 2}`, w.Body.String())
	mockCipherService.AssertExpectations(t)
}

func TestCipherHandler_Encrypt_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"key":`},
		{"missing key", `{"plaintext": "SGk="}`},
		{"short key", `{"key": "0001", "plaintext": "SGk="}`},
		{"plaintext not base64", `{"key": "00000100010000000ca1", "plaintext": "%%%"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCipherService := new(MockCipherService)
			handler := NewCipherHandler(mockCipherService)

			w := serveCipher(handler.Encrypt, tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockCipherService.AssertNotCalled(t, "Encrypt", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCipherHandler_Decrypt_Success(t *testing.T) {
	mockCipherService := new(MockCipherService)
	handler := NewCipherHandler(mockCipherService)

	mockCipherService.On("Decrypt", mock.Anything, "00000bb800000c6b", "0000000ac10000000ca1").
		Return([]byte("Hi"), nil)

	w := serveCipher(handler.Decrypt, `{"key": "0000000ac10000000ca1", "ciphertext": "00000bb800000c6b"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"plaintext": "SGk="}`, w.Body.String())
	mockCipherService.AssertExpectations(t)
}

func TestCipherHandler_Decrypt_ErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"malformed ciphertext", textbook.ErrMalformedCiphertext, http.StatusBadRequest},
		{"out of range byte", textbook.ErrOutOfRangeDecryptedByte, http.StatusUnprocessableEntity},
		{"unexpected", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCipherService := new(MockCipherService)
			handler := NewCipherHandler(mockCipherService)

			mockCipherService.On("Decrypt", mock.Anything, mock.Anything, mock.Anything).
				Return(nil, fmt.Errorf("failed to decrypt: %w", tt.err))

			w := serveCipher(handler.Decrypt, `{"key": "0000000ac10000000ca1", "ciphertext": "0000"}`)

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Body.String(), "message")
		})
	}
}
