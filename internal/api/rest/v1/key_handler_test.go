//go:build unit
// +build unit

package v1

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func testGeneratedKeyPair() *textbook.GeneratedKeyPair {
	return &textbook.GeneratedKeyPair{
		KeyPairID:       "pair-123",
		PublicKey:       "00000100010000000ca1",
		PrivateKey:      "0000000ac10000000ca1",
		Modulus:         3233,
		DateTimeCreated: time.Now(),
	}
}

func testKeyRecord() *textbook.KeyRecord {
	return &textbook.KeyRecord{
		ID:              "abc-123",
		KeyPairID:       "pair-123",
		Type:            textbook.KeyTypePublic,
		KeyString:       "00000100010000000ca1",
		Exponent:        65537,
		Modulus:         3233,
		DateTimeCreated: time.Now(),
	}
}

func TestKeyHandler_GenerateKeys_FromPrimes(t *testing.T) {
	mockKeyService := new(MockKeyService)
	handler := NewKeyHandler(mockKeyService)

	mockKeyService.On("GenerateFromPrimes", mock.Anything, int64(61), int64(53)).Return(testGeneratedKeyPair(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys", bytes.NewBufferString(`{"p": 61, "q": 53}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GenerateKeys(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"public_key":"00000100010000000ca1"`)
	assert.Contains(t, w.Body.String(), `"private_key":"0000000ac10000000ca1"`)
	mockKeyService.AssertExpectations(t)
}

func TestKeyHandler_GenerateKeys_Random(t *testing.T) {
	mockKeyService := new(MockKeyService)
	handler := NewKeyHandler(mockKeyService)

	mockKeyService.On("GenerateRandom", mock.Anything).Return(testGeneratedKeyPair(), nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GenerateKeys(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "pair-123")
	mockKeyService.AssertExpectations(t)
}

func TestKeyHandler_GenerateKeys_BadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"p": `},
		{"only p", `{"p": 61}`},
		{"p below two", `{"p": 1, "q": 53}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockKeyService := new(MockKeyService)
			handler := NewKeyHandler(mockKeyService)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("POST", "/keys", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.GenerateKeys(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockKeyService.AssertNotCalled(t, "GenerateFromPrimes", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestKeyHandler_GenerateKeys_InvalidPrime(t *testing.T) {
	mockKeyService := new(MockKeyService)
	handler := NewKeyHandler(mockKeyService)

	mockKeyService.On("GenerateFromPrimes", mock.Anything, int64(60), int64(53)).
		Return(nil, fmt.Errorf("%w: 60", textbook.ErrInvalidPrimeCandidate))

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/keys", bytes.NewBufferString(`{"p": 60, "q": 53}`))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.GenerateKeys(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid prime candidate")
}

func TestKeyHandler_ListKeys_Success(t *testing.T) {
	mockKeyService := new(MockKeyService)
	handler := NewKeyHandler(mockKeyService)

	mockKeyService.On("List", mock.Anything, mock.MatchedBy(func(q *textbook.KeyRecordQuery) bool {
		return q.Type == textbook.KeyTypePublic && q.Limit == 5 && q.SortOrder == "asc"
	})).Return([]*textbook.KeyRecord{testKeyRecord()}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys?type=public&limit=5&sortOrder=asc", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListKeys(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "abc-123")
	mockKeyService.AssertExpectations(t)
}

func TestKeyHandler_ListKeys_InvalidQuery(t *testing.T) {
	for _, url := range []string{"/keys?limit=abc", "/keys?sortBy=secret", "/keys?dateTimeCreated=yesterday"} {
		t.Run(url, func(t *testing.T) {
			mockKeyService := new(MockKeyService)
			handler := NewKeyHandler(mockKeyService)

			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", url, nil)

			c, _ := gin.CreateTestContext(w)
			c.Request = req

			handler.ListKeys(c)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockKeyService.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
		})
	}
}

func TestKeyHandler_ListKeys_RegistryUnavailable(t *testing.T) {
	mockKeyService := new(MockKeyService)
	handler := NewKeyHandler(mockKeyService)

	mockKeyService.On("List", mock.Anything, mock.Anything).Return(nil, textbook.ErrKeyRegistryUnavailable)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/keys", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handler.ListKeys(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}

func TestKeyHandler_GetKeyByID(t *testing.T) {
	mockKeyService := new(MockKeyService)
	handler := NewKeyHandler(mockKeyService)

	mockKeyService.On("GetByID", mock.Anything, "abc-123").Return(testKeyRecord(), nil)
	mockKeyService.On("GetByID", mock.Anything, "missing").
		Return(nil, fmt.Errorf("%w: missing", textbook.ErrKeyRecordNotFound))

	tests := []struct {
		id     string
		status int
	}{
		{"abc-123", http.StatusOK},
		{"missing", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.id, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/keys/"+tt.id, nil)

			c, _ := gin.CreateTestContext(w)
			c.Request = req
			c.Params = gin.Params{gin.Param{Key: "id", Value: tt.id}}

			handler.GetKeyByID(c)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestKeyHandler_DeleteKeyByID(t *testing.T) {
	mockKeyService := new(MockKeyService)
	handler := NewKeyHandler(mockKeyService)

	mockKeyService.On("DeleteByID", mock.Anything, "abc-123").Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("DELETE", "/keys/abc-123", nil)

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	c.Params = gin.Params{gin.Param{Key: "id", Value: "abc-123"}}

	handler.DeleteKeyByID(c)

	assert.Equal(t, http.StatusNoContent, c.Writer.Status())
	mockKeyService.AssertExpectations(t)
}
