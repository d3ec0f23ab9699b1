//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	gin.SetMode(gin.TestMode)
	mockKeyService := new(MockKeyService)
	mockCipherService := new(MockCipherService)

	mockKeyService.On("GenerateRandom", mock.Anything).Return(nil, textbook.ErrInvalidPrimeCandidate)
	mockKeyService.On("List", mock.Anything, mock.Anything).Return([]*textbook.KeyRecord{}, nil)
	mockKeyService.On("GetByID", mock.Anything, mock.Anything).Return(nil, textbook.ErrKeyRecordNotFound)
	mockKeyService.On("DeleteByID", mock.Anything, mock.Anything).Return(nil)

	r := gin.New()
	SetupRoutes(r, mockKeyService, mockCipherService, textbook.DefaultUpperLimit, nil)

	tests := []struct {
		method string
		url    string
		status int
	}{
		{"POST", "/api/v1/rsa/keys", http.StatusBadRequest},
		{"GET", "/api/v1/rsa/keys", http.StatusOK},
		{"GET", "/api/v1/rsa/keys/abc", http.StatusNotFound},
		{"DELETE", "/api/v1/rsa/keys/abc", http.StatusNoContent},
		{"POST", "/api/v1/rsa/encrypt", http.StatusBadRequest},
		{"POST", "/api/v1/rsa/decrypt", http.StatusBadRequest},
		{"GET", "/api/v1/rsa/primes/13", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}

func TestSetupMetricsRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "rsa_toolkit_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	r := gin.New()
	SetupMetricsRoute(r, reg)

	req, _ := http.NewRequest("GET", "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, strings.Contains(w.Body.String(), "rsa_toolkit_test_total 1"))
}
