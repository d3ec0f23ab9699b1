package v1

import (
	"errors"
	"net/http"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"

	"github.com/gin-gonic/gin"
)

var badRequestErrors = []error{
	textbook.ErrInvalidPrimeCandidate,
	textbook.ErrNoValidExponent,
	textbook.ErrNoModularInverse,
	textbook.ErrMalformedKey,
	textbook.ErrMalformedCiphertext,
}

// statusFor maps service errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, textbook.ErrKeyRecordNotFound):
		return http.StatusNotFound
	case errors.Is(err, textbook.ErrKeyRegistryUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, textbook.ErrOutOfRangeDecryptedByte):
		return http.StatusUnprocessableEntity
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func abortWithError(ctx *gin.Context, status int, message string) {
	ctx.AbortWithStatusJSON(status, ErrorResponse{Message: message})
}
