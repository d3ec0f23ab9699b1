package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/numtheory"

	"github.com/gin-gonic/gin"
)

// PrimeHandler defines the interface for primality checks
type PrimeHandler interface {
	CheckPrime(ctx *gin.Context)
}

type primeHandler struct {
	upperBound int64
}

// NewPrimeHandler creates a PrimeHandler whose default bound is upperBound
func NewPrimeHandler(upperBound int64) PrimeHandler {
	return &primeHandler{upperBound: upperBound}
}

// CheckPrime handles the GET request to test a candidate for primality
// @Summary Check a prime candidate
// @Tags Prime
// @Produce json
// @Param candidate path int true "Candidate"
// @Param upperBound query int false "Upper bound, defaults to the configured key generation limit"
// @Success 200 {object} PrimeCheckResponse
// @Failure 400 {object} ErrorResponse
// @Router /primes/{candidate} [get]
func (handler *primeHandler) CheckPrime(ctx *gin.Context) {
	candidate, err := strconv.ParseInt(ctx.Param("candidate"), 10, 64)
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid candidate: %v", err))
		return
	}

	upperBound := handler.upperBound
	if raw := ctx.Query("upperBound"); len(raw) > 0 {
		upperBound, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid upperBound: %v", err))
			return
		}
	}
	// trial division cost grows with sqrt(upperBound)
	if upperBound > textbook.MaxKeyField {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("upperBound must not exceed %d", int64(textbook.MaxKeyField)))
		return
	}

	ctx.JSON(http.StatusOK, PrimeCheckResponse{
		Candidate:  candidate,
		UpperBound: upperBound,
		Prime:      numtheory.IsPrime(candidate, upperBound),
	})
}
