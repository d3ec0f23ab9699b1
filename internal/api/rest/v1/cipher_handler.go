package v1

import (
	"encoding/base64"
	"fmt"
	"net/http"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"

	"github.com/gin-gonic/gin"
)

// CipherHandler defines the interface for handling encryption and decryption
type CipherHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type cipherHandler struct {
	cipherService textbook.CipherService
}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler(cipherService textbook.CipherService) CipherHandler {
	return &cipherHandler{
		cipherService: cipherService,
	}
}

// Encrypt handles the POST request to encrypt base64 encoded plaintext with a public key
// @Summary Encrypt plaintext
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Key and plaintext"
// @Success 200 {object} EncryptResponse
// @Failure 400 {object} ErrorResponse
// @Router /encrypt [post]
func (handler *cipherHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid encrypt request: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}

	plain, err := base64.StdEncoding.DecodeString(request.Plaintext)
	if err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid plaintext encoding: %v", err))
		return
	}

	cipherText, err := handler.cipherService.Encrypt(ctx.Request.Context(), plain, request.Key)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error encrypting: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, EncryptResponse{
		Ciphertext: cipherText,
		Units:      len(plain),
	})
}

// Decrypt handles the POST request to decrypt hex ciphertext with a private key
// @Summary Decrypt ciphertext
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Key and ciphertext"
// @Success 200 {object} DecryptResponse
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /decrypt [post]
func (handler *cipherHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid decrypt request: %v", err))
		return
	}
	if err := request.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}

	plain, err := handler.cipherService.Decrypt(ctx.Request.Context(), request.Ciphertext, request.Key)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error decrypting: %v", err))
		return
	}

	ctx.JSON(http.StatusOK, DecryptResponse{
		Plaintext: base64.StdEncoding.EncodeToString(plain),
	})
}
