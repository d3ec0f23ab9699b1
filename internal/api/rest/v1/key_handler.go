package v1

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"

	"github.com/gin-gonic/gin"
)

// KeyHandler defines the interface for handling key-related operations
type KeyHandler interface {
	GenerateKeys(ctx *gin.Context)
	ListKeys(ctx *gin.Context)
	GetKeyByID(ctx *gin.Context)
	DeleteKeyByID(ctx *gin.Context)
}

type keyHandler struct {
	keyService textbook.KeyService
}

// NewKeyHandler creates a new KeyHandler
func NewKeyHandler(keyService textbook.KeyService) KeyHandler {
	return &keyHandler{
		keyService: keyService,
	}
}

// GenerateKeys handles the POST request to generate a key pair
// @Summary Generate a textbook RSA key pair
// @Description Derive a key pair from the given primes p and q, or from two randomly sampled primes when the body is empty.
// @Tags Key
// @Accept json
// @Produce json
// @Param requestBody body GenerateKeysRequest false "Primes"
// @Success 201 {object} KeyPairResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [post]
func (handler *keyHandler) GenerateKeys(ctx *gin.Context) {
	var request GenerateKeysRequest

	if ctx.Request.ContentLength != 0 {
		if err := ctx.ShouldBindJSON(&request); err != nil {
			abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid key request: %v", err))
			return
		}
	}

	if err := request.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err))
		return
	}

	var (
		kp  *textbook.GeneratedKeyPair
		err error
	)
	if request.Random() {
		kp, err = handler.keyService.GenerateRandom(ctx.Request.Context())
	} else {
		kp, err = handler.keyService.GenerateFromPrimes(ctx.Request.Context(), *request.P, *request.Q)
	}
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error generating keys: %v", err))
		return
	}

	ctx.JSON(http.StatusCreated, NewKeyPairResponse(kp))
}

// ListKeys handles the GET request to list recorded keys with optional query parameters
// @Summary List recorded keys
// @Tags Key
// @Produce json
// @Param type query string false "Key Type (public/private)"
// @Param keyPairId query string false "Key Pair ID"
// @Param dateTimeCreated query string false "Key Creation Date (RFC3339)"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} KeyRecordResponse
// @Failure 400 {object} ErrorResponse
// @Router /keys [get]
func (handler *keyHandler) ListKeys(ctx *gin.Context) {
	query := textbook.NewKeyRecordQuery()

	if keyType := ctx.Query("type"); len(keyType) > 0 {
		query.Type = keyType
	}
	if keyPairID := ctx.Query("keyPairId"); len(keyPairID) > 0 {
		query.KeyPairID = keyPairID
	}
	if dateTimeCreated := ctx.Query("dateTimeCreated"); len(dateTimeCreated) > 0 {
		parsedTime, err := time.Parse(time.RFC3339, dateTimeCreated)
		if err != nil {
			abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid dateTimeCreated: %v", err))
			return
		}
		query.DateTimeCreated = parsedTime
	}
	for name, dst := range map[string]*int{"limit": &query.Limit, "offset": &query.Offset} {
		if raw := ctx.Query(name); len(raw) > 0 {
			n, err := strconv.Atoi(raw)
			if err != nil {
				abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid %s: %v", name, err))
				return
			}
			*dst = n
		}
	}
	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}
	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		abortWithError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid query: %v", err))
		return
	}

	records, err := handler.keyService.List(ctx.Request.Context(), query)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error listing keys: %v", err))
		return
	}

	response := []KeyRecordResponse{}
	for _, r := range records {
		response = append(response, NewKeyRecordResponse(r))
	}
	ctx.JSON(http.StatusOK, response)
}

// GetKeyByID handles the GET request to fetch a recorded key by its ID
// @Summary Retrieve a recorded key by ID
// @Tags Key
// @Produce json
// @Param id path string true "Key ID"
// @Success 200 {object} KeyRecordResponse
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [get]
func (handler *keyHandler) GetKeyByID(ctx *gin.Context) {
	id := ctx.Param("id")

	record, err := handler.keyService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error fetching key %s: %v", id, err))
		return
	}

	ctx.JSON(http.StatusOK, NewKeyRecordResponse(record))
}

// DeleteKeyByID handles the DELETE request to remove a recorded key by its ID
// @Summary Delete a recorded key by ID
// @Tags Key
// @Param id path string true "Key ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /keys/{id} [delete]
func (handler *keyHandler) DeleteKeyByID(ctx *gin.Context) {
	id := ctx.Param("id")

	if err := handler.keyService.DeleteByID(ctx.Request.Context(), id); err != nil {
		abortWithError(ctx, statusFor(err), fmt.Sprintf("error deleting key %s: %v", id, err))
		return
	}

	ctx.Status(http.StatusNoContent)
}
