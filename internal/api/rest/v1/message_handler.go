package v1

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MGTheTrain/text-rsa/internal/domain/messages"

	"github.com/gin-gonic/gin"
)

// MessageHandler defines the interface for handling stored message operations
type MessageHandler interface {
	Create(ctx *gin.Context)
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
	DecryptByID(ctx *gin.Context)
}

type messageHandler struct {
	messageEncryptService  messages.MessageEncryptService
	messageDecryptService  messages.MessageDecryptService
	messageMetadataService messages.MessageMetadataService
}

// NewMessageHandler creates a new MessageHandler
func NewMessageHandler(
	messageEncryptService messages.MessageEncryptService,
	messageDecryptService messages.MessageDecryptService,
	messageMetadataService messages.MessageMetadataService,
) MessageHandler {
	return &messageHandler{
		messageEncryptService:  messageEncryptService,
		messageDecryptService:  messageDecryptService,
		messageMetadataService: messageMetadataService,
	}
}

func toMessageResponse(message *messages.Message) MessageResponse {
	return MessageResponse{
		ID:                 message.ID,
		CipherText:         message.CipherText,
		SymbolCount:        message.SymbolCount,
		ModulusFingerprint: message.ModulusFingerprint,
		DateTimeCreated:    message.DateTimeCreated,
	}
}

// Create handles the POST request to encrypt and store a message
// @Summary Encrypt and store a message
// @Description Encrypt a message with the given key and persist the cipher text with a fingerprint of the modulus.
// @Tags Message
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Message and key"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /messages [post]
func (handler *messageHandler) Create(ctx *gin.Context) {
	var request EncryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid message data: %v", err.Error()))
		return
	}

	if err := request.Validate(); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err.Error()))
		return
	}

	exponent, modulus := request.Key()
	message, err := handler.messageEncryptService.Encrypt(ctx.Request.Context(), request.Message, exponent, modulus)
	if err != nil {
		respondError(ctx, statusFor(err), fmt.Sprintf("error storing message: %v", err.Error()))
		return
	}

	ctx.JSON(http.StatusCreated, toMessageResponse(message))
}

// List handles the GET request to list stored messages with optional query parameters
// @Summary List stored messages
// @Description Fetch stored messages filtered by modulus fingerprint, with pagination and sorting options.
// @Tags Message
// @Accept json
// @Produce json
// @Param fingerprint query string false "Modulus fingerprint"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by date_time_created or symbol_count"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /messages [get]
func (handler *messageHandler) List(ctx *gin.Context) {
	query := messages.NewMessageQuery()

	if fingerprint := ctx.Query("fingerprint"); len(fingerprint) > 0 {
		query.ModulusFingerprint = fingerprint
	}

	for name, target := range map[string]*int{"limit": &query.Limit, "offset": &query.Offset} {
		if value := ctx.Query(name); len(value) > 0 {
			parsed, err := strconv.Atoi(value)
			if err != nil {
				respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid %s: %s", name, value))
				return
			}
			*target = parsed
		}
	}

	if sortBy := ctx.Query("sortBy"); len(sortBy) > 0 {
		query.SortBy = sortBy
	}

	if sortOrder := ctx.Query("sortOrder"); len(sortOrder) > 0 {
		query.SortOrder = sortOrder
	}

	if err := query.Validate(); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err.Error()))
		return
	}

	list, err := handler.messageMetadataService.List(ctx.Request.Context(), query)
	if err != nil {
		respondError(ctx, statusFor(err), fmt.Sprintf("list query failed: %v", err.Error()))
		return
	}

	var listResponse = []MessageResponse{}
	for _, message := range list {
		listResponse = append(listResponse, toMessageResponse(message))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a stored message by ID
// @Summary Retrieve a stored message by ID
// @Tags Message
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} MessageResponse
// @Failure 404 {object} ErrorResponse
// @Router /messages/{id} [get]
func (handler *messageHandler) GetByID(ctx *gin.Context) {
	messageID := ctx.Param("id")

	message, err := handler.messageMetadataService.GetByID(ctx.Request.Context(), messageID)
	if err != nil {
		respondError(ctx, statusFor(err), fmt.Sprintf("message with id %s not found", messageID))
		return
	}

	ctx.JSON(http.StatusOK, toMessageResponse(message))
}

// DeleteByID handles the DELETE request to remove a stored message
// @Summary Delete a stored message by ID
// @Tags Message
// @Param id path string true "Message ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Router /messages/{id} [delete]
func (handler *messageHandler) DeleteByID(ctx *gin.Context) {
	messageID := ctx.Param("id")

	if err := handler.messageMetadataService.DeleteByID(ctx.Request.Context(), messageID); err != nil {
		respondError(ctx, statusFor(err), fmt.Sprintf("error deleting message with id %s: %v", messageID, err.Error()))
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DecryptByID handles the POST request to decrypt a stored message
// @Summary Decrypt a stored message
// @Description Decrypt the stored cipher text with the given key. A key with another modulus yields wrong text.
// @Tags Message
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param requestBody body KeyRequest true "Decryption key"
// @Success 200 {object} PlainTextResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /messages/{id}/decrypt [post]
func (handler *messageHandler) DecryptByID(ctx *gin.Context) {
	messageID := ctx.Param("id")
	var request KeyRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid key data: %v", err.Error()))
		return
	}

	if err := request.Validate(); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err.Error()))
		return
	}

	exponent, modulus := request.Key()
	plainText, err := handler.messageDecryptService.DecryptByID(ctx.Request.Context(), messageID, exponent, modulus)
	if err != nil {
		respondError(ctx, statusFor(err), fmt.Sprintf("error decrypting message with id %s: %v", messageID, err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, PlainTextResponse{Message: plainText})
}
