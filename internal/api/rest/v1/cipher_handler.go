package v1

import (
	"fmt"
	"net/http"

	"github.com/MGTheTrain/text-rsa/internal/domain/cryptoalg"

	"github.com/gin-gonic/gin"
)

// CipherHandler defines the interface for stateless encryption and decryption
type CipherHandler interface {
	Encrypt(ctx *gin.Context)
	Decrypt(ctx *gin.Context)
}

type cipherHandler struct {
	textRSA cryptoalg.TextRSAProcessor
}

// NewCipherHandler creates a new CipherHandler
func NewCipherHandler(textRSA cryptoalg.TextRSAProcessor) CipherHandler {
	return &cipherHandler{
		textRSA: textRSA,
	}
}

// Encrypt handles the POST request to encrypt a message without storing it
// @Summary Encrypt a message
// @Description Encrypt a message with the given exponent and modulus and return the '#'-delimited cipher text.
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body EncryptRequest true "Message and key"
// @Success 200 {object} CipherTextResponse
// @Failure 400 {object} ErrorResponse
// @Router /encrypt [post]
func (handler *cipherHandler) Encrypt(ctx *gin.Context) {
	var request EncryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid encryption request: %v", err.Error()))
		return
	}

	if err := request.Validate(); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err.Error()))
		return
	}

	exponent, modulus := request.Key()
	cipherText, err := handler.textRSA.Encrypt(ctx.Request.Context(), request.Message, exponent, modulus)
	if err != nil {
		respondError(ctx, statusFor(err), fmt.Sprintf("error encrypting message: %v", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, CipherTextResponse{CipherText: cipherText})
}

// Decrypt handles the POST request to decrypt a cipher text
// @Summary Decrypt a cipher text
// @Description Decrypt a '#'-delimited cipher text with the given exponent and modulus. A wrong key yields wrong text.
// @Tags Cipher
// @Accept json
// @Produce json
// @Param requestBody body DecryptRequest true "Cipher text and key"
// @Success 200 {object} PlainTextResponse
// @Failure 400 {object} ErrorResponse
// @Router /decrypt [post]
func (handler *cipherHandler) Decrypt(ctx *gin.Context) {
	var request DecryptRequest

	if err := ctx.ShouldBindJSON(&request); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("invalid decryption request: %v", err.Error()))
		return
	}

	if err := request.Validate(); err != nil {
		respondError(ctx, http.StatusBadRequest, fmt.Sprintf("validation failed: %v", err.Error()))
		return
	}

	exponent, modulus := request.Key()
	message, err := handler.textRSA.Decrypt(ctx.Request.Context(), request.CipherText, exponent, modulus)
	if err != nil {
		respondError(ctx, statusFor(err), fmt.Sprintf("error decrypting cipher text: %v", err.Error()))
		return
	}

	ctx.JSON(http.StatusOK, PlainTextResponse{Message: message})
}
