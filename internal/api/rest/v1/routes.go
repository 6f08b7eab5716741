package v1

import (
	"github.com/MGTheTrain/text-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-rsa/internal/domain/messages"

	"github.com/gin-gonic/gin"
)

// SetupRoutes sets up all the API routes for version 1.
func SetupRoutes(r *gin.Engine,
	textRSA cryptoalg.TextRSAProcessor,
	messageEncryptService messages.MessageEncryptService,
	messageDecryptService messages.MessageDecryptService,
	messageMetadataService messages.MessageMetadataService) {

	v1 := r.Group(BasePath)

	// Cipher Routes
	cipherHandler := NewCipherHandler(textRSA)
	v1.POST("/encrypt", cipherHandler.Encrypt)
	v1.POST("/decrypt", cipherHandler.Decrypt)

	// Message Routes
	messageHandler := NewMessageHandler(messageEncryptService, messageDecryptService, messageMetadataService)
	v1.POST("/messages", messageHandler.Create)
	v1.GET("/messages", messageHandler.List)
	v1.GET("/messages/:id", messageHandler.GetByID)
	v1.DELETE("/messages/:id", messageHandler.DeleteByID)
	v1.POST("/messages/:id/decrypt", messageHandler.DecryptByID)
}
