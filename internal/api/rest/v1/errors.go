package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/MGTheTrain/text-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-rsa/internal/domain/messages"
	"github.com/MGTheTrain/text-rsa/internal/domain/textrsa"

	"github.com/gin-gonic/gin"
)

var badRequestErrors = []error{
	textrsa.ErrUnknownSymbol,
	textrsa.ErrMalformedCipherText,
	textrsa.ErrCodeOverflow,
	textrsa.ErrInvalidModulus,
	textrsa.ErrInvalidExponent,
	textrsa.ErrNegativeBase,
	cryptoalg.ErrMessageTooLong,
}

// statusFor maps service errors onto HTTP status codes
func statusFor(err error) int {
	if errors.Is(err, messages.ErrMessageNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return http.StatusRequestTimeout
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return http.StatusBadRequest
		}
	}
	return http.StatusInternalServerError
}

func respondError(ctx *gin.Context, status int, message string) {
	ctx.JSON(status, ErrorResponse{Message: message})
}
