package v1

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/MGTheTrain/text-rsa/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// KeyRequest carries one half of a key pair. Both values are decimal strings since they
// routinely exceed the range of JSON numbers.
type KeyRequest struct {
	Exponent string `json:"exponent" validate:"required,decimal"`
	Modulus  string `json:"modulus" validate:"required,decimal"`
}

// Validate for validating KeyRequest struct
func (r *KeyRequest) Validate() error {
	return validateRequest(r)
}

// Key returns the parsed exponent and modulus. Call it after Validate.
func (r *KeyRequest) Key() (*big.Int, *big.Int) {
	exponent, _ := validators.ParseDecimal(r.Exponent)
	modulus, _ := validators.ParseDecimal(r.Modulus)
	return exponent, modulus
}

// EncryptRequest is the body of an encryption request
type EncryptRequest struct {
	Message string `json:"message"`
	KeyRequest
}

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error {
	return validateRequest(r)
}

// DecryptRequest is the body of a decryption request
type DecryptRequest struct {
	CipherText string `json:"cipher_text"`
	KeyRequest
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	return validateRequest(r)
}

// CipherTextResponse holds a '#'-delimited cipher text
type CipherTextResponse struct {
	CipherText string `json:"cipher_text"`
}

// PlainTextResponse holds a decrypted message
type PlainTextResponse struct {
	Message string `json:"message"`
}

// MessageResponse represents a stored message
type MessageResponse struct {
	ID                 string    `json:"id"`
	CipherText         string    `json:"cipher_text"`
	SymbolCount        int       `json:"symbol_count"`
	ModulusFingerprint string    `json:"modulus_fingerprint"`
	DateTimeCreated    time.Time `json:"date_time_created"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

func validateRequest(s interface{}) error {
	validate := validators.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("%v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
