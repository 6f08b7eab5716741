// Package messages models persisted cipher texts and the services that create, list and
// decrypt them. Key material is never part of a Message; only a fingerprint of the modulus
// used for encryption is recorded.
package messages

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrMessageNotFound is returned when no message exists for an ID.
var ErrMessageNotFound = errors.New("message not found")

// Message entity
type Message struct {
	ID                 string    `json:"id" validate:"required,uuid4"`
	CipherText         string    `json:"cipher_text" validate:"max=100000000"`
	SymbolCount        int       `json:"symbol_count" validate:"min=0"`
	ModulusFingerprint string    `json:"modulus_fingerprint" validate:"required,hexadecimal,len=32"`
	DateTimeCreated    time.Time `json:"date_time_created" validate:"required"`
}

// Validate for validating Message struct
func (m *Message) Validate() error {
	return validateStruct(m)
}

// Sort orders
const (
	SortOrderAsc  = "asc"
	SortOrderDesc = "desc"
)

// Sortable columns
const (
	SortByDateTimeCreated = "date_time_created"
	SortBySymbolCount     = "symbol_count"
)

// MessageQuery filters and pages message listings.
type MessageQuery struct {
	ModulusFingerprint string `validate:"omitempty,hexadecimal,len=32"`
	Limit              int    `validate:"min=0,max=1000"`
	Offset             int    `validate:"min=0"`
	SortBy             string `validate:"omitempty,oneof=date_time_created symbol_count"`
	SortOrder          string `validate:"omitempty,oneof=asc desc"`
}

// NewMessageQuery returns a query listing the newest messages first.
func NewMessageQuery() *MessageQuery {
	return &MessageQuery{
		SortBy:    SortByDateTimeCreated,
		SortOrder: SortOrderDesc,
	}
}

// Validate for validating MessageQuery struct
func (q *MessageQuery) Validate() error {
	return validateStruct(q)
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
