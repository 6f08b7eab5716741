package messages

import (
	"context"
	"math/big"
)

// MessageEncryptService defines methods for encrypting and storing messages.
type MessageEncryptService interface {
	// Encrypt encrypts plainText with (exponent, modulus) and persists the cipher text.
	// It returns the stored Message.
	Encrypt(ctx context.Context, plainText string, exponent, modulus *big.Int) (*Message, error)
}

// MessageDecryptService defines methods for decrypting stored messages.
type MessageDecryptService interface {
	// DecryptByID loads a message and decrypts it with (exponent, modulus).
	// A wrong key yields wrong text, not an error.
	DecryptByID(ctx context.Context, messageID string, exponent, modulus *big.Int) (string, error)
}

// MessageMetadataService defines methods for listing, fetching and deleting stored messages.
type MessageMetadataService interface {
	// List retrieves messages considering a query filter when set.
	List(ctx context.Context, query *MessageQuery) ([]*Message, error)

	// GetByID retrieves a message by its unique ID.
	GetByID(ctx context.Context, messageID string) (*Message, error)

	// DeleteByID deletes a message by ID.
	DeleteByID(ctx context.Context, messageID string) error
}

// MessageRepository defines the interface for Message persistence
type MessageRepository interface {
	Create(ctx context.Context, message *Message) error
	List(ctx context.Context, query *MessageQuery) ([]*Message, error)
	GetByID(ctx context.Context, messageID string) (*Message, error)
	DeleteByID(ctx context.Context, messageID string) error
}
