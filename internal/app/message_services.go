package app

import (
	"context"
	"fmt"
	"math/big"
	"time"
	"unicode/utf8"

	"github.com/MGTheTrain/text-rsa/internal/domain/cryptoalg"
	"github.com/MGTheTrain/text-rsa/internal/domain/messages"
	"github.com/MGTheTrain/text-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/text-rsa/internal/pkg/logger"

	"github.com/google/uuid"
)

// messageEncryptService implements the MessageEncryptService interface
type messageEncryptService struct {
	messageRepo messages.MessageRepository
	textRSA     cryptoalg.TextRSAProcessor
	logger      logger.Logger
}

// NewMessageEncryptService creates a new messageEncryptService instance
func NewMessageEncryptService(
	messageRepo messages.MessageRepository,
	textRSA cryptoalg.TextRSAProcessor,
	logger logger.Logger,
) (messages.MessageEncryptService, error) {
	return &messageEncryptService{
		messageRepo: messageRepo,
		textRSA:     textRSA,
		logger:      logger,
	}, nil
}

// Encrypt encrypts plainText and stores the resulting cipher text together with a modulus fingerprint
func (s *messageEncryptService) Encrypt(ctx context.Context, plainText string, exponent, modulus *big.Int) (*messages.Message, error) {
	cipherText, err := s.textRSA.Encrypt(ctx, plainText, exponent, modulus)
	if err != nil {
		return nil, fmt.Errorf("failed to encrypt message: %w", err)
	}

	message := &messages.Message{
		ID:                 uuid.New().String(),
		CipherText:         cipherText,
		SymbolCount:        utf8.RuneCountInString(plainText),
		ModulusFingerprint: cryptography.ModulusFingerprint(modulus),
		DateTimeCreated:    time.Now().UTC(),
	}

	if err := s.messageRepo.Create(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}

	s.logger.Info("Stored encrypted message ", message.ID)
	return message, nil
}

// messageDecryptService implements the MessageDecryptService interface
type messageDecryptService struct {
	messageRepo messages.MessageRepository
	textRSA     cryptoalg.TextRSAProcessor
	logger      logger.Logger
}

// NewMessageDecryptService creates a new messageDecryptService instance
func NewMessageDecryptService(
	messageRepo messages.MessageRepository,
	textRSA cryptoalg.TextRSAProcessor,
	logger logger.Logger,
) (messages.MessageDecryptService, error) {
	return &messageDecryptService{
		messageRepo: messageRepo,
		textRSA:     textRSA,
		logger:      logger,
	}, nil
}

// DecryptByID decrypts a stored message. A modulus other than the one used for encryption
// is logged and still applied.
func (s *messageDecryptService) DecryptByID(ctx context.Context, messageID string, exponent, modulus *big.Int) (string, error) {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return "", err
	}

	if fingerprint := cryptography.ModulusFingerprint(modulus); fingerprint != message.ModulusFingerprint {
		s.logger.Warn("Modulus fingerprint ", fingerprint, " does not match message ", messageID)
	}

	plainText, err := s.textRSA.Decrypt(ctx, message.CipherText, exponent, modulus)
	if err != nil {
		return "", fmt.Errorf("failed to decrypt message: %w", err)
	}

	return plainText, nil
}

// messageMetadataService implements the MessageMetadataService interface
type messageMetadataService struct {
	messageRepo messages.MessageRepository
	logger      logger.Logger
}

// NewMessageMetadataService creates a new messageMetadataService instance
func NewMessageMetadataService(messageRepo messages.MessageRepository, logger logger.Logger) (messages.MessageMetadataService, error) {
	return &messageMetadataService{
		messageRepo: messageRepo,
		logger:      logger,
	}, nil
}

// List retrieves all messages' metadata considering a query filter when set.
func (s *messageMetadataService) List(ctx context.Context, query *messages.MessageQuery) ([]*messages.Message, error) {
	list, err := s.messageRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return list, nil
}

// GetByID retrieves a message by its ID.
func (s *messageMetadataService) GetByID(ctx context.Context, messageID string) (*messages.Message, error) {
	message, err := s.messageRepo.GetByID(ctx, messageID)
	if err != nil {
		return nil, err
	}

	return message, nil
}

// DeleteByID deletes a message by its ID.
func (s *messageMetadataService) DeleteByID(ctx context.Context, messageID string) error {
	if err := s.messageRepo.DeleteByID(ctx, messageID); err != nil {
		return err
	}

	s.logger.Info("Deleted message ", messageID)
	return nil
}
