//go:build unit
// +build unit

package app

import (
	"context"
	"math/big"

	"github.com/MGTheTrain/text-rsa/internal/domain/messages"
	"github.com/MGTheTrain/text-rsa/internal/domain/textrsa"

	"github.com/stretchr/testify/mock"
)

// MockMessageRepository is a mock of messages.MessageRepository
type MockMessageRepository struct {
	mock.Mock
}

func (m *MockMessageRepository) Create(ctx context.Context, message *messages.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockMessageRepository) List(ctx context.Context, query *messages.MessageQuery) ([]*messages.Message, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*messages.Message), args.Error(1)
}

func (m *MockMessageRepository) GetByID(ctx context.Context, messageID string) (*messages.Message, error) {
	args := m.Called(ctx, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messages.Message), args.Error(1)
}

func (m *MockMessageRepository) DeleteByID(ctx context.Context, messageID string) error {
	args := m.Called(ctx, messageID)
	return args.Error(0)
}

// MockTextRSAProcessor is a mock of cryptoalg.TextRSAProcessor
type MockTextRSAProcessor struct {
	mock.Mock
}

func (m *MockTextRSAProcessor) Encrypt(ctx context.Context, message string, exponent, modulus *big.Int) (string, error) {
	args := m.Called(ctx, message, exponent, modulus)
	return args.String(0), args.Error(1)
}

func (m *MockTextRSAProcessor) Decrypt(ctx context.Context, cipherText string, exponent, modulus *big.Int) (string, error) {
	args := m.Called(ctx, cipherText, exponent, modulus)
	return args.String(0), args.Error(1)
}

func (m *MockTextRSAProcessor) EncryptWithPublicKey(ctx context.Context, message string, key textrsa.PublicKey) (string, error) {
	return m.Encrypt(ctx, message, key.E, key.N)
}

func (m *MockTextRSAProcessor) EncryptWithPrivateKey(ctx context.Context, message string, key textrsa.PrivateKey) (string, error) {
	return m.Encrypt(ctx, message, key.D, key.N)
}

func (m *MockTextRSAProcessor) DecryptWithPublicKey(ctx context.Context, cipherText string, key textrsa.PublicKey) (string, error) {
	return m.Decrypt(ctx, cipherText, key.E, key.N)
}

func (m *MockTextRSAProcessor) DecryptWithPrivateKey(ctx context.Context, cipherText string, key textrsa.PrivateKey) (string, error) {
	return m.Decrypt(ctx, cipherText, key.D, key.N)
}
