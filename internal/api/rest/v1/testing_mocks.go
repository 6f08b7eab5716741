//go:build unit
// +build unit

package v1

import (
	"context"
	"math/big"

	"github.com/MGTheTrain/text-rsa/internal/domain/messages"
	"github.com/MGTheTrain/text-rsa/internal/domain/textrsa"

	"github.com/stretchr/testify/mock"
)

// MockTextRSAProcessor is a mock implementation of TextRSAProcessor
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

// MockMessageEncryptService is a mock implementation of MessageEncryptService
type MockMessageEncryptService struct {
	mock.Mock
}

func (m *MockMessageEncryptService) Encrypt(ctx context.Context, plainText string, exponent, modulus *big.Int) (*messages.Message, error) {
	args := m.Called(ctx, plainText, exponent, modulus)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messages.Message), args.Error(1)
}

// MockMessageDecryptService is a mock implementation of MessageDecryptService
type MockMessageDecryptService struct {
	mock.Mock
}

func (m *MockMessageDecryptService) DecryptByID(ctx context.Context, messageID string, exponent, modulus *big.Int) (string, error) {
	args := m.Called(ctx, messageID, exponent, modulus)
	return args.String(0), args.Error(1)
}

// MockMessageMetadataService is a mock implementation of MessageMetadataService
type MockMessageMetadataService struct {
	mock.Mock
}

func (m *MockMessageMetadataService) List(ctx context.Context, query *messages.MessageQuery) ([]*messages.Message, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*messages.Message), args.Error(1)
}

func (m *MockMessageMetadataService) GetByID(ctx context.Context, messageID string) (*messages.Message, error) {
	args := m.Called(ctx, messageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messages.Message), args.Error(1)
}

func (m *MockMessageMetadataService) DeleteByID(ctx context.Context, messageID string) error {
	args := m.Called(ctx, messageID)
	return args.Error(0)
}

// bigIntEq matches a *big.Int argument by value
func bigIntEq(v int64) interface{} {
	return mock.MatchedBy(func(actual *big.Int) bool {
		return actual != nil && actual.Cmp(big.NewInt(v)) == 0
	})
}
