//go:build unit
// +build unit

package v1

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MGTheTrain/text-rsa/internal/domain/textrsa"
	"github.com/MGTheTrain/text-rsa/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/text-rsa/internal/pkg/config"
	"github.com/MGTheTrain/text-rsa/internal/pkg/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func performJSON(handlerFunc gin.HandlerFunc, method, url, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(method, url, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")

	c, _ := gin.CreateTestContext(w)
	c.Request = req

	handlerFunc(c)
	return w
}

func TestCipherHandler_Encrypt_Success(t *testing.T) {
	mockTextRSA := new(MockTextRSAProcessor)
	handler := NewCipherHandler(mockTextRSA)

	mockTextRSA.
		On("Encrypt", mock.Anything, "Hi!", bigIntEq(17), bigIntEq(3233)).
		Return("921#1096#1759#", nil)

	w := performJSON(handler.Encrypt, "POST", "/encrypt", `{"message": "Hi!", "exponent": "17", "modulus": "3233"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	var response CipherTextResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Equal(t, "921#1096#1759#", response.CipherText)
	mockTextRSA.AssertExpectations(t)
}

func TestCipherHandler_Encrypt_UnknownSymbol(t *testing.T) {
	mockTextRSA := new(MockTextRSAProcessor)
	handler := NewCipherHandler(mockTextRSA)

	mockTextRSA.
		On("Encrypt", mock.Anything, "0", mock.Anything, mock.Anything).
		Return("", fmt.Errorf("failed to encode message: %w", &textrsa.UnknownSymbolError{Symbol: '0', Position: 0}))

	w := performJSON(handler.Encrypt, "POST", "/encrypt", `{"message": "0", "exponent": "17", "modulus": "3233"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "unknown symbol")
}

func TestCipherHandler_Encrypt_InvalidRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"malformed json", `{"message": `},
		{"missing modulus", `{"message": "a", "exponent": "17"}`},
		{"negative exponent", `{"message": "a", "exponent": "-17", "modulus": "3233"}`},
		{"hex modulus", `{"message": "a", "exponent": "17", "modulus": "0xca1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTextRSA := new(MockTextRSAProcessor)
			handler := NewCipherHandler(mockTextRSA)

			w := performJSON(handler.Encrypt, "POST", "/encrypt", tt.body)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			mockTextRSA.AssertNotCalled(t, "Encrypt", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCipherHandler_Decrypt_Malformed(t *testing.T) {
	mockTextRSA := new(MockTextRSAProcessor)
	handler := NewCipherHandler(mockTextRSA)

	mockTextRSA.
		On("Decrypt", mock.Anything, "12#x#", bigIntEq(2753), bigIntEq(3233)).
		Return("", &textrsa.MalformedCipherTextError{Segment: "x", Index: 1})

	w := performJSON(handler.Decrypt, "POST", "/decrypt", `{"cipher_text": "12#x#", "exponent": "2753", "modulus": "3233"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockTextRSA.AssertExpectations(t)
}

func TestCipherHandler_RoundTrip(t *testing.T) {
	textRSA, err := cryptography.NewTextRSAProcessor(config.DefaultCipherSettings(), testutil.SetupTestLogger(t))
	require.NoError(t, err)
	handler := NewCipherHandler(textRSA)

	w := performJSON(handler.Encrypt, "POST", "/encrypt", `{"message": "Hi!", "exponent": "17", "modulus": "3233"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var encrypted CipherTextResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &encrypted))
	assert.Equal(t, "921#1096#1759#", encrypted.CipherText)

	body := fmt.Sprintf(`{"cipher_text": %q, "exponent": "2753", "modulus": "3233"}`, encrypted.CipherText)
	w = performJSON(handler.Decrypt, "POST", "/decrypt", body)
	require.Equal(t, http.StatusOK, w.Code)

	var decrypted PlainTextResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &decrypted))
	assert.Equal(t, "Hi!", decrypted.Message)
}
