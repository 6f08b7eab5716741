//go:build unit
// +build unit

package messages

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func validMessage() Message {
	return Message{
		ID:                 uuid.NewString(),
		CipherText:         "921#1096#1759#",
		SymbolCount:        3,
		ModulusFingerprint: strings.Repeat("ab", 16),
		DateTimeCreated:    time.Now(),
	}
}

func TestMessage_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(m *Message)
		shouldErr bool
	}{
		{"valid", func(m *Message) {}, false},
		{"empty cipher text", func(m *Message) { m.CipherText = ""; m.SymbolCount = 0 }, false},
		{"invalid id", func(m *Message) { m.ID = "not-a-uuid" }, true},
		{"negative symbol count", func(m *Message) { m.SymbolCount = -1 }, true},
		{"short fingerprint", func(m *Message) { m.ModulusFingerprint = "abcd" }, true},
		{"non hex fingerprint", func(m *Message) { m.ModulusFingerprint = strings.Repeat("zz", 16) }, true},
		{"missing creation time", func(m *Message) { m.DateTimeCreated = time.Time{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := validMessage()
			tt.mutate(&m)

			err := m.Validate()
			if tt.shouldErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMessageQuery_Validate(t *testing.T) {
	assert.NoError(t, NewMessageQuery().Validate())
	assert.NoError(t, (&MessageQuery{Limit: 10, Offset: 5, SortBy: SortBySymbolCount, SortOrder: SortOrderAsc}).Validate())
	assert.Error(t, (&MessageQuery{SortBy: "cipher_text"}).Validate())
	assert.Error(t, (&MessageQuery{SortOrder: "sideways"}).Validate())
	assert.Error(t, (&MessageQuery{Limit: -1}).Validate())
	assert.Error(t, (&MessageQuery{ModulusFingerprint: "xyz"}).Validate())
}
