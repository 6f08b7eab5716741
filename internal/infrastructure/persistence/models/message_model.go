package models

import (
	"time"

	"github.com/MGTheTrain/text-rsa/internal/domain/messages"
)

// MessageModel is the GORM database model for stored cipher texts
type MessageModel struct {
	ID                 string    `gorm:"primaryKey;type:uuid"`
	CipherText         string    `gorm:"type:text;not null"`
	SymbolCount        int       `gorm:"type:integer;not null"`
	ModulusFingerprint string    `gorm:"type:varchar(32);not null;index"`
	DateTimeCreated    time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (MessageModel) TableName() string {
	return "messages"
}

// ToDomain converts GORM model to domain entity
func (m *MessageModel) ToDomain() *messages.Message {
	return &messages.Message{
		ID:                 m.ID,
		CipherText:         m.CipherText,
		SymbolCount:        m.SymbolCount,
		ModulusFingerprint: m.ModulusFingerprint,
		DateTimeCreated:    m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *MessageModel) FromDomain(msg *messages.Message) {
	m.ID = msg.ID
	m.CipherText = msg.CipherText
	m.SymbolCount = msg.SymbolCount
	m.ModulusFingerprint = msg.ModulusFingerprint
	m.DateTimeCreated = msg.DateTimeCreated
}
