package persistence

import (
	"fmt"
	"io"

	"github.com/MGTheTrain/text-rsa/internal/domain/messages"
	"github.com/MGTheTrain/text-rsa/internal/pkg/config"
	"github.com/MGTheTrain/text-rsa/internal/pkg/logger"
)

type closerFunc func() error

func (f closerFunc) Close() error {
	return f()
}

// NewMessageRepository builds the repository selected by settings.Type. The returned
// closer releases the underlying database handle.
func NewMessageRepository(settings config.DatabaseSettings, logger logger.Logger) (messages.MessageRepository, io.Closer, error) {
	if err := settings.Validate(); err != nil {
		return nil, nil, err
	}

	if settings.Type == config.BoltDbType {
		repo, err := NewBoltMessageRepository(settings.DSN, logger)
		if err != nil {
			return nil, nil, err
		}
		logger.Info("Using bolt message store ", settings.DSN)
		return repo, repo, nil
	}

	db, err := NewDBConnection(settings)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	repo, err := NewGormMessageRepository(db, logger)
	if err != nil {
		_ = CloseDB(db)
		return nil, nil, err
	}

	logger.Info("Using ", settings.Type, " message store")
	return repo, closerFunc(func() error { return CloseDB(db) }), nil
}
