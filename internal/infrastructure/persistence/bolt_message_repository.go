package persistence

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/MGTheTrain/text-rsa/internal/domain/messages"
	"github.com/MGTheTrain/text-rsa/internal/pkg/logger"

	"go.etcd.io/bbolt"
)

var bucketMessages = []byte("messages")

// BoltMessageRepository stores messages as JSON values keyed by ID in a single bbolt bucket.
type BoltMessageRepository struct {
	db     *bbolt.DB
	logger logger.Logger
}

// NewBoltMessageRepository opens (or creates) the bbolt file at path.
func NewBoltMessageRepository(path string, logger logger.Logger) (*BoltMessageRepository, error) {
	if path == "" {
		return nil, fmt.Errorf("bolt database path is required")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := bbolt.Open(path, 0600, &bbolt.Options{
		Timeout: 30 * time.Second,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(tx *bbolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketMessages)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize bucket %q: %w", bucketMessages, err)
	}

	return &BoltMessageRepository{
		db:     db,
		logger: logger,
	}, nil
}

// Close closes the underlying bbolt database.
func (r *BoltMessageRepository) Close() error {
	if err := r.db.Close(); err != nil {
		return fmt.Errorf("failed to close bolt database: %w", err)
	}
	return nil
}

func (r *BoltMessageRepository) Create(ctx context.Context, message *messages.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := message.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	value, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to encode message: %w", err)
	}

	err = r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMessages)
		key := []byte(message.ID)
		if bucket.Get(key) != nil {
			return fmt.Errorf("message with ID %s already exists", message.ID)
		}
		return bucket.Put(key, value)
	})
	if err != nil {
		return fmt.Errorf("failed to create message: %w", err)
	}

	r.logger.Info("Created message with id ", message.ID)
	return nil
}

func (r *BoltMessageRepository) List(ctx context.Context, query *messages.MessageQuery) ([]*messages.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var list []*messages.Message
	err := r.db.View(func(tx *bbolt.Tx) error {
		return tx.Bucket(bucketMessages).ForEach(func(_, value []byte) error {
			var message messages.Message
			if err := json.NewDecoder(bytes.NewReader(value)).Decode(&message); err != nil {
				return err
			}
			if query.ModulusFingerprint == "" || query.ModulusFingerprint == message.ModulusFingerprint {
				list = append(list, &message)
			}
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	sortMessages(list, query.SortBy, query.SortOrder)

	return page(list, query.Offset, query.Limit), nil
}

func (r *BoltMessageRepository) GetByID(ctx context.Context, messageID string) (*messages.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var message *messages.Message
	err := r.db.View(func(tx *bbolt.Tx) error {
		value := tx.Bucket(bucketMessages).Get([]byte(messageID))
		if value == nil {
			return nil
		}
		message = &messages.Message{}
		return json.Unmarshal(value, message)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch message: %w", err)
	}
	if message == nil {
		return nil, fmt.Errorf("message with ID %s: %w", messageID, messages.ErrMessageNotFound)
	}

	return message, nil
}

func (r *BoltMessageRepository) DeleteByID(ctx context.Context, messageID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	found := false
	err := r.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMessages)
		key := []byte(messageID)
		if bucket.Get(key) == nil {
			return nil
		}
		found = true
		return bucket.Delete(key)
	})
	if err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	if !found {
		return fmt.Errorf("message with ID %s: %w", messageID, messages.ErrMessageNotFound)
	}

	r.logger.Info("Deleted message with id ", messageID)
	return nil
}

func sortMessages(list []*messages.Message, sortBy, sortOrder string) {
	if sortBy == "" {
		return
	}

	less := func(a, b *messages.Message) bool {
		if sortBy == messages.SortBySymbolCount {
			return a.SymbolCount < b.SymbolCount
		}
		return a.DateTimeCreated.Before(b.DateTimeCreated)
	}

	sort.SliceStable(list, func(i, j int) bool {
		if sortOrder == messages.SortOrderDesc {
			return less(list[j], list[i])
		}
		return less(list[i], list[j])
	})
}

func page(list []*messages.Message, offset, limit int) []*messages.Message {
	if offset >= len(list) {
		return []*messages.Message{}
	}
	list = list[offset:]
	if limit > 0 && limit < len(list) {
		list = list[:limit]
	}
	return list
}
