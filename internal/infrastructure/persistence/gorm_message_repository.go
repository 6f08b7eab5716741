package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/text-rsa/internal/domain/messages"
	"github.com/MGTheTrain/text-rsa/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/text-rsa/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormMessageRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormMessageRepository creates a GORM-based MessageRepository and migrates its table
func NewGormMessageRepository(db *gorm.DB, logger logger.Logger) (messages.MessageRepository, error) {
	if err := db.AutoMigrate(&models.MessageModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return &gormMessageRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormMessageRepository) Create(ctx context.Context, message *messages.Message) error {
	if err := message.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.MessageModel{}
	model.FromDomain(message)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("message with ID %s already exists", message.ID)
		}
		return fmt.Errorf("failed to create message: %w", err)
	}

	r.logger.Info("Created message with id ", message.ID)
	return nil
}

func (r *gormMessageRepository) List(ctx context.Context, query *messages.MessageQuery) ([]*messages.Message, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.MessageModel
	dbQuery := r.db.WithContext(ctx).Model(&models.MessageModel{})

	if query.ModulusFingerprint != "" {
		dbQuery = dbQuery.Where("modulus_fingerprint = ?", query.ModulusFingerprint)
	}

	// SortBy and SortOrder are restricted to known values by query.Validate
	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = messages.SortOrderAsc
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch messages: %w", err)
	}

	domainList := make([]*messages.Message, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormMessageRepository) GetByID(ctx context.Context, messageID string) (*messages.Message, error) {
	var model models.MessageModel
	if err := r.db.WithContext(ctx).Where("id = ?", messageID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("message with ID %s: %w", messageID, messages.ErrMessageNotFound)
		}
		return nil, fmt.Errorf("failed to fetch message: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormMessageRepository) DeleteByID(ctx context.Context, messageID string) error {
	result := r.db.WithContext(ctx).Where("id = ?", messageID).Delete(&models.MessageModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete message: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("message with ID %s: %w", messageID, messages.ErrMessageNotFound)
	}

	r.logger.Info("Deleted message with id ", messageID)
	return nil
}
