package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/Jesso3/RSA-Encyption/internal/domain/textbook"
	"github.com/Jesso3/RSA-Encyption/internal/infrastructure/persistence/models"
	"github.com/Jesso3/RSA-Encyption/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormKeyRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormKeyRepository creates a new GORM-based KeyRepository implementation
func NewGormKeyRepository(db *gorm.DB, logger logger.Logger) (textbook.KeyRepository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}
	return &gormKeyRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormKeyRepository) Create(ctx context.Context, record *textbook.KeyRecord) error {
	if err := record.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.KeyRecordModel{}
	model.FromDomain(record)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create key record: %w", err)
	}

	r.logger.Info("Created key record with id ", record.ID)
	return nil
}

func (r *gormKeyRepository) List(ctx context.Context, query *textbook.KeyRecordQuery) ([]*textbook.KeyRecord, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.KeyRecordModel
	dbQuery := r.db.WithContext(ctx).Model(&models.KeyRecordModel{})

	if query.Type != "" {
		dbQuery = dbQuery.Where("type = ?", query.Type)
	}
	if query.KeyPairID != "" {
		dbQuery = dbQuery.Where("key_pair_id = ?", query.KeyPairID)
	}
	if !query.DateTimeCreated.IsZero() {
		dbQuery = dbQuery.Where("date_time_created >= ?", query.DateTimeCreated)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		// SortBy and SortOrder are restricted to known columns by query.Validate
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch key records: %w", err)
	}

	records := make([]*textbook.KeyRecord, len(modelList))
	for i, model := range modelList {
		records[i] = model.ToDomain()
	}
	return records, nil
}

func (r *gormKeyRepository) GetByID(ctx context.Context, id string) (*textbook.KeyRecord, error) {
	var model models.KeyRecordModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", textbook.ErrKeyRecordNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch key record: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormKeyRepository) DeleteByID(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.KeyRecordModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete key record: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", textbook.ErrKeyRecordNotFound, id)
	}

	r.logger.Info("Deleted key record with id ", id)
	return nil
}
