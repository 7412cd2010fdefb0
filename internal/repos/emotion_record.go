package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yunkbaza/Softtek/internal/platform/logger"
	"github.com/yunkbaza/Softtek/internal/types"
)

type EmotionRecordRepo interface {
	Create(ctx context.Context, tx *gorm.DB, record *types.EmotionRecord) (*types.EmotionRecord, error)
	List(ctx context.Context, tx *gorm.DB, limit int) ([]*types.EmotionRecord, error)
}

type emotionRecordRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEmotionRecordRepo(db *gorm.DB, baseLog *logger.Logger) EmotionRecordRepo {
	repoLog := baseLog.With("repo", "EmotionRecordRepo")
	return &emotionRecordRepo{db: db, log: repoLog}
}

func (r *emotionRecordRepo) Create(ctx context.Context, tx *gorm.DB, record *types.EmotionRecord) (*types.EmotionRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if record.ID == uuid.Nil {
		record.ID = uuid.New()
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	if err := transaction.WithContext(ctx).Create(record).Error; err != nil {
		return nil, err
	}
	return record, nil
}

func (r *emotionRecordRepo) List(ctx context.Context, tx *gorm.DB, limit int) ([]*types.EmotionRecord, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.EmotionRecord
	if err := transaction.WithContext(ctx).
		Order("timestamp DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
