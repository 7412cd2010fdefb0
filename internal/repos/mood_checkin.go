package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yunkbaza/Softtek/internal/platform/logger"
	"github.com/yunkbaza/Softtek/internal/types"
)

type MoodCheckinRepo interface {
	Create(ctx context.Context, tx *gorm.DB, checkin *types.MoodCheckin) (*types.MoodCheckin, error)
	GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID string, limit int) ([]*types.MoodCheckin, error)
}

type moodCheckinRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewMoodCheckinRepo(db *gorm.DB, baseLog *logger.Logger) MoodCheckinRepo {
	repoLog := baseLog.With("repo", "MoodCheckinRepo")
	return &moodCheckinRepo{db: db, log: repoLog}
}

func (r *moodCheckinRepo) Create(ctx context.Context, tx *gorm.DB, checkin *types.MoodCheckin) (*types.MoodCheckin, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if checkin.ID == uuid.Nil {
		checkin.ID = uuid.New()
	}
	if checkin.CreatedAt.IsZero() {
		checkin.CreatedAt = time.Now().UTC()
	}

	if err := transaction.WithContext(ctx).Create(checkin).Error; err != nil {
		return nil, err
	}
	return checkin, nil
}

func (r *moodCheckinRepo) GetBySessionID(ctx context.Context, tx *gorm.DB, sessionID string, limit int) ([]*types.MoodCheckin, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.MoodCheckin
	if sessionID == "" {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("session_id = ?", sessionID).
		Order("created_at DESC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
