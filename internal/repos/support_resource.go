package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yunkbaza/Softtek/internal/platform/logger"
	"github.com/yunkbaza/Softtek/internal/types"
)

type SupportResourceRepo interface {
	Create(ctx context.Context, tx *gorm.DB, resource *types.SupportResource) (*types.SupportResource, error)
	List(ctx context.Context, tx *gorm.DB, limit int) ([]*types.SupportResource, error)
}

type supportResourceRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewSupportResourceRepo(db *gorm.DB, baseLog *logger.Logger) SupportResourceRepo {
	repoLog := baseLog.With("repo", "SupportResourceRepo")
	return &supportResourceRepo{db: db, log: repoLog}
}

func (r *supportResourceRepo) Create(ctx context.Context, tx *gorm.DB, resource *types.SupportResource) (*types.SupportResource, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if resource.ID == uuid.Nil {
		resource.ID = uuid.New()
	}
	if resource.CreatedAt.IsZero() {
		resource.CreatedAt = time.Now().UTC()
	}

	if err := transaction.WithContext(ctx).Create(resource).Error; err != nil {
		return nil, err
	}
	return resource, nil
}

func (r *supportResourceRepo) List(ctx context.Context, tx *gorm.DB, limit int) ([]*types.SupportResource, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	var results []*types.SupportResource
	if err := transaction.WithContext(ctx).
		Order("title ASC").
		Limit(limit).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}
