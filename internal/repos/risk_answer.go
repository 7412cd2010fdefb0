package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yunkbaza/Softtek/internal/platform/logger"
	"github.com/yunkbaza/Softtek/internal/types"
)

type RiskAnswerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, answer *types.RiskAnswer) (*types.RiskAnswer, error)
}

type riskAnswerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRiskAnswerRepo(db *gorm.DB, baseLog *logger.Logger) RiskAnswerRepo {
	repoLog := baseLog.With("repo", "RiskAnswerRepo")
	return &riskAnswerRepo{db: db, log: repoLog}
}

func (r *riskAnswerRepo) Create(ctx context.Context, tx *gorm.DB, answer *types.RiskAnswer) (*types.RiskAnswer, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}

	if answer.ID == uuid.Nil {
		answer.ID = uuid.New()
	}
	if answer.CreatedAt.IsZero() {
		answer.CreatedAt = time.Now().UTC()
	}

	if err := transaction.WithContext(ctx).Create(answer).Error; err != nil {
		return nil, err
	}
	return answer, nil
}
