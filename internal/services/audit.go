package services

import (
	"context"
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/yunkbaza/Softtek/internal/platform/logger"
	"github.com/yunkbaza/Softtek/internal/repos"
	"github.com/yunkbaza/Softtek/internal/types"
)

// AuditService records that an action happened. It is strictly best-effort:
// a failed audit write must never fail the primary write that triggered it,
// so Record swallows errors after logging them.
type AuditService interface {
	Record(ctx context.Context, sessionID, action string, meta map[string]any)
}

type auditService struct {
	db        *gorm.DB
	log       *logger.Logger
	eventRepo repos.EventRepo
}

func NewAuditService(db *gorm.DB, log *logger.Logger, eventRepo repos.EventRepo) AuditService {
	serviceLog := log.With("service", "AuditService")
	return &auditService{db: db, log: serviceLog, eventRepo: eventRepo}
}

func (s *auditService) Record(ctx context.Context, sessionID, action string, meta map[string]any) {
	if meta == nil {
		meta = map[string]any{}
	}
	raw, err := json.Marshal(meta)
	if err != nil {
		s.log.Warn("audit meta marshal failed", "action", action, "error", err)
		raw = []byte("{}")
	}
	event := &types.Event{
		SessionID: sessionID,
		Action:    action,
		Meta:      datatypes.JSON(raw),
	}
	if _, err := s.eventRepo.Create(ctx, nil, event); err != nil {
		s.log.Warn("audit event write failed", "action", action, "session_id", sessionID, "error", err)
	}
}
