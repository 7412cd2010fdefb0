package app

import (
	"gorm.io/gorm"

	"github.com/yunkbaza/Softtek/internal/platform/logger"
	"github.com/yunkbaza/Softtek/internal/services"
)

type Services struct {
	Audit   services.AuditService
	Checkin services.CheckinService
	Support services.SupportService
	Legacy  services.LegacyService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	audit := services.NewAuditService(db, log, reposet.Event)
	return Services{
		Audit:   audit,
		Checkin: services.NewCheckinService(db, log, reposet.Assessment, reposet.MoodCheckin, audit),
		Support: services.NewSupportService(db, log, reposet.SupportResource),
		Legacy:  services.NewLegacyService(db, log, reposet.EmotionRecord, reposet.RiskAnswer),
	}
}
