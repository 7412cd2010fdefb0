package app

import (
	"gorm.io/gorm"

	"github.com/yunkbaza/Softtek/internal/platform/logger"
	"github.com/yunkbaza/Softtek/internal/repos"
)

type Repos struct {
	Assessment      repos.AssessmentRepo
	MoodCheckin     repos.MoodCheckinRepo
	SupportResource repos.SupportResourceRepo
	Event           repos.EventRepo
	EmotionRecord   repos.EmotionRecordRepo
	RiskAnswer      repos.RiskAnswerRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Assessment:      repos.NewAssessmentRepo(db, log),
		MoodCheckin:     repos.NewMoodCheckinRepo(db, log),
		SupportResource: repos.NewSupportResourceRepo(db, log),
		Event:           repos.NewEventRepo(db, log),
		EmotionRecord:   repos.NewEmotionRecordRepo(db, log),
		RiskAnswer:      repos.NewRiskAnswerRepo(db, log),
	}
}
