package app

import (
	httpH "github.com/yunkbaza/Softtek/internal/http/handlers"
	"github.com/yunkbaza/Softtek/internal/platform/logger"
)

type Handlers struct {
	Checkin *httpH.CheckinHandler
	Support *httpH.SupportHandler
	Legacy  *httpH.LegacyHandler
	Health  *httpH.HealthHandler
}

func wireHandlers(log *logger.Logger, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Checkin: httpH.NewCheckinHandler(log, serviceset.Checkin),
		Support: httpH.NewSupportHandler(log, serviceset.Support),
		Legacy:  httpH.NewLegacyHandler(log, serviceset.Legacy),
		Health:  httpH.NewHealthHandler(),
	}
}
