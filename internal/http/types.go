package http

import (
	"net/http"

	"github.com/duskpine/leaguebot/internal/config"
	"github.com/duskpine/leaguebot/internal/metrics"
	"github.com/duskpine/leaguebot/internal/notifier"
	"github.com/duskpine/leaguebot/internal/opslog"
	"github.com/duskpine/leaguebot/internal/pubsub"
	"github.com/duskpine/leaguebot/internal/schedule"
)

type Server struct {
	Schedule       schedule.Store
	Resolver       *schedule.Resolver
	Metrics        metrics.Metrics
	MetricsHandler http.Handler
	Cfg            config.Config
	Messenger      notifier.Messenger
	OpsLog         *opslog.Logger
	Router         *http.ServeMux
	pubsub         pubsub.PubSubClient
}
