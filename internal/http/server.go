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

func NewServer(scheduleStore schedule.Store, resolver *schedule.Resolver, metricsSvc metrics.Metrics, metricsHandler http.Handler, cfg config.Config, messenger notifier.Messenger, opsLog *opslog.Logger, pubsub pubsub.PubSubClient) *Server {
	server := &Server{
		Schedule:       scheduleStore,
		Resolver:       resolver,
		Metrics:        metricsSvc,
		MetricsHandler: metricsHandler,
		Cfg:            cfg,
		Messenger:      messenger,
		OpsLog:         opsLog,
		Router:         http.NewServeMux(),
		pubsub:         pubsub,
	}

	server.routes()
	return server
}

func (s *Server) routes() {
	// All handlers are wrapped with middleware using the Chain helper.
	// This makes it easy to add more middlewares in the future, like an authentication middleware.
	// e.g. Chain(s.MyHandler(), paramsMiddleware, authMiddleware)
	s.Router.Handle("/metrics", s.MetricsHandler)
	s.Router.Handle("/health", Chain(s.HealthCheckHandler(), paramsMiddleware))
	s.Router.Handle("/schedule", Chain(s.ScheduleHandler(), paramsMiddleware))
	s.Router.Handle("/clear", Chain(s.ClearScheduleHandler(), paramsMiddleware))
	s.Router.Handle("/notify-lobby", Chain(s.NotifyLobbyHandler(), paramsMiddleware))
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}
