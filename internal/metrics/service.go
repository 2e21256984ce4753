package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		CommandsProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_commands_processed_total",
			Help: "The total number of bot commands processed.",
		}),
		ScheduleInserts: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_schedule_inserts_total",
			Help: "The total number of matches added to the schedule.",
		}),
		ValidationFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_schedule_validation_failures_total",
			Help: "The total number of match inserts rejected by validation.",
		}),
		LookupDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "league_match_lookup_duration_seconds",
			Help:    "The duration of individual match lookups.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		LobbyNotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_lobby_notifications_sent_total",
			Help: "The total number of lobby-ready notifications successfully sent.",
		}),
		LobbyNotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "league_lobby_notifications_failed_total",
			Help: "The total number of lobby-ready notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "league_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.CommandsProcessed,
		s.ScheduleInserts,
		s.ValidationFailures,
		s.LookupDuration,
		s.LobbyNotifSent,
		s.LobbyNotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncCommandsProcessed() {
	s.CommandsProcessed.Inc()
}

func (s *Service) IncScheduleInserts() {
	s.ScheduleInserts.Inc()
}

func (s *Service) IncValidationFailures() {
	s.ValidationFailures.Inc()
}

func (s *Service) ObserveLookupDuration(duration float64) {
	s.LookupDuration.Observe(duration)
}

func (s *Service) IncLobbyNotifSent() {
	s.LobbyNotifSent.Inc()
}

func (s *Service) IncLobbyNotifFailed() {
	s.LobbyNotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
