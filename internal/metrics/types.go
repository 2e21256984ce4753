package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service is the Prometheus-backed Metrics implementation.
type Service struct {
	CommandsProcessed  prometheus.Counter
	ScheduleInserts    prometheus.Counter
	ValidationFailures prometheus.Counter
	LookupDuration     prometheus.Histogram
	LobbyNotifSent     prometheus.Counter
	LobbyNotifFailed   prometheus.Counter
	StartupTimeSeconds prometheus.Gauge
}
