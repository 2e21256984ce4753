package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncCommandsProcessed()
	IncScheduleInserts()
	IncValidationFailures()
	ObserveLookupDuration(duration float64)
	IncLobbyNotifSent()
	IncLobbyNotifFailed()
	SetStartupTime(duration float64)
}
