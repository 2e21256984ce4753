package metrics

import "sync"

// Mock is a mock implementation of the Metrics interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu                 sync.Mutex
	commandsProcessed  int
	scheduleInserts    int
	validationFailures int
	lookupDurations    []float64
	lobbyNotifSent     int
	lobbyNotifFailed   int
	startupTime        float64
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{
		lookupDurations: make([]float64, 0),
	}
}

func (m *Mock) IncCommandsProcessed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commandsProcessed++
}

func (m *Mock) IncScheduleInserts() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.scheduleInserts++
}

func (m *Mock) IncValidationFailures() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.validationFailures++
}

func (m *Mock) ObserveLookupDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lookupDurations = append(m.lookupDurations, duration)
}

func (m *Mock) IncLobbyNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lobbyNotifSent++
}

func (m *Mock) IncLobbyNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lobbyNotifFailed++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.startupTime = duration
}

// ScheduleInserts returns the number of times IncScheduleInserts was called.
func (m *Mock) ScheduleInserts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.scheduleInserts
}

// ValidationFailures returns the number of times IncValidationFailures was called.
func (m *Mock) ValidationFailures() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.validationFailures
}

// LobbyNotifSent returns the number of times IncLobbyNotifSent was called.
func (m *Mock) LobbyNotifSent() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lobbyNotifSent
}

// LobbyNotifFailed returns the number of times IncLobbyNotifFailed was called.
func (m *Mock) LobbyNotifFailed() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.lobbyNotifFailed
}
