package notifier

import (
	"sync"

	"github.com/duskpine/leaguebot/internal/lobby"
)

// Mock is a mock implementation of the Messenger interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies for method calls
	SendLobbyReadyFunc func(job lobby.Job, dryRun bool) error

	// Call records
	SendLobbyReadyCalls []struct {
		Job    lobby.Job
		DryRun bool
	}
}

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLobbyReadyCalls = nil
}

// SendLobbyReady records the call and executes the mock function if provided.
func (m *Mock) SendLobbyReady(job lobby.Job, dryRun bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SendLobbyReadyCalls = append(m.SendLobbyReadyCalls, struct {
		Job    lobby.Job
		DryRun bool
	}{Job: job, DryRun: dryRun})
	if m.SendLobbyReadyFunc != nil {
		return m.SendLobbyReadyFunc(job, dryRun)
	}
	return nil
}
