package lobby

import (
	"context"
	"sync"
)

var _ Dispatcher = (*MockDispatcher)(nil)

// MockDispatcher records dispatched jobs for tests.
type MockDispatcher struct {
	mu   sync.Mutex
	jobs []Job

	Err error
}

// NewMockDispatcher creates an empty MockDispatcher.
func NewMockDispatcher() *MockDispatcher {
	return &MockDispatcher{}
}

func (m *MockDispatcher) Dispatch(ctx context.Context, job Job) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jobs = append(m.jobs, job)
	return nil
}

// Jobs returns a copy of every dispatched job.
func (m *MockDispatcher) Jobs() []Job {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Job, len(m.jobs))
	copy(out, m.jobs)
	return out
}
