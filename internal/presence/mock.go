package presence

import "sync"

var _ Oracle = (*Mock)(nil)

// Mock is an in-memory Oracle for tests.
type Mock struct {
	mu     sync.Mutex
	inGame map[string]bool
	online map[string]bool

	Err error
}

// NewMock creates an Oracle Mock where everyone is offline.
func NewMock() *Mock {
	return &Mock{
		inGame: make(map[string]bool),
		online: make(map[string]bool),
	}
}

// SetInGame marks a member as in-game (and therefore online).
func (m *Mock) SetInGame(memberID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inGame[memberID] = true
	m.online[memberID] = true
}

// SetOnline marks a member as online but not in-game.
func (m *Mock) SetOnline(memberID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.online[memberID] = true
}

func (m *Mock) IsInGame(guildID, memberID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.inGame[memberID], nil
}

func (m *Mock) IsOnline(guildID, memberID string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.online[memberID], nil
}
