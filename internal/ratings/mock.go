package ratings

import (
	"fmt"
	"strings"
	"sync"
)

var _ Service = (*Mock)(nil)

// Mock is an in-memory seedings Service for tests.
type Mock struct {
	mu    sync.Mutex
	seeds map[string]seedEntry // key: guildID|folded team|seed
}

type seedEntry struct {
	memberID   string
	memberName string
}

// NewMock creates an empty seedings Mock.
func NewMock() *Mock {
	return &Mock{
		seeds: make(map[string]seedEntry),
	}
}

func (m *Mock) key(guildID, team string, seed int) string {
	return fmt.Sprintf("%s|%s|%d", guildID, strings.ToLower(team), seed)
}

func (m *Mock) GuildHasPlayers(guildID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.seeds {
		if strings.HasPrefix(k, guildID+"|") {
			return true, nil
		}
	}
	return false, nil
}

func (m *Mock) PlayerSeed(guildID, team, memberID string) (int, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for seed := 1; seed <= 3; seed++ {
		if entry, ok := m.seeds[m.key(guildID, team, seed)]; ok && entry.memberID == memberID {
			return seed, true, nil
		}
	}
	return 0, false, nil
}

func (m *Mock) OrderedOpponentNamesAndSeeds(guildID string, seed int, isHome bool, opponentTeam string) ([]string, []int, error) {
	names := make([]string, 0, 3)
	seeds := make([]int, 0, 3)
	for round := 1; round <= 3; round++ {
		opp := OpponentSeed(seed, round, isHome)
		name, err := m.MemberNameByTeamAndSeed(guildID, opponentTeam, opp)
		if err != nil {
			return nil, nil, err
		}
		names = append(names, name)
		seeds = append(seeds, opp)
	}
	return names, seeds, nil
}

func (m *Mock) MemberNameByTeamAndSeed(guildID, team string, seed int) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	entry, ok := m.seeds[m.key(guildID, team, seed)]
	if !ok {
		return "", fmt.Errorf("no seed %d registered for team %s", seed, team)
	}
	return entry.memberName, nil
}

func (m *Mock) UpsertSeed(guildID, team string, seed int, memberID, memberName string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seeds[m.key(guildID, team, seed)] = seedEntry{memberID: memberID, memberName: memberName}
	return nil
}
