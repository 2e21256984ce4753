package team

import (
	"fmt"
	"strings"
	"sync"
)

var _ Manager = (*Mock)(nil)

// Mock is an in-memory Manager for tests. Rosters, captains and GMs are
// seeded directly instead of resolved through Discord.
type Mock struct {
	mu        sync.Mutex
	teams     map[string]*Team   // key: guildID|folded name
	rosters   map[string][]Member
	tierNames map[string]string
	tierColor map[string]int

	HasTeamErr error
	RosterErr  error
}

// NewMock creates an empty team Mock.
func NewMock() *Mock {
	return &Mock{
		teams:     make(map[string]*Team),
		rosters:   make(map[string][]Member),
		tierNames: make(map[string]string),
		tierColor: make(map[string]int),
	}
}

func (m *Mock) key(guildID, name string) string {
	return guildID + "|" + strings.ToLower(name)
}

// AddTeam seeds a team with its roster.
func (m *Mock) AddTeam(t Team, roster []Member) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := m.key(t.GuildID, t.Name)
	m.teams[k] = &t
	m.rosters[k] = roster
}

// SetTierRole seeds the display name and color of a team's tier role.
func (m *Mock) SetTierRole(guildID, name, tierName string, color int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := m.key(guildID, name)
	m.tierNames[k] = tierName
	m.tierColor[k] = color
}

func (m *Mock) HasTeam(guildID, name string) (bool, error) {
	if m.HasTeamErr != nil {
		return false, m.HasTeamErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.teams[m.key(guildID, name)]
	return ok, nil
}

func (m *Mock) RolesForTeam(guildID, name string) (*Team, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	t, ok := m.teams[m.key(guildID, name)]
	if !ok {
		return nil, false, nil
	}
	copied := *t
	return &copied, true, nil
}

func (m *Mock) TeamsForUser(guildID, userID string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var names []string
	for k, roster := range m.rosters {
		if !strings.HasPrefix(k, guildID+"|") {
			continue
		}
		for _, member := range roster {
			if member.ID == userID {
				names = append(names, m.teams[k].Name)
				break
			}
		}
	}
	return names, nil
}

func (m *Mock) MembersFromTeam(guildID string, t *Team) ([]Member, error) {
	if m.RosterErr != nil {
		return nil, m.RosterErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	roster := m.rosters[m.key(guildID, t.Name)]
	out := make([]Member, len(roster))
	copy(out, roster)
	return out, nil
}

func (m *Mock) Captain(guildID string, t *Team) (*Member, error) {
	return m.memberByID(guildID, t, t.CaptainID, "captain")
}

func (m *Mock) GM(guildID string, t *Team) (*Member, error) {
	if t.GMID == "" {
		return nil, fmt.Errorf("team %s has no registered GM", t.Name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, member := range m.rosters[m.key(guildID, t.Name)] {
		if member.ID == t.GMID {
			found := member
			return &found, nil
		}
	}
	// GMs are often not on the roster they manage.
	return &Member{ID: t.GMID, Name: "GM " + t.Name}, nil
}

func (m *Mock) memberByID(guildID string, t *Team, id, role string) (*Member, error) {
	if id == "" {
		return nil, fmt.Errorf("team %s has no registered %s", t.Name, role)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, member := range m.rosters[m.key(guildID, t.Name)] {
		if member.ID == id {
			found := member
			return &found, nil
		}
	}
	return nil, fmt.Errorf("%s %s is not on the roster of %s", role, id, t.Name)
}

func (m *Mock) FormatRosterInfo(guildID, name string) (string, error) {
	t, ok, err := m.RolesForTeam(guildID, name)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", fmt.Errorf("team %s not found", name)
	}
	roster, err := m.MembersFromTeam(guildID, t)
	if err != nil {
		return "", err
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s\n", t.Name)
	for _, member := range roster {
		fmt.Fprintf(&sb, "• %s\n", member.Name)
	}
	return sb.String(), nil
}

func (m *Mock) TierRoleName(guildID string, t *Team) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	name, ok := m.tierNames[m.key(guildID, t.Name)]
	if !ok {
		return "", fmt.Errorf("tier role for %s not seeded", t.Name)
	}
	return name, nil
}

func (m *Mock) TierRoleColor(guildID string, t *Team) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tierColor[m.key(guildID, t.Name)], nil
}
