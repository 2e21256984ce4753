package team

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/charmbracelet/log"
)

// discordSession is the slice of the discordgo session the manager uses.
// This allows for easy mocking in tests.
type discordSession interface {
	GuildMembers(guildID string, after string, limit int, options ...discordgo.RequestOption) ([]*discordgo.Member, error)
	GuildMember(guildID, userID string, options ...discordgo.RequestOption) (*discordgo.Member, error)
	GuildRoles(guildID string, options ...discordgo.RequestOption) ([]*discordgo.Role, error)
}

var _ Manager = (*manager)(nil)

type manager struct {
	registry Registry
	session  discordSession
}

// NewManager creates a Manager combining the team registry with live
// Discord role membership.
func NewManager(registry Registry, session discordSession) Manager {
	return &manager{
		registry: registry,
		session:  session,
	}
}

func (m *manager) HasTeam(guildID, name string) (bool, error) {
	_, found, err := m.registry.GetTeam(guildID, name)
	return found, err
}

func (m *manager) RolesForTeam(guildID, name string) (*Team, bool, error) {
	return m.registry.GetTeam(guildID, name)
}

func (m *manager) TeamsForUser(guildID, userID string) ([]string, error) {
	member, err := m.session.GuildMember(guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild member: %w", err)
	}
	held := make(map[string]bool, len(member.Roles))
	for _, roleID := range member.Roles {
		held[roleID] = true
	}

	teams, err := m.registry.ListTeams(guildID)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, t := range teams {
		if held[t.FranchiseRoleID] && held[t.TierRoleID] {
			names = append(names, t.Name)
		}
	}
	return names, nil
}

func (m *manager) MembersFromTeam(guildID string, t *Team) ([]Member, error) {
	members, err := m.session.GuildMembers(guildID, "", 1000)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild members: %w", err)
	}

	var roster []Member
	for _, member := range members {
		hasFranchise := false
		hasTier := false
		for _, roleID := range member.Roles {
			switch roleID {
			case t.FranchiseRoleID:
				hasFranchise = true
			case t.TierRoleID:
				hasTier = true
			}
		}
		if hasFranchise && hasTier {
			roster = append(roster, Member{ID: member.User.ID, Name: displayName(member)})
		}
	}
	return roster, nil
}

func (m *manager) Captain(guildID string, t *Team) (*Member, error) {
	if t.CaptainID == "" {
		return nil, fmt.Errorf("team %s has no registered captain", t.Name)
	}
	return m.resolveMember(guildID, t.CaptainID)
}

func (m *manager) GM(guildID string, t *Team) (*Member, error) {
	if t.GMID == "" {
		return nil, fmt.Errorf("team %s has no registered GM", t.Name)
	}
	return m.resolveMember(guildID, t.GMID)
}

func (m *manager) FormatRosterInfo(guildID, name string) (string, error) {
	t, found, err := m.registry.GetTeam(guildID, name)
	if err != nil {
		return "", err
	}
	if !found {
		return "", fmt.Errorf("team %s not found", name)
	}

	roster, err := m.MembersFromTeam(guildID, t)
	if err != nil {
		return "", err
	}

	tierName, err := m.TierRoleName(guildID, t)
	if err != nil {
		log.Warn("Failed to resolve tier role name for roster block", "error", err, "team", t.Name)
		tierName = ""
	}

	var sb strings.Builder
	if tierName != "" {
		fmt.Fprintf(&sb, "%s (%s)\n", t.Name, tierName)
	} else {
		fmt.Fprintf(&sb, "%s\n", t.Name)
	}
	for _, member := range roster {
		marker := ""
		if member.ID == t.CaptainID {
			marker = " (C)"
		}
		fmt.Fprintf(&sb, "• %s%s\n", member.Name, marker)
	}
	return sb.String(), nil
}

func (m *manager) TierRoleName(guildID string, t *Team) (string, error) {
	role, err := m.findRole(guildID, t.TierRoleID)
	if err != nil {
		return "", err
	}
	return role.Name, nil
}

func (m *manager) TierRoleColor(guildID string, t *Team) (int, error) {
	role, err := m.findRole(guildID, t.TierRoleID)
	if err != nil {
		return 0, err
	}
	return role.Color, nil
}

func (m *manager) findRole(guildID, roleID string) (*discordgo.Role, error) {
	roles, err := m.session.GuildRoles(guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild roles: %w", err)
	}
	for _, role := range roles {
		if role.ID == roleID {
			return role, nil
		}
	}
	return nil, fmt.Errorf("role %s not found in guild %s", roleID, guildID)
}

func (m *manager) resolveMember(guildID, userID string) (*Member, error) {
	member, err := m.session.GuildMember(guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch guild member %s: %w", userID, err)
	}
	return &Member{ID: member.User.ID, Name: displayName(member)}, nil
}

func displayName(member *discordgo.Member) string {
	if member.Nick != "" {
		return member.Nick
	}
	if member.User.GlobalName != "" {
		return member.User.GlobalName
	}
	return member.User.Username
}
