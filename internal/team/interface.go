package team

// Manager is the team subsystem surface the scheduling core consumes.
type Manager interface {
	// HasTeam reports whether the team name resolves to a role pair.
	HasTeam(guildID, name string) (bool, error)
	// RolesForTeam resolves a team name (case-insensitively) to its
	// registered team, reporting whether one exists.
	RolesForTeam(guildID, name string) (*Team, bool, error)
	// TeamsForUser lists the names of every team whose role pair the
	// user holds.
	TeamsForUser(guildID, userID string) ([]string, error)
	// MembersFromTeam lists the roster: guild members holding both the
	// franchise and tier role.
	MembersFromTeam(guildID string, t *Team) ([]Member, error)
	// Captain returns the team's captain, if registered.
	Captain(guildID string, t *Team) (*Member, error)
	// GM returns the team's general manager, if registered.
	GM(guildID string, t *Team) (*Member, error)
	// FormatRosterInfo renders the roster block for a team.
	FormatRosterInfo(guildID, name string) (string, error)
	// TierRoleName returns the display name of the team's tier role.
	TierRoleName(guildID string, t *Team) (string, error)
	// TierRoleColor returns the color of the team's tier role, used for
	// cosmetic theming of rich payloads.
	TierRoleColor(guildID string, t *Team) (int, error)
}

// Registry is the admin-facing side of the team subsystem.
type Registry interface {
	UpsertTeam(t Team) error
	GetTeam(guildID, name string) (*Team, bool, error)
	ListTeams(guildID string) ([]Team, error)
	RemoveTeam(guildID, name string) error
}
