package ratings

// Service exposes player seedings for solo play. Seeds run 1..3 within a
// team and drive the round-by-round opponent rotation.
type Service interface {
	// GuildHasPlayers reports whether any seeds are registered for the guild.
	GuildHasPlayers(guildID string) (bool, error)
	// PlayerSeed returns the seed a member holds on the given team,
	// reporting whether one is registered.
	PlayerSeed(guildID, team, memberID string) (int, bool, error)
	// OrderedOpponentNamesAndSeeds returns the opponents a player faces in
	// rounds 1..3, in round order, with the seed each opponent holds.
	OrderedOpponentNamesAndSeeds(guildID string, seed int, isHome bool, opponentTeam string) ([]string, []int, error)
	// MemberNameByTeamAndSeed resolves a display name for one team/seed slot.
	MemberNameByTeamAndSeed(guildID, team string, seed int) (string, error)
	// UpsertSeed registers or replaces the member holding a seed slot.
	UpsertSeed(guildID, team string, seed int, memberID, memberName string) error
}
