package ratings

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

var _ Service = (*store)(nil)

// store handles all database operations for player seedings.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}

// NewStore creates a SQLite-backed seedings Service.
func NewStore(db *sql.DB) Service {
	return &store{
		db: db,
	}
}

func (s *store) GuildHasPlayers(guildID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM player_seeds WHERE guild_id = ?", guildID).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to count player seeds: %w", err)
	}
	return count > 0, nil
}

func (s *store) PlayerSeed(guildID, team, memberID string) (int, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var seed int
	err := s.db.QueryRow(`
		SELECT seed FROM player_seeds
		WHERE guild_id = ? AND team_folded = ? AND member_id = ?
	`, guildID, strings.ToLower(team), memberID).Scan(&seed)
	if err == sql.ErrNoRows {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to look up player seed: %w", err)
	}
	return seed, true, nil
}

func (s *store) OrderedOpponentNamesAndSeeds(guildID string, seed int, isHome bool, opponentTeam string) ([]string, []int, error) {
	names := make([]string, 0, 3)
	seeds := make([]int, 0, 3)
	for round := 1; round <= 3; round++ {
		opp := OpponentSeed(seed, round, isHome)
		name, err := s.MemberNameByTeamAndSeed(guildID, opponentTeam, opp)
		if err != nil {
			return nil, nil, err
		}
		names = append(names, name)
		seeds = append(seeds, opp)
	}
	return names, seeds, nil
}

func (s *store) MemberNameByTeamAndSeed(guildID, team string, seed int) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var name string
	err := s.db.QueryRow(`
		SELECT member_name FROM player_seeds
		WHERE guild_id = ? AND team_folded = ? AND seed = ?
	`, guildID, strings.ToLower(team), seed).Scan(&name)
	if err == sql.ErrNoRows {
		return "", fmt.Errorf("no seed %d registered for team %s", seed, team)
	}
	if err != nil {
		return "", fmt.Errorf("failed to look up seed %d for team %s: %w", seed, team, err)
	}
	return name, nil
}

func (s *store) UpsertSeed(guildID, team string, seed int, memberID, memberName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO player_seeds (guild_id, team_folded, seed, member_id, member_name)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(guild_id, team_folded, seed) DO UPDATE SET
			member_id = excluded.member_id,
			member_name = excluded.member_name;
	`, guildID, strings.ToLower(team), seed, memberID, memberName)
	if err != nil {
		log.Error("Failed to upsert player seed", "error", err, "guildID", guildID, "team", team, "seed", seed)
		return fmt.Errorf("failed to upsert seed %d for team %s: %w", seed, team, err)
	}
	return nil
}
