package team

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// NewStore creates a SQLite-backed team Registry.
func NewStore(db *sql.DB) Registry {
	return &store{
		db: db,
	}
}

func (s *store) UpsertTeam(t Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO teams (guild_id, name, name_folded, franchise_role_id, tier_role_id, gm_id, captain_id)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(guild_id, name_folded) DO UPDATE SET
			name = excluded.name,
			franchise_role_id = excluded.franchise_role_id,
			tier_role_id = excluded.tier_role_id,
			gm_id = excluded.gm_id,
			captain_id = excluded.captain_id;
	`, t.GuildID, t.Name, strings.ToLower(t.Name), t.FranchiseRoleID, t.TierRoleID, t.GMID, t.CaptainID)
	if err != nil {
		log.Error("Failed to upsert team", "error", err, "guildID", t.GuildID, "team", t.Name)
		return fmt.Errorf("failed to upsert team %s: %w", t.Name, err)
	}
	return nil
}

func (s *store) GetTeam(guildID, name string) (*Team, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var t Team
	err := s.db.QueryRow(`
		SELECT guild_id, name, franchise_role_id, tier_role_id, gm_id, captain_id
		FROM teams
		WHERE guild_id = ? AND name_folded = ?
	`, guildID, strings.ToLower(name)).Scan(&t.GuildID, &t.Name, &t.FranchiseRoleID, &t.TierRoleID, &t.GMID, &t.CaptainID)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get team %s: %w", name, err)
	}
	return &t, true, nil
}

func (s *store) ListTeams(guildID string) ([]Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.Query(`
		SELECT guild_id, name, franchise_role_id, tier_role_id, gm_id, captain_id
		FROM teams
		WHERE guild_id = ?
		ORDER BY name
	`, guildID)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []Team
	for rows.Next() {
		var t Team
		if err := rows.Scan(&t.GuildID, &t.Name, &t.FranchiseRoleID, &t.TierRoleID, &t.GMID, &t.CaptainID); err != nil {
			log.Error("Failed to scan team row", "error", err)
			continue
		}
		teams = append(teams, t)
	}
	return teams, nil
}

func (s *store) RemoveTeam(guildID, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec("DELETE FROM teams WHERE guild_id = ? AND name_folded = ?", guildID, strings.ToLower(name))
	if err != nil {
		return fmt.Errorf("failed to remove team %s: %w", name, err)
	}
	return nil
}
