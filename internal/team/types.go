package team

import (
	"database/sql"
	"sync"
)

// Team is one registered team: a name resolving to a franchise/tier role
// pair plus its captain and general manager.
type Team struct {
	GuildID         string `json:"guild_id"`
	Name            string `json:"name"`
	FranchiseRoleID string `json:"franchise_role_id"`
	TierRoleID      string `json:"tier_role_id"`
	GMID            string `json:"gm_id"`
	CaptainID       string `json:"captain_id"`
}

// Member is a guild member as the rest of the application sees it.
type Member struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// store handles all database operations for the team registry.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
