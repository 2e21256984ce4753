package guildcfg

import (
	"database/sql"
	"sync"
)

// Well-known per-guild settings keys.
const (
	KeyMatchDay = "MatchDay"
	KeySchedule = "Schedule"
	KeyGame     = "Game"
)

// Defaults returned for scalar keys that were never set for a guild.
var scalarDefaults = map[string]string{
	KeyMatchDay: "",
	KeyGame:     "Rocket League",
}

// store handles all database operations for guild settings.
type store struct {
	db *sql.DB
	mu sync.RWMutex
}
