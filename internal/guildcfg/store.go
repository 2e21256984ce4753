package guildcfg

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
)

// New creates a new guild settings Store.
func New(db *sql.DB) Store {
	return &store{
		db: db,
	}
}

func (s *store) GetString(guildID, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM guild_settings WHERE guild_id = ? AND key = ?", guildID, key).Scan(&value)
	if err == sql.ErrNoRows {
		return scalarDefaults[key], nil
	}
	if err != nil {
		log.Error("Failed to read guild setting", "error", err, "guildID", guildID, "key", key)
		return "", fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	return value, nil
}

func (s *store) SetString(guildID, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upsert(guildID, key, value)
}

func (s *store) GetDocument(guildID, key string, out any) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var value string
	err := s.db.QueryRow("SELECT value FROM guild_settings WHERE guild_id = ? AND key = ?", guildID, key).Scan(&value)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read document %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(value), out); err != nil {
		log.Error("Failed to unmarshal guild document", "error", err, "guildID", guildID, "key", key)
		return false, fmt.Errorf("failed to unmarshal document %s: %w", key, err)
	}
	return true, nil
}

func (s *store) SetDocument(guildID, key string, doc any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	value, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %w", key, err)
	}
	return s.upsert(guildID, key, string(value))
}

func (s *store) upsert(guildID, key, value string) error {
	_, err := s.db.Exec(`
		INSERT INTO guild_settings (guild_id, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(guild_id, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at;
	`, guildID, key, value, time.Now().Unix())
	if err != nil {
		log.Error("Failed to write guild setting", "error", err, "guildID", guildID, "key", key)
		return fmt.Errorf("failed to write setting %s: %w", key, err)
	}
	return nil
}
