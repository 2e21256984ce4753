package schedule

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/duskpine/leaguebot/internal/guildcfg"
)

// Store owns the per-guild schedule document. Saves are full-document
// writes with last-writer-wins semantics; concurrent writers can overwrite
// each other's entries. Accepted trade-off given human-paced admin usage.
type Store interface {
	Load(guildID string) (*Index, error)
	Save(guildID string, idx *Index) error
	Clear(guildID string) error
	// Mutate runs a read-modify-write cycle against the guild's document.
	// All write paths go through here so a consistency token can be added
	// later without touching call sites.
	Mutate(guildID string, fn func(*Index) error) error
}

type store struct {
	cfg guildcfg.Store
}

// NewStore creates a schedule Store backed by the guild settings store.
func NewStore(cfg guildcfg.Store) Store {
	return &store{cfg: cfg}
}

func (s *store) Load(guildID string) (*Index, error) {
	idx := NewIndex()
	found, err := s.cfg.GetDocument(guildID, guildcfg.KeySchedule, idx)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedule: %w", err)
	}
	if !found {
		log.Debug("No schedule document for guild, using empty defaults", "guildID", guildID)
		return NewIndex(), nil
	}
	if idx.Matches == nil {
		idx.Matches = []MatchRecord{}
	}
	if idx.TeamDays == nil {
		idx.TeamDays = map[string]int{}
	}
	return idx, nil
}

func (s *store) Save(guildID string, idx *Index) error {
	if err := s.cfg.SetDocument(guildID, guildcfg.KeySchedule, idx); err != nil {
		return fmt.Errorf("failed to save schedule: %w", err)
	}
	return nil
}

func (s *store) Clear(guildID string) error {
	log.Info("Clearing schedule", "guildID", guildID)
	return s.Save(guildID, NewIndex())
}

func (s *store) Mutate(guildID string, fn func(*Index) error) error {
	idx, err := s.Load(guildID)
	if err != nil {
		return err
	}
	if err := fn(idx); err != nil {
		return err
	}
	return s.Save(guildID, idx)
}
