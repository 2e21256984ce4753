package schedule

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/duskpine/leaguebot/internal/metrics"
)

// TeamResolver is the slice of the team subsystem the resolver needs:
// whether a team name resolves to an existing role pair.
type TeamResolver interface {
	HasTeam(guildID, team string) (bool, error)
}

// Resolver answers "does team T have a match on day D" and owns all
// schedule mutations.
type Resolver struct {
	store   Store
	teams   TeamResolver
	metrics metrics.Metrics
}

// NewResolver creates a new match Resolver.
func NewResolver(store Store, teams TeamResolver, metricsSvc metrics.Metrics) *Resolver {
	return &Resolver{
		store:   store,
		teams:   teams,
		metrics: metricsSvc,
	}
}

// FindMatchIndex probes the team|day index with case-folded inputs.
// Returns the position of the match in the document and whether one exists.
func (r *Resolver) FindMatchIndex(guildID, team, matchDay string) (int, bool, error) {
	start := time.Now()
	defer func() {
		r.metrics.ObserveLookupDuration(time.Since(start).Seconds())
	}()

	idx, err := r.store.Load(guildID)
	if err != nil {
		return 0, false, err
	}
	pos, ok := idx.TeamDays[TeamDayKey(team, matchDay)]
	return pos, ok, nil
}

// MatchAt returns the record at a position previously returned by
// FindMatchIndex.
func (r *Resolver) MatchAt(guildID string, pos int) (*MatchRecord, error) {
	idx, err := r.store.Load(guildID)
	if err != nil {
		return nil, err
	}
	if pos < 0 || pos >= len(idx.Matches) {
		return nil, fmt.Errorf("match position %d out of range", pos)
	}
	m := idx.Matches[pos]
	return &m, nil
}

// FindMatch is the day-first lookup used by stream annotations. It scans
// the whole document: matches are appended in admin-input order, never
// sorted by day, so stopping at the first day mismatch would silently
// miss later records. Day comparison is exact; team comparison case-folds.
func (r *Resolver) FindMatch(guildID, matchDay, team string) (*MatchRecord, bool, error) {
	idx, err := r.store.Load(guildID)
	if err != nil {
		return nil, false, err
	}
	for i := range idx.Matches {
		m := &idx.Matches[i]
		if m.MatchDay != matchDay {
			continue
		}
		if strings.EqualFold(m.Home, team) || strings.EqualFold(m.Away, team) {
			found := *m
			return &found, true, nil
		}
	}
	return nil, false, nil
}

// InsertMatch validates and appends one match. All problems are collected
// and returned together as a *ValidationError; nothing is written unless
// every check passes.
func (r *Resolver) InsertMatch(guildID string, in InsertMatchInput) (*MatchRecord, error) {
	var problems []string

	parsed, dateErr := time.Parse(DateLayout, in.MatchDate)
	if dateErr != nil {
		problems = append(problems, "Date provided is not valid. (Make sure to use the right format.)")
	}

	if ok, err := r.teams.HasTeam(guildID, in.Home); err != nil || !ok {
		if err != nil {
			log.Error("Failed to resolve home team", "error", err, "guildID", guildID, "team", in.Home)
		}
		problems = append(problems, "Home team roles not found.")
	}
	if ok, err := r.teams.HasTeam(guildID, in.Away); err != nil || !ok {
		if err != nil {
			log.Error("Failed to resolve away team", "error", err, "guildID", guildID, "team", in.Away)
		}
		problems = append(problems, "Away team roles not found.")
	}

	var record *MatchRecord
	err := r.store.Mutate(guildID, func(idx *Index) error {
		if _, booked := idx.TeamDays[TeamDayKey(in.Home, in.MatchDay)]; booked {
			problems = append(problems, fmt.Sprintf("Home team already has a match for match day %s", in.MatchDay))
		}
		if _, booked := idx.TeamDays[TeamDayKey(in.Away, in.MatchDay)]; booked {
			problems = append(problems, fmt.Sprintf("Away team already has a match for match day %s", in.MatchDay))
		}
		if len(problems) > 0 {
			r.metrics.IncValidationFailures()
			return &ValidationError{Problems: problems}
		}

		roomName := in.RoomName
		if roomName == "" {
			roomName = GenerateCredential()
		}
		roomPass := in.RoomPass
		if roomPass == "" {
			roomPass = GenerateCredential()
		}

		m := MatchRecord{
			MatchDay:     in.MatchDay,
			MatchDate:    in.MatchDate,
			MatchDateISO: parsed.Format("2006-01-02"),
			Home:         in.Home,
			Away:         in.Away,
			RoomName:     roomName,
			RoomPass:     roomPass,
		}

		pos := len(idx.Matches)
		idx.TeamDays[TeamDayKey(in.Home, in.MatchDay)] = pos
		idx.TeamDays[TeamDayKey(in.Away, in.MatchDay)] = pos
		idx.Matches = append(idx.Matches, m)
		record = &m
		return nil
	})
	if err != nil {
		return nil, err
	}

	r.metrics.IncScheduleInserts()
	log.Info("Match scheduled", "guildID", guildID, "day", in.MatchDay, "home", in.Home, "away", in.Away)
	return record, nil
}

// SetStreamDetails locates the match for day+team and replaces its stream
// annotation in place. Passing nil removes the annotation. Returns whether
// a match was found.
func (r *Resolver) SetStreamDetails(guildID, matchDay, team string, details *StreamDetails) (bool, error) {
	found := false
	err := r.store.Mutate(guildID, func(idx *Index) error {
		for i := range idx.Matches {
			m := &idx.Matches[i]
			if m.MatchDay != matchDay {
				continue
			}
			if strings.EqualFold(m.Home, team) || strings.EqualFold(m.Away, team) {
				m.StreamDetails = details
				found = true
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}
	if found {
		log.Info("Updated stream details", "guildID", guildID, "day", matchDay, "team", team, "removed", details == nil)
	}
	return found, nil
}

// RemoveStreamDetails clears the stream annotation for day+team.
func (r *Resolver) RemoveStreamDetails(guildID, matchDay, team string) (bool, error) {
	return r.SetStreamDetails(guildID, matchDay, team, nil)
}
