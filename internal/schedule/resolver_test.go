package schedule_test

import (
	"strings"
	"testing"

	"github.com/duskpine/leaguebot/internal/guildcfg"
	"github.com/duskpine/leaguebot/internal/metrics"
	"github.com/duskpine/leaguebot/internal/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGuild = "guild-1"

// fakeTeams answers HasTeam from a fixed set, case-insensitively like the
// real registry.
type fakeTeams struct {
	names map[string]bool
}

func newFakeTeams(names ...string) *fakeTeams {
	f := &fakeTeams{names: make(map[string]bool)}
	for _, n := range names {
		f.names[strings.ToLower(n)] = true
	}
	return f
}

func (f *fakeTeams) HasTeam(guildID, name string) (bool, error) {
	return f.names[strings.ToLower(name)], nil
}

func setupResolver(t *testing.T, teams ...string) (*schedule.Resolver, schedule.Store, *metrics.Mock) {
	t.Helper()
	store := schedule.NewStore(guildcfg.NewMock())
	metricsMock := metrics.NewMock()
	resolver := schedule.NewResolver(store, newFakeTeams(teams...), metricsMock)
	return resolver, store, metricsMock
}

func TestInsertMatch(t *testing.T) {
	resolver, store, metricsMock := setupResolver(t, "Fire Ants", "Leopards")

	record, err := resolver.InsertMatch(testGuild, schedule.InsertMatchInput{
		MatchDay:  "1",
		MatchDate: "January 12, 2026",
		Home:      "Fire Ants",
		Away:      "Leopards",
	})
	require.NoError(t, err)

	assert.Equal(t, "1", record.MatchDay)
	assert.Equal(t, "January 12, 2026", record.MatchDate)
	assert.Equal(t, "2026-01-12", record.MatchDateISO)
	assert.NotEmpty(t, record.RoomName)
	assert.NotEmpty(t, record.RoomPass)
	assert.Equal(t, 1, metricsMock.ScheduleInserts())

	idx, err := store.Load(testGuild)
	require.NoError(t, err)
	require.Len(t, idx.Matches, 1)
	assert.Equal(t, 0, idx.TeamDays[schedule.TeamDayKey("Fire Ants", "1")])
	assert.Equal(t, 0, idx.TeamDays[schedule.TeamDayKey("Leopards", "1")])
}

func TestInsertMatchKeepsSuppliedCredentials(t *testing.T) {
	resolver, _, _ := setupResolver(t, "Fire Ants", "Leopards")

	record, err := resolver.InsertMatch(testGuild, schedule.InsertMatchInput{
		MatchDay:  "1",
		MatchDate: "January 12, 2026",
		Home:      "Fire Ants",
		Away:      "Leopards",
		RoomName:  "octane",
		RoomPass:  "fennec",
	})
	require.NoError(t, err)
	assert.Equal(t, "octane", record.RoomName)
	assert.Equal(t, "fennec", record.RoomPass)
}

func TestInsertMatchAggregatesValidationProblems(t *testing.T) {
	resolver, store, metricsMock := setupResolver(t) // no teams registered

	_, err := resolver.InsertMatch(testGuild, schedule.InsertMatchInput{
		MatchDay:  "1",
		MatchDate: "not a date",
		Home:      "Fire Ants",
		Away:      "Leopards",
	})
	require.Error(t, err)

	var verr *schedule.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Problems, 3)
	assert.Contains(t, verr.Problems, "Home team roles not found.")
	assert.Contains(t, verr.Problems, "Away team roles not found.")
	assert.Equal(t, 1, metricsMock.ValidationFailures())

	// Nothing was written.
	idx, err := store.Load(testGuild)
	require.NoError(t, err)
	assert.Empty(t, idx.Matches)
	assert.Empty(t, idx.TeamDays)
}

func TestInsertMatchRejectsDoubleBooking(t *testing.T) {
	resolver, store, _ := setupResolver(t, "Fire Ants", "Leopards", "Bears")

	_, err := resolver.InsertMatch(testGuild, schedule.InsertMatchInput{
		MatchDay:  "1",
		MatchDate: "January 12, 2026",
		Home:      "Fire Ants",
		Away:      "Leopards",
	})
	require.NoError(t, err)

	_, err = resolver.InsertMatch(testGuild, schedule.InsertMatchInput{
		MatchDay:  "1",
		MatchDate: "January 12, 2026",
		Home:      "Fire Ants",
		Away:      "Bears",
	})
	var verr *schedule.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Problems, "Home team already has a match for match day 1")

	// A differently-cased name is still a double-booking.
	_, err = resolver.InsertMatch(testGuild, schedule.InsertMatchInput{
		MatchDay:  "1",
		MatchDate: "January 12, 2026",
		Home:      "Bears",
		Away:      "FIRE ANTS",
	})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Problems, "Away team already has a match for match day 1")

	idx, err := store.Load(testGuild)
	require.NoError(t, err)
	assert.Len(t, idx.Matches, 1)
}

func TestInsertMatchSameTeamsDifferentDays(t *testing.T) {
	resolver, store, _ := setupResolver(t, "Fire Ants", "Leopards")

	for _, day := range []string{"1", "2", "3"} {
		_, err := resolver.InsertMatch(testGuild, schedule.InsertMatchInput{
			MatchDay:  day,
			MatchDate: "January 12, 2026",
			Home:      "Fire Ants",
			Away:      "Leopards",
		})
		require.NoError(t, err)
	}

	idx, err := store.Load(testGuild)
	require.NoError(t, err)
	assert.Len(t, idx.Matches, 3)
	assert.Len(t, idx.TeamDays, 6)
}

func TestFindMatchIndexIsCaseInsensitive(t *testing.T) {
	resolver, _, _ := setupResolver(t, "Fire Ants", "Leopards")

	_, err := resolver.InsertMatch(testGuild, schedule.InsertMatchInput{
		MatchDay:  "1",
		MatchDate: "January 12, 2026",
		Home:      "Fire Ants",
		Away:      "Leopards",
	})
	require.NoError(t, err)

	pos, ok, err := resolver.FindMatchIndex(testGuild, "FIRE ANTS", "1")
	require.NoError(t, err)
	require.True(t, ok)

	m, err := resolver.MatchAt(testGuild, pos)
	require.NoError(t, err)
	assert.Equal(t, "Fire Ants", m.Home)

	_, ok, err = resolver.FindMatchIndex(testGuild, "fire ants", "2")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFindMatchScansPastEarlierDays(t *testing.T) {
	resolver, _, _ := setupResolver(t, "Fire Ants", "Leopards", "Bears", "Wolves")

	// Day 2 comes first in insertion order, so a day-1 lookup must scan
	// past it instead of stopping at the first day mismatch.
	_, err := resolver.InsertMatch(testGuild, schedule.InsertMatchInput{
		MatchDay:  "2",
		MatchDate: "January 19, 2026",
		Home:      "Bears",
		Away:      "Wolves",
	})
	require.NoError(t, err)
	_, err = resolver.InsertMatch(testGuild, schedule.InsertMatchInput{
		MatchDay:  "1",
		MatchDate: "January 12, 2026",
		Home:      "Fire Ants",
		Away:      "Leopards",
	})
	require.NoError(t, err)

	m, found, err := resolver.FindMatch(testGuild, "1", "leopards")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Fire Ants", m.Home)
}

func TestSetAndRemoveStreamDetails(t *testing.T) {
	resolver, _, _ := setupResolver(t, "Fire Ants", "Leopards")

	_, err := resolver.InsertMatch(testGuild, schedule.InsertMatchInput{
		MatchDay:  "1",
		MatchDate: "January 12, 2026",
		Home:      "Fire Ants",
		Away:      "Leopards",
	})
	require.NoError(t, err)

	details := &schedule.StreamDetails{LiveStream: "twitch.tv/league", Slot: "A", Time: "8 PM"}
	found, err := resolver.SetStreamDetails(testGuild, "1", "fire ants", details)
	require.NoError(t, err)
	assert.True(t, found)

	m, found, err := resolver.FindMatch(testGuild, "1", "Leopards")
	require.NoError(t, err)
	require.True(t, found)
	require.NotNil(t, m.StreamDetails)
	assert.Equal(t, "twitch.tv/league", m.StreamDetails.LiveStream)

	found, err = resolver.RemoveStreamDetails(testGuild, "1", "Fire Ants")
	require.NoError(t, err)
	assert.True(t, found)

	m, _, err = resolver.FindMatch(testGuild, "1", "Leopards")
	require.NoError(t, err)
	assert.Nil(t, m.StreamDetails)

	found, err = resolver.SetStreamDetails(testGuild, "9", "Fire Ants", details)
	require.NoError(t, err)
	assert.False(t, found)
}
