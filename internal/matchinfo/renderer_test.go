package matchinfo_test

import (
	"testing"

	"github.com/duskpine/leaguebot/internal/matchinfo"
	"github.com/duskpine/leaguebot/internal/ratings"
	"github.com/duskpine/leaguebot/internal/schedule"
	"github.com/duskpine/leaguebot/internal/team"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testGuild = "guild-1"

func testMatch() *schedule.MatchRecord {
	return &schedule.MatchRecord{
		MatchDay:  "1",
		MatchDate: "January 12, 2026",
		Home:      "Fire Ants",
		Away:      "Leopards",
		RoomName:  "octane",
		RoomPass:  "fennec",
	}
}

func setupTeams() *team.Mock {
	teams := team.NewMock()
	teams.AddTeam(
		team.Team{GuildID: testGuild, Name: "Fire Ants", CaptainID: "fa-1"},
		[]team.Member{{ID: "fa-1", Name: "Ant One"}, {ID: "fa-2", Name: "Ant Two"}},
	)
	teams.AddTeam(
		team.Team{GuildID: testGuild, Name: "Leopards", CaptainID: "le-1"},
		[]team.Member{{ID: "le-1", Name: "Leo One"}, {ID: "le-2", Name: "Leo Two"}},
	)
	teams.SetTierRole(testGuild, "Fire Ants", "Champion", 0x3498DB)
	return teams
}

func seedBothTeams(t *testing.T, ratingsMock *ratings.Mock) {
	t.Helper()
	for seed := 1; seed <= 3; seed++ {
		require.NoError(t, ratingsMock.UpsertSeed(testGuild, "Fire Ants", seed,
			[]string{"", "fa-1", "fa-2", "fa-3"}[seed], []string{"", "Ant One", "Ant Two", "Ant Three"}[seed]))
		require.NoError(t, ratingsMock.UpsertSeed(testGuild, "Leopards", seed,
			[]string{"", "le-1", "le-2", "le-3"}[seed], []string{"", "Leo One", "Leo Two", "Leo Three"}[seed]))
	}
}

func TestRenderTextNormalMode(t *testing.T) {
	r := matchinfo.NewRenderer(setupTeams(), ratings.NewMock())

	text, err := r.RenderText(testGuild, "fa-1", "Fire Ants", testMatch())
	require.NoError(t, err)

	assert.Contains(t, text, "__Match Day 1: January 12, 2026__")
	assert.Contains(t, text, "**Fire Ants**\n    versus\n**Leopards**")
	assert.Contains(t, text, "Name: **octane**")
	assert.Contains(t, text, "Password: **fennec**")
	assert.Contains(t, text, "Ant One")
	assert.Contains(t, text, "Leo Two")
	assert.Contains(t, text, "home")
	assert.Contains(t, text, "Save your replays")
}

func TestRenderEmbedMatchesTextContent(t *testing.T) {
	r := matchinfo.NewRenderer(setupTeams(), ratings.NewMock())

	embed, err := r.RenderEmbed(testGuild, "fa-1", "Fire Ants", testMatch())
	require.NoError(t, err)

	assert.Equal(t, "__Match Day 1: January 12, 2026__\n", embed.Title)
	assert.Contains(t, embed.Description, "versus")
	assert.Equal(t, 0x3498DB, embed.Color)

	var all string
	for _, field := range embed.Fields {
		all += field.Name + "\n" + field.Value + "\n"
	}
	assert.Contains(t, all, "Name: **octane**")
	assert.Contains(t, all, "Ant One")
	assert.Contains(t, all, "Leo One")
	assert.Contains(t, all, "Save your replays")
}

func TestAdditionalInfoSideNotes(t *testing.T) {
	r := matchinfo.NewRenderer(setupTeams(), ratings.NewMock())
	m := testMatch()

	homeText, err := r.RenderText(testGuild, "fa-1", "Fire Ants", m)
	require.NoError(t, err)
	assert.Contains(t, homeText, "You are the **home** team")

	awayText, err := r.RenderText(testGuild, "le-1", "Leopards", m)
	require.NoError(t, err)
	assert.Contains(t, awayText, "You are the **away** team")

	// The plain side note requires an exact name match; a differently
	// cased lookup only loses the note.
	casedText, err := r.RenderText(testGuild, "fa-1", "fire ants", m)
	require.NoError(t, err)
	assert.NotContains(t, casedText, "You are the **home** team")
	assert.Contains(t, casedText, "Save your replays")
}

func TestAdditionalInfoStreamNoteIsCaseInsensitive(t *testing.T) {
	r := matchinfo.NewRenderer(setupTeams(), ratings.NewMock())
	m := testMatch()
	m.StreamDetails = &schedule.StreamDetails{LiveStream: "twitch.tv/league", Slot: "A", Time: "8 PM"}

	text, err := r.RenderText(testGuild, "fa-1", "fire ants", m)
	require.NoError(t, err)
	assert.Contains(t, text, "on stream")
	assert.Contains(t, text, "twitch.tv/league")
	assert.Contains(t, text, "**home**")

	text, err = r.RenderText(testGuild, "le-1", "LEOPARDS", m)
	require.NoError(t, err)
	assert.Contains(t, text, "**away**")
}

func TestSoloPersonalizedHomeView(t *testing.T) {
	ratingsMock := ratings.NewMock()
	seedBothTeams(t, ratingsMock)
	r := matchinfo.NewRenderer(setupTeams(), ratingsMock)

	text, err := r.RenderText(testGuild, "fa-1", "Fire Ants", testMatch())
	require.NoError(t, err)

	// Seed 1 on the home side gets lobby credentials suffixed with their
	// own seed and faces away seeds 3, 2, 1 in round order.
	assert.Contains(t, text, "Name: **octane1**")
	assert.Contains(t, text, "Password: **fennec1**")
	assert.Contains(t, text, "Leo Three")
	assert.Contains(t, text, "Leo Two")
	assert.Contains(t, text, "Leo One")
	assert.NotContains(t, text, "Name: **octane**\n")
}

func TestSoloPersonalizedAwayView(t *testing.T) {
	ratingsMock := ratings.NewMock()
	seedBothTeams(t, ratingsMock)
	r := matchinfo.NewRenderer(setupTeams(), ratingsMock)

	text, err := r.RenderText(testGuild, "le-1", "Leopards", testMatch())
	require.NoError(t, err)

	// Away seed 1 joins home seeds 2, 3, 1, each with creds suffixed by
	// the opponent's seed.
	assert.Contains(t, text, "octane2")
	assert.Contains(t, text, "octane3")
	assert.Contains(t, text, "octane1")
	assert.Contains(t, text, "Ant Two")
	assert.Contains(t, text, "away team's **1** seed")
}

func TestSoloGenericGridForUnseededViewer(t *testing.T) {
	ratingsMock := ratings.NewMock()
	seedBothTeams(t, ratingsMock)
	r := matchinfo.NewRenderer(setupTeams(), ratingsMock)

	text, err := r.RenderText(testGuild, "spectator", "", testMatch())
	require.NoError(t, err)

	assert.Contains(t, text, "first **one game** series")
	assert.Contains(t, text, "second **one game** series")
	assert.Contains(t, text, "final **three game** series")
	// Round 1 pairs home seed 1 with away seed 3.
	assert.Contains(t, text, "Ant One vs Leo Three")
	// Round 3 pairs equal seeds.
	assert.Contains(t, text, "Ant Three vs Leo Three")
}

func TestSoloGenericGridDegradesOnMissingSeed(t *testing.T) {
	ratingsMock := ratings.NewMock()
	// Only two of three away seeds registered.
	require.NoError(t, ratingsMock.UpsertSeed(testGuild, "Fire Ants", 1, "fa-1", "Ant One"))
	require.NoError(t, ratingsMock.UpsertSeed(testGuild, "Fire Ants", 2, "fa-2", "Ant Two"))
	require.NoError(t, ratingsMock.UpsertSeed(testGuild, "Fire Ants", 3, "fa-3", "Ant Three"))
	require.NoError(t, ratingsMock.UpsertSeed(testGuild, "Leopards", 1, "le-1", "Leo One"))
	require.NoError(t, ratingsMock.UpsertSeed(testGuild, "Leopards", 2, "le-2", "Leo Two"))
	r := matchinfo.NewRenderer(setupTeams(), ratingsMock)

	text, err := r.RenderText(testGuild, "spectator", "", testMatch())
	require.NoError(t, err)
	assert.Contains(t, text, "There was an error getting the matchups for this match.")
	assert.NotContains(t, text, "Ant One vs")
}
